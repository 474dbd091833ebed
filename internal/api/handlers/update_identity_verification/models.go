package update_identity_verification

// UpdateIdentityStatusRequest HTTP request model
type UpdateIdentityStatusRequest struct {
	IdentityStatus string `json:"identityVerificationStatus"`
}
