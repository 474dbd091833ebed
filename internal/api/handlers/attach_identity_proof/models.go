package attach_identity_proof

// AttachIdentityProofRequest HTTP request model
type AttachIdentityProofRequest struct {
	ProofURL  string `json:"proofUrl"`
	ProofType string `json:"proofType"` // passport, driver_license, id_card
}
