package update_payment_status

// UpdatePaymentStatusRequest HTTP request model
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus"`
}
