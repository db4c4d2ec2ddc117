package billing

type CreatePaymentRequest struct {
	InvoiceID string  `json:"invoice_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
	Method    string  `json:"method" binding:"required"`
	PaidAt    string  `json:"paid_at"` // YYYY-MM-DD, defaults to today
	Reference string  `json:"reference"`
	Notes     string  `json:"notes"`
}

type UpdatePaymentRequest struct {
	Amount    float64 `json:"amount" binding:"required"`
	Method    string  `json:"method"`
	Reference string  `json:"reference"`
	Notes     string  `json:"notes"`
}
