package domain

import "time"

type PaymentMethod string

const (
	PayCash     PaymentMethod = "cash"
	PayUPI      PaymentMethod = "upi"
	PayCard     PaymentMethod = "card"
	PayTransfer PaymentMethod = "bank_transfer"
)

// Payment is applied against exactly one invoice. Any mutation of a
// payment must go through the billing service so the parent invoice's
// AmountPaid and Status are reconciled in the same transaction.
type Payment struct {
	ID        string        `json:"id"`
	InvoiceID string        `json:"invoice_id"`
	Amount    float64       `json:"amount"`
	Method    PaymentMethod `json:"method"`
	PaidAt    time.Time     `json:"paid_at"`
	Reference string        `json:"reference,omitempty"`
	Notes     string        `json:"notes,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
