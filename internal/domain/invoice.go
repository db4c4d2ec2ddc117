package domain

import "time"

type InvoiceStatus string

const (
	InvoicePending       InvoiceStatus = "pending"
	InvoicePartiallyPaid InvoiceStatus = "partially_paid"
	InvoicePaid          InvoiceStatus = "paid"
	InvoiceCancelled     InvoiceStatus = "cancelled"
)

type InvoiceKind string

const (
	InvoiceSubscription InvoiceKind = "subscription"
	InvoiceProductSale  InvoiceKind = "product_sale"
)

// Invoice is generated from a subscription purchase or a product sale.
// TotalAmount = Amount - Discount; Status is derived from AmountPaid.
type Invoice struct {
	ID             string        `json:"id"`
	Number         string        `json:"number"`
	Kind           InvoiceKind   `json:"kind"`
	MemberID       string        `json:"member_id,omitempty"`
	SubscriptionID string        `json:"subscription_id,omitempty"`
	Items          []InvoiceItem `json:"items"`
	Amount         float64       `json:"amount"`
	Discount       float64       `json:"discount"`
	TotalAmount    float64       `json:"total_amount"`
	AmountPaid     float64       `json:"amount_paid"`
	Status         InvoiceStatus `json:"status"`
	IssueDate      time.Time     `json:"issue_date"`
	Notes          string        `json:"notes,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

type InvoiceItem struct {
	ID          string  `json:"id"`
	InvoiceID   string  `json:"invoice_id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

// DeriveInvoiceStatus maps an amount-paid/total pair onto the invoice
// status ladder. Cancelled invoices are never re-derived.
func DeriveInvoiceStatus(amountPaid, total float64) InvoiceStatus {
	switch {
	case amountPaid >= total && total > 0:
		return InvoicePaid
	case amountPaid > 0:
		return InvoicePartiallyPaid
	default:
		return InvoicePending
	}
}

// Outstanding is the unpaid remainder, floored at zero.
func (i *Invoice) Outstanding() float64 {
	if rem := i.TotalAmount - i.AmountPaid; rem > 0 {
		return rem
	}
	return 0
}
