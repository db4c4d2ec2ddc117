package billing

import (
	"context"

	"yogastudio/internal/domain"
)

// InvoiceRepository defines invoice data access.
type InvoiceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	List(ctx context.Context, status *domain.InvoiceStatus, memberID string, limit, offset int) ([]*domain.Invoice, int64, error)
}

// PaymentRepository defines payment data access.
type PaymentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	ListByInvoice(ctx context.Context, invoiceID string) ([]*domain.Payment, error)
}

// AtomicStore writes a payment mutation and the reconciled invoice in
// one transaction.
type AtomicStore interface {
	SavePaymentAndInvoice(ctx context.Context, p *domain.Payment, isNew bool, invoiceID string, amountPaid float64, status domain.InvoiceStatus) error
	DeletePaymentAndInvoice(ctx context.Context, paymentID, invoiceID string, amountPaid float64, status domain.InvoiceStatus) error
}

// MemberReader resolves the billed member for PDF rendering.
type MemberReader interface {
	GetByID(ctx context.Context, id string) (*domain.Member, error)
}

// SettingsReader loads the studio settings singleton for PDF rendering.
type SettingsReader interface {
	Current(ctx context.Context) (*domain.Settings, error)
}
