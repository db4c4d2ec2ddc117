package billing

import (
	"context"
	"fmt"
	"time"

	"yogastudio/internal/domain"
	"yogastudio/internal/pkg/dateutil"
	"yogastudio/internal/pkg/pdfgen"
)

type Service struct {
	invoices InvoiceRepository
	payments PaymentRepository
	store    AtomicStore
	members  MemberReader
	settings SettingsReader
	now      func() time.Time
}

func NewService(invoices InvoiceRepository, payments PaymentRepository, store AtomicStore, members MemberReader, settings SettingsReader) *Service {
	return &Service{
		invoices: invoices,
		payments: payments,
		store:    store,
		members:  members,
		settings: settings,
		now:      time.Now,
	}
}

func (s *Service) GetInvoice(ctx context.Context, id string) (*domain.Invoice, error) {
	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, ErrInvoiceNotFound
	}
	return inv, nil
}

func (s *Service) ListInvoices(ctx context.Context, status *domain.InvoiceStatus, memberID string, limit, offset int) ([]*domain.Invoice, int64, error) {
	return s.invoices.List(ctx, status, memberID, limit, offset)
}

func (s *Service) ListPayments(ctx context.Context, invoiceID string) ([]*domain.Payment, error) {
	if _, err := s.GetInvoice(ctx, invoiceID); err != nil {
		return nil, err
	}
	return s.payments.ListByInvoice(ctx, invoiceID)
}

// CreatePayment records a payment and reconciles the invoice in the
// same transaction.
func (s *Service) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*domain.Payment, *domain.Invoice, error) {
	if req.Amount <= 0 {
		return nil, nil, ErrInvalidAmount
	}

	inv, err := s.GetInvoice(ctx, req.InvoiceID)
	if err != nil {
		return nil, nil, err
	}
	if inv.Status == domain.InvoiceCancelled {
		return nil, nil, ErrInvoiceCancelled
	}
	if req.Amount > inv.Outstanding() {
		return nil, nil, ErrOverpayment
	}

	paidAt := dateutil.Truncate(s.now().UTC())
	if req.PaidAt != "" {
		paidAt, err = dateutil.ParseDate(req.PaidAt)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}

	p := &domain.Payment{
		InvoiceID: inv.ID,
		Amount:    req.Amount,
		Method:    domain.PaymentMethod(req.Method),
		PaidAt:    paidAt,
		Reference: req.Reference,
		Notes:     req.Notes,
		CreatedAt: s.now(),
		UpdatedAt: s.now(),
	}

	newPaid := inv.AmountPaid + req.Amount
	status := domain.DeriveInvoiceStatus(newPaid, inv.TotalAmount)

	if err := s.store.SavePaymentAndInvoice(ctx, p, true, inv.ID, newPaid, status); err != nil {
		return nil, nil, err
	}

	inv.AmountPaid = newPaid
	inv.Status = status
	return p, inv, nil
}

// UpdatePayment applies the amount delta to the invoice and recomputes
// its status.
func (s *Service) UpdatePayment(ctx context.Context, id string, req UpdatePaymentRequest) (*domain.Payment, *domain.Invoice, error) {
	if req.Amount <= 0 {
		return nil, nil, ErrInvalidAmount
	}

	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if p == nil {
		return nil, nil, ErrPaymentNotFound
	}

	inv, err := s.GetInvoice(ctx, p.InvoiceID)
	if err != nil {
		return nil, nil, err
	}

	newPaid := inv.AmountPaid - p.Amount + req.Amount
	if newPaid < 0 {
		newPaid = 0
	}
	if newPaid > inv.TotalAmount {
		return nil, nil, ErrOverpayment
	}
	status := domain.DeriveInvoiceStatus(newPaid, inv.TotalAmount)

	p.Amount = req.Amount
	if req.Method != "" {
		p.Method = domain.PaymentMethod(req.Method)
	}
	if req.Reference != "" {
		p.Reference = req.Reference
	}
	if req.Notes != "" {
		p.Notes = req.Notes
	}
	p.UpdatedAt = s.now()

	if err := s.store.SavePaymentAndInvoice(ctx, p, false, inv.ID, newPaid, status); err != nil {
		return nil, nil, err
	}

	inv.AmountPaid = newPaid
	inv.Status = status
	return p, inv, nil
}

// DeletePayment removes a payment; the invoice's paid amount is floored
// at zero and its status recomputed.
func (s *Service) DeletePayment(ctx context.Context, id string) (*domain.Invoice, error) {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPaymentNotFound
	}

	inv, err := s.GetInvoice(ctx, p.InvoiceID)
	if err != nil {
		return nil, err
	}

	newPaid := inv.AmountPaid - p.Amount
	if newPaid < 0 {
		newPaid = 0
	}
	status := domain.DeriveInvoiceStatus(newPaid, inv.TotalAmount)

	if err := s.store.DeletePaymentAndInvoice(ctx, p.ID, inv.ID, newPaid, status); err != nil {
		return nil, err
	}

	inv.AmountPaid = newPaid
	inv.Status = status
	return inv, nil
}

// RenderInvoicePDF produces the downloadable invoice document.
func (s *Service) RenderInvoicePDF(ctx context.Context, id string) ([]byte, string, error) {
	inv, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, "", err
	}

	settings, err := s.settings.Current(ctx)
	if err != nil {
		return nil, "", err
	}

	memberName := ""
	if inv.MemberID != "" {
		member, err := s.members.GetByID(ctx, inv.MemberID)
		if err == nil && member != nil {
			memberName = member.Name
		}
	}

	pdf, err := pdfgen.RenderInvoice(pdfgen.InvoiceData{
		Invoice:    inv,
		MemberName: memberName,
		Settings:   settings,
	})
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("invoice-%s.pdf", inv.Number)
	return pdf, filename, nil
}
