package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"yogastudio/internal/domain"
)

type MockInvoiceRepo struct {
	mock.Mock
}

func (m *MockInvoiceRepo) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepo) List(ctx context.Context, status *domain.InvoiceStatus, memberID string, limit, offset int) ([]*domain.Invoice, int64, error) {
	args := m.Called(ctx, status, memberID, limit, offset)
	return args.Get(0).([]*domain.Invoice), args.Get(1).(int64), args.Error(2)
}

type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepo) ListByInvoice(ctx context.Context, invoiceID string) ([]*domain.Payment, error) {
	args := m.Called(ctx, invoiceID)
	return args.Get(0).([]*domain.Payment), args.Error(1)
}

type MockAtomicStore struct {
	mock.Mock
}

func (m *MockAtomicStore) SavePaymentAndInvoice(ctx context.Context, p *domain.Payment, isNew bool, invoiceID string, amountPaid float64, status domain.InvoiceStatus) error {
	args := m.Called(ctx, p, isNew, invoiceID, amountPaid, status)
	if isNew && p.ID == "" {
		p.ID = "pay-999"
	}
	return args.Error(0)
}

func (m *MockAtomicStore) DeletePaymentAndInvoice(ctx context.Context, paymentID, invoiceID string, amountPaid float64, status domain.InvoiceStatus) error {
	args := m.Called(ctx, paymentID, invoiceID, amountPaid, status)
	return args.Error(0)
}

type MockMemberReader struct {
	mock.Mock
}

func (m *MockMemberReader) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

type MockSettingsReader struct {
	mock.Mock
}

func (m *MockSettingsReader) Current(ctx context.Context) (*domain.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}

func testInvoice() *domain.Invoice {
	return &domain.Invoice{
		ID:          "inv-1",
		Number:      "INV-0001",
		Kind:        domain.InvoiceSubscription,
		MemberID:    "mem-1",
		Amount:      2100,
		Discount:    100,
		TotalAmount: 2000,
		AmountPaid:  0,
		Status:      domain.InvoicePending,
	}
}

func TestCreatePayment_PartialThenPaid(t *testing.T) {
	invoices := new(MockInvoiceRepo)
	store := new(MockAtomicStore)

	inv := testInvoice()
	invoices.On("GetByID", mock.Anything, "inv-1").Return(inv, nil)
	store.On("SavePaymentAndInvoice", mock.Anything, mock.Anything, true, "inv-1", 1500.0, domain.InvoicePartiallyPaid).Return(nil)

	svc := NewService(invoices, new(MockPaymentRepo), store, new(MockMemberReader), new(MockSettingsReader))

	payment, updated, err := svc.CreatePayment(context.Background(), CreatePaymentRequest{
		InvoiceID: "inv-1",
		Amount:    1500,
		Method:    "upi",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1500.0, payment.Amount)
	assert.Equal(t, 1500.0, updated.AmountPaid)
	assert.Equal(t, domain.InvoicePartiallyPaid, updated.Status)

	// Settling the remainder flips the invoice to paid.
	store.On("SavePaymentAndInvoice", mock.Anything, mock.Anything, true, "inv-1", 2000.0, domain.InvoicePaid).Return(nil)

	_, updated, err = svc.CreatePayment(context.Background(), CreatePaymentRequest{
		InvoiceID: "inv-1",
		Amount:    500,
		Method:    "cash",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.InvoicePaid, updated.Status)
	store.AssertExpectations(t)
}

func TestCreatePayment_RejectsOverpayment(t *testing.T) {
	invoices := new(MockInvoiceRepo)
	store := new(MockAtomicStore)

	inv := testInvoice()
	inv.AmountPaid = 1800
	inv.Status = domain.InvoicePartiallyPaid
	invoices.On("GetByID", mock.Anything, "inv-1").Return(inv, nil)

	svc := NewService(invoices, new(MockPaymentRepo), store, new(MockMemberReader), new(MockSettingsReader))

	_, _, err := svc.CreatePayment(context.Background(), CreatePaymentRequest{
		InvoiceID: "inv-1",
		Amount:    300,
		Method:    "cash",
	})

	assert.ErrorIs(t, err, ErrOverpayment)
	store.AssertNotCalled(t, "SavePaymentAndInvoice", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePayment_RejectsNonPositive(t *testing.T) {
	svc := NewService(new(MockInvoiceRepo), new(MockPaymentRepo), new(MockAtomicStore), new(MockMemberReader), new(MockSettingsReader))

	_, _, err := svc.CreatePayment(context.Background(), CreatePaymentRequest{InvoiceID: "inv-1", Amount: 0, Method: "cash"})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, _, err = svc.CreatePayment(context.Background(), CreatePaymentRequest{InvoiceID: "inv-1", Amount: -10, Method: "cash"})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestUpdatePayment_AppliesDelta(t *testing.T) {
	invoices := new(MockInvoiceRepo)
	payments := new(MockPaymentRepo)
	store := new(MockAtomicStore)

	inv := testInvoice()
	inv.AmountPaid = 1500
	inv.Status = domain.InvoicePartiallyPaid
	payment := &domain.Payment{ID: "pay-1", InvoiceID: "inv-1", Amount: 1500, Method: domain.PayUPI}

	payments.On("GetByID", mock.Anything, "pay-1").Return(payment, nil)
	invoices.On("GetByID", mock.Anything, "inv-1").Return(inv, nil)
	store.On("SavePaymentAndInvoice", mock.Anything, mock.Anything, false, "inv-1", 2000.0, domain.InvoicePaid).Return(nil)

	svc := NewService(invoices, payments, store, new(MockMemberReader), new(MockSettingsReader))

	updated, reconciled, err := svc.UpdatePayment(context.Background(), "pay-1", UpdatePaymentRequest{Amount: 2000})

	assert.NoError(t, err)
	assert.Equal(t, 2000.0, updated.Amount)
	assert.Equal(t, 2000.0, reconciled.AmountPaid)
	assert.Equal(t, domain.InvoicePaid, reconciled.Status)
	store.AssertExpectations(t)
}

func TestDeletePayment_FloorsAtZero(t *testing.T) {
	invoices := new(MockInvoiceRepo)
	payments := new(MockPaymentRepo)
	store := new(MockAtomicStore)

	// AmountPaid drifted below the payment being removed; deletion must
	// floor at zero rather than go negative.
	inv := testInvoice()
	inv.AmountPaid = 300
	inv.Status = domain.InvoicePartiallyPaid
	payment := &domain.Payment{ID: "pay-1", InvoiceID: "inv-1", Amount: 500, Method: domain.PayCash}

	payments.On("GetByID", mock.Anything, "pay-1").Return(payment, nil)
	invoices.On("GetByID", mock.Anything, "inv-1").Return(inv, nil)
	store.On("DeletePaymentAndInvoice", mock.Anything, "pay-1", "inv-1", 0.0, domain.InvoicePending).Return(nil)

	svc := NewService(invoices, payments, store, new(MockMemberReader), new(MockSettingsReader))

	reconciled, err := svc.DeletePayment(context.Background(), "pay-1")

	assert.NoError(t, err)
	assert.Equal(t, 0.0, reconciled.AmountPaid)
	assert.Equal(t, domain.InvoicePending, reconciled.Status)
	store.AssertExpectations(t)
}

func TestDeletePayment_RecomputesPartial(t *testing.T) {
	invoices := new(MockInvoiceRepo)
	payments := new(MockPaymentRepo)
	store := new(MockAtomicStore)

	inv := testInvoice()
	inv.AmountPaid = 2000
	inv.Status = domain.InvoicePaid
	payment := &domain.Payment{ID: "pay-2", InvoiceID: "inv-1", Amount: 500, Method: domain.PayCash}

	payments.On("GetByID", mock.Anything, "pay-2").Return(payment, nil)
	invoices.On("GetByID", mock.Anything, "inv-1").Return(inv, nil)
	store.On("DeletePaymentAndInvoice", mock.Anything, "pay-2", "inv-1", 1500.0, domain.InvoicePartiallyPaid).Return(nil)

	svc := NewService(invoices, payments, store, new(MockMemberReader), new(MockSettingsReader))

	reconciled, err := svc.DeletePayment(context.Background(), "pay-2")

	assert.NoError(t, err)
	assert.Equal(t, 1500.0, reconciled.AmountPaid)
	assert.Equal(t, domain.InvoicePartiallyPaid, reconciled.Status)
}

func TestRenderInvoicePDF(t *testing.T) {
	invoices := new(MockInvoiceRepo)
	members := new(MockMemberReader)
	settings := new(MockSettingsReader)

	inv := testInvoice()
	inv.Items = []domain.InvoiceItem{{Description: "Monthly Unlimited", Quantity: 1, UnitPrice: 2100, LineTotal: 2100}}
	invoices.On("GetByID", mock.Anything, "inv-1").Return(inv, nil)
	members.On("GetByID", mock.Anything, "mem-1").Return(&domain.Member{ID: "mem-1", Name: "Asha"}, nil)
	settings.On("Current", mock.Anything).Return(&domain.Settings{
		StudioName:     "Shanti Yoga",
		CurrencyCode:   "INR",
		CurrencySymbol: "Rs ",
	}, nil)

	svc := NewService(invoices, new(MockPaymentRepo), new(MockAtomicStore), members, settings)

	pdf, filename, err := svc.RenderInvoicePDF(context.Background(), "inv-1")

	assert.NoError(t, err)
	assert.Equal(t, "invoice-INV-0001.pdf", filename)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
