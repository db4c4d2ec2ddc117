package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"yogastudio/internal/domain"
)

type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Create(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	if p.ID == "" {
		p.ID = "prod-1"
	}
	return args.Error(0)
}

func (m *MockProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepo) Update(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepo) List(ctx context.Context, activeOnly bool) ([]*domain.Product, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]*domain.Product), args.Error(1)
}

type MockSaleStore struct {
	mock.Mock
}

func (m *MockSaleStore) SellProduct(ctx context.Context, productID string, quantity int, inv *domain.Invoice) error {
	args := m.Called(ctx, productID, quantity, inv)
	if inv.ID == "" {
		inv.ID = "inv-1"
		inv.Number = "YS-0001"
	}
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

func mat(stock int) *domain.Product {
	return &domain.Product{
		ID:                "prod-1",
		Name:              "Yoga Mat",
		Price:             800,
		CurrentStock:      stock,
		LowStockThreshold: 3,
		IsActive:          true,
	}
}

func TestSell_Success(t *testing.T) {
	repo := new(MockProductRepo)
	store := new(MockSaleStore)
	repo.On("GetByID", mock.Anything, "prod-1").Return(mat(10), nil)
	store.On("SellProduct", mock.Anything, "prod-1", 2, mock.Anything).Return(nil)

	svc := NewService(repo, store, new(MockMemberReader))

	result, err := svc.Sell(context.Background(), "prod-1", SellRequest{Quantity: 2})

	assert.NoError(t, err)
	assert.Equal(t, 8, result.Product.CurrentStock)
	assert.False(t, result.LowStock)
	assert.Equal(t, domain.InvoiceProductSale, result.Invoice.Kind)
	assert.Equal(t, 1600.0, result.Invoice.TotalAmount)
	assert.Equal(t, domain.InvoicePending, result.Invoice.Status)
	assert.Len(t, result.Invoice.Items, 1)
	assert.Equal(t, 2, result.Invoice.Items[0].Quantity)
}

func TestSell_FlagsLowStock(t *testing.T) {
	repo := new(MockProductRepo)
	store := new(MockSaleStore)
	repo.On("GetByID", mock.Anything, "prod-1").Return(mat(5), nil)
	store.On("SellProduct", mock.Anything, "prod-1", 2, mock.Anything).Return(nil)

	svc := NewService(repo, store, new(MockMemberReader))

	result, err := svc.Sell(context.Background(), "prod-1", SellRequest{Quantity: 2})

	assert.NoError(t, err)
	assert.Equal(t, 3, result.Product.CurrentStock)
	assert.True(t, result.LowStock)
}

func TestSell_InsufficientStock(t *testing.T) {
	repo := new(MockProductRepo)
	store := new(MockSaleStore)
	repo.On("GetByID", mock.Anything, "prod-1").Return(mat(1), nil)

	svc := NewService(repo, store, new(MockMemberReader))

	_, err := svc.Sell(context.Background(), "prod-1", SellRequest{Quantity: 2})
	assert.ErrorIs(t, err, ErrInsufficientStock)
	store.AssertNotCalled(t, "SellProduct", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSell_InactiveProduct(t *testing.T) {
	repo := new(MockProductRepo)
	p := mat(10)
	p.IsActive = false
	repo.On("GetByID", mock.Anything, "prod-1").Return(p, nil)

	svc := NewService(repo, new(MockSaleStore), new(MockMemberReader))

	_, err := svc.Sell(context.Background(), "prod-1", SellRequest{Quantity: 1})
	assert.ErrorIs(t, err, ErrProductInactive)
}

func TestSell_ZeroQuantity(t *testing.T) {
	svc := NewService(new(MockProductRepo), new(MockSaleStore), new(MockMemberReader))

	_, err := svc.Sell(context.Background(), "prod-1", SellRequest{Quantity: 0})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestSell_DiscountCapped(t *testing.T) {
	repo := new(MockProductRepo)
	repo.On("GetByID", mock.Anything, "prod-1").Return(mat(10), nil)

	svc := NewService(repo, new(MockSaleStore), new(MockMemberReader))

	_, err := svc.Sell(context.Background(), "prod-1", SellRequest{Quantity: 1, Discount: 900})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSell_UnknownMember(t *testing.T) {
	repo := new(MockProductRepo)
	members := new(MockMemberReader)
	repo.On("GetByID", mock.Anything, "prod-1").Return(mat(10), nil)
	members.On("GetByID", mock.Anything, "ghost").Return(nil, nil)

	svc := NewService(repo, new(MockSaleStore), members)

	_, err := svc.Sell(context.Background(), "prod-1", SellRequest{Quantity: 1, MemberID: "ghost"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLowStockReport(t *testing.T) {
	repo := new(MockProductRepo)
	repo.On("List", mock.Anything, true).Return([]*domain.Product{
		mat(10),
		{ID: "prod-2", Name: "Blocks", CurrentStock: 2, LowStockThreshold: 5, IsActive: true},
	}, nil)

	svc := NewService(repo, new(MockSaleStore), new(MockMemberReader))

	low, err := svc.LowStockReport(context.Background())
	assert.NoError(t, err)
	assert.Len(t, low, 1)
	assert.Equal(t, "prod-2", low[0].ID)
}
