package inventory

import (
	"context"
	"fmt"
	"time"

	"yogastudio/internal/domain"
	"yogastudio/internal/pkg/dateutil"
)

// SaleResult reports a committed sale together with the stock level
// left behind.
type SaleResult struct {
	Product  *domain.Product `json:"product"`
	Invoice  *domain.Invoice `json:"invoice"`
	LowStock bool            `json:"low_stock"`
}

type Service struct {
	products ProductRepository
	store    AtomicStore
	members  MemberReader
	now      func() time.Time
}

func NewService(products ProductRepository, store AtomicStore, members MemberReader) *Service {
	return &Service{products: products, store: store, members: members, now: time.Now}
}

func (s *Service) Create(ctx context.Context, req CreateProductRequest) (*domain.Product, error) {
	now := s.now()
	p := &domain.Product{
		Name:              req.Name,
		SKU:               req.SKU,
		Price:             req.Price,
		CurrentStock:      req.CurrentStock,
		LowStockThreshold: req.LowStockThreshold,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateProductRequest) (*domain.Product, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		p.Name = req.Name
	}
	if req.SKU != "" {
		p.SKU = req.SKU
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ErrValidation
		}
		p.Price = *req.Price
	}
	if req.CurrentStock != nil {
		if *req.CurrentStock < 0 {
			return nil, ErrValidation
		}
		p.CurrentStock = *req.CurrentStock
	}
	if req.LowStockThreshold != nil {
		if *req.LowStockThreshold < 0 {
			return nil, ErrValidation
		}
		p.LowStockThreshold = *req.LowStockThreshold
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	p.UpdatedAt = s.now()

	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, activeOnly bool) ([]*domain.Product, error) {
	return s.products.List(ctx, activeOnly)
}

// Sell decrements stock and raises a product-sale invoice atomically.
// The invoice starts pending; payment is recorded separately.
func (s *Service) Sell(ctx context.Context, productID string, req SellRequest) (*SaleResult, error) {
	if req.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	p, err := s.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !p.IsActive {
		return nil, ErrProductInactive
	}
	if p.CurrentStock < req.Quantity {
		return nil, fmt.Errorf("%w: %d of %d available", ErrInsufficientStock, req.Quantity, p.CurrentStock)
	}

	if req.MemberID != "" {
		m, err := s.members.GetByID(ctx, req.MemberID)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, fmt.Errorf("%w: member %s", ErrValidation, req.MemberID)
		}
	}

	gross := p.Price * float64(req.Quantity)
	if req.Discount < 0 || req.Discount > gross {
		return nil, fmt.Errorf("%w: discount exceeds sale amount", ErrValidation)
	}

	now := s.now()
	inv := &domain.Invoice{
		Kind:     domain.InvoiceProductSale,
		MemberID: req.MemberID,
		Items: []domain.InvoiceItem{{
			Description: p.Name,
			Quantity:    req.Quantity,
			UnitPrice:   p.Price,
			LineTotal:   gross,
		}},
		Amount:      gross,
		Discount:    req.Discount,
		TotalAmount: gross - req.Discount,
		Status:      domain.InvoicePending,
		IssueDate:   dateutil.Truncate(now.UTC()),
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.SellProduct(ctx, productID, req.Quantity, inv); err != nil {
		return nil, err
	}

	p.CurrentStock -= req.Quantity
	return &SaleResult{Product: p, Invoice: inv, LowStock: p.LowStock()}, nil
}

// LowStockReport lists active products at or under their threshold.
func (s *Service) LowStockReport(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.products.List(ctx, true)
	if err != nil {
		return nil, err
	}

	low := make([]*domain.Product, 0)
	for _, p := range products {
		if p.LowStock() {
			low = append(low, p)
		}
	}
	return low, nil
}
