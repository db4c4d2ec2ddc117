package inventory

import (
	"context"

	"yogastudio/internal/domain"
)

// ProductRepository defines product data access.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	List(ctx context.Context, activeOnly bool) ([]*domain.Product, error)
}

// AtomicStore commits a sale: stock decrement plus invoice in one
// transaction.
type AtomicStore interface {
	SellProduct(ctx context.Context, productID string, quantity int, inv *domain.Invoice) error
}

// MemberReader resolves the optional buyer on a sale.
type MemberReader interface {
	GetByID(ctx context.Context, id string) (*domain.Member, error)
}
