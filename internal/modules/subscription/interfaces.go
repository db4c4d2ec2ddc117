package subscription

import (
	"context"
	"time"

	"yogastudio/internal/domain"
)

// SubscriptionRepository defines subscription data access.
type SubscriptionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Subscription, error)
	Update(ctx context.Context, s *domain.Subscription) error
	ListByMember(ctx context.Context, memberID string) ([]*domain.Subscription, error)
	CountOverlapping(ctx context.Context, slotID string, start, end time.Time) (int, error)
	CountOverlappingExcluding(ctx context.Context, slotID string, start, end time.Time, excludeID string) (int, error)
}

// PlanReader resolves membership plans.
type PlanReader interface {
	GetByID(ctx context.Context, id string) (*domain.MembershipPlan, error)
}

// SlotReader resolves session slots.
type SlotReader interface {
	GetByID(ctx context.Context, id string) (*domain.SessionSlot, error)
}

// MemberReader resolves members.
type MemberReader interface {
	GetByID(ctx context.Context, id string) (*domain.Member, error)
}

// AtomicStore carries the mutations that must commit together.
type AtomicStore interface {
	CreateSubscriptionWithInvoice(ctx context.Context, sub *domain.Subscription, inv *domain.Invoice) error
	UpdateSubscriptionAndAssignment(ctx context.Context, sub *domain.Subscription) error
}
