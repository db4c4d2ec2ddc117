package plan

import (
	"context"

	"yogastudio/internal/domain"
)

// PlanRepository defines membership-plan data access.
type PlanRepository interface {
	Create(ctx context.Context, p *domain.MembershipPlan) error
	GetByID(ctx context.Context, id string) (*domain.MembershipPlan, error)
	Update(ctx context.Context, p *domain.MembershipPlan) error
	SetActive(ctx context.Context, id string, active bool) error
	List(ctx context.Context, activeOnly bool) ([]*domain.MembershipPlan, error)
}
