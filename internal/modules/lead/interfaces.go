package lead

import (
	"context"

	"yogastudio/internal/domain"
	"yogastudio/internal/modules/member"
	"yogastudio/internal/modules/subscription"
)

// LeadRepository defines lead data access.
type LeadRepository interface {
	Create(ctx context.Context, l *domain.Lead) error
	GetByID(ctx context.Context, id string) (*domain.Lead, error)
	Update(ctx context.Context, l *domain.Lead) error
	List(ctx context.Context, status *domain.LeadStatus, limit, offset int) ([]*domain.Lead, int64, error)
	UpdateStatus(ctx context.Context, id string, status domain.LeadStatus, notes string) error
	MarkConverted(ctx context.Context, id, memberID string) error
	CountByStatus(ctx context.Context) (map[domain.LeadStatus]int, error)
}

// MemberCreator registers the converted prospect as a member.
type MemberCreator interface {
	Create(ctx context.Context, req member.CreateMemberRequest) (*domain.Member, error)
	SetStatus(ctx context.Context, id string, status domain.MemberStatus) (*domain.Member, error)
}

// SubscriptionCreator optionally opens the first subscription during
// conversion.
type SubscriptionCreator interface {
	CreateWithInvoice(ctx context.Context, req subscription.CreateSubscriptionRequest) (*subscription.CreateResult, error)
}
