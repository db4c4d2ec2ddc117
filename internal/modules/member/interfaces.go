package member

import (
	"context"

	"yogastudio/internal/domain"
)

// MemberRepository defines member data access.
type MemberRepository interface {
	Create(ctx context.Context, m *domain.Member) error
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Member, error)
	Update(ctx context.Context, m *domain.Member) error
	List(ctx context.Context, status *domain.MemberStatus, limit, offset int) ([]*domain.Member, int64, error)
	UpdateStatus(ctx context.Context, id string, status domain.MemberStatus) error
}
