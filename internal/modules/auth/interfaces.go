package auth

import (
	"context"

	"yogastudio/internal/domain"
)

// UserRepository defines staff-login data access.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

type jwtService interface {
	GenerateToken(userID, role string) (string, error)
}
