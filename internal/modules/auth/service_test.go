package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"yogastudio/internal/domain"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

type MockJWT struct {
	mock.Mock
}

func (m *MockJWT) GenerateToken(userID, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func adminUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &domain.User{
		ID:           "user-1",
		Email:        "admin@studio.test",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
}

func TestLogin_Success(t *testing.T) {
	repo := new(MockUserRepo)
	jwt := new(MockJWT)
	repo.On("GetByEmail", mock.Anything, "admin@studio.test").Return(adminUser(t, "secret123"), nil)
	jwt.On("GenerateToken", "user-1", "admin").Return("tok-abc", nil)

	svc := NewService(repo, jwt)

	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "Admin@Studio.Test",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "tok-abc", result.Token)
	assert.Empty(t, result.User.PasswordHash)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(MockUserRepo)
	jwt := new(MockJWT)
	repo.On("GetByEmail", mock.Anything, "admin@studio.test").Return(adminUser(t, "secret123"), nil)

	svc := NewService(repo, jwt)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "admin@studio.test",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	jwt.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := new(MockUserRepo)
	repo.On("GetByEmail", mock.Anything, "ghost@studio.test").Return(nil, nil)

	svc := NewService(repo, new(MockJWT))

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@studio.test",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	repo := new(MockUserRepo)
	repo.On("GetByID", mock.Anything, "user-1").Return(adminUser(t, "secret123"), nil)

	svc := NewService(repo, new(MockJWT))

	err := svc.ChangePassword(context.Background(), "user-1", ChangePasswordRequest{
		CurrentPassword: "nope",
		NewPassword:     "newsecret1",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	repo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestChangePassword_Success(t *testing.T) {
	repo := new(MockUserRepo)
	repo.On("GetByID", mock.Anything, "user-1").Return(adminUser(t, "secret123"), nil)
	repo.On("UpdatePassword", mock.Anything, "user-1", mock.MatchedBy(func(hash string) bool {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte("newsecret1")) == nil
	})).Return(nil)

	svc := NewService(repo, new(MockJWT))

	err := svc.ChangePassword(context.Background(), "user-1", ChangePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "newsecret1",
	})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
