package member

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"yogastudio/internal/domain"
)

type MockMemberRepo struct {
	mock.Mock
}

func (m *MockMemberRepo) Create(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	if member.ID == "" {
		member.ID = "mem-999"
	}
	return args.Error(0)
}

func (m *MockMemberRepo) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepo) GetByPhone(ctx context.Context, phone string) (*domain.Member, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepo) Update(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepo) List(ctx context.Context, status *domain.MemberStatus, limit, offset int) ([]*domain.Member, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	return args.Get(0).([]*domain.Member), args.Get(1).(int64), args.Error(2)
}

func (m *MockMemberRepo) UpdateStatus(ctx context.Context, id string, status domain.MemberStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func TestCreateMember_Success(t *testing.T) {
	repo := new(MockMemberRepo)
	repo.On("GetByPhone", mock.Anything, "9876543210").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo)

	m, err := svc.Create(context.Background(), CreateMemberRequest{
		Name:          "Asha",
		Phone:         "9876543210",
		ConsentSigned: true,
	})

	assert.NoError(t, err)
	assert.Equal(t, "mem-999", m.ID)
	assert.Equal(t, domain.MemberPending, m.Status)
	assert.True(t, m.ConsentSigned)
	assert.False(t, m.JoinDate.IsZero())
}

func TestCreateMember_DuplicatePhone(t *testing.T) {
	repo := new(MockMemberRepo)
	repo.On("GetByPhone", mock.Anything, "9876543210").Return(&domain.Member{ID: "mem-1"}, nil)

	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateMemberRequest{Name: "Asha", Phone: "9876543210"})
	assert.ErrorIs(t, err, ErrPhoneExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSetStatus_RejectsUnknown(t *testing.T) {
	svc := NewService(new(MockMemberRepo))

	_, err := svc.SetStatus(context.Background(), "mem-1", domain.MemberStatus("deleted"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestDeactivate_SetsInactive(t *testing.T) {
	repo := new(MockMemberRepo)
	repo.On("GetByID", mock.Anything, "mem-1").Return(&domain.Member{ID: "mem-1", Status: domain.MemberActive}, nil)
	repo.On("UpdateStatus", mock.Anything, "mem-1", domain.MemberInactive).Return(nil)

	svc := NewService(repo)

	m, err := svc.Deactivate(context.Background(), "mem-1")
	assert.NoError(t, err)
	assert.Equal(t, domain.MemberInactive, m.Status)
	repo.AssertExpectations(t)
}
