package slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"yogastudio/internal/domain"
)

type MockSlotRepo struct {
	mock.Mock
}

func (m *MockSlotRepo) Create(ctx context.Context, s *domain.SessionSlot) error {
	args := m.Called(ctx, s)
	if s.ID == "" {
		s.ID = "slot-1"
	}
	return args.Error(0)
}

func (m *MockSlotRepo) GetByID(ctx context.Context, id string) (*domain.SessionSlot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionSlot), args.Error(1)
}

func (m *MockSlotRepo) Update(ctx context.Context, s *domain.SessionSlot) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSlotRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSlotRepo) List(ctx context.Context, activeOnly bool) ([]*domain.SessionSlot, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]*domain.SessionSlot), args.Error(1)
}

type MockBookingCounter struct {
	mock.Mock
}

func (m *MockBookingCounter) CountOverlapping(ctx context.Context, slotID string, start, end time.Time) (int, error) {
	args := m.Called(ctx, slotID, start, end)
	return args.Int(0), args.Error(1)
}

func TestCreateSlot_Defaults(t *testing.T) {
	repo := new(MockSlotRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, new(MockBookingCounter))

	slot, err := svc.Create(context.Background(), CreateSlotRequest{
		Name:              "Morning Batch",
		StartTime:         "06:30",
		EndTime:           "07:30",
		Capacity:          10,
		ExceptionCapacity: 2,
	})

	assert.NoError(t, err)
	assert.True(t, slot.IsActive)
	assert.Equal(t, 12, slot.TotalCapacity())
}

func TestCreateSlot_EndBeforeStart(t *testing.T) {
	svc := NewService(new(MockSlotRepo), new(MockBookingCounter))

	_, err := svc.Create(context.Background(), CreateSlotRequest{
		Name:      "Backwards",
		StartTime: "08:00",
		EndTime:   "07:00",
		Capacity:  10,
	})
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestCreateSlot_BadTimeFormat(t *testing.T) {
	svc := NewService(new(MockSlotRepo), new(MockBookingCounter))

	_, err := svc.Create(context.Background(), CreateSlotRequest{
		Name:      "Odd",
		StartTime: "6.30am",
		EndTime:   "07:30",
		Capacity:  10,
	})
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestUpdateSlot_Deactivate(t *testing.T) {
	repo := new(MockSlotRepo)
	repo.On("GetByID", mock.Anything, "slot-1").Return(&domain.SessionSlot{
		ID: "slot-1", Name: "Morning Batch", StartTime: "06:30", EndTime: "07:30",
		Capacity: 10, IsActive: true,
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, new(MockBookingCounter))

	inactive := false
	slot, err := svc.Update(context.Background(), "slot-1", UpdateSlotRequest{IsActive: &inactive})

	assert.NoError(t, err)
	assert.False(t, slot.IsActive)
}

func TestDeleteSlot_BlockedWhenBooked(t *testing.T) {
	repo := new(MockSlotRepo)
	counter := new(MockBookingCounter)
	repo.On("GetByID", mock.Anything, "slot-1").Return(&domain.SessionSlot{ID: "slot-1"}, nil)
	counter.On("CountOverlapping", mock.Anything, "slot-1", mock.Anything, mock.Anything).Return(3, nil)

	svc := NewService(repo, counter)

	err := svc.Delete(context.Background(), "slot-1")
	assert.ErrorIs(t, err, ErrSlotInUse)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteSlot_EmptySlot(t *testing.T) {
	repo := new(MockSlotRepo)
	counter := new(MockBookingCounter)
	repo.On("GetByID", mock.Anything, "slot-1").Return(&domain.SessionSlot{ID: "slot-1"}, nil)
	counter.On("CountOverlapping", mock.Anything, "slot-1", mock.Anything, mock.Anything).Return(0, nil)
	repo.On("Delete", mock.Anything, "slot-1").Return(nil)

	svc := NewService(repo, counter)

	assert.NoError(t, svc.Delete(context.Background(), "slot-1"))
	repo.AssertExpectations(t)
}
