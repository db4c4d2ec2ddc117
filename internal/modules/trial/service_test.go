package trial

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"yogastudio/internal/domain"
)

type MockTrialRepo struct {
	mock.Mock
}

func (m *MockTrialRepo) Create(ctx context.Context, t *domain.TrialBooking) error {
	args := m.Called(ctx, t)
	if t.ID == "" {
		t.ID = "trial-1"
	}
	return args.Error(0)
}

func (m *MockTrialRepo) GetByID(ctx context.Context, id string) (*domain.TrialBooking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBooking), args.Error(1)
}

func (m *MockTrialRepo) UpdateStatus(ctx context.Context, id string, status domain.TrialStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockTrialRepo) List(ctx context.Context, slotID string, date *time.Time) ([]*domain.TrialBooking, error) {
	args := m.Called(ctx, slotID, date)
	return args.Get(0).([]*domain.TrialBooking), args.Error(1)
}

type MockSlotReader struct {
	mock.Mock
}

func (m *MockSlotReader) GetByID(ctx context.Context, id string) (*domain.SessionSlot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionSlot), args.Error(1)
}

type MockLeadUpdater struct {
	mock.Mock
}

func (m *MockLeadUpdater) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *MockLeadUpdater) UpdateStatus(ctx context.Context, id string, status domain.LeadStatus, notes string) (*domain.Lead, error) {
	args := m.Called(ctx, id, status, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func activeSlot() *domain.SessionSlot {
	return &domain.SessionSlot{ID: "slot-1", Name: "Morning Batch", IsActive: true}
}

func TestCreateTrial_Booked(t *testing.T) {
	trials := new(MockTrialRepo)
	slots := new(MockSlotReader)
	slots.On("GetByID", mock.Anything, "slot-1").Return(activeSlot(), nil)
	trials.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(trials, slots, new(MockLeadUpdater))

	tb, err := svc.Create(context.Background(), CreateTrialRequest{
		SlotID: "slot-1",
		Date:   "2025-03-15",
		Name:   "Ravi",
		Phone:  "9899887766",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.TrialBooked, tb.Status)
	assert.Equal(t, "2025-03-15", tb.Date.Format("2006-01-02"))
}

func TestCreateTrial_MovesLinkedLead(t *testing.T) {
	trials := new(MockTrialRepo)
	slots := new(MockSlotReader)
	leads := new(MockLeadUpdater)
	slots.On("GetByID", mock.Anything, "slot-1").Return(activeSlot(), nil)
	leads.On("GetByID", mock.Anything, "lead-1").Return(&domain.Lead{ID: "lead-1", Status: domain.LeadContacted}, nil)
	trials.On("Create", mock.Anything, mock.Anything).Return(nil)
	leads.On("UpdateStatus", mock.Anything, "lead-1", domain.LeadTrialScheduled, "").
		Return(&domain.Lead{ID: "lead-1", Status: domain.LeadTrialScheduled}, nil)

	svc := NewService(trials, slots, leads)

	_, err := svc.Create(context.Background(), CreateTrialRequest{
		SlotID: "slot-1",
		Date:   "2025-03-15",
		Name:   "Ravi",
		Phone:  "9899887766",
		LeadID: "lead-1",
	})

	assert.NoError(t, err)
	leads.AssertExpectations(t)
}

func TestCreateTrial_InactiveSlot(t *testing.T) {
	slots := new(MockSlotReader)
	slot := activeSlot()
	slot.IsActive = false
	slots.On("GetByID", mock.Anything, "slot-1").Return(slot, nil)

	svc := NewService(new(MockTrialRepo), slots, new(MockLeadUpdater))

	_, err := svc.Create(context.Background(), CreateTrialRequest{
		SlotID: "slot-1", Date: "2025-03-15", Name: "Ravi", Phone: "9899887766",
	})
	assert.ErrorIs(t, err, ErrSlotInactive)
}

func TestMarkExecuted_FromBookedOnly(t *testing.T) {
	trials := new(MockTrialRepo)
	trials.On("GetByID", mock.Anything, "trial-1").
		Return(&domain.TrialBooking{ID: "trial-1", Status: domain.TrialCancelled}, nil)

	svc := NewService(trials, new(MockSlotReader), new(MockLeadUpdater))

	_, err := svc.MarkExecuted(context.Background(), "trial-1")
	assert.ErrorIs(t, err, ErrNotBooked)
	trials.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestMarkExecuted_CompletesLead(t *testing.T) {
	trials := new(MockTrialRepo)
	leads := new(MockLeadUpdater)
	trials.On("GetByID", mock.Anything, "trial-1").
		Return(&domain.TrialBooking{ID: "trial-1", Status: domain.TrialBooked, LeadID: "lead-1"}, nil)
	trials.On("UpdateStatus", mock.Anything, "trial-1", domain.TrialExecuted).Return(nil)
	leads.On("UpdateStatus", mock.Anything, "lead-1", domain.LeadTrialDone, "").
		Return(&domain.Lead{ID: "lead-1", Status: domain.LeadTrialDone}, nil)

	svc := NewService(trials, new(MockSlotReader), leads)

	tb, err := svc.MarkExecuted(context.Background(), "trial-1")
	assert.NoError(t, err)
	assert.Equal(t, domain.TrialExecuted, tb.Status)
	leads.AssertExpectations(t)
}

func TestCancel_LeavesLeadAlone(t *testing.T) {
	trials := new(MockTrialRepo)
	leads := new(MockLeadUpdater)
	trials.On("GetByID", mock.Anything, "trial-1").
		Return(&domain.TrialBooking{ID: "trial-1", Status: domain.TrialBooked, LeadID: "lead-1"}, nil)
	trials.On("UpdateStatus", mock.Anything, "trial-1", domain.TrialCancelled).Return(nil)

	svc := NewService(trials, new(MockSlotReader), leads)

	tb, err := svc.Cancel(context.Background(), "trial-1")
	assert.NoError(t, err)
	assert.Equal(t, domain.TrialCancelled, tb.Status)
	leads.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
