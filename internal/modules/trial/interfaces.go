package trial

import (
	"context"
	"time"

	"yogastudio/internal/domain"
)

// TrialRepository defines trial-booking data access.
type TrialRepository interface {
	Create(ctx context.Context, t *domain.TrialBooking) error
	GetByID(ctx context.Context, id string) (*domain.TrialBooking, error)
	UpdateStatus(ctx context.Context, id string, status domain.TrialStatus) error
	List(ctx context.Context, slotID string, date *time.Time) ([]*domain.TrialBooking, error)
}

// SlotReader validates the slot a trial is booked into.
type SlotReader interface {
	GetByID(ctx context.Context, id string) (*domain.SessionSlot, error)
}

// LeadUpdater moves the linked lead along the funnel as the trial
// progresses.
type LeadUpdater interface {
	GetByID(ctx context.Context, id string) (*domain.Lead, error)
	UpdateStatus(ctx context.Context, id string, status domain.LeadStatus, notes string) (*domain.Lead, error)
}
