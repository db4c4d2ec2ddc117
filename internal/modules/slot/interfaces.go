package slot

import (
	"context"
	"time"

	"yogastudio/internal/domain"
)

// SlotRepository defines session-slot data access.
type SlotRepository interface {
	Create(ctx context.Context, s *domain.SessionSlot) error
	GetByID(ctx context.Context, id string) (*domain.SessionSlot, error)
	Update(ctx context.Context, s *domain.SessionSlot) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, activeOnly bool) ([]*domain.SessionSlot, error)
}

// BookingCounter reports how many non-cancelled subscriptions overlap a
// date range in a slot. Used to block deleting slots that still have
// members assigned.
type BookingCounter interface {
	CountOverlapping(ctx context.Context, slotID string, start, end time.Time) (int, error)
}
