package slot

import (
	"context"
	"time"

	"yogastudio/internal/domain"
	"yogastudio/internal/pkg/dateutil"
)

type Service struct {
	slots    SlotRepository
	bookings BookingCounter
	now      func() time.Time
}

func NewService(slots SlotRepository, bookings BookingCounter) *Service {
	return &Service{slots: slots, bookings: bookings, now: time.Now}
}

func (s *Service) Create(ctx context.Context, req CreateSlotRequest) (*domain.SessionSlot, error) {
	if err := validateWindow(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	now := s.now()
	slot := &domain.SessionSlot{
		Name:              req.Name,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		Capacity:          req.Capacity,
		ExceptionCapacity: req.ExceptionCapacity,
		IsActive:          true,
		Notes:             req.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.slots.Create(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.SessionSlot, error) {
	slot, err := s.slots.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}
	return slot, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateSlotRequest) (*domain.SessionSlot, error) {
	slot, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		slot.Name = req.Name
	}
	if req.StartTime != "" {
		slot.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		slot.EndTime = req.EndTime
	}
	if err := validateWindow(slot.StartTime, slot.EndTime); err != nil {
		return nil, err
	}
	if req.Capacity != nil {
		if *req.Capacity < 1 {
			return nil, ErrValidation
		}
		slot.Capacity = *req.Capacity
	}
	if req.ExceptionCapacity != nil {
		if *req.ExceptionCapacity < 0 {
			return nil, ErrValidation
		}
		slot.ExceptionCapacity = *req.ExceptionCapacity
	}
	if req.IsActive != nil {
		slot.IsActive = *req.IsActive
	}
	if req.Notes != "" {
		slot.Notes = req.Notes
	}
	slot.UpdatedAt = s.now()

	if err := s.slots.Update(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *Service) List(ctx context.Context, activeOnly bool) ([]*domain.SessionSlot, error) {
	return s.slots.List(ctx, activeOnly)
}

// Delete removes a slot that has no current or future bookings. Slots
// with members assigned can only be deactivated.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	today := dateutil.Truncate(s.now().UTC())
	horizon := dateutil.AddDays(today, 3650)
	booked, err := s.bookings.CountOverlapping(ctx, id, today, horizon)
	if err != nil {
		return err
	}
	if booked > 0 {
		return ErrSlotInUse
	}
	return s.slots.Delete(ctx, id)
}

// validateWindow checks the "HH:MM" pair and that the slot ends after
// it starts.
func validateWindow(start, end string) error {
	st, err := time.Parse("15:04", start)
	if err != nil {
		return ErrInvalidTime
	}
	et, err := time.Parse("15:04", end)
	if err != nil {
		return ErrInvalidTime
	}
	if !et.After(st) {
		return ErrInvalidTime
	}
	return nil
}
