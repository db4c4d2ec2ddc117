package trial

import (
	"context"
	"fmt"
	"time"

	"yogastudio/internal/domain"
	"yogastudio/internal/pkg/dateutil"
)

type Service struct {
	trials TrialRepository
	slots  SlotReader
	leads  LeadUpdater
	now    func() time.Time
}

func NewService(trials TrialRepository, slots SlotReader, leads LeadUpdater) *Service {
	return &Service{trials: trials, slots: slots, leads: leads, now: time.Now}
}

// Create books a single class date in a slot. Trials do not count
// toward subscription capacity, so no seat check happens here.
func (s *Service) Create(ctx context.Context, req CreateTrialRequest) (*domain.TrialBooking, error) {
	slot, err := s.slots.GetByID(ctx, req.SlotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}
	if !slot.IsActive {
		return nil, ErrSlotInactive
	}

	date, err := dateutil.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if req.LeadID != "" {
		if _, err := s.leads.GetByID(ctx, req.LeadID); err != nil {
			return nil, err
		}
	}

	now := s.now()
	t := &domain.TrialBooking{
		SlotID:    req.SlotID,
		Date:      date,
		Name:      req.Name,
		Phone:     req.Phone,
		LeadID:    req.LeadID,
		Status:    domain.TrialBooked,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.trials.Create(ctx, t); err != nil {
		return nil, err
	}

	if t.LeadID != "" {
		if _, err := s.leads.UpdateStatus(ctx, t.LeadID, domain.LeadTrialScheduled, ""); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.TrialBooking, error) {
	t, err := s.trials.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTrialNotFound
	}
	return t, nil
}

func (s *Service) List(ctx context.Context, slotID string, date *time.Time) ([]*domain.TrialBooking, error) {
	return s.trials.List(ctx, slotID, date)
}

func (s *Service) Cancel(ctx context.Context, id string) (*domain.TrialBooking, error) {
	return s.transition(ctx, id, domain.TrialCancelled, "")
}

// MarkExecuted records that the prospect attended; the linked lead
// moves to trial_completed.
func (s *Service) MarkExecuted(ctx context.Context, id string) (*domain.TrialBooking, error) {
	return s.transition(ctx, id, domain.TrialExecuted, string(domain.LeadTrialDone))
}

func (s *Service) transition(ctx context.Context, id string, to domain.TrialStatus, leadStatus string) (*domain.TrialBooking, error) {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Status != domain.TrialBooked {
		return nil, ErrNotBooked
	}

	if err := s.trials.UpdateStatus(ctx, id, to); err != nil {
		return nil, err
	}
	t.Status = to

	if t.LeadID != "" && leadStatus != "" {
		if _, err := s.leads.UpdateStatus(ctx, t.LeadID, domain.LeadStatus(leadStatus), ""); err != nil {
			return nil, err
		}
	}
	return t, nil
}
