package plan

import (
	"context"
	"time"

	"yogastudio/internal/domain"
)

var planMonths = map[domain.PlanType]int{
	domain.PlanMonthly:    1,
	domain.PlanQuarterly:  3,
	domain.PlanHalfYearly: 6,
	domain.PlanAnnual:     12,
}

type Service struct {
	plans PlanRepository
	now   func() time.Time
}

func NewService(plans PlanRepository) *Service {
	return &Service{plans: plans, now: time.Now}
}

func (s *Service) Create(ctx context.Context, req CreatePlanRequest) (*domain.MembershipPlan, error) {
	t := domain.PlanType(req.Type)
	if _, ok := planMonths[t]; !ok {
		return nil, ErrInvalidPlanType
	}

	now := s.now()
	p := &domain.MembershipPlan{
		Name:           req.Name,
		Type:           t,
		Price:          req.Price,
		DurationMonths: req.DurationMonths,
		Description:    req.Description,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.plans.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.MembershipPlan, error) {
	p, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPlanNotFound
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdatePlanRequest) (*domain.MembershipPlan, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		p.Name = req.Name
	}
	if req.Type != "" {
		t := domain.PlanType(req.Type)
		if _, ok := planMonths[t]; !ok {
			return nil, ErrInvalidPlanType
		}
		p.Type = t
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ErrValidation
		}
		p.Price = *req.Price
	}
	if req.DurationMonths != nil {
		if *req.DurationMonths < 1 {
			return nil, ErrValidation
		}
		p.DurationMonths = *req.DurationMonths
	}
	if req.Description != "" {
		p.Description = req.Description
	}
	p.UpdatedAt = s.now()

	if err := s.plans.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, activeOnly bool) ([]*domain.MembershipPlan, error) {
	return s.plans.List(ctx, activeOnly)
}

// SetActive toggles purchasability. Plans are never deleted so that
// historical subscriptions keep their reference.
func (s *Service) SetActive(ctx context.Context, id string, active bool) (*domain.MembershipPlan, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.plans.SetActive(ctx, id, active); err != nil {
		return nil, err
	}
	p.IsActive = active
	return p, nil
}
