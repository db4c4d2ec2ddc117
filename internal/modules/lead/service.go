package lead

import (
	"context"
	"fmt"
	"time"

	"yogastudio/internal/domain"
	"yogastudio/internal/modules/member"
	"yogastudio/internal/modules/subscription"
	"yogastudio/internal/pkg/dateutil"
)

var validStatuses = map[domain.LeadStatus]bool{
	domain.LeadNew:            true,
	domain.LeadContacted:      true,
	domain.LeadFollowUp:       true,
	domain.LeadTrialScheduled: true,
	domain.LeadTrialDone:      true,
	domain.LeadLost:           true,
}

// ConvertResult is the member created from a lead plus the optional
// first subscription opened alongside.
type ConvertResult struct {
	Lead         *domain.Lead               `json:"lead"`
	Member       *domain.Member             `json:"member"`
	Subscription *subscription.CreateResult `json:"subscription,omitempty"`
}

type FunnelStats struct {
	Counts         map[domain.LeadStatus]int `json:"counts"`
	Total          int                       `json:"total"`
	ConversionRate float64                   `json:"conversion_rate"`
}

type Service struct {
	leads   LeadRepository
	members MemberCreator
	subs    SubscriptionCreator
	now     func() time.Time
}

func NewService(leads LeadRepository, members MemberCreator, subs SubscriptionCreator) *Service {
	return &Service{leads: leads, members: members, subs: subs, now: time.Now}
}

func (s *Service) Create(ctx context.Context, req CreateLeadRequest) (*domain.Lead, error) {
	followUp, err := parseOptionalDate(req.FollowUpDate)
	if err != nil {
		return nil, err
	}

	now := s.now()
	l := &domain.Lead{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Source:       req.Source,
		Status:       domain.LeadNew,
		Notes:        req.Notes,
		FollowUpDate: followUp,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.leads.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	l, err := s.leads.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrLeadNotFound
	}
	return l, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateLeadRequest) (*domain.Lead, error) {
	l, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		l.Name = req.Name
	}
	if req.Phone != "" {
		l.Phone = req.Phone
	}
	if req.Email != "" {
		l.Email = req.Email
	}
	if req.Source != "" {
		l.Source = req.Source
	}
	if req.Notes != "" {
		l.Notes = req.Notes
	}
	if req.FollowUpDate != "" {
		followUp, err := parseOptionalDate(req.FollowUpDate)
		if err != nil {
			return nil, err
		}
		l.FollowUpDate = followUp
	}
	l.UpdatedAt = s.now()

	if err := s.leads.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) List(ctx context.Context, status *domain.LeadStatus, limit, offset int) ([]*domain.Lead, int64, error) {
	return s.leads.List(ctx, status, limit, offset)
}

// UpdateStatus moves a lead through the funnel. Conversion is not a
// plain status change; it goes through Convert.
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.LeadStatus, notes string) (*domain.Lead, error) {
	if !validStatuses[status] {
		return nil, ErrInvalidStatus
	}

	l, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.IsConverted() {
		return nil, ErrAlreadyConverted
	}

	if err := s.leads.UpdateStatus(ctx, id, status, notes); err != nil {
		return nil, err
	}
	l.Status = status
	if notes != "" {
		l.Notes = notes
	}
	return l, nil
}

// Convert registers the lead as an active member and, when a plan and
// slot are supplied, opens the first subscription with its invoice.
func (s *Service) Convert(ctx context.Context, id string, req ConvertLeadRequest) (*ConvertResult, error) {
	l, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.IsConverted() {
		return nil, ErrAlreadyConverted
	}
	if l.Status == domain.LeadLost {
		return nil, ErrLeadLost
	}

	m, err := s.members.Create(ctx, member.CreateMemberRequest{
		Name:  l.Name,
		Phone: l.Phone,
		Email: l.Email,
		Notes: l.Notes,
	})
	if err != nil {
		return nil, err
	}
	m, err = s.members.SetStatus(ctx, m.ID, domain.MemberActive)
	if err != nil {
		return nil, err
	}

	if err := s.leads.MarkConverted(ctx, l.ID, m.ID); err != nil {
		return nil, err
	}
	now := s.now()
	l.Status = domain.LeadConverted
	l.ConvertedMemberID = m.ID
	l.ConvertedAt = &now

	result := &ConvertResult{Lead: l, Member: m}
	if req.PlanID != "" && req.SlotID != "" {
		created, err := s.subs.CreateWithInvoice(ctx, subscription.CreateSubscriptionRequest{
			MemberID:       m.ID,
			PlanID:         req.PlanID,
			SlotID:         req.SlotID,
			StartDate:      req.StartDate,
			DiscountAmount: req.DiscountAmount,
			DiscountReason: req.DiscountReason,
		})
		if err != nil {
			return nil, err
		}
		result.Subscription = created
	}
	return result, nil
}

// Stats summarises the funnel: counts per status and the share of
// converted leads among all closed ones.
func (s *Service) Stats(ctx context.Context) (*FunnelStats, error) {
	counts, err := s.leads.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	closed := counts[domain.LeadConverted] + counts[domain.LeadLost]
	rate := 0.0
	if closed > 0 {
		rate = float64(counts[domain.LeadConverted]) / float64(closed)
	}
	return &FunnelStats{Counts: counts, Total: total, ConversionRate: rate}, nil
}

func parseOptionalDate(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	d, err := dateutil.ParseDate(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return &d, nil
}
