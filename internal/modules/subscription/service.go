package subscription

import (
	"context"
	"fmt"
	"time"

	"yogastudio/internal/domain"
	"yogastudio/internal/pkg/dateutil"
)

// CapacityReport is the result of a slot occupancy check over a date
// range.
type CapacityReport struct {
	Available       bool `json:"available"`
	ExceptionOnly   bool `json:"exception_only"`
	CurrentBookings int  `json:"current_bookings"`
	NormalCapacity  int  `json:"normal_capacity"`
	TotalCapacity   int  `json:"total_capacity"`
}

// CreateResult bundles the outcome of a subscription purchase.
type CreateResult struct {
	Subscription    *domain.Subscription `json:"subscription"`
	Invoice         *domain.Invoice      `json:"invoice"`
	CapacityWarning string               `json:"capacity_warning,omitempty"`
}

type Service struct {
	subs    SubscriptionRepository
	plans   PlanReader
	slots   SlotReader
	members MemberReader
	store   AtomicStore
	now     func() time.Time
}

func NewService(subs SubscriptionRepository, plans PlanReader, slots SlotReader, members MemberReader, store AtomicStore) *Service {
	return &Service{
		subs:    subs,
		plans:   plans,
		slots:   slots,
		members: members,
		store:   store,
		now:     time.Now,
	}
}

func (s *Service) today() time.Time {
	return dateutil.Truncate(s.now().UTC())
}

// DeriveStatus maps a subscription's date range onto its display status
// relative to today. Cancelled is sticky.
func DeriveStatus(sub *domain.Subscription, today time.Time) domain.SubscriptionStatus {
	if sub.Status == domain.SubscriptionCancelled {
		return domain.SubscriptionCancelled
	}
	switch {
	case sub.StartDate.After(today):
		return domain.SubscriptionScheduled
	case sub.EndDate.Before(today):
		return domain.SubscriptionExpired
	default:
		return domain.SubscriptionActive
	}
}

// CheckSlotCapacity counts overlapping non-cancelled subscriptions in
// the slot against its normal and exception capacity.
func (s *Service) CheckSlotCapacity(ctx context.Context, slotID string, start, end time.Time) (*CapacityReport, error) {
	slot, err := s.slots.GetByID(ctx, slotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}

	count, err := s.subs.CountOverlapping(ctx, slotID, start, end)
	if err != nil {
		return nil, err
	}

	return buildCapacityReport(slot, count), nil
}

func buildCapacityReport(slot *domain.SessionSlot, bookings int) *CapacityReport {
	total := slot.TotalCapacity()
	available := bookings < total
	return &CapacityReport{
		Available:       available,
		ExceptionOnly:   available && bookings >= slot.Capacity,
		CurrentBookings: bookings,
		NormalCapacity:  slot.Capacity,
		TotalCapacity:   total,
	}
}

// CreateWithInvoice validates the purchase, computes the membership
// window and payable amount, and persists subscription + invoice in one
// transaction.
func (s *Service) CreateWithInvoice(ctx context.Context, req CreateSubscriptionRequest) (*CreateResult, error) {
	member, err := s.members.GetByID(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}

	plan, err := s.plans.GetByID(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}
	if !plan.IsActive {
		return nil, ErrPlanInactive
	}

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

	if req.DiscountAmount < 0 {
		return nil, ErrValidation
	}
	if req.DiscountAmount > plan.Price {
		return nil, ErrDiscountTooLarge
	}

	startDate, err := dateutil.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	endDate := dateutil.AddMonths(startDate, plan.DurationMonths)

	count, err := s.subs.CountOverlapping(ctx, slot.ID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	report := buildCapacityReport(slot, count)
	if !report.Available {
		return nil, ErrSlotFull
	}
	warning := ""
	if report.ExceptionOnly {
		warning = fmt.Sprintf("slot %q is at normal capacity (%d); booking uses exception capacity", slot.Name, slot.Capacity)
	}

	payable := plan.Price - req.DiscountAmount
	if payable < 0 {
		payable = 0
	}

	today := s.today()
	sub := &domain.Subscription{
		MemberID:       member.ID,
		PlanID:         plan.ID,
		SlotID:         slot.ID,
		StartDate:      startDate,
		EndDate:        endDate,
		PaymentStatus:  domain.PaymentPending,
		DiscountAmount: req.DiscountAmount,
		DiscountReason: req.DiscountReason,
		PayableAmount:  payable,
		Notes:          req.Notes,
		CreatedAt:      s.now(),
		UpdatedAt:      s.now(),
	}
	sub.Status = DeriveStatus(sub, today)

	// Renewal chain: link to the member's most recent non-cancelled
	// subscription, if any.
	if prev, err := s.mostRecent(ctx, member.ID); err == nil && prev != nil {
		sub.PreviousSubscriptionID = prev.ID
	}

	inv := &domain.Invoice{
		Kind:     domain.InvoiceSubscription,
		MemberID: member.ID,
		Items: []domain.InvoiceItem{{
			Description: fmt.Sprintf("%s (%s to %s)", plan.Name, dateutil.FormatDate(startDate), dateutil.FormatDate(endDate)),
			Quantity:    1,
			UnitPrice:   plan.Price,
			LineTotal:   plan.Price,
		}},
		Amount:      plan.Price,
		Discount:    req.DiscountAmount,
		TotalAmount: payable,
		Status:      domain.InvoicePending,
		IssueDate:   today,
		Notes:       req.DiscountReason,
		CreatedAt:   s.now(),
		UpdatedAt:   s.now(),
	}

	if err := s.store.CreateSubscriptionWithInvoice(ctx, sub, inv); err != nil {
		return nil, err
	}

	return &CreateResult{Subscription: sub, Invoice: inv, CapacityWarning: warning}, nil
}

func (s *Service) mostRecent(ctx context.Context, memberID string) (*domain.Subscription, error) {
	all, err := s.subs.ListByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	var best *domain.Subscription
	for _, sub := range all {
		if sub.IsCancelled() {
			continue
		}
		if best == nil || sub.EndDate.After(best.EndDate) {
			best = sub
		}
	}
	return best, nil
}

// Extend pushes the end date out by the given number of days.
func (s *Service) Extend(ctx context.Context, id string, req ExtendRequest) (*domain.Subscription, error) {
	if req.Days <= 0 {
		return nil, ErrInvalidDays
	}

	sub, err := s.getMutable(ctx, id)
	if err != nil {
		return nil, err
	}

	sub.EndDate = dateutil.AddDays(sub.EndDate, req.Days)
	sub.ExtensionDays += req.Days
	if req.Reason != "" {
		sub.ExtensionReason = req.Reason
	}
	sub.Status = DeriveStatus(sub, s.today())
	sub.UpdatedAt = s.now()

	if err := s.subs.Update(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// SetExtraDays sets the absolute extra-day allowance. The end date is
// recomputed from the pre-extra-days base, so repeating the call with
// the same total is a no-op.
func (s *Service) SetExtraDays(ctx context.Context, id string, req ExtraDaysRequest) (*domain.Subscription, error) {
	if req.TotalDays < 0 {
		return nil, ErrInvalidDays
	}

	sub, err := s.getMutable(ctx, id)
	if err != nil {
		return nil, err
	}

	sub.EndDate = dateutil.AddDays(sub.EndDate, req.TotalDays-sub.ExtraDays)
	sub.ExtraDays = req.TotalDays
	sub.ExtraDaysReason = req.Reason
	sub.Status = DeriveStatus(sub, s.today())
	sub.UpdatedAt = s.now()

	if err := s.subs.Update(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// TransferSlot moves the remainder of a subscription to another slot.
func (s *Service) TransferSlot(ctx context.Context, id string, req TransferRequest) (*domain.Subscription, string, error) {
	sub, err := s.getMutable(ctx, id)
	if err != nil {
		return nil, "", err
	}

	effective, err := dateutil.ParseDate(req.EffectiveDate)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if effective.After(sub.EndDate) {
		return nil, "", ErrTransferAfterEnd
	}

	slot, err := s.slots.GetByID(ctx, req.NewSlotID)
	if err != nil {
		return nil, "", err
	}
	if slot == nil {
		return nil, "", ErrSlotNotFound
	}
	if !slot.IsActive {
		return nil, "", ErrSlotInactive
	}

	count, err := s.subs.CountOverlappingExcluding(ctx, slot.ID, effective, sub.EndDate, sub.ID)
	if err != nil {
		return nil, "", err
	}
	report := buildCapacityReport(slot, count)
	if !report.Available {
		return nil, "", ErrSlotFull
	}
	warning := ""
	if report.ExceptionOnly {
		warning = fmt.Sprintf("slot %q is at normal capacity (%d); transfer uses exception capacity", slot.Name, slot.Capacity)
	}

	sub.SlotID = slot.ID
	if req.Reason != "" {
		note := fmt.Sprintf("transferred to %s effective %s: %s", slot.Name, dateutil.FormatDate(effective), req.Reason)
		if sub.Notes != "" {
			sub.Notes += "\n"
		}
		sub.Notes += note
	}
	sub.UpdatedAt = s.now()

	if err := s.store.UpdateSubscriptionAndAssignment(ctx, sub); err != nil {
		return nil, "", err
	}
	return sub, warning, nil
}

// Cancel terminates the subscription and frees its slot occupancy.
func (s *Service) Cancel(ctx context.Context, id, reason string) (*domain.Subscription, error) {
	sub, err := s.getMutable(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	sub.Status = domain.SubscriptionCancelled
	sub.CancelledAt = &now
	sub.CancellationReason = reason
	sub.UpdatedAt = now

	if err := s.subs.Update(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *Service) getMutable(ctx context.Context, id string) (*domain.Subscription, error) {
	sub, err := s.subs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrSubscriptionNotFound
	}
	if sub.IsCancelled() {
		return nil, ErrAlreadyCancelled
	}
	return sub, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Subscription, error) {
	sub, err := s.subs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrSubscriptionNotFound
	}
	return sub, nil
}

func (s *Service) ListByMember(ctx context.Context, memberID string) ([]*domain.Subscription, error) {
	return s.subs.ListByMember(ctx, memberID)
}

// GetRelevantSubscription selects the subscription the dashboard should
// show for a member: current first, then the nearest scheduled, then
// one expired within the last 30 days, then the most recent of any
// status.
func (s *Service) GetRelevantSubscription(ctx context.Context, memberID string) (*domain.Subscription, error) {
	all, err := s.subs.ListByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}

	today := s.today()

	var current, scheduled, recentExpired, latest *domain.Subscription
	for _, sub := range all {
		if latest == nil || sub.EndDate.After(latest.EndDate) {
			latest = sub
		}
		if sub.IsCancelled() {
			continue
		}
		switch {
		case sub.ContainsDate(today):
			if current == nil || sub.EndDate.After(current.EndDate) {
				current = sub
			}
		case sub.StartDate.After(today):
			if scheduled == nil || sub.StartDate.Before(scheduled.StartDate) {
				scheduled = sub
			}
		case sub.EndDate.Before(today) && dateutil.DaysBetween(sub.EndDate, today) <= 30:
			if recentExpired == nil || sub.EndDate.After(recentExpired.EndDate) {
				recentExpired = sub
			}
		}
	}

	switch {
	case current != nil:
		return current, nil
	case scheduled != nil:
		return scheduled, nil
	case recentExpired != nil:
		return recentExpired, nil
	default:
		return latest, nil
	}
}

// HasPendingRenewal reports whether a member holds a current
// subscription alongside a future scheduled one.
func (s *Service) HasPendingRenewal(ctx context.Context, memberID string) (bool, error) {
	all, err := s.subs.ListByMember(ctx, memberID)
	if err != nil {
		return false, err
	}

	today := s.today()
	hasCurrent, hasFuture := false, false
	for _, sub := range all {
		if sub.IsCancelled() {
			continue
		}
		if sub.ContainsDate(today) {
			hasCurrent = true
		}
		if sub.StartDate.After(today) {
			hasFuture = true
		}
	}
	return hasCurrent && hasFuture, nil
}
