package domain

import "time"

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionScheduled SubscriptionStatus = "scheduled"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

// Subscription ties one member to one plan and one slot for the date
// range [StartDate, EndDate]. EndDate always equals
// StartDate + plan duration + ExtensionDays + ExtraDays.
type Subscription struct {
	ID                     string             `json:"id"`
	MemberID               string             `json:"member_id"`
	PlanID                 string             `json:"plan_id"`
	SlotID                 string             `json:"slot_id"`
	StartDate              time.Time          `json:"start_date"`
	EndDate                time.Time          `json:"end_date"`
	Status                 SubscriptionStatus `json:"status"`
	PaymentStatus          PaymentStatus      `json:"payment_status"`
	DiscountAmount         float64            `json:"discount_amount"`
	DiscountReason         string             `json:"discount_reason,omitempty"`
	PayableAmount          float64            `json:"payable_amount"`
	ExtensionDays          int                `json:"extension_days"`
	ExtensionReason        string             `json:"extension_reason,omitempty"`
	ExtraDays              int                `json:"extra_days"`
	ExtraDaysReason        string             `json:"extra_days_reason,omitempty"`
	PreviousSubscriptionID string             `json:"previous_subscription_id,omitempty"`
	InvoiceID              string             `json:"invoice_id,omitempty"`
	CancelledAt            *time.Time         `json:"cancelled_at,omitempty"`
	CancellationReason     string             `json:"cancellation_reason,omitempty"`
	Notes                  string             `json:"notes,omitempty"`
	CreatedAt              time.Time          `json:"created_at"`
	UpdatedAt              time.Time          `json:"updated_at"`
}

func (s *Subscription) IsCancelled() bool {
	return s.Status == SubscriptionCancelled
}

// ContainsDate reports whether day falls inside the subscription's
// date range, endpoints included. day is expected at midnight UTC.
func (s *Subscription) ContainsDate(day time.Time) bool {
	return !day.Before(s.StartDate) && !day.After(s.EndDate)
}
