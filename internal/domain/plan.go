package domain

import "time"

type PlanType string

const (
	PlanMonthly    PlanType = "monthly"
	PlanQuarterly  PlanType = "quarterly"
	PlanHalfYearly PlanType = "half_yearly"
	PlanAnnual     PlanType = "annual"
)

// MembershipPlan defines a purchasable membership: price for a fixed
// number of months. IsActive gates purchasability, not existing
// subscriptions.
type MembershipPlan struct {
	ID             string    `json:"id"`
	Name           string    `json:"name" validate:"required"`
	Type           PlanType  `json:"type"`
	Price          float64   `json:"price" validate:"gte=0"`
	DurationMonths int       `json:"duration_months" validate:"gte=1"`
	Description    string    `json:"description,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
