package domain

import "time"

type TrialStatus string

const (
	TrialBooked    TrialStatus = "booked"
	TrialExecuted  TrialStatus = "executed"
	TrialCancelled TrialStatus = "cancelled"
)

// TrialBooking reserves a single class date in a slot for a prospect.
// Trials do not count against slot subscription capacity.
type TrialBooking struct {
	ID        string      `json:"id"`
	SlotID    string      `json:"slot_id"`
	Date      time.Time   `json:"date"`
	Name      string      `json:"name" validate:"required"`
	Phone     string      `json:"phone" validate:"required"`
	LeadID    string      `json:"lead_id,omitempty"`
	Status    TrialStatus `json:"status"`
	Notes     string      `json:"notes,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
