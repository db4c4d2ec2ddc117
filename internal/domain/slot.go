package domain

import "time"

// SessionSlot is a recurring time-of-day class window with a normal
// capacity and an overflow ("exception") allowance on top of it.
type SessionSlot struct {
	ID                string    `json:"id"`
	Name              string    `json:"name" validate:"required"`
	StartTime         string    `json:"start_time" validate:"required"` // "06:30"
	EndTime           string    `json:"end_time" validate:"required"`   // "07:30"
	Capacity          int       `json:"capacity" validate:"gte=0"`
	ExceptionCapacity int       `json:"exception_capacity" validate:"gte=0"`
	IsActive          bool      `json:"is_active"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TotalCapacity is the hard booking ceiling for the slot.
func (s *SessionSlot) TotalCapacity() int {
	return s.Capacity + s.ExceptionCapacity
}
