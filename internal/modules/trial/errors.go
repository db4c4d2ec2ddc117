package trial

import "errors"

var (
	ErrTrialNotFound = errors.New("trial booking not found")
	ErrSlotNotFound  = errors.New("session slot not found")
	ErrSlotInactive  = errors.New("session slot is inactive")
	ErrNotBooked     = errors.New("trial is no longer in booked state")
	ErrValidation    = errors.New("validation error")
)
