package slot

import "errors"

var (
	ErrSlotNotFound = errors.New("session slot not found")
	ErrSlotInUse    = errors.New("slot has active bookings")
	ErrInvalidTime  = errors.New("invalid slot time window")
	ErrValidation   = errors.New("validation error")
)
