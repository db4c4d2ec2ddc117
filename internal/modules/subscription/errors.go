package subscription

import "errors"

var (
	ErrMemberNotFound       = errors.New("member not found")
	ErrPlanNotFound         = errors.New("membership plan not found")
	ErrPlanInactive         = errors.New("membership plan is not active")
	ErrSlotNotFound         = errors.New("session slot not found")
	ErrSlotInactive         = errors.New("session slot is not active")
	ErrSlotFull             = errors.New("session slot is fully booked for the requested period")
	ErrDiscountTooLarge     = errors.New("discount exceeds plan price")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrAlreadyCancelled     = errors.New("subscription is already cancelled")
	ErrInvalidDays          = errors.New("day count must not be negative")
	ErrTransferAfterEnd     = errors.New("transfer effective date is after the subscription end date")
	ErrValidation           = errors.New("validation error")
)
