package plan

import "errors"

var (
	ErrPlanNotFound    = errors.New("membership plan not found")
	ErrInvalidPlanType = errors.New("invalid plan type")
	ErrValidation      = errors.New("validation error")
)
