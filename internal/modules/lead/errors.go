package lead

import "errors"

var (
	ErrLeadNotFound     = errors.New("lead not found")
	ErrAlreadyConverted = errors.New("lead is already converted")
	ErrLeadLost         = errors.New("lost leads cannot be converted")
	ErrInvalidStatus    = errors.New("invalid lead status")
	ErrValidation       = errors.New("validation error")
)
