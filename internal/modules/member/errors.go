package member

import "errors"

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrPhoneExists    = errors.New("a member with this phone number already exists")
	ErrInvalidStatus  = errors.New("invalid member status")
	ErrValidation     = errors.New("validation error")
)
