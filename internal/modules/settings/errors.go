package settings

import "errors"

var (
	ErrSettingsMissing  = errors.New("settings have not been initialised")
	ErrTemplateNotFound = errors.New("message template not found")
	ErrBadBackup        = errors.New("backup payload is invalid")
	ErrValidation       = errors.New("validation error")
)
