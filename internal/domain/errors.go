package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicatePhone  = errors.New("phone number already exists")
	ErrProviderFailure = errors.New("provider failure")
)
