package models

import "errors"

var (
	ErrValidation       = errors.New("validation failed")
	ErrInvalidTimeRange = errors.New("invalid time range")
	ErrDuplicateName    = errors.New("duplicate name")
	ErrNotFound         = errors.New("not found")
	ErrStoreFailure     = errors.New("store failure")
)
