package domain

import "errors"

var (
	ErrFeatureNotFound       = errors.New("feature not found")
	ErrFeatureAlreadyEnabled = errors.New("feature already enabled")
)
