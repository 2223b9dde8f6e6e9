package model

import "errors"

// Common errors used across the application
var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrInvalidDraft   = errors.New("player draft is missing required fields")
)
