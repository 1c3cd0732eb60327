package screening

import "errors"

var (
	ErrNotFound             = errors.New("screening not found")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrInvalidTimeRange     = errors.New("time start must be before time end")
	ErrInvalidEmployeeCount = errors.New("employee count must be positive")
)
