package models

import (
	"errors"
	"fmt"
)

// Business-logic outcomes surfaced with a precise cause. Anything else
// coming out of a repository is treated as transient and propagates as-is.
var (
	ErrPatientNotFound   = errors.New("patient not found")
	ErrAlertNotFound     = errors.New("alert not found")
	ErrAlertAlreadyAcked = errors.New("alert already acknowledged")
)

// ValidationError marks malformed or out-of-range input, rejected before
// the coordinator is invoked.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
