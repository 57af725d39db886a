package services

import "fmt"

// Service operations fail with one of three error kinds. Controllers map
// them to HTTP statuses with errors.As; anything else is an internal error.

// ValidationError means the input itself is malformed or missing.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// NotFoundError means a referenced id does not resolve to an existing row.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ConflictError means a uniqueness constraint would be violated.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }
