package service

import "errors"

var (
	// ErrLoanNotFound is returned when a loan lookup misses. The console
	// renders this as the not-found state with a single recovery action.
	ErrLoanNotFound = errors.New("loan not found")

	// ErrNotPermitted is returned when the active role may not perform a
	// loan decision or edit
	ErrNotPermitted = errors.New("action not permitted for role")

	// ErrNotActionable is returned when a loan's status does not allow the
	// requested action
	ErrNotActionable = errors.New("loan status does not allow this action")
)
