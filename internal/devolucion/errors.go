package devolucion

import "errors"

var (
	// ErrNotFound marks a missing return or a missing originating order.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState marks an illegal transition attempt for the current status.
	ErrInvalidState = errors.New("invalid state transition")

	// ErrVersionConflict marks a lost optimistic-lock race on the aggregate.
	ErrVersionConflict = errors.New("version conflict")
)
