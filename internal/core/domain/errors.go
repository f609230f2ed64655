package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or structurally invalid input,
	// e.g. a document without any schedule table.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidDate indicates a (year, week, weekday) triple outside the
	// ISO calendar.
	ErrInvalidDate = errors.New("invalid calendar date")

	// ErrUnsupportedType indicates an unknown source or canteen.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrNotImplemented indicates an optional port was not configured.
	ErrNotImplemented = errors.New("not implemented")
)
