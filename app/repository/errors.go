package repository

import "errors"

var (
	// ErrNotFound is returned when a record does not exist. Distinct
	// from ErrNotImplemented so a missing feature can never be mistaken
	// for an empty dataset.
	ErrNotFound = errors.New("record not found")

	// ErrNotImplemented is returned by repository methods that the
	// active backend does not support yet.
	ErrNotImplemented = errors.New("not implemented for this backend")
)

// IsNotFound reports whether err means the record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsNotImplemented reports whether err means the active backend does
// not support the operation.
func IsNotImplemented(err error) bool {
	return errors.Is(err, ErrNotImplemented)
}
