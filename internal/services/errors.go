package services

import "errors"

var (
	// ErrNotFound is returned when a database, view or record does not exist
	ErrNotFound = errors.New("not found")

	// ErrVersion is returned when the caller's version does not match the
	// stored version. Callers refetch and reconcile.
	ErrVersion = errors.New("E_VERSION")

	// ErrFrozen is returned for mutations against a frozen database
	ErrFrozen = errors.New("database is frozen")

	// ErrInvalidInput wraps request validation failures
	ErrInvalidInput = errors.New("invalid input")
)
