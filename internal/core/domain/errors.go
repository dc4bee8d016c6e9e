package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates a required collaborator is not configured.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnknownCategory indicates a category id has no templates.
	// Generation aborts rather than emitting blank insights.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrDuplicateCategory indicates a decision lists the same category twice.
	ErrDuplicateCategory = errors.New("duplicate category")

	// ErrInvalidCatalog indicates a template catalog is missing entries.
	ErrInvalidCatalog = errors.New("invalid template catalog")
)
