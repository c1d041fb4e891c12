package domain

import "errors"

var (
	// ErrInvalidID means the identifier is not a well-formed ObjectID.
	// Distinct from ErrNotFound, which is a valid id with no record.
	ErrInvalidID = errors.New("invalid visitor ID")
	ErrNotFound  = errors.New("visitor not found")
)
