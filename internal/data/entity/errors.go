package entity

import "errors"

// Sentinel errors shared by repositories and services. Handlers translate
// these to HTTP status codes with errors.Is; anything else is a 500.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrSeatsUnavailable = errors.New("one or more seats are already booked")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrForbidden        = errors.New("access denied")
	ErrInvalidState     = errors.New("operation not allowed in current state")
	ErrAlreadyExists    = errors.New("resource already exists")
)
