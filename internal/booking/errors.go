package booking

import "errors"

// The full error surface of the booking flows. Login deliberately does not
// distinguish "unknown user" from "wrong password" or "wrong role": every
// failed match is the same ErrInvalidCredentials.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrMissingFields      = errors.New("all fields are required")
	ErrInvalidRole        = errors.New("role must be doctor or patient")
	ErrWrongRole          = errors.New("operation not allowed for this role")
	ErrInvalidPrice       = errors.New("price must be a positive integer")
	ErrNotFound           = errors.New("appointment not found")
	ErrNotOwner           = errors.New("appointment belongs to another doctor")
	ErrInvalidState       = errors.New("appointment is already reserved")
	ErrNoSession          = errors.New("no active session")
)
