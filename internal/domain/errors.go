package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. non-positive distance, unknown vehicle kind).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrIllegalTransition is returned when a trip is asked to move to a status
// its state machine does not allow (e.g. completing an already completed
// trip). Handlers should map this to HTTP 409 Conflict.
var ErrIllegalTransition = errors.New("illegal status transition")
