package services

import "errors"

// Failure kinds surfaced to the API layer. Services wrap these with
// context via fmt.Errorf and %w; handlers translate them to HTTP
// statuses in one place.
var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidReference = errors.New("invalid reference")
	ErrUnauthenticated  = errors.New("authentication required")
)
