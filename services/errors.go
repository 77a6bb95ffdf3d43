package services

import "errors"

// Sentinel errors the handlers map onto HTTP statuses. Store-layer
// failures that match none of these surface as a generic 500.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidRequest  = errors.New("invalid request")
)
