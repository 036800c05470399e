package weather

import "errors"

var (
	// ErrNotFound is returned when the provider does not know the location.
	ErrNotFound = errors.New("location not found")
	// ErrProvider covers transport failures, timeouts and non-2xx replies.
	ErrProvider = errors.New("weather provider unavailable")
)
