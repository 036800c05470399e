package session

import (
	"context"
	"time"
)

// Store persists conversation state between requests.
type Store interface {
	// Load returns the state for id; ok is false when it is missing or expired.
	Load(ctx context.Context, id string) (*State, bool, error)
	Save(ctx context.Context, state *State, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

// CodeStoreUnavailable tags errors raised by a Store backend.
const CodeStoreUnavailable = "session_store_unavailable"
