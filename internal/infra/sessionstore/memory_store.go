package sessionstore

import (
	"context"
	"sync"
	"time"

	"github.com/yanqian/weather-assistant/internal/domain/session"
	"github.com/yanqian/weather-assistant/pkg/util"
)

type entry struct {
	state     session.State
	expiresAt time.Time
}

const sweepInterval = time.Minute

// MemoryStore keeps sessions in process memory. Expired entries are dropped
// on Load and swept from Save at most once per sweepInterval.
type MemoryStore struct {
	mu        sync.RWMutex
	sessions  map[string]entry
	lastSweep time.Time
	now       func() time.Time
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]entry),
		now:      util.NowUTC,
	}
}

// Load implements session.Store.
func (s *MemoryStore) Load(_ context.Context, id string) (*session.State, bool, error) {
	if id == "" {
		return nil, false, nil
	}
	s.mu.RLock()
	record, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if s.expired(record.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, false, nil
	}
	state := clone(record.state)
	return &state, true, nil
}

// Save stores a copy of the state; ttl <= 0 keeps it until deleted.
func (s *MemoryStore) Save(_ context.Context, state *session.State, ttl time.Duration) error {
	if state == nil || state.ID == "" {
		return nil
	}
	now := s.now()
	exp := time.Time{}
	if ttl > 0 {
		exp = now.Add(ttl)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if now.Sub(s.lastSweep) >= sweepInterval {
		s.sweepLocked(now)
	}
	s.sessions[state.ID] = entry{state: clone(*state), expiresAt: exp}
	return nil
}

// Len reports the number of stored sessions, expired ones included until
// they are swept.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *MemoryStore) sweepLocked(now time.Time) {
	for id, record := range s.sessions {
		if !record.expiresAt.IsZero() && record.expiresAt.Before(now) {
			delete(s.sessions, id)
		}
	}
	s.lastSweep = now
}

// Delete implements session.Store.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *MemoryStore) expired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(s.now())
}

func clone(state session.State) session.State {
	state.History = append([]string(nil), state.History...)
	return state
}

var _ session.Store = (*MemoryStore)(nil)
