package sessionstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/weather-assistant/internal/domain/session"
	apperrors "github.com/yanqian/weather-assistant/pkg/errors"
)

// ValkeyStore persists sessions as JSON strings in a Valkey-compatible database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "weather:session"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

// Load implements session.Store. A missing key is not an error.
func (s *ValkeyStore) Load(ctx context.Context, id string) (*session.State, bool, error) {
	if id == "" {
		return nil, false, nil
	}
	payload, err := s.client.Do(ctx, s.client.B().Get().Key(s.key(id)).Build()).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, false, nil
		}
		return nil, false, apperrors.Wrap(session.CodeStoreUnavailable, "load session", err)
	}
	var state session.State
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		return nil, false, apperrors.Wrap(session.CodeStoreUnavailable, "decode session", err)
	}
	return &state, true, nil
}

// Save implements session.Store; ttl is rounded up to whole seconds.
func (s *ValkeyStore) Save(ctx context.Context, state *session.State, ttl time.Duration) error {
	if state == nil || state.ID == "" {
		return nil
	}
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.key(state.ID)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return apperrors.Wrap(session.CodeStoreUnavailable, "save session", err)
	}
	return nil
}

// Delete implements session.Store.
func (s *ValkeyStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := s.client.Do(ctx, s.client.B().Del().Key(s.key(id)).Build()).Error(); err != nil {
		return apperrors.Wrap(session.CodeStoreUnavailable, "delete session", err)
	}
	return nil
}

func (s *ValkeyStore) key(id string) string {
	return fmt.Sprintf("%s:%s", s.prefix, id)
}

var _ session.Store = (*ValkeyStore)(nil)
