// Package memory provides an in-process StateStore for tests and local
// development. It round-trips the state through the same JSON codec as the
// real backends so serialization behavior is identical.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/hrdesk/hr-system/internal/core/domain"
)

type StateStore struct {
	mu    sync.Mutex
	blob  []byte
	token string
}

func NewStateStore() *StateStore {
	return &StateStore{}
}

func (s *StateStore) LoadState(ctx context.Context) (*domain.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.blob == nil {
		return nil, domain.ErrNoState
	}
	var st domain.State
	if err := json.Unmarshal(s.blob, &st); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	return &st, nil
}

func (s *StateStore) SaveState(ctx context.Context, state *domain.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.blob = raw
	return nil
}

func (s *StateStore) LoadSessionToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *StateStore) SaveSessionToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *StateStore) ClearSessionToken(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

func (s *StateStore) Ping(ctx context.Context) error {
	return nil
}

// Blob returns the raw persisted bytes. Test helper.
func (s *StateStore) Blob() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.blob...)
}
