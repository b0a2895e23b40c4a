// Package state owns the in-memory Domain State and keeps the persistent
// store in sync with it after every mutation.
package state

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/hrdesk/hr-system/internal/core/domain"
	"github.com/hrdesk/hr-system/internal/core/ports"
)

// Manager holds the single authoritative copy of the Domain State. It is
// constructed once at startup from the store (seeding on first run) and
// serializes all access; the HTTP layer brings concurrency the original
// single-tab system never had.
type Manager struct {
	mu    sync.RWMutex
	store ports.StateStore
	cur   *domain.State
	log   zerolog.Logger
}

// NewManager loads the persisted state, or seeds and persists the default
// state when none exists yet.
func NewManager(ctx context.Context, store ports.StateStore, log zerolog.Logger) (*Manager, error) {
	st, err := store.LoadState(ctx)
	switch {
	case errors.Is(err, domain.ErrNoState):
		st = domain.SeedState()
		if err := store.SaveState(ctx, st); err != nil {
			return nil, fmt.Errorf("persist seed state: %w", err)
		}
		log.Info().Msg("no persisted state found, seeded defaults")
	case err != nil:
		return nil, fmt.Errorf("load state: %w", err)
	}

	return &Manager{store: store, cur: st, log: log}, nil
}

// View runs fn against the current state under a read lock. fn must not
// mutate the state or retain references past the call; copy what it returns.
func (m *Manager) View(fn func(s *domain.State)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	fn(m.cur)
}

// Update applies fn to a deep copy of the state, persists the copy, and only
// then swaps it in. An error from fn or from the store leaves both the
// in-memory state and the persisted blob exactly as they were: no partial
// mutation is ever observed or persisted.
func (m *Manager) Update(ctx context.Context, fn func(s *domain.State) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.cur.Clone()
	if err := fn(next); err != nil {
		return err
	}
	if err := m.store.SaveState(ctx, next); err != nil {
		m.log.Error().Err(err).Msg("failed to persist state")
		return fmt.Errorf("persist state: %w", err)
	}
	m.cur = next
	return nil
}
