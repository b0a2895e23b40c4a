package ports

import (
	"context"

	"github.com/hrdesk/hr-system/internal/core/domain"
)

// StateStore persists the Domain State as a single serialized blob, plus the
// remembered session token as a separate scalar. Backends (redis, mongo,
// memory) must round-trip the state byte-identically so that repeated saves
// of an unchanged state are idempotent.
type StateStore interface {
	// LoadState returns the persisted state, or domain.ErrNoState when no
	// blob has been written yet (first run).
	LoadState(ctx context.Context) (*domain.State, error)
	SaveState(ctx context.Context, s *domain.State) error

	// LoadSessionToken returns the remembered session token, or "" when no
	// session is remembered. Absence is not an error.
	LoadSessionToken(ctx context.Context) (string, error)
	SaveSessionToken(ctx context.Context, token string) error
	ClearSessionToken(ctx context.Context) error

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}
