package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/hrdesk/hr-system/internal/core/domain"
)

// Fixed keys: the whole state lives as one JSON blob under stateKey, and the
// remembered session token (an account email) under sessionKey.
const (
	stateKey   = "hr:state:v1"
	sessionKey = "hr:auth_token"
)

// StateStore persists the Domain State in Redis as a single serialized blob.
// Every save overwrites the blob whole; there are no partial writes and no
// schema validation on load.
type StateStore struct {
	client *redis.Client
}

func NewStateStore(client *redis.Client) *StateStore {
	return &StateStore{client: client}
}

func (s *StateStore) LoadState(ctx context.Context) (*domain.State, error) {
	raw, err := s.client.Get(ctx, stateKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNoState
	}
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	var st domain.State
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	return &st, nil
}

func (s *StateStore) SaveState(ctx context.Context, state *domain.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := s.client.Set(ctx, stateKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

func (s *StateStore) LoadSessionToken(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, sessionKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load session token: %w", err)
	}
	return token, nil
}

func (s *StateStore) SaveSessionToken(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, sessionKey, token, 0).Err(); err != nil {
		return fmt.Errorf("save session token: %w", err)
	}
	return nil
}

func (s *StateStore) ClearSessionToken(ctx context.Context) error {
	if err := s.client.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}
	return nil
}

func (s *StateStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
