package mongo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hrdesk/hr-system/internal/core/domain"
)

const kvCollection = "kv"

// Fixed document IDs: one for the state blob, one for the remembered session
// token.
const (
	stateDocID   = "state:v1"
	sessionDocID = "auth_token"
)

// kvDoc is a single key-value entry. The state is stored as its serialized
// JSON form rather than as structured BSON, so loads and saves round-trip
// through exactly one codec, the same one the other backends use.
type kvDoc struct {
	ID   string `bson:"_id"`
	Data string `bson:"data"`
}

// StateStore persists the Domain State in MongoDB as a single document with a
// fixed _id, overwritten whole on every save.
type StateStore struct {
	coll *mongo.Collection
}

func NewStateStore(db *mongo.Database) *StateStore {
	return &StateStore{coll: db.Collection(kvCollection)}
}

func (s *StateStore) LoadState(ctx context.Context) (*domain.State, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc kvDoc
	if err := s.coll.FindOne(ctx, bson.M{"_id": stateDocID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoState
		}
		return nil, fmt.Errorf("load state: %w", err)
	}

	var st domain.State
	if err := json.Unmarshal([]byte(doc.Data), &st); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	return &st, nil
}

func (s *StateStore) SaveState(ctx context.Context, state *domain.State) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	_, err = s.coll.ReplaceOne(ctx,
		bson.M{"_id": stateDocID},
		kvDoc{ID: stateDocID, Data: string(raw)},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

func (s *StateStore) LoadSessionToken(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc kvDoc
	if err := s.coll.FindOne(ctx, bson.M{"_id": sessionDocID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil
		}
		return "", fmt.Errorf("load session token: %w", err)
	}
	return doc.Data, nil
}

func (s *StateStore) SaveSessionToken(ctx context.Context, token string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": sessionDocID},
		kvDoc{ID: sessionDocID, Data: token},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("save session token: %w", err)
	}
	return nil
}

func (s *StateStore) ClearSessionToken(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": sessionDocID}); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}
	return nil
}

func (s *StateStore) Ping(ctx context.Context) error {
	return s.coll.Database().Client().Ping(ctx, nil)
}
