package state

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hrdesk/hr-system/internal/core/domain"
	"github.com/hrdesk/hr-system/internal/infrastructure/db/memory"
)

func TestNewManager_SeedsOnFirstRun(t *testing.T) {
	store := memory.NewStateStore()

	m, err := NewManager(context.Background(), store, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewManager returned error: %v", err)
	}

	var accounts int
	m.View(func(s *domain.State) { accounts = len(s.Accounts) })
	if accounts != 1 {
		t.Fatalf("expected seeded state with 1 account, got %d", accounts)
	}

	// The seed must also have been persisted, not just held in memory.
	persisted, err := store.LoadState(context.Background())
	if err != nil {
		t.Fatalf("seed state was not persisted: %v", err)
	}
	if !reflect.DeepEqual(persisted, domain.SeedState()) {
		t.Fatalf("persisted seed differs from SeedState()")
	}
}

func TestNewManager_LoadsExistingState(t *testing.T) {
	store := memory.NewStateStore()
	existing := domain.SeedState()
	existing.Accounts = append(existing.Accounts, domain.Account{
		FirstName: "Bob", LastName: "Jones", Email: "bob@example.com",
		Password: "secret", Role: domain.RoleUser, Verified: true,
	})
	if err := store.SaveState(context.Background(), existing); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}

	m, err := NewManager(context.Background(), store, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewManager returned error: %v", err)
	}

	var got []domain.Account
	m.View(func(s *domain.State) { got = append([]domain.Account(nil), s.Accounts...) })
	if len(got) != 2 || got[1].Email != "bob@example.com" {
		t.Fatalf("existing state was not loaded: %+v", got)
	}
}

func TestUpdate_PersistsMutation(t *testing.T) {
	store := memory.NewStateStore()
	m, err := NewManager(context.Background(), store, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewManager returned error: %v", err)
	}

	err = m.Update(context.Background(), func(s *domain.State) error {
		s.Accounts = append(s.Accounts, domain.Account{
			FirstName: "Eve", LastName: "Smith", Email: "eve@example.com",
			Password: "secret", Role: domain.RoleUser,
		})
		return nil
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	persisted, err := store.LoadState(context.Background())
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if len(persisted.Accounts) != 2 {
		t.Fatalf("mutation was not persisted, got %d accounts", len(persisted.Accounts))
	}

	var inMemory *domain.State
	m.View(func(s *domain.State) { inMemory = s.Clone() })
	if !reflect.DeepEqual(inMemory, persisted) {
		t.Fatalf("in-memory state and persisted state diverged")
	}
}

func TestUpdate_ErrorLeavesStateUntouched(t *testing.T) {
	store := memory.NewStateStore()
	m, err := NewManager(context.Background(), store, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewManager returned error: %v", err)
	}
	before := store.Blob()

	sentinel := errors.New("boom")
	err = m.Update(context.Background(), func(s *domain.State) error {
		s.Accounts = nil // mutate the copy before failing
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}

	var accounts int
	m.View(func(s *domain.State) { accounts = len(s.Accounts) })
	if accounts != 1 {
		t.Fatalf("failed update leaked into in-memory state")
	}
	if !bytes.Equal(before, store.Blob()) {
		t.Fatalf("failed update changed the persisted blob")
	}
}

func TestUpdate_NoopSaveIsByteIdentical(t *testing.T) {
	store := memory.NewStateStore()
	m, err := NewManager(context.Background(), store, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewManager returned error: %v", err)
	}
	before := store.Blob()

	if err := m.Update(context.Background(), func(s *domain.State) error { return nil }); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if !bytes.Equal(before, store.Blob()) {
		t.Fatalf("saving an unchanged state produced different bytes")
	}
}
