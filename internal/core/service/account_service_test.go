package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hrdesk/hr-system/internal/core/domain"
	"github.com/hrdesk/hr-system/internal/core/ports"
)

func accountInput(email string) ports.AccountInput {
	return ports.AccountInput{
		FirstName: "Carol",
		LastName:  "White",
		Email:     email,
		Password:  "s3cret",
		Role:      domain.RoleUser,
		Verified:  true,
	}
}

func TestAccountService_Add(t *testing.T) {
	states, _ := newTestStates(t)
	svc := NewAccountService(states, zerolog.Nop())

	account, err := svc.Add(context.Background(), accountInput("carol@example.com"))
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if !account.Verified {
		t.Fatalf("verified flag not carried over")
	}

	accounts, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
}

func TestAccountService_Add_PasswordRequired(t *testing.T) {
	states, _ := newTestStates(t)
	svc := NewAccountService(states, zerolog.Nop())

	input := accountInput("carol@example.com")
	input.Password = ""
	if _, err := svc.Add(context.Background(), input); !errors.Is(err, domain.ErrPasswordRequired) {
		t.Fatalf("expected ErrPasswordRequired, got %v", err)
	}
}

func TestAccountService_Add_InvalidRole(t *testing.T) {
	states, _ := newTestStates(t)
	svc := NewAccountService(states, zerolog.Nop())

	input := accountInput("carol@example.com")
	input.Role = "superuser"
	if _, err := svc.Add(context.Background(), input); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAccountService_Add_Duplicate(t *testing.T) {
	states, _ := newTestStates(t)
	svc := NewAccountService(states, zerolog.Nop())

	if _, err := svc.Add(context.Background(), accountInput("admin@example.com")); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAccountService_Update_EmptyPasswordPreserved(t *testing.T) {
	states, _ := newTestStates(t)
	svc := NewAccountService(states, zerolog.Nop())

	input := accountInput("admin@example.com")
	input.FirstName = "Renamed"
	input.Password = ""
	input.Role = domain.RoleAdmin

	updated, err := svc.Update(context.Background(), "admin@example.com", input)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.FirstName != "Renamed" {
		t.Fatalf("first name not updated: %+v", updated)
	}
	if updated.Password != "Password123!" {
		t.Fatalf("empty password should preserve the existing one, got %q", updated.Password)
	}
}

func TestAccountService_Update_NotFound(t *testing.T) {
	states, _ := newTestStates(t)
	svc := NewAccountService(states, zerolog.Nop())

	if _, err := svc.Update(context.Background(), "ghost@example.com", accountInput("ghost@example.com")); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountService_ResetPassword(t *testing.T) {
	states, _ := newTestStates(t)
	svc := NewAccountService(states, zerolog.Nop())

	if err := svc.ResetPassword(context.Background(), "admin@example.com", "short"); !errors.Is(err, domain.ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}

	if err := svc.ResetPassword(context.Background(), "admin@example.com", "longenough"); err != nil {
		t.Fatalf("ResetPassword returned error: %v", err)
	}
	account, err := svc.Get(context.Background(), "admin@example.com")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if account.Password != "longenough" {
		t.Fatalf("password not updated, got %q", account.Password)
	}
}

func TestAccountService_Delete(t *testing.T) {
	states, _ := newTestStates(t)
	svc := NewAccountService(states, zerolog.Nop())

	if _, err := svc.Add(context.Background(), accountInput("carol@example.com")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := svc.Delete(context.Background(), "carol@example.com", "admin@example.com"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	accounts, _ := svc.List(context.Background())
	if len(accounts) != 1 {
		t.Fatalf("expected 1 account after delete, got %d", len(accounts))
	}
}

func TestAccountService_Delete_Self(t *testing.T) {
	states, _ := newTestStates(t)
	svc := NewAccountService(states, zerolog.Nop())

	if err := svc.Delete(context.Background(), "admin@example.com", "admin@example.com"); !errors.Is(err, domain.ErrSelfDeletion) {
		t.Fatalf("expected ErrSelfDeletion, got %v", err)
	}
	accounts, _ := svc.List(context.Background())
	if len(accounts) != 1 {
		t.Fatalf("self-delete must leave the collection unchanged, got %d accounts", len(accounts))
	}
}

func TestAccountService_UpdateProfile(t *testing.T) {
	states, _ := newTestStates(t)
	svc := NewAccountService(states, zerolog.Nop())

	updated, err := svc.UpdateProfile(context.Background(), "admin@example.com", "New", "Name")
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if updated.FirstName != "New" || updated.LastName != "Name" {
		t.Fatalf("profile not updated: %+v", updated)
	}
	if updated.Role != domain.RoleAdmin || updated.Password != "Password123!" {
		t.Fatalf("profile edit must only touch the name: %+v", updated)
	}

	if _, err := svc.UpdateProfile(context.Background(), "admin@example.com", "", "Name"); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}
