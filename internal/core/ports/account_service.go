package ports

import (
	"context"

	"github.com/hrdesk/hr-system/internal/core/domain"
)

// AccountInput carries the admin account form. Password semantics differ by
// mode: required when adding, and an empty password on edit preserves the
// existing one.
type AccountInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
	Verified  bool
}

// AccountService exposes the admin-managed account collection plus the
// logged-in user's own profile edit.
type AccountService interface {
	List(ctx context.Context) ([]domain.Account, error)
	Get(ctx context.Context, email string) (*domain.Account, error)
	Add(ctx context.Context, input AccountInput) (*domain.Account, error)
	// Update edits the account identified by email. Duplicate emails are not
	// re-checked here; only registration and Add enforce uniqueness.
	Update(ctx context.Context, email string, input AccountInput) (*domain.Account, error)
	ResetPassword(ctx context.Context, email, newPassword string) error
	// Delete removes the account identified by email. Deleting the account
	// belonging to the active session is forbidden.
	Delete(ctx context.Context, email, sessionEmail string) error
	// UpdateProfile edits the session user's own first and last name.
	UpdateProfile(ctx context.Context, email, firstName, lastName string) (*domain.Account, error)
}
