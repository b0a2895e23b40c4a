package ports

import (
	"context"

	"github.com/hrdesk/hr-system/internal/core/domain"
)

// RegisterInput carries the self-registration form fields. All four are
// required; new registrations always get role "user" and verified=false.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// AuthService implements registration, verification, and session handling.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Account, error)
	// Verify marks an account verified. With an empty email it falls back to
	// the most recently registered account, matching the original
	// single-user verification flow.
	Verify(ctx context.Context, email string) (*domain.Account, error)
	// Login succeeds only when an account exists with matching email,
	// matching plaintext password, and verified=true. On success it persists
	// the remembered session token and returns a signed bearer token.
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
	// Restore resolves the remembered session token back to an account, the
	// way a fresh page load re-establishes the session.
	Restore(ctx context.Context) (*domain.Account, error)
	Logout(ctx context.Context) error
}
