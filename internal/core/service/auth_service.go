package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/hrdesk/hr-system/internal/core/domain"
	"github.com/hrdesk/hr-system/internal/core/ports"
	"github.com/hrdesk/hr-system/internal/core/state"
)

// AuthService implements registration, verification, login, and session
// restore against the Domain State. Passwords are compared in plaintext by
// design; see the Account doc comment.
type AuthService struct {
	states    *state.Manager
	store     ports.StateStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(states *state.Manager, store ports.StateStore, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{states: states, store: store, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Account, error) {
	if input.FirstName == "" || input.LastName == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrMissingFields
	}

	account := domain.Account{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
		Role:      domain.RoleUser,
		Verified:  false,
	}

	err := s.states.Update(ctx, func(st *domain.State) error {
		if st.AccountIndex(input.Email) >= 0 {
			return domain.ErrEmailTaken
		}
		st.Accounts = append(st.Accounts, account)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", account.Email).Msg("account registered")
	return &account, nil
}

// Verify marks an account verified. With an empty email the most recently
// registered account is targeted, which is how the original demo verifies
// the account that was just created.
func (s *AuthService) Verify(ctx context.Context, email string) (*domain.Account, error) {
	var verified domain.Account
	err := s.states.Update(ctx, func(st *domain.State) error {
		idx := -1
		if email == "" {
			idx = len(st.Accounts) - 1
		} else {
			idx = st.AccountIndex(email)
		}
		if idx < 0 {
			return domain.ErrAccountNotFound
		}
		st.Accounts[idx].Verified = true
		verified = st.Accounts[idx]
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", verified.Email).Msg("account verified")
	return &verified, nil
}

// Login requires a matching email, a matching plaintext password, and
// verified=true, all at once. Any mismatch yields the same generic error so
// the cause is not distinguishable from outside.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	var account domain.Account
	found := false
	s.states.View(func(st *domain.State) {
		for _, a := range st.Accounts {
			if a.Email == email && a.Password == password && a.Verified {
				account = a
				found = true
				return
			}
		}
	})
	if !found {
		s.log.Warn().Str("email", email).Msg("login rejected")
		return "", nil, domain.ErrInvalidCredentials
	}

	// Remember the identity persistently so a later process start can
	// restore the session. The token is simply the account email.
	if err := s.store.SaveSessionToken(ctx, account.Email); err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(&account)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("email", account.Email).Str("role", account.Role).Msg("login succeeded")
	return token, &account, nil
}

// Restore looks the remembered session token up in the Domain State, the way
// a fresh page load re-establishes the session.
func (s *AuthService) Restore(ctx context.Context) (*domain.Account, error) {
	token, err := s.store.LoadSessionToken(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, domain.ErrNoSession
	}

	var account domain.Account
	found := false
	s.states.View(func(st *domain.State) {
		account, found = st.FindAccount(token)
	})
	if !found {
		return nil, domain.ErrNoSession
	}
	return &account, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.store.ClearSessionToken(ctx); err != nil {
		return err
	}
	s.log.Info().Msg("session cleared")
	return nil
}

func (s *AuthService) generateToken(account *domain.Account) (string, error) {
	claims := jwt.MapClaims{
		"email": account.Email,
		"role":  account.Role,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
