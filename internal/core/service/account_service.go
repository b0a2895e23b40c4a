package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hrdesk/hr-system/internal/core/domain"
	"github.com/hrdesk/hr-system/internal/core/ports"
	"github.com/hrdesk/hr-system/internal/core/state"
)

const minPasswordLen = 6

// AccountService implements the admin-managed account collection and the
// session user's own profile edit.
type AccountService struct {
	states *state.Manager
	log    zerolog.Logger
}

func NewAccountService(states *state.Manager, log zerolog.Logger) *AccountService {
	return &AccountService{states: states, log: log}
}

func (s *AccountService) List(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	s.states.View(func(st *domain.State) {
		accounts = append([]domain.Account(nil), st.Accounts...)
	})
	return accounts, nil
}

func (s *AccountService) Get(ctx context.Context, email string) (*domain.Account, error) {
	var account domain.Account
	found := false
	s.states.View(func(st *domain.State) {
		account, found = st.FindAccount(email)
	})
	if !found {
		return nil, domain.ErrAccountNotFound
	}
	return &account, nil
}

func (s *AccountService) Add(ctx context.Context, input ports.AccountInput) (*domain.Account, error) {
	if input.FirstName == "" || input.LastName == "" || input.Email == "" || input.Role == "" {
		return nil, domain.ErrMissingFields
	}
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidRole
	}
	if input.Password == "" {
		return nil, domain.ErrPasswordRequired
	}

	account := domain.Account{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
		Role:      input.Role,
		Verified:  input.Verified,
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

	s.log.Info().Str("email", account.Email).Str("role", account.Role).Msg("account added")
	return &account, nil
}

// Update edits the account identified by email. An empty password preserves
// the existing one. Email uniqueness is deliberately not re-checked here:
// only registration and Add enforce it, matching the source behavior.
func (s *AccountService) Update(ctx context.Context, email string, input ports.AccountInput) (*domain.Account, error) {
	if input.FirstName == "" || input.LastName == "" || input.Email == "" || input.Role == "" {
		return nil, domain.ErrMissingFields
	}
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidRole
	}

	var updated domain.Account
	err := s.states.Update(ctx, func(st *domain.State) error {
		idx := st.AccountIndex(email)
		if idx < 0 {
			return domain.ErrAccountNotFound
		}
		a := &st.Accounts[idx]
		a.FirstName = input.FirstName
		a.LastName = input.LastName
		a.Email = input.Email
		a.Role = input.Role
		a.Verified = input.Verified
		if input.Password != "" {
			a.Password = input.Password
		}
		updated = *a
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", updated.Email).Msg("account updated")
	return &updated, nil
}

func (s *AccountService) ResetPassword(ctx context.Context, email, newPassword string) error {
	if len(newPassword) < minPasswordLen {
		return domain.ErrPasswordTooShort
	}

	err := s.states.Update(ctx, func(st *domain.State) error {
		idx := st.AccountIndex(email)
		if idx < 0 {
			return domain.ErrAccountNotFound
		}
		st.Accounts[idx].Password = newPassword
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("email", email).Msg("password reset")
	return nil
}

// Delete removes the account identified by email, unless it belongs to the
// active session. Deletion does not cascade: employees and requests keep
// referencing the removed email.
func (s *AccountService) Delete(ctx context.Context, email, sessionEmail string) error {
	if email == sessionEmail {
		return domain.ErrSelfDeletion
	}

	err := s.states.Update(ctx, func(st *domain.State) error {
		idx := st.AccountIndex(email)
		if idx < 0 {
			return domain.ErrAccountNotFound
		}
		st.Accounts = append(st.Accounts[:idx], st.Accounts[idx+1:]...)
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("email", email).Msg("account deleted")
	return nil
}

func (s *AccountService) UpdateProfile(ctx context.Context, email, firstName, lastName string) (*domain.Account, error) {
	if firstName == "" || lastName == "" {
		return nil, domain.ErrMissingFields
	}

	var updated domain.Account
	err := s.states.Update(ctx, func(st *domain.State) error {
		idx := st.AccountIndex(email)
		if idx < 0 {
			return domain.ErrAccountNotFound
		}
		st.Accounts[idx].FirstName = firstName
		st.Accounts[idx].LastName = lastName
		updated = st.Accounts[idx]
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", email).Msg("profile updated")
	return &updated, nil
}
