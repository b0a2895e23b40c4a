package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hrdesk/hr-system/internal/core/domain"
	"github.com/hrdesk/hr-system/internal/core/state"
)

// DepartmentService lists the seeded departments. The source system declares
// add/edit/delete but ships them as placeholders; that is reproduced as
// explicit not-supported results instead of guessing at a completed design.
type DepartmentService struct {
	states *state.Manager
	log    zerolog.Logger
}

func NewDepartmentService(states *state.Manager, log zerolog.Logger) *DepartmentService {
	return &DepartmentService{states: states, log: log}
}

func (s *DepartmentService) List(ctx context.Context) ([]domain.Department, error) {
	var departments []domain.Department
	s.states.View(func(st *domain.State) {
		departments = append([]domain.Department(nil), st.Departments...)
	})
	return departments, nil
}

func (s *DepartmentService) Add(ctx context.Context, name, description string) error {
	return domain.ErrNotSupported
}

func (s *DepartmentService) Update(ctx context.Context, id int, name, description string) error {
	return domain.ErrNotSupported
}

func (s *DepartmentService) Delete(ctx context.Context, id int) error {
	return domain.ErrNotSupported
}
