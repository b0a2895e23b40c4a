package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hrdesk/hr-system/internal/core/domain"
	"github.com/hrdesk/hr-system/internal/core/ports"
	"github.com/hrdesk/hr-system/internal/core/state"
)

// danglingRef is shown where an employee references an account or department
// that no longer exists.
const danglingRef = "—"

// EmployeeService manages the employee collection. Saving requires the
// referenced account email to exist at that moment; the reference is not kept
// consistent afterwards, and DeptID is never validated.
type EmployeeService struct {
	states *state.Manager
	log    zerolog.Logger
}

func NewEmployeeService(states *state.Manager, log zerolog.Logger) *EmployeeService {
	return &EmployeeService{states: states, log: log}
}

func (s *EmployeeService) List(ctx context.Context) ([]ports.EmployeeView, error) {
	var views []ports.EmployeeView
	s.states.View(func(st *domain.State) {
		views = make([]ports.EmployeeView, 0, len(st.Employees))
		for _, emp := range st.Employees {
			view := ports.EmployeeView{Employee: emp, UserEmail: danglingRef, DepartmentName: danglingRef}
			if a, ok := st.FindAccount(emp.UserID); ok {
				view.UserEmail = a.Email
			}
			if d, ok := st.FindDepartment(emp.DeptID); ok {
				view.DepartmentName = d.Name
			}
			views = append(views, view)
		}
	})
	return views, nil
}

func (s *EmployeeService) Add(ctx context.Context, input ports.EmployeeInput) (*domain.Employee, error) {
	if err := validateEmployee(input); err != nil {
		return nil, err
	}

	employee := domain.Employee{
		ID:       input.ID,
		UserID:   input.UserID,
		Position: input.Position,
		DeptID:   input.DeptID,
		HireDate: input.HireDate,
	}

	err := s.states.Update(ctx, func(st *domain.State) error {
		if st.AccountIndex(input.UserID) < 0 {
			return domain.ErrUnknownAccountEmail
		}
		st.Employees = append(st.Employees, employee)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("employee_id", employee.ID).Str("user_id", employee.UserID).Msg("employee added")
	return &employee, nil
}

// Update edits the first employee carrying the given id; IDs are
// caller-supplied and uniqueness stays unenforced.
func (s *EmployeeService) Update(ctx context.Context, id string, input ports.EmployeeInput) (*domain.Employee, error) {
	if err := validateEmployee(input); err != nil {
		return nil, err
	}

	var updated domain.Employee
	err := s.states.Update(ctx, func(st *domain.State) error {
		idx := st.EmployeeIndex(id)
		if idx < 0 {
			return domain.ErrEmployeeNotFound
		}
		if st.AccountIndex(input.UserID) < 0 {
			return domain.ErrUnknownAccountEmail
		}
		st.Employees[idx] = domain.Employee{
			ID:       input.ID,
			UserID:   input.UserID,
			Position: input.Position,
			DeptID:   input.DeptID,
			HireDate: input.HireDate,
		}
		updated = st.Employees[idx]
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("employee_id", updated.ID).Msg("employee updated")
	return &updated, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	err := s.states.Update(ctx, func(st *domain.State) error {
		idx := st.EmployeeIndex(id)
		if idx < 0 {
			return domain.ErrEmployeeNotFound
		}
		st.Employees = append(st.Employees[:idx], st.Employees[idx+1:]...)
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("employee_id", id).Msg("employee deleted")
	return nil
}

func validateEmployee(input ports.EmployeeInput) error {
	if input.ID == "" || input.UserID == "" || input.Position == "" || input.DeptID == 0 {
		return domain.ErrMissingFields
	}
	return nil
}
