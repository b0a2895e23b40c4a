package ports

import (
	"context"

	"github.com/hrdesk/hr-system/internal/core/domain"
)

// DepartmentService lists the seeded departments. Mutations are declared but
// intentionally unimplemented in the source system; they return
// domain.ErrNotSupported.
type DepartmentService interface {
	List(ctx context.Context) ([]domain.Department, error)
	Add(ctx context.Context, name, description string) error
	Update(ctx context.Context, id int, name, description string) error
	Delete(ctx context.Context, id int) error
}

// EmployeeInput carries the employee form fields. ID is free-text and
// caller-supplied.
type EmployeeInput struct {
	ID       string
	UserID   string
	Position string
	DeptID   int
	HireDate string
}

// EmployeeView is an employee row with the referenced account email and
// department name resolved for display. Dangling references resolve to "—".
type EmployeeView struct {
	domain.Employee
	UserEmail      string
	DepartmentName string
}

// EmployeeService manages the employee collection. Saving checks that UserID
// references an existing account email; DeptID is not validated.
type EmployeeService interface {
	List(ctx context.Context) ([]EmployeeView, error)
	Add(ctx context.Context, input EmployeeInput) (*domain.Employee, error)
	Update(ctx context.Context, id string, input EmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}
