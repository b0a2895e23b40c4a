package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrdesk/hr-system/internal/api/metrics"
	"github.com/hrdesk/hr-system/internal/core/ports"
)

// EmployeeHandler serves the admin-only employees page.
type EmployeeHandler struct {
	employeeService ports.EmployeeService
}

func NewEmployeeHandler(employeeService ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

type employeeForm struct {
	ID       string `json:"id"       validate:"required"`
	UserID   string `json:"userId"   validate:"required,email"`
	Position string `json:"position" validate:"required"`
	DeptID   int    `json:"deptId"   validate:"required"`
	HireDate string `json:"hireDate"`
}

type employeeResponse struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Position string `json:"position"`
	DeptID   int    `json:"deptId"`
	HireDate string `json:"hireDate"`
	// Resolved display fields; "—" when the reference dangles.
	UserEmail      string `json:"userEmail,omitempty"`
	DepartmentName string `json:"departmentName,omitempty"`
}

func (f employeeForm) toInput() ports.EmployeeInput {
	return ports.EmployeeInput{
		ID:       f.ID,
		UserID:   f.UserID,
		Position: f.Position,
		DeptID:   f.DeptID,
		HireDate: f.HireDate,
	}
}

// List returns every employee with referenced names resolved.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  employeeResponse
// @Router       /employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	views, err := h.employeeService.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]employeeResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, employeeResponse{
			ID:             v.ID,
			UserID:         v.UserID,
			Position:       v.Position,
			DeptID:         v.DeptID,
			HireDate:       v.HireDate,
			UserEmail:      v.UserEmail,
			DepartmentName: v.DepartmentName,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// Create adds a new employee.
//
// @Summary      Add an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      employeeForm  true  "Employee details"
// @Success      201   {object}  employeeResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string  "userId does not match any account"
// @Router       /employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req employeeForm
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employee, err := h.employeeService.Add(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	metrics.EntityMutationsTotal.WithLabelValues("employee", "add").Inc()
	return c.JSON(http.StatusCreated, employeeResponse{
		ID:       employee.ID,
		UserID:   employee.UserID,
		Position: employee.Position,
		DeptID:   employee.DeptID,
		HireDate: employee.HireDate,
	})
}

// Update edits the employee identified by the id path parameter.
//
// @Summary      Edit an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Employee ID"
// @Param        body  body      employeeForm  true  "New employee details"
// @Success      200   {object}  employeeResponse
// @Failure      404   {object}  map[string]string
// @Router       /employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req employeeForm
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employee, err := h.employeeService.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}

	metrics.EntityMutationsTotal.WithLabelValues("employee", "update").Inc()
	return c.JSON(http.StatusOK, employeeResponse{
		ID:       employee.ID,
		UserID:   employee.UserID,
		Position: employee.Position,
		DeptID:   employee.DeptID,
		HireDate: employee.HireDate,
	})
}

// Delete removes an employee.
//
// @Summary      Delete an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Employee ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	if err := h.employeeService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.EntityMutationsTotal.WithLabelValues("employee", "delete").Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "employee deleted"})
}
