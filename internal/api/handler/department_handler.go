package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrdesk/hr-system/internal/core/ports"
)

// DepartmentHandler serves the admin-only departments page. Mutations are
// declared but unimplemented in the source system; the service answers them
// with a not-supported error.
type DepartmentHandler struct {
	departmentService ports.DepartmentService
}

func NewDepartmentHandler(departmentService ports.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

type departmentForm struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type departmentResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// List returns every department.
//
// @Summary      List departments
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  departmentResponse
// @Router       /departments [get]
func (h *DepartmentHandler) List(c echo.Context) error {
	departments, err := h.departmentService.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]departmentResponse, 0, len(departments))
	for _, d := range departments {
		resp = append(resp, departmentResponse{ID: d.ID, Name: d.Name, Description: d.Description})
	}
	return c.JSON(http.StatusOK, resp)
}

// Create is not supported.
//
// @Summary      Add a department (not implemented)
// @Tags         departments
// @Security     BearerAuth
// @Failure      501  {object}  map[string]string
// @Router       /departments [post]
func (h *DepartmentHandler) Create(c echo.Context) error {
	var req departmentForm
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return h.departmentService.Add(c.Request().Context(), req.Name, req.Description)
}

// Update is not supported.
//
// @Summary      Edit a department (not implemented)
// @Tags         departments
// @Security     BearerAuth
// @Failure      501  {object}  map[string]string
// @Router       /departments/{id} [put]
func (h *DepartmentHandler) Update(c echo.Context) error {
	var req departmentForm
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	id, err := pathInt(c, "id")
	if err != nil {
		return err
	}
	return h.departmentService.Update(c.Request().Context(), id, req.Name, req.Description)
}

// Delete is not supported.
//
// @Summary      Delete a department (not implemented)
// @Tags         departments
// @Security     BearerAuth
// @Failure      501  {object}  map[string]string
// @Router       /departments/{id} [delete]
func (h *DepartmentHandler) Delete(c echo.Context) error {
	id, err := pathInt(c, "id")
	if err != nil {
		return err
	}
	return h.departmentService.Delete(c.Request().Context(), id)
}
