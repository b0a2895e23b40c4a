package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrdesk/hr-system/internal/api/metrics"
	"github.com/hrdesk/hr-system/internal/core/ports"
)

// AccountHandler serves the admin-only accounts page plus the session user's
// own profile.
type AccountHandler struct {
	accountService ports.AccountService
}

func NewAccountHandler(accountService ports.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

type accountForm struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
	Email     string `json:"email"     validate:"required,email"`
	// Password is required when adding; on edit an empty password keeps the
	// existing one. The service enforces the add-mode requirement.
	Password string `json:"password"`
	Role     string `json:"role" validate:"required,oneof=admin user"`
	Verified bool   `json:"verified"`
}

type resetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

type profileForm struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
}

func (f accountForm) toInput() ports.AccountInput {
	return ports.AccountInput{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Email:     f.Email,
		Password:  f.Password,
		Role:      f.Role,
		Verified:  f.Verified,
	}
}

// List returns every account.
//
// @Summary      List accounts
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  accountResponse
// @Router       /accounts [get]
func (h *AccountHandler) List(c echo.Context) error {
	accounts, err := h.accountService.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]accountResponse, 0, len(accounts))
	for i := range accounts {
		resp = append(resp, *toAccountResponse(&accounts[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create adds a new account.
//
// @Summary      Add an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      accountForm  true  "Account details"
// @Success      201   {object}  accountResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /accounts [post]
func (h *AccountHandler) Create(c echo.Context) error {
	var req accountForm
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.accountService.Add(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	metrics.EntityMutationsTotal.WithLabelValues("account", "add").Inc()
	return c.JSON(http.StatusCreated, toAccountResponse(account))
}

// Update edits the account identified by the email path parameter.
//
// @Summary      Edit an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string       true  "Account email"
// @Param        body   body      accountForm  true  "New account details"
// @Success      200    {object}  accountResponse
// @Failure      404    {object}  map[string]string
// @Router       /accounts/{email} [put]
func (h *AccountHandler) Update(c echo.Context) error {
	var req accountForm
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.accountService.Update(c.Request().Context(), c.Param("email"), req.toInput())
	if err != nil {
		return err
	}

	metrics.EntityMutationsTotal.WithLabelValues("account", "update").Inc()
	return c.JSON(http.StatusOK, toAccountResponse(account))
}

// ResetPassword sets a new password on the account.
//
// @Summary      Reset an account password
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string                true  "Account email"
// @Param        body   body      resetPasswordRequest  true  "New password (min 6 chars)"
// @Success      200    {object}  map[string]string
// @Failure      400    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /accounts/{email}/password [post]
func (h *AccountHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.accountService.ResetPassword(c.Request().Context(), c.Param("email"), req.Password); err != nil {
		return err
	}

	metrics.EntityMutationsTotal.WithLabelValues("account", "reset_password").Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "password reset"})
}

// Delete removes an account. Deleting the session user's own account is
// forbidden.
//
// @Summary      Delete an account
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Account email"
// @Success      200    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /accounts/{email} [delete]
func (h *AccountHandler) Delete(c echo.Context) error {
	sessionEmail, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	if err := h.accountService.Delete(c.Request().Context(), c.Param("email"), sessionEmail); err != nil {
		return err
	}

	metrics.EntityMutationsTotal.WithLabelValues("account", "delete").Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "account deleted"})
}

// Profile returns the session user's account.
//
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  accountResponse
// @Router       /profile [get]
func (h *AccountHandler) Profile(c echo.Context) error {
	email, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	account, err := h.accountService.Get(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountResponse(account))
}

// UpdateProfile edits the session user's own first and last name.
//
// @Summary      Edit own profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      profileForm  true  "New name"
// @Success      200   {object}  accountResponse
// @Failure      400   {object}  map[string]string
// @Router       /profile [put]
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	email, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req profileForm
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.accountService.UpdateProfile(c.Request().Context(), email, req.FirstName, req.LastName)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountResponse(account))
}
