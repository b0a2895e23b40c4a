package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/hrdesk/hr-system/docs"
	"github.com/hrdesk/hr-system/internal/api/handler"
	"github.com/hrdesk/hr-system/internal/api/middleware"
	"github.com/hrdesk/hr-system/internal/core/domain"
	"github.com/hrdesk/hr-system/internal/core/ports"
	"github.com/hrdesk/hr-system/internal/core/service"
	"github.com/hrdesk/hr-system/internal/core/state"
)

// NewRouter builds and returns the Echo instance with all pages registered.
//
// The route table mirrors the page set of the portal being replaced. Two
// gates apply in a fixed order: the Auth middleware rejects requests without
// a session (the SPA redirected those to the login page), then RBAC rejects
// non-admin sessions on the admin-only pages (the SPA redirected those home).
func NewRouter(states *state.Manager, store ports.StateStore, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hr"))

	// --- Dependencies ---
	authService := service.NewAuthService(states, store, jwtSecret, 24*time.Hour, log)
	accountService := service.NewAccountService(states, log)
	departmentService := service.NewDepartmentService(states, log)
	employeeService := service.NewEmployeeService(states, log)
	requestService := service.NewRequestService(states, log)

	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(accountService)
	departmentHandler := handler.NewDepartmentHandler(departmentService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	requestHandler := handler.NewRequestHandler(requestService)

	// --- Public pages: home, login, register, verify ---
	e.GET("/", home)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/verify", authHandler.Verify)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/session", authHandler.Session)

	// --- Protected pages: profile, requests, logout ---
	authed := e.Group("", middleware.Auth(jwtSecret))
	authed.POST("/auth/logout", authHandler.Logout)
	authed.GET("/profile", accountHandler.Profile)
	authed.PUT("/profile", accountHandler.UpdateProfile)
	authed.GET("/requests", requestHandler.List)
	authed.POST("/requests", requestHandler.Create)

	// --- Admin-only pages: accounts, department, employee ---
	admin := authed.Group("", middleware.RBAC(domain.RoleAdmin))
	admin.GET("/accounts", accountHandler.List)
	admin.POST("/accounts", accountHandler.Create)
	admin.PUT("/accounts/:email", accountHandler.Update)
	admin.POST("/accounts/:email/password", accountHandler.ResetPassword)
	admin.DELETE("/accounts/:email", accountHandler.Delete)
	admin.GET("/departments", departmentHandler.List)
	admin.POST("/departments", departmentHandler.Create)
	admin.PUT("/departments/:id", departmentHandler.Update)
	admin.DELETE("/departments/:id", departmentHandler.Delete)
	admin.GET("/employees", employeeHandler.List)
	admin.POST("/employees", employeeHandler.Create)
	admin.PUT("/employees/:id", employeeHandler.Update)
	admin.DELETE("/employees/:id", employeeHandler.Delete)

	// --- Health probes, metrics, API docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(store)

	e.GET("/health", healthHandler.Liveness)           // is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // is the store reachable?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func home(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"name":   "hr-system",
		"status": "ok",
	})
}
