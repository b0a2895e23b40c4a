package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hrdesk/hr-system/internal/core/domain"
	"github.com/hrdesk/hr-system/internal/core/ports"
)

type stubRequestService struct {
	listFn   func(ctx context.Context, email string) ([]domain.Request, error)
	submitFn func(ctx context.Context, input ports.SubmitRequestInput) (*domain.Request, error)
}

func (s *stubRequestService) ListForUser(ctx context.Context, email string) ([]domain.Request, error) {
	return s.listFn(ctx, email)
}

func (s *stubRequestService) Submit(ctx context.Context, input ports.SubmitRequestInput) (*domain.Request, error) {
	return s.submitFn(ctx, input)
}

func TestRequestHandler_List_ScopedToSession(t *testing.T) {
	stub := &stubRequestService{
		listFn: func(ctx context.Context, email string) ([]domain.Request, error) {
			if email != "alice@example.com" {
				t.Fatalf("listing must use the session email, got %q", email)
			}
			return []domain.Request{
				{ID: "r1", Type: "Equipment", Status: domain.RequestPending, Date: "2024-05-17", EmployeeEmail: email},
			}, nil
		},
	}
	handler := NewRequestHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/requests", "")
	c.Set("email", "alice@example.com")
	c.Set("role", domain.RoleUser)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["id"] != "r1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestRequestHandler_List_MissingSession(t *testing.T) {
	stub := &stubRequestService{
		listFn: func(ctx context.Context, email string) ([]domain.Request, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewRequestHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/requests", "")

	err := handler.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestRequestHandler_Create_StampsSessionEmail(t *testing.T) {
	stub := &stubRequestService{
		submitFn: func(ctx context.Context, input ports.SubmitRequestInput) (*domain.Request, error) {
			// The handler must use the session identity, not the payload.
			if input.EmployeeEmail != "alice@example.com" {
				t.Fatalf("expected session email, got %q", input.EmployeeEmail)
			}
			return &domain.Request{
				ID: "r1", Type: input.Type,
				Items:         []domain.RequestItem{{Name: "Laptop", Qty: 2}},
				Status:        domain.RequestPending,
				Date:          "2024-05-17",
				EmployeeEmail: input.EmployeeEmail,
			}, nil
		},
	}
	handler := NewRequestHandler(stub)

	body := `{"type":"Equipment","items":[{"name":"Laptop","qty":2}],"employeeEmail":"spoofed@example.com"}`
	c, rec := newTestContext(t, http.MethodPost, "/requests", body)
	c.Set("email", "alice@example.com")
	c.Set("role", domain.RoleUser)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestRequestHandler_Create_NoUsableItems(t *testing.T) {
	stub := &stubRequestService{
		submitFn: func(ctx context.Context, input ports.SubmitRequestInput) (*domain.Request, error) {
			return nil, domain.ErrNoRequestItems
		},
	}
	handler := NewRequestHandler(stub)

	body := `{"type":"Equipment","items":[{"name":"","qty":1}]}`
	c, _ := newTestContext(t, http.MethodPost, "/requests", body)
	c.Set("email", "alice@example.com")
	c.Set("role", domain.RoleUser)

	if err := handler.Create(c); !errors.Is(err, domain.ErrNoRequestItems) {
		t.Fatalf("expected ErrNoRequestItems to propagate, got %v", err)
	}
}
