package ports

import (
	"context"

	"github.com/hrdesk/hr-system/internal/core/domain"
)

// RequestItemInput is one line of a submitted request. Items with an empty
// name are silently dropped; a quantity below 1 is coerced to 1.
type RequestItemInput struct {
	Name string
	Qty  int
}

// SubmitRequestInput carries a new resource request. EmployeeEmail is the
// session user's email, supplied by the transport layer from the validated
// session, never by the client.
type SubmitRequestInput struct {
	Type          string
	Items         []RequestItemInput
	EmployeeEmail string
}

// RequestService manages resource requests. Requests belong to their creator:
// listing is always scoped to one email, and no edit or delete exists.
type RequestService interface {
	ListForUser(ctx context.Context, email string) ([]domain.Request, error)
	Submit(ctx context.Context, input SubmitRequestInput) (*domain.Request, error)
}
