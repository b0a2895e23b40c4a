package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hrdesk/hr-system/internal/core/domain"
	"github.com/hrdesk/hr-system/internal/core/ports"
	"github.com/hrdesk/hr-system/internal/core/state"
)

// dateLayout is the calendar-date format stored on requests (YYYY-MM-DD).
const dateLayout = "2006-01-02"

// RequestService manages resource requests. A request belongs to the user
// who submitted it and is never edited or deleted afterwards.
type RequestService struct {
	states *state.Manager
	log    zerolog.Logger
	now    func() time.Time
}

func NewRequestService(states *state.Manager, log zerolog.Logger) *RequestService {
	return &RequestService{states: states, log: log, now: time.Now}
}

func (s *RequestService) ListForUser(ctx context.Context, email string) ([]domain.Request, error) {
	var requests []domain.Request
	s.states.View(func(st *domain.State) {
		for _, r := range st.Requests {
			if r.EmployeeEmail == email {
				r.Items = append([]domain.RequestItem(nil), r.Items...)
				requests = append(requests, r)
			}
		}
	})
	return requests, nil
}

// Submit stores a new request. Items with an empty name are dropped and a
// quantity below 1 is coerced to 1; the submission is rejected only when no
// item survives that filter. Status starts Pending and the date is the
// current calendar date.
func (s *RequestService) Submit(ctx context.Context, input ports.SubmitRequestInput) (*domain.Request, error) {
	items := make([]domain.RequestItem, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Name == "" {
			continue
		}
		qty := item.Qty
		if qty < 1 {
			qty = 1
		}
		items = append(items, domain.RequestItem{Name: item.Name, Qty: qty})
	}
	if len(items) == 0 {
		return nil, domain.ErrNoRequestItems
	}

	request := domain.Request{
		ID:            uuid.NewString(),
		Type:          input.Type,
		Items:         items,
		Status:        domain.RequestPending,
		Date:          s.now().Format(dateLayout),
		EmployeeEmail: input.EmployeeEmail,
	}

	err := s.states.Update(ctx, func(st *domain.State) error {
		st.Requests = append(st.Requests, request)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("request_id", request.ID).
		Str("type", request.Type).
		Str("employee_email", request.EmployeeEmail).
		Int("items", len(request.Items)).
		Msg("request submitted")

	return &request, nil
}
