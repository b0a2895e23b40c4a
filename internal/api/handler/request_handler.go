package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrdesk/hr-system/internal/api/metrics"
	"github.com/hrdesk/hr-system/internal/core/domain"
	"github.com/hrdesk/hr-system/internal/core/ports"
)

// RequestHandler serves resource requests. Both operations are scoped to the
// session user: the list shows only their own requests, and submissions are
// stamped with their email regardless of payload.
type RequestHandler struct {
	requestService ports.RequestService
}

func NewRequestHandler(requestService ports.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

type requestItemForm struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

type submitRequestForm struct {
	Type  string            `json:"type"  validate:"required"`
	Items []requestItemForm `json:"items" validate:"required"`
}

type requestItemResponse struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

type requestResponse struct {
	ID            string                `json:"id"`
	Type          string                `json:"type"`
	Items         []requestItemResponse `json:"items"`
	Status        string                `json:"status"`
	Date          string                `json:"date"`
	EmployeeEmail string                `json:"employeeEmail"`
}

func toRequestResponse(r *domain.Request) requestResponse {
	items := make([]requestItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, requestItemResponse{Name: it.Name, Qty: it.Qty})
	}
	return requestResponse{
		ID:            r.ID,
		Type:          r.Type,
		Items:         items,
		Status:        string(r.Status),
		Date:          r.Date,
		EmployeeEmail: r.EmployeeEmail,
	}
}

// List returns the session user's requests.
//
// @Summary      List own requests
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  requestResponse
// @Router       /requests [get]
func (h *RequestHandler) List(c echo.Context) error {
	email, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	requests, err := h.requestService.ListForUser(c.Request().Context(), email)
	if err != nil {
		return err
	}

	resp := make([]requestResponse, 0, len(requests))
	for i := range requests {
		resp = append(resp, toRequestResponse(&requests[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create submits a new request for the session user.
//
// @Summary      Submit a request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitRequestForm  true  "Request details"
// @Success      201   {object}  requestResponse
// @Failure      400   {object}  map[string]string  "no item with a non-empty name"
// @Router       /requests [post]
func (h *RequestHandler) Create(c echo.Context) error {
	email, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req submitRequestForm
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items := make([]ports.RequestItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ports.RequestItemInput{Name: it.Name, Qty: it.Qty})
	}

	request, err := h.requestService.Submit(c.Request().Context(), ports.SubmitRequestInput{
		Type:          req.Type,
		Items:         items,
		EmployeeEmail: email,
	})
	if err != nil {
		return err
	}

	metrics.RequestsSubmittedTotal.WithLabelValues(request.Type).Inc()
	return c.JSON(http.StatusCreated, toRequestResponse(request))
}
