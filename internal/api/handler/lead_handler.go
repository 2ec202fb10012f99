package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/amk-marketing/landing-api/internal/api/metrics"
	"github.com/amk-marketing/landing-api/internal/core/ports"
)

// LeadHandler handles HTTP requests for demo-request leads.
type LeadHandler struct {
	service ports.LeadService
}

func NewLeadHandler(service ports.LeadService) *LeadHandler {
	return &LeadHandler{service: service}
}

// Submit handles POST /api/demo-request.
//
// @Summary      Submit a demo request
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body      createLeadRequest  true  "Demo request form"
// @Success      200   {object}  submitLeadResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/demo-request [post]
func (h *LeadHandler) Submit(c echo.Context) error {
	var req createLeadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Success: false, Message: msgInvalidData})
	}

	if err := c.Validate(&req); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			for _, fe := range ve.Fields {
				metrics.LeadValidationErrorsTotal.WithLabelValues(fe.Field).Inc()
			}
			return c.JSON(http.StatusBadRequest, errorResponse{
				Success: false,
				Message: msgInvalidData,
				Errors:  ve.Fields,
			})
		}
		return c.JSON(http.StatusBadRequest, errorResponse{Success: false, Message: msgInvalidData})
	}

	result, err := h.service.SubmitLead(c.Request().Context(), ports.SubmitLeadInput{
		FullName:         req.FullName,
		Phone:            req.Phone,
		Email:            req.Email,
		Organization:     req.Organization,
		OrganizationType: req.OrganizationType,
		Requirements:     req.Requirements,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Success: false, Message: msgInternalError})
	}

	return c.JSON(http.StatusOK, submitLeadResponse{
		Success: true,
		Message: msgSubmitOK,
		ID:      result.ID,
	})
}

// List handles GET /api/demo-requests.
//
// @Summary      List captured demo requests, newest first
// @Tags         leads
// @Produce      json
// @Success      200  {array}   domain.Lead
// @Failure      500  {object}  errorResponse
// @Router       /api/demo-requests [get]
func (h *LeadHandler) List(c echo.Context) error {
	leads, err := h.service.ListLeads(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Success: false, Message: msgInternalShort})
	}
	return c.JSON(http.StatusOK, leads)
}
