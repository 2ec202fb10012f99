package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/amk-marketing/landing-api/internal/core/domain"
	"github.com/amk-marketing/landing-api/internal/core/ports"
)

// ContentHandler handles sample Facebook post generation.
type ContentHandler struct {
	service ports.ContentService
}

func NewContentHandler(service ports.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

type generateContentRequest struct {
	Topic string `json:"topic"`
	Tone  string `json:"tone"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

type contentMetadata struct {
	Topic       string `json:"topic"`
	Tone        string `json:"tone"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	GeneratedAt string `json:"generatedAt"`
}

type generateContentResponse struct {
	Success  bool            `json:"success"`
	Content  string          `json:"content"`
	Metadata contentMetadata `json:"metadata"`
}

// Generate handles POST /api/generate-content.
//
// @Summary      Generate sample Facebook post copy
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        body  body      generateContentRequest  true  "Topic, tone and optional scheduling hints"
// @Success      200   {object}  generateContentResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/generate-content [post]
func (h *ContentHandler) Generate(c echo.Context) error {
	var req generateContentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Success: false, Message: msgMissingTopicTone})
	}

	result, err := h.service.Generate(c.Request().Context(), ports.GenerateContentInput{
		Topic: req.Topic,
		Tone:  req.Tone,
		Date:  req.Date,
		Time:  req.Time,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingTopicOrTone) {
			return c.JSON(http.StatusBadRequest, errorResponse{Success: false, Message: msgMissingTopicTone})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Success: false, Message: msgGenerationFailed})
	}

	return c.JSON(http.StatusOK, generateContentResponse{
		Success: true,
		Content: result.Content,
		Metadata: contentMetadata{
			Topic:       result.Topic,
			Tone:        result.Tone,
			Date:        result.Date,
			Time:        result.Time,
			GeneratedAt: result.GeneratedAt.Format(time.RFC3339),
		},
	})
}
