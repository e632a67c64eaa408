package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/octobees/contact-scout/internal/dto"
	"github.com/octobees/contact-scout/internal/fetcher"
	"github.com/octobees/contact-scout/internal/service"
)

// AnalyzeHandler exposes the single-page contact analysis endpoint.
type AnalyzeHandler struct {
	service *service.AnalyzeService
}

// NewAnalyzeHandler constructs an AnalyzeHandler.
func NewAnalyzeHandler(service *service.AnalyzeService) *AnalyzeHandler {
	return &AnalyzeHandler{service: service}
}

// Analyze handles POST /analyze requests.
func (h *AnalyzeHandler) Analyze(c echo.Context) error {
	var req dto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	req.URL = strings.TrimSpace(req.URL)
	if req.URL == "" {
		return Error(c, http.StatusBadRequest, "url is required")
	}

	record, score, err := h.service.AnalyzePage(c.Request().Context(), req.URL, req.Region)
	if err != nil {
		var fetchErr *fetcher.FetchError
		switch {
		case errors.Is(err, service.ErrInvalidURL):
			return Error(c, http.StatusBadRequest, "url must be absolute http(s)")
		case errors.As(err, &fetchErr):
			return Error(c, http.StatusBadGateway, fetchErr.Error())
		default:
			return Error(c, http.StatusInternalServerError, "analysis failed")
		}
	}

	return Success(c, http.StatusOK, "analysis complete", dto.AnalyzeResponse{Record: record, Score: score})
}
