package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/octobees/contact-scout/internal/dto"
	"github.com/octobees/contact-scout/internal/repository"
	"github.com/octobees/contact-scout/internal/service"
)

// RecordsHandler exposes stored analysis records.
type RecordsHandler struct {
	service *service.RecordsService
}

// NewRecordsHandler creates a new handler instance.
func NewRecordsHandler(service *service.RecordsService) *RecordsHandler {
	return &RecordsHandler{service: service}
}

// List handles GET /records requests.
func (h *RecordsHandler) List(c echo.Context) error {
	filter := dto.RecordsFilter{
		Q:       strings.TrimSpace(c.QueryParam("q")),
		Page:    parseIntDefault(c.QueryParam("page"), 1),
		PerPage: parseIntDefault(c.QueryParam("per_page"), 20),
	}

	if sinceStr := strings.TrimSpace(c.QueryParam("since")); sinceStr != "" {
		parsed, err := time.Parse(time.RFC3339, sinceStr)
		if err != nil {
			return Error(c, http.StatusBadRequest, "invalid since (use RFC3339)")
		}
		filter.Since = &parsed
	}

	records, err := h.service.ListRecords(c.Request().Context(), filter)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list records")
	}

	return Success(c, http.StatusOK, "records retrieved", records)
}

// Get handles GET /records/:id requests.
func (h *RecordsHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid record id")
	}

	record, err := h.service.GetRecord(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return Error(c, http.StatusNotFound, "record not found")
		}
		return Error(c, http.StatusInternalServerError, "failed to load record")
	}

	return Success(c, http.StatusOK, "record retrieved", record)
}

// ExportCSV handles GET /admin/records/export requests.
func (h *RecordsHandler) ExportCSV(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="contact_records.csv"`)
	c.Response().WriteHeader(http.StatusOK)

	if err := h.service.ExportCSV(c.Request().Context(), c.Response()); err != nil {
		// Headers are already sent; log and abort the stream.
		c.Logger().Errorf("export records: %v", err)
		return err
	}
	return nil
}

// parseIntDefault falls back for missing, malformed and non-positive input;
// a zero or negative per_page must not disable pagination.
func parseIntDefault(input string, fallback int) int {
	if input == "" {
		return fallback
	}
	if value, err := strconv.Atoi(input); err == nil && value > 0 {
		return value
	}
	return fallback
}
