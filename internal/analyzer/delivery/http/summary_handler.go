package http

import (
	"net/http"
	"time"

	"fpl-price-tracker/internal/analyzer/repository"
	"fpl-price-tracker/internal/entity"
	"fpl-price-tracker/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/patrickmn/go-cache"
)

const summaryCacheKey = "summary"

// SummaryResponse is one summary row rendered as JSON.
type SummaryResponse struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	HourlyChange float64 `json:"hourly_change"`
	Progress     float64 `json:"progress"`
	Timestamp    string  `json:"timestamp"`
}

// SummaryHandler serves the current summary view over HTTP. Responses are
// cached briefly so polling clients do not hit the filesystem per request.
type SummaryHandler struct {
	summaryRepo repository.SummaryRepository
	logger      *logger.Logger
	responses   *cache.Cache
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryRepo repository.SummaryRepository, log *logger.Logger) *SummaryHandler {
	return &SummaryHandler{
		summaryRepo: summaryRepo,
		logger:      log,
		responses:   cache.New(30*time.Second, time.Minute),
	}
}

// RegisterRoutes registers the summary routes to the Echo instance.
func (h *SummaryHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)
	e.GET("/api/v1/summary", h.GetSummary)
}

// Health reports liveness.
func (h *SummaryHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// GetSummary returns the latest summary rows.
func (h *SummaryHandler) GetSummary(c echo.Context) error {
	if cached, ok := h.responses.Get(summaryCacheKey); ok {
		return c.JSON(http.StatusOK, cached)
	}

	rows, err := h.summaryRepo.GetAll(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to read summary", logger.ErrorField(err))
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "summary not available yet"})
	}

	response := make([]SummaryResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, toSummaryResponse(row))
	}
	h.responses.Set(summaryCacheKey, response, cache.DefaultExpiration)

	return c.JSON(http.StatusOK, response)
}

func toSummaryResponse(row entity.SummaryRow) SummaryResponse {
	return SummaryResponse{
		Name:         row.Name,
		Price:        row.Price,
		HourlyChange: row.HourlyChange,
		Progress:     row.Progress,
		Timestamp:    row.Timestamp,
	}
}
