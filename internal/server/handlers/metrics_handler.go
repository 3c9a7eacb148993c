package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/madiallo/fruittrack/internal/service/metrics"
)

// MetricsHandler serves the derived financial and performance numbers.
type MetricsHandler struct {
	svc    *metrics.Service
	logger *zap.Logger
}

// NewMetricsHandler constructs the HTTP adapter for the metrics engine.
func NewMetricsHandler(svc *metrics.Service, logger *zap.Logger) *MetricsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MetricsHandler{svc: svc, logger: logger}
}

// Stats returns the company-wide summary.
func (h *MetricsHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// FruitPerformance returns the per-fruit ranking.
func (h *MetricsHandler) FruitPerformance(c *gin.Context) {
	performance, err := h.svc.FruitPerformance(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, performance)
}

// MonthlyPerformance returns the month-by-month breakdown; ?year= defaults
// to the current year.
func (h *MetricsHandler) MonthlyPerformance(c *gin.Context) {
	year := time.Now().Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}
		year = parsed
	}

	monthly, err := h.svc.MonthlyPerformance(c.Request.Context(), year)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, monthly)
}
