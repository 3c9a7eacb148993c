package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/madiallo/fruittrack/internal/service/export"
)

// ExportHandler triggers spreadsheet snapshots on demand.
type ExportHandler struct {
	svc    *export.Service
	logger *zap.Logger
}

// NewExportHandler constructs the HTTP adapter for the exporter. A nil
// service means export is not configured and the endpoint reports so.
func NewExportHandler(svc *export.Service, logger *zap.Logger) *ExportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportHandler{svc: svc, logger: logger}
}

// Snapshot exports current stats, fruit performance and stock levels.
func (h *ExportHandler) Snapshot(c *gin.Context) {
	if h.svc == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "export is not configured"})
		return
	}

	if err := h.svc.Snapshot(c.Request.Context()); err != nil {
		h.logger.Error("snapshot export failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to export snapshot"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"exported": true})
}
