package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/madiallo/fruittrack/internal/service/inventory"
	"github.com/madiallo/fruittrack/pkg/clients/notify"
)

// InventoryHandler serves intake records, stock movements, gradients and
// the current-stock projection.
type InventoryHandler struct {
	svc      *inventory.Service
	notifier notify.Publisher
	logger   *zap.Logger
}

// NewInventoryHandler constructs the HTTP adapter for the inventory ledger.
func NewInventoryHandler(svc *inventory.Service, notifier notify.Publisher, logger *zap.Logger) *InventoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &InventoryHandler{svc: svc, notifier: notifier, logger: logger}
}

// ListItems returns the intake collection.
func (h *InventoryHandler) ListItems(c *gin.Context) {
	items, err := h.svc.Items(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateItem records fruit intake, stamping the store keeper identity.
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var in inventory.ItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	actor := actorFrom(c)
	if in.StoreKeeperEmail == "" {
		in.StoreKeeperEmail = actor.Email
	}
	if in.StoreKeeperName == "" {
		in.StoreKeeperName = actor.Name
	}

	item, err := h.svc.AddItem(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	publish(c, h.notifier, "addInventoryItem", "inventoryItem", item.ID)
	c.JSON(http.StatusCreated, item)
}

// ListMovements returns the movement log.
func (h *InventoryHandler) ListMovements(c *gin.Context) {
	movements, err := h.svc.Movements(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, movements)
}

// CreateMovement records a stock movement.
func (h *InventoryHandler) CreateMovement(c *gin.Context) {
	var in inventory.MovementInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	actor := actorFrom(c)
	if in.StoreKeeperEmail == "" {
		in.StoreKeeperEmail = actor.Email
	}
	if in.StoreKeeperName == "" {
		in.StoreKeeperName = actor.Name
	}

	movement, err := h.svc.AddMovement(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	publish(c, h.notifier, "addStockMovement", "stockMovement", movement.ID)
	c.JSON(http.StatusCreated, movement)
}

// ListGradients returns the gradient collection.
func (h *InventoryHandler) ListGradients(c *gin.Context) {
	gradients, err := h.svc.Gradients(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gradients)
}

// CreateGradient records a gradient application.
func (h *InventoryHandler) CreateGradient(c *gin.Context) {
	var in inventory.GradientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	actor := actorFrom(c)
	if in.StoreKeeperEmail == "" {
		in.StoreKeeperEmail = actor.Email
	}
	if in.StoreKeeperName == "" {
		in.StoreKeeperName = actor.Name
	}

	gradient, err := h.svc.AddGradient(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	publish(c, h.notifier, "addGradient", "gradient", gradient.ID)
	c.JSON(http.StatusCreated, gradient)
}

// CurrentStock returns the derived on-hand quantities per fruit type.
func (h *InventoryHandler) CurrentStock(c *gin.Context) {
	levels, err := h.svc.CurrentStock(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, levels)
}
