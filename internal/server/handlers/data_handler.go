package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/madiallo/fruittrack/internal/service/inventory"
	"github.com/madiallo/fruittrack/internal/service/ledger"
	"github.com/madiallo/fruittrack/pkg/clients/notify"
)

// DataHandler serves the bulk clear endpoints. Each clear replaces the
// named collections with empty arrays; removal is permanent.
type DataHandler struct {
	ledger    *ledger.Service
	inventory *inventory.Service
	notifier  notify.Publisher
	logger    *zap.Logger
}

// NewDataHandler constructs the HTTP adapter for bulk data operations.
func NewDataHandler(ledgerSvc *ledger.Service, inventorySvc *inventory.Service, notifier notify.Publisher, logger *zap.Logger) *DataHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &DataHandler{ledger: ledgerSvc, inventory: inventorySvc, notifier: notifier, logger: logger}
}

func (h *DataHandler) clear(c *gin.Context, operation string, fn func() error) {
	if err := fn(); err != nil {
		respondError(c, h.logger, err)
		return
	}
	publish(c, h.notifier, operation, "collection", "")
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

// ClearPurchases empties the purchase collection.
func (h *DataHandler) ClearPurchases(c *gin.Context) {
	h.clear(c, "clearPurchasesData", func() error { return h.ledger.ClearPurchases(c.Request.Context()) })
}

// ClearSales empties the assignment collection and every owned sale.
func (h *DataHandler) ClearSales(c *gin.Context) {
	h.clear(c, "clearSalesData", func() error { return h.ledger.ClearSales(c.Request.Context()) })
}

// ClearCarExpenses empties the car expense collection.
func (h *DataHandler) ClearCarExpenses(c *gin.Context) {
	h.clear(c, "clearCarExpensesData", func() error { return h.ledger.ClearCarExpenses(c.Request.Context()) })
}

// ClearOtherExpenses empties the misc expense collection.
func (h *DataHandler) ClearOtherExpenses(c *gin.Context) {
	h.clear(c, "clearOtherExpensesData", func() error { return h.ledger.ClearOtherExpenses(c.Request.Context()) })
}

// ClearSalaries empties base salaries and the payment log together.
func (h *DataHandler) ClearSalaries(c *gin.Context) {
	h.clear(c, "clearSalariesData", func() error { return h.ledger.ClearSalaries(c.Request.Context()) })
}

// ClearInventory empties intake, movements and gradients together; the
// stock projection derives from the first two.
func (h *DataHandler) ClearInventory(c *gin.Context) {
	h.clear(c, "clearInventoryData", func() error { return h.inventory.Clear(c.Request.Context()) })
}

// ClearAll empties every collection in the system.
func (h *DataHandler) ClearAll(c *gin.Context) {
	h.clear(c, "clearAllData", func() error {
		if err := h.ledger.ClearAll(c.Request.Context()); err != nil {
			return err
		}
		return h.inventory.Clear(c.Request.Context())
	})
}
