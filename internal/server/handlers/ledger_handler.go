package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/madiallo/fruittrack/internal/domain/models"
	"github.com/madiallo/fruittrack/internal/service/ledger"
	"github.com/madiallo/fruittrack/pkg/clients/notify"
)

// LedgerHandler serves purchases, assignments, sales and expenses.
type LedgerHandler struct {
	svc      *ledger.Service
	notifier notify.Publisher
	logger   *zap.Logger
}

// NewLedgerHandler constructs the HTTP adapter for the ledger repository.
func NewLedgerHandler(svc *ledger.Service, notifier notify.Publisher, logger *zap.Logger) *LedgerHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &LedgerHandler{svc: svc, notifier: notifier, logger: logger}
}

// ListPurchases returns the purchase collection.
func (h *LedgerHandler) ListPurchases(c *gin.Context) {
	purchases, err := h.svc.Purchases(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, purchases)
}

// CreatePurchase records a purchase, stamping the purchaser identity when
// the payload omits it.
func (h *LedgerHandler) CreatePurchase(c *gin.Context) {
	var in ledger.PurchaseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	actor := actorFrom(c)
	if in.PurchaserEmail == "" {
		in.PurchaserEmail = actor.Email
	}
	if in.EmployeeName == "" {
		in.EmployeeName = actor.Name
	}

	purchase, err := h.svc.AddPurchase(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	publish(c, h.notifier, "addPurchase", "purchase", purchase.ID)
	c.JSON(http.StatusCreated, purchase)
}

// DeletePurchase removes a purchase; an unknown id reports removed=false.
func (h *LedgerHandler) DeletePurchase(c *gin.Context) {
	removed, err := h.svc.DeletePurchase(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if removed {
		publish(c, h.notifier, "deletePurchase", "purchase", c.Param("id"))
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// ListAssignments returns the assignment collection, sales included.
func (h *LedgerHandler) ListAssignments(c *gin.Context) {
	assignments, err := h.svc.Assignments(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// CreateAssignment records a new seller assignment.
func (h *LedgerHandler) CreateAssignment(c *gin.Context) {
	var in ledger.AssignmentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	actor := actorFrom(c)
	if in.SellerEmail == "" {
		in.SellerEmail = actor.Email
	}
	if in.SellerName == "" {
		in.SellerName = actor.Name
	}

	assignment, err := h.svc.AddAssignment(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	publish(c, h.notifier, "addAssignment", "assignment", assignment.ID)
	c.JSON(http.StatusCreated, assignment)
}

// DeleteAssignment removes an assignment and its sales.
func (h *LedgerHandler) DeleteAssignment(c *gin.Context) {
	removed, err := h.svc.DeleteAssignment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if removed {
		publish(c, h.notifier, "deleteAssignment", "assignment", c.Param("id"))
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// ListSales flattens every assignment's sales into one list.
func (h *LedgerHandler) ListSales(c *gin.Context) {
	assignments, err := h.svc.Assignments(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	sales := make([]models.Sale, 0)
	for _, a := range assignments {
		sales = append(sales, a.Sales...)
	}
	c.JSON(http.StatusOK, sales)
}

type createSaleRequest struct {
	AssignmentID string `json:"assignmentId"`
	ledger.SaleInput
}

// CreateSale records a sale against an assignment; an unknown or empty
// assignment id creates a fresh in-transit assignment around the sale.
func (h *LedgerHandler) CreateSale(c *gin.Context) {
	var req createSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	actor := actorFrom(c)
	if req.SellerEmail == "" {
		req.SellerEmail = actor.Email
	}
	if req.SellerName == "" {
		req.SellerName = actor.Name
	}

	assignment, err := h.svc.AddSale(c.Request.Context(), req.AssignmentID, req.SaleInput)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	publish(c, h.notifier, "addSale", "assignment", assignment.ID)
	c.JSON(http.StatusCreated, assignment)
}

// DeleteSale removes one sale from an assignment; the assignment stays.
func (h *LedgerHandler) DeleteSale(c *gin.Context) {
	removed, err := h.svc.DeleteSale(c.Request.Context(), c.Param("id"), c.Param("saleId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if removed {
		publish(c, h.notifier, "deleteSale", "sale", c.Param("saleId"))
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

type updateStatusRequest struct {
	Status models.AssignmentStatus `json:"status"`
}

// UpdateAssignmentStatus advances an assignment through its lifecycle.
func (h *LedgerHandler) UpdateAssignmentStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	assignment, found, err := h.svc.UpdateAssignmentStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{"updated": false})
		return
	}

	publish(c, h.notifier, "updateAssignmentStatus", "assignment", assignment.ID)
	c.JSON(http.StatusOK, assignment)
}

// ListCarExpenses returns the car expense collection.
func (h *LedgerHandler) ListCarExpenses(c *gin.Context) {
	expenses, err := h.svc.CarExpenses(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// CreateCarExpense records a vehicle expense, stamping the driver identity.
func (h *LedgerHandler) CreateCarExpense(c *gin.Context) {
	var in ledger.CarExpenseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if in.DriverEmail == "" {
		in.DriverEmail = actorFrom(c).Email
	}

	expense, err := h.svc.AddCarExpense(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	publish(c, h.notifier, "addCarExpense", "carExpense", expense.ID)
	c.JSON(http.StatusCreated, expense)
}

// DeleteCarExpense removes a vehicle expense.
func (h *LedgerHandler) DeleteCarExpense(c *gin.Context) {
	removed, err := h.svc.DeleteCarExpense(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if removed {
		publish(c, h.notifier, "deleteCarExpense", "carExpense", c.Param("id"))
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// ListOtherExpenses returns the misc expense collection.
func (h *LedgerHandler) ListOtherExpenses(c *gin.Context) {
	expenses, err := h.svc.OtherExpenses(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// CreateOtherExpense records a miscellaneous expense.
func (h *LedgerHandler) CreateOtherExpense(c *gin.Context) {
	var in ledger.OtherExpenseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	expense, err := h.svc.AddOtherExpense(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	publish(c, h.notifier, "addOtherExpense", "otherExpense", expense.ID)
	c.JSON(http.StatusCreated, expense)
}

// DeleteOtherExpense removes a miscellaneous expense.
func (h *LedgerHandler) DeleteOtherExpense(c *gin.Context) {
	removed, err := h.svc.DeleteOtherExpense(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if removed {
		publish(c, h.notifier, "deleteOtherExpense", "otherExpense", c.Param("id"))
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}
