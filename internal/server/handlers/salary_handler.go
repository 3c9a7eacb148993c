package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/madiallo/fruittrack/internal/service/ledger"
	"github.com/madiallo/fruittrack/pkg/clients/notify"
)

// SalaryHandler serves base salaries and the payment log.
type SalaryHandler struct {
	svc      *ledger.Service
	notifier notify.Publisher
	logger   *zap.Logger
}

// NewSalaryHandler constructs the HTTP adapter for salary operations.
func NewSalaryHandler(svc *ledger.Service, notifier notify.Publisher, logger *zap.Logger) *SalaryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &SalaryHandler{svc: svc, notifier: notifier, logger: logger}
}

// ListSalaries returns the base salary collection.
func (h *SalaryHandler) ListSalaries(c *gin.Context) {
	salaries, err := h.svc.Salaries(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, salaries)
}

// CreateSalary sets the base salary on file for a user.
func (h *SalaryHandler) CreateSalary(c *gin.Context) {
	var in ledger.UserSalaryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	salary, err := h.svc.AddUserSalary(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	publish(c, h.notifier, "addUserSalary", "salary", salary.ID)
	c.JSON(http.StatusCreated, salary)
}

type updateSalaryRequest struct {
	BaseSalary float64 `json:"baseSalary"`
}

// UpdateSalary replaces the base salary of the user named in the path.
func (h *SalaryHandler) UpdateSalary(c *gin.Context) {
	var req updateSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	salary, found, err := h.svc.UpdateUserSalary(c.Request.Context(), c.Param("email"), req.BaseSalary)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{"updated": false})
		return
	}

	publish(c, h.notifier, "updateUserSalary", "salary", salary.ID)
	c.JSON(http.StatusOK, salary)
}

// ListPayments returns the salary payment log.
func (h *SalaryHandler) ListPayments(c *gin.Context) {
	payments, err := h.svc.SalaryPayments(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// CreatePayment records a salary payment; it starts unpaid.
func (h *SalaryHandler) CreatePayment(c *gin.Context) {
	var in ledger.SalaryPaymentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	payment, err := h.svc.RecordSalaryPayment(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	publish(c, h.notifier, "recordSalaryPayment", "salaryPayment", payment.ID)
	c.JSON(http.StatusCreated, payment)
}

// TogglePayment flips the paid flag on a payment. An unknown id is a quiet
// no-op.
func (h *SalaryHandler) TogglePayment(c *gin.Context) {
	payment, found, err := h.svc.ToggleSalaryPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{"updated": false})
		return
	}

	publish(c, h.notifier, "toggleSalaryPayment", "salaryPayment", payment.ID)
	c.JSON(http.StatusOK, payment)
}
