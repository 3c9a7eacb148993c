package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/madiallo/fruittrack/internal/service/ledger"
	"github.com/madiallo/fruittrack/pkg/clients/notify"
)

// MessageHandler serves CEO announcements.
type MessageHandler struct {
	svc      *ledger.Service
	notifier notify.Publisher
	logger   *zap.Logger
}

// NewMessageHandler constructs the HTTP adapter for CEO messages.
func NewMessageHandler(svc *ledger.Service, notifier notify.Publisher, logger *zap.Logger) *MessageHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &MessageHandler{svc: svc, notifier: notifier, logger: logger}
}

// ListMessages returns announcements, narrowed to a role when ?role= is
// given or when the acting identity carries one.
func (h *MessageHandler) ListMessages(c *gin.Context) {
	role := c.Query("role")
	if role == "" {
		role = actorFrom(c).Role
	}

	if role == "" {
		messages, err := h.svc.Messages(c.Request.Context())
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, messages)
		return
	}

	messages, err := h.svc.MessagesFor(c.Request.Context(), role)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// CreateMessage posts a new announcement.
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var in ledger.CeoMessageInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	message, err := h.svc.AddCeoMessage(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	publish(c, h.notifier, "addCeoMessage", "ceoMessage", message.ID)
	c.JSON(http.StatusCreated, message)
}

// MarkRead flags an announcement as read. The flag never goes back.
func (h *MessageHandler) MarkRead(c *gin.Context) {
	found, err := h.svc.MarkMessageAsRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": found})
}
