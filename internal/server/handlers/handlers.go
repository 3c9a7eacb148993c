// Package handlers adapts HTTP requests to engine operations. Handlers
// contain no business logic: they bind payloads, stamp the acting identity,
// call one service operation and translate its result to a response.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/madiallo/fruittrack/internal/domain/models"
	"github.com/madiallo/fruittrack/pkg/clients/notify"
)

const actorKey = "fruittrack.actor"

// Identity resolves the acting user from upstream-authenticated headers.
// The engine never authenticates; a gateway in front of this service does.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(actorKey, models.Actor{
			Email: c.GetHeader("X-User-Email"),
			Name:  c.GetHeader("X-User-Name"),
			Role:  c.GetHeader("X-User-Role"),
		})
		c.Next()
	}
}

func actorFrom(c *gin.Context) models.Actor {
	if v, ok := c.Get(actorKey); ok {
		if actor, ok := v.(models.Actor); ok {
			return actor
		}
	}
	return models.Actor{}
}

// respondError maps engine failures to HTTP. Validation failures are the
// only caller-visible error kind; anything else is a storage/transport
// rejection.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
		return
	}
	logger.Error("operation rejected", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed"})
}

// publish emits an operation event after a successful mutation. The
// notification is the caller's side effect, kept out of the engine.
func publish(c *gin.Context, publisher notify.Publisher, operation, entity, recordID string) {
	publisher.Publish(c.Request.Context(), notify.Event{
		Operation: operation,
		Entity:    entity,
		RecordID:  recordID,
		Actor:     actorFrom(c).Email,
		At:        time.Now().UTC(),
	})
}
