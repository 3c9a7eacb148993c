// Package notify delivers operation events to an external webhook. The
// engine itself never notifies anyone; the transport layer publishes an
// event after a mutation succeeds, and delivery failures are logged, never
// surfaced to the original caller.
package notify

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Event describes one completed mutation.
type Event struct {
	Operation string    `json:"operation"`
	Entity    string    `json:"entity"`
	RecordID  string    `json:"recordId,omitempty"`
	Actor     string    `json:"actor,omitempty"`
	At        time.Time `json:"at"`
}

// Publisher sends operation events somewhere a human might see them.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

// WebhookClient is a resty-backed Publisher posting JSON events to a
// configured URL.
type WebhookClient struct {
	httpClient *resty.Client
	url        string
	logger     *zap.Logger
}

// NewWebhookClient builds a webhook publisher for the given URL.
func NewWebhookClient(url string, logger *zap.Logger) *WebhookClient {
	if logger == nil {
		logger = zap.NewNop()
	}

	restyClient := resty.New().
		SetHeader("Content-Type", "application/json").
		SetTimeout(10 * time.Second)

	return &WebhookClient{httpClient: restyClient, url: url, logger: logger}
}

// Publish posts the event. Errors are logged and swallowed; a missing
// notification must never fail the operation it describes.
func (c *WebhookClient) Publish(ctx context.Context, event Event) {
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(event).
		Post(c.url)
	if err != nil {
		c.logger.Warn("failed to deliver event", zap.String("operation", event.Operation), zap.Error(err))
		return
	}
	if resp.IsError() {
		c.logger.Warn("event webhook rejected",
			zap.String("operation", event.Operation),
			zap.Int("status", resp.StatusCode()))
	}
}

// Nop is a Publisher that discards every event. Used when no webhook is
// configured.
type Nop struct{}

// Publish discards the event.
func (Nop) Publish(context.Context, Event) {}
