package ledger

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/madiallo/fruittrack/internal/domain/models"
	"github.com/madiallo/fruittrack/internal/repository/records"
)

// CeoMessageInput carries the fields of a new announcement. An empty
// recipient addresses everyone.
type CeoMessageInput struct {
	Message   string                  `json:"message"`
	Recipient models.MessageRecipient `json:"recipient"`
}

// Messages returns the persisted CEO message collection.
func (s *Service) Messages(ctx context.Context) ([]models.CeoMessage, error) {
	return records.Load[models.CeoMessage](ctx, s.store, records.KeyCeoMessages, s.logger)
}

// MessagesFor narrows the collection to messages visible to a role. This is
// a read-side convenience; the stored records are untouched.
func (s *Service) MessagesFor(ctx context.Context, role string) ([]models.CeoMessage, error) {
	messages, err := s.Messages(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]models.CeoMessage, 0, len(messages))
	for _, m := range messages {
		if m.VisibleTo(role) {
			visible = append(visible, m)
		}
	}
	return visible, nil
}

// AddCeoMessage appends an unread announcement.
func (s *Service) AddCeoMessage(ctx context.Context, in CeoMessageInput) (models.CeoMessage, error) {
	if in.Message == "" {
		return models.CeoMessage{}, models.Invalid("message", "is required")
	}
	if in.Recipient == "" {
		in.Recipient = models.RecipientAll
	}
	if !models.ValidRecipient(in.Recipient) {
		return models.CeoMessage{}, models.Invalid("recipient", "unknown recipient")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	messages, err := s.Messages(ctx)
	if err != nil {
		return models.CeoMessage{}, err
	}

	message := models.CeoMessage{
		ID:        models.NewID("message"),
		Message:   in.Message,
		Recipient: in.Recipient,
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}

	messages = append(messages, message)
	if err := records.Save(ctx, s.store, records.KeyCeoMessages, messages); err != nil {
		return models.CeoMessage{}, err
	}

	s.logger.Info("ceo message posted",
		zap.String("id", message.ID),
		zap.String("recipient", string(message.Recipient)))
	return message, nil
}

// MarkMessageAsRead sets isRead on the matching message. The flag only ever
// moves false -> true; marking an already-read message or an unknown id is
// a no-op.
func (s *Service) MarkMessageAsRead(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages, err := s.Messages(ctx)
	if err != nil {
		return false, err
	}

	for i := range messages {
		if messages[i].ID != id {
			continue
		}
		if messages[i].IsRead {
			return true, nil
		}
		messages[i].IsRead = true
		if err := records.Save(ctx, s.store, records.KeyCeoMessages, messages); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}
