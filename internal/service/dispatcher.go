package service

import (
	"context"
	"encoding/json"
	"time"

	"idea-marketplace-backend/internal/database/models"
	"idea-marketplace-backend/internal/logger"
	"idea-marketplace-backend/internal/repository"

	"gorm.io/datatypes"
)

//go:generate mockgen -source=dispatcher.go -destination=../mocks/notifier_mocks.go -package=mocks

// OutboundNotifier pushes a stored notification to an external channel
type OutboundNotifier interface {
	Push(ctx context.Context, notification *models.Notification) error
}

// Dispatcher fans committed events out into one notification row per recipient.
// Failures are logged and skipped; they never reach the caller.
type Dispatcher struct {
	repo     repository.NotificationRepositoryInterface
	notifier OutboundNotifier
	now      func() time.Time
}

// NewDispatcher creates a dispatcher. notifier may be nil.
func NewDispatcher(repo repository.NotificationRepositoryInterface, notifier OutboundNotifier) *Dispatcher {
	return &Dispatcher{repo: repo, notifier: notifier, now: time.Now}
}

// Dispatch stores the notifications for events and returns how many rows were written
func (d *Dispatcher) Dispatch(ctx context.Context, events ...Event) int {
	created := 0
	for _, event := range events {
		title, body := RenderNotification(event)
		data := encodeData(event.Data)

		for _, recipient := range uniqueRecipients(event.Recipients...) {
			notification := &models.Notification{
				RecipientEmail:   recipient,
				Type:             event.Type,
				Title:            title,
				Body:             body,
				IdeaID:           event.IdeaID,
				RelatedUserEmail: event.RelatedUser,
				Data:             data,
			}
			notification.CreatedAt = d.now()

			if err := d.repo.Create(ctx, notification); err != nil {
				logger.WithContext(ctx).WithError(err).WithFields(map[string]interface{}{
					"recipient": recipient,
					"type":      event.Type,
				}).Warn("failed to store notification")
				continue
			}
			created++

			if d.notifier == nil {
				continue
			}
			if err := d.notifier.Push(ctx, notification); err != nil {
				logger.WithContext(ctx).WithError(err).WithField("recipient", recipient).
					Debug("outbound push failed")
			}
		}
	}
	return created
}

func encodeData(data map[string]interface{}) datatypes.JSON {
	if len(data) == 0 {
		return nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}
