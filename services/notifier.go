package services

import (
	"context"
	"log/slog"
	"time"

	"gamelibrary/metrics"
	"gamelibrary/models"

	"github.com/google/uuid"
)

// Notifier receives notification intents. Implementations decide how, and
// whether, the user sees them.
type Notifier interface {
	Notify(n models.Notification)
}

// NotifierFunc adapts a function to the Notifier interface
type NotifierFunc func(n models.Notification)

func (f NotifierFunc) Notify(n models.Notification) { f(n) }

// Notifiers fans a notification out to every notifier in the list
type Notifiers []Notifier

func (ns Notifiers) Notify(n models.Notification) {
	for _, notifier := range ns {
		if notifier != nil {
			notifier.Notify(n)
		}
	}
}

// LogNotifier writes notifications to a structured logger
type LogNotifier struct {
	Logger *slog.Logger
}

func (l LogNotifier) Notify(n models.Notification) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	level := slog.LevelInfo
	if n.Kind == models.NotificationError {
		level = slog.LevelWarn
	}
	logger.Log(context.Background(), level, n.Message, "notification_id", n.ID, "kind", n.Kind, "title", n.Title)
}

func newNotification(kind models.NotificationKind, title, message string) models.Notification {
	return models.Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
}

func emit(notifier Notifier, kind models.NotificationKind, title, message string) {
	metrics.NotificationsSent.WithLabelValues(string(kind)).Inc()
	notifier.Notify(newNotification(kind, title, message))
}
