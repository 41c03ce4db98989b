package models

import "time"

// NotificationKind tells the presentation layer how to render a notification
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is the intent to tell the user about an outcome. Rendering it
// (toast, banner, log line) is up to whoever receives it.
type Notification struct {
	ID        string           `json:"id"`
	Kind      NotificationKind `json:"kind"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"created_at"`
}
