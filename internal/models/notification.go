package models

import "time"

type NotificationType string

const (
	NotificationReminder  NotificationType = "reminder"
	NotificationSystem    NotificationType = "system"
	NotificationEmailSent NotificationType = "email-sent"
)

// Notification lives in volatile memory only; it is never persisted across
// a restart.
type Notification struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Timestamp time.Time        `json:"timestamp"`
	Read      bool             `json:"read"`
	EventID   string           `json:"eventId,omitempty"`
}

// WebSocket message envelope
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}
