package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const NotificationTypePR NotificationType = "PR"

const EventNotification = "notification"

// Notification is delivered to exactly one user. Only IsRead changes after creation.
type Notification struct {
	ID        uuid.UUID
	UserID    int64
	Type      NotificationType
	Title     string
	Message   string
	LinkTo    *string
	IsRead    bool
	CreatedAt time.Time
}

type NotificationEvent struct {
	ID      string           `json:"id"`
	Type    NotificationType `json:"type"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	LinkTo  *string          `json:"linkTo,omitempty"`
}

func (n *Notification) Event() NotificationEvent {
	return NotificationEvent{
		ID:      n.ID.String(),
		Type:    n.Type,
		Title:   n.Title,
		Message: n.Message,
		LinkTo:  n.LinkTo,
	}
}
