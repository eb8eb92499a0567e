package notification

import (
	input "training-hub/internal/domain/ports/input"
	ports "training-hub/internal/domain/ports/output"
)

type NotificationHandler struct {
	notificationService input.NotificationInputPort
	log                 ports.Logger
}

func NewNotificationHandler(s input.NotificationInputPort, log ports.Logger) *NotificationHandler {
	return &NotificationHandler{notificationService: s, log: log}
}
