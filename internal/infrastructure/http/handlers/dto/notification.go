package dto

import (
	"time"
	"training-hub/internal/domain/models"
)

type NotificationDTO struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	LinkTo    *string   `json:"linkTo,omitempty"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToNotificationDTOs(ns []*models.Notification) []NotificationDTO {
	res := make([]NotificationDTO, 0, len(ns))
	for _, n := range ns {
		res = append(res, NotificationDTO{
			ID:        n.ID.String(),
			Type:      string(n.Type),
			Title:     n.Title,
			Message:   n.Message,
			LinkTo:    n.LinkTo,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}
	return res
}
