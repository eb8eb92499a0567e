package notification

import (
	"context"
	"training-hub/internal/domain/models"

	"github.com/google/uuid"
)

//go:generate mockery --name NotificationRepository --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename NotificationRepository.go

type NotificationRepository interface {
	CreateNotifications(ctx context.Context, notifications []*models.Notification) error
	ListByUser(ctx context.Context, userID int64, unreadOnly bool, limit int) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID, userID int64) error
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
}
