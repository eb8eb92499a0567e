package input

import (
	"context"
	"training-hub/internal/domain/models"

	"github.com/google/uuid"
)

//go:generate mockery --name NotificationInputPort --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename NotificationInputPort.go

type NotificationInputPort interface {
	Notify(ctx context.Context, draft *models.Notification) (*models.Notification, error)
	NotifyMany(ctx context.Context, drafts []*models.Notification) ([]*models.Notification, error)
	ListForUser(ctx context.Context, userID int64, unreadOnly bool, limit int) ([]*models.Notification, error)
	MarkRead(ctx context.Context, userID int64, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
}
