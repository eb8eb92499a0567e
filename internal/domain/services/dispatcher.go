package services

import (
	"context"
	"training-hub/internal/domain/models"
	uow "training-hub/internal/domain/ports/output/uow"
)

//go:generate mockery --name NotificationDispatcher --dir . --output ../../../mocks --outpkg mocks --with-expecter --filename NotificationDispatcher.go

// NotificationDispatcher splits delivery in two: Stage persists inside the
// caller's transaction, Publish pushes after commit and never fails.
type NotificationDispatcher interface {
	Stage(ctx context.Context, tx uow.Transaction, drafts []*models.Notification) error
	Publish(notifications []*models.Notification)
}
