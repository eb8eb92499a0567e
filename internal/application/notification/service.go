package notification

import (
	"context"
	"training-hub/internal/domain/models"
	"training-hub/internal/domain/ports/input"
	ports "training-hub/internal/domain/ports/output"
	"training-hub/internal/domain/ports/output/realtime"
	uow "training-hub/internal/domain/ports/output/uow"
	"training-hub/internal/domain/services"
	"training-hub/internal/utils"

	"github.com/google/uuid"
)

const maxListLimit = 200

var (
	_ input.NotificationInputPort     = (*Service)(nil)
	_ services.NotificationDispatcher = (*Service)(nil)
)

type Service struct {
	uow       uow.UnitOfWork
	publisher realtime.Publisher
	log       ports.Logger
}

func NewService(uow uow.UnitOfWork, publisher realtime.Publisher, log ports.Logger) *Service {
	if publisher == nil {
		publisher = realtime.NoopPublisher{}
	}
	return &Service{uow: uow, publisher: publisher, log: log}
}

func (s *Service) Stage(ctx context.Context, tx uow.Transaction, drafts []*models.Notification) error {
	if len(drafts) == 0 {
		return nil
	}
	for _, d := range drafts {
		if d == nil || d.UserID == 0 || d.Title == "" {
			return utils.ErrInvalidArgument
		}
	}
	if err := tx.NotificationRepository().CreateNotifications(ctx, drafts); err != nil {
		s.log.Error("Stage notifications failed", "count", len(drafts), "err", err)
		return err
	}
	return nil
}

func (s *Service) Publish(notifications []*models.Notification) {
	for _, n := range notifications {
		if n == nil {
			continue
		}
		if err := s.publisher.PublishToUser(n.UserID, models.EventNotification, n.Event()); err != nil {
			s.log.Warn("notification publish failed", "user_id", n.UserID, "notification_id", n.ID, "err", err)
		}
	}
}

func (s *Service) Notify(ctx context.Context, draft *models.Notification) (*models.Notification, error) {
	res, err := s.NotifyMany(ctx, []*models.Notification{draft})
	if err != nil {
		return nil, err
	}
	return res[0], nil
}

func (s *Service) NotifyMany(ctx context.Context, drafts []*models.Notification) ([]*models.Notification, error) {
	if len(drafts) == 0 {
		return nil, utils.ErrInvalidArgument
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("NotifyMany begin tx failed", "err", err)
		return nil, err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()
	if err := s.Stage(ctx, tx, drafts); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		s.log.Error("NotifyMany commit failed", "err", err)
		return nil, err
	}
	commit = true
	s.Publish(drafts)
	return drafts, nil
}

func (s *Service) ListForUser(ctx context.Context, userID int64, unreadOnly bool, limit int) ([]*models.Notification, error) {
	if userID <= 0 || limit < 0 {
		return nil, utils.ErrInvalidArgument
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()
	return tx.NotificationRepository().ListByUser(ctx, userID, unreadOnly, limit)
}

func (s *Service) MarkRead(ctx context.Context, userID int64, id uuid.UUID) error {
	if userID <= 0 || id == uuid.Nil {
		return utils.ErrInvalidArgument
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()
	if err := tx.NotificationRepository().MarkRead(ctx, id, userID); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}
	commit = true
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	if userID <= 0 {
		return 0, utils.ErrInvalidArgument
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return 0, err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()
	n, err := tx.NotificationRepository().MarkAllRead(ctx, userID)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	commit = true
	return n, nil
}
