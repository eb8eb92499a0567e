package notification_repository

import (
	"context"
	"errors"
	"time"
	"training-hub/internal/domain/models"
	ports "training-hub/internal/domain/ports/output"
	notification_port "training-hub/internal/domain/ports/output/notification"
	"training-hub/internal/infrastructure/persistence/postgres"
	"training-hub/internal/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const defaultListLimit = 50

type NotificationRepository struct {
	querier postgres.Querier
	log     ports.Logger
}

func NewNotificationRepository(querier postgres.Querier, log ports.Logger) notification_port.NotificationRepository {
	return &NotificationRepository{querier: querier, log: log}
}

func (r *NotificationRepository) CreateNotifications(ctx context.Context, notifications []*models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	now := time.Now().UTC()
	ids := make([]string, 0, len(notifications))
	userIDs := make([]int64, 0, len(notifications))
	types := make([]string, 0, len(notifications))
	titles := make([]string, 0, len(notifications))
	messages := make([]string, 0, len(notifications))
	links := make([]*string, 0, len(notifications))
	for _, n := range notifications {
		if n.UserID == 0 || n.Title == "" {
			return utils.ErrInvalidArgument
		}
		if n.ID == uuid.Nil {
			n.ID = uuid.New()
		}
		if n.Type == "" {
			n.Type = models.NotificationTypePR
		}
		n.IsRead = false
		n.CreatedAt = now
		ids = append(ids, n.ID.String())
		userIDs = append(userIDs, n.UserID)
		types = append(types, string(n.Type))
		titles = append(titles, n.Title)
		messages = append(messages, n.Message)
		links = append(links, n.LinkTo)
	}

	const q = `
		INSERT INTO notifications (id, user_id, type, title, message, link_to, is_read, created_at)
		SELECT u.id::uuid, u.user_id, u.type, u.title, u.message, u.link_to, false, @created_at
		FROM unnest(@ids::text[], @user_ids::bigint[], @types::text[], @titles::text[], @messages::text[], @links::text[])
			AS u(id, user_id, type, title, message, link_to);
	`
	tag, err := r.querier.Exec(ctx, q, pgx.NamedArgs{
		"ids":        ids,
		"user_ids":   userIDs,
		"types":      types,
		"titles":     titles,
		"messages":   messages,
		"links":      links,
		"created_at": now,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == postgres.CodeForeignKeyViolation {
			r.log.Warn("CreateNotifications unknown recipient", "constraint", pgErr.ConstraintName)
			return utils.ErrUserNotFound
		}
		r.log.Error("CreateNotifications failed", "count", len(notifications), "err", err)
		return err
	}
	r.log.Debug("notifications stored", "count", tag.RowsAffected())
	return nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64, unreadOnly bool, limit int) ([]*models.Notification, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	const q = `
		SELECT id, user_id, type, title, message, link_to, is_read, created_at
		FROM notifications
		WHERE user_id = @user_id AND (NOT @unread_only OR is_read = false)
		ORDER BY created_at DESC, id
		LIMIT @limit;
	`
	rows, err := r.querier.Query(ctx, q, pgx.NamedArgs{"user_id": userID, "unread_only": unreadOnly, "limit": limit})
	if err != nil {
		r.log.Error("ListByUser query failed", "user_id", userID, "err", err)
		return nil, err
	}
	defer rows.Close()

	res := make([]*models.Notification, 0)
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &n.LinkTo, &n.IsRead, &n.CreatedAt); err != nil {
			r.log.Error("ListByUser scan failed", "user_id", userID, "err", err)
			return nil, err
		}
		res = append(res, &n)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return res, nil
}

// MarkRead flips is_read for the recipient only. A notification owned by
// someone else yields ErrForbidden.
func (r *NotificationRepository) MarkRead(ctx context.Context, id uuid.UUID, userID int64) error {
	const q = `
		UPDATE notifications
		SET is_read = true
		WHERE id = @id AND user_id = @user_id;
	`
	tag, err := r.querier.Exec(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID})
	if err != nil {
		r.log.Error("MarkRead failed", "notification_id", id, "err", err)
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	const ownerQ = `SELECT user_id FROM notifications WHERE id = @id;`
	var owner int64
	if err := r.querier.QueryRow(ctx, ownerQ, pgx.NamedArgs{"id": id}).Scan(&owner); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return utils.ErrNotificationNotFound
		}
		r.log.Error("MarkRead owner check failed", "notification_id", id, "err", err)
		return err
	}
	return utils.ErrForbidden
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	const q = `
		UPDATE notifications
		SET is_read = true
		WHERE user_id = @user_id AND is_read = false;
	`
	tag, err := r.querier.Exec(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		r.log.Error("MarkAllRead failed", "user_id", userID, "err", err)
		return 0, err
	}
	return tag.RowsAffected(), nil
}
