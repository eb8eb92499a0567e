package uow

import (
	ports "training-hub/internal/domain/ports/output"
	course_port "training-hub/internal/domain/ports/output/course"
	notification_port "training-hub/internal/domain/ports/output/notification"
	pr_port "training-hub/internal/domain/ports/output/pr"
	user_port "training-hub/internal/domain/ports/output/user"

	"context"
	"fmt"
	"training-hub/internal/domain/ports/output/uow"
	course_repo "training-hub/internal/infrastructure/persistence/postgres/course"
	notification_repo "training-hub/internal/infrastructure/persistence/postgres/notification"
	pr_repo "training-hub/internal/infrastructure/persistence/postgres/pr"
	user_repo "training-hub/internal/infrastructure/persistence/postgres/user"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUnitOfWork struct {
	pool *pgxpool.Pool
	log  ports.Logger
}

func NewPostgresUOW(pool *pgxpool.Pool, log ports.Logger) uow.UnitOfWork {
	return &PostgresUnitOfWork{pool: pool, log: log}
}

func (uow *PostgresUnitOfWork) Begin(ctx context.Context) (uow.Transaction, error) {
	tx, err := uow.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error beginning transaction: %w", err)
	}
	return &PostgresTransaction{tx: tx, log: uow.log}, nil
}

type PostgresTransaction struct {
	tx  pgx.Tx
	log ports.Logger
}

func (t *PostgresTransaction) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *PostgresTransaction) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *PostgresTransaction) UserRepository() user_port.UserRepository {
	return user_repo.NewUserRepository(t.tx, t.log)
}

func (t *PostgresTransaction) CourseRepository() course_port.CourseRepository {
	return course_repo.NewCourseRepository(t.tx, t.log)
}

func (t *PostgresTransaction) PRRepository() pr_port.PRRepository {
	return pr_repo.NewPRRepository(t.tx, t.log)
}

func (t *PostgresTransaction) NotificationRepository() notification_port.NotificationRepository {
	return notification_repo.NewNotificationRepository(t.tx, t.log)
}
