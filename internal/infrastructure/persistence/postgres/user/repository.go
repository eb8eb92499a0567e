package user_repository

import (
	"context"
	"errors"
	"training-hub/internal/domain/models"
	ports "training-hub/internal/domain/ports/output"
	user_port "training-hub/internal/domain/ports/output/user"
	"training-hub/internal/infrastructure/persistence/postgres"
	"training-hub/internal/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const userColumns = `id, name, role, COALESCE(github_id, ''), COALESCE(github_username, ''), created_at, updated_at`

type UserRepository struct {
	querier postgres.Querier
	log     ports.Logger
}

func NewUserRepository(querier postgres.Querier, log ports.Logger) user_port.UserRepository {
	return &UserRepository{querier: querier, log: log}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.Name, &u.Role, &u.GitHubID, &u.GitHubUsername, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1;`
	u, err := scanUser(r.querier.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.ErrUserNotFound
		}
		r.log.Error("GetUserByID failed", "user_id", id, "err", err)
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) FindByGitHubIdentity(ctx context.Context, login string, githubID string) (*models.User, error) {
	if login == "" && githubID == "" {
		return nil, utils.ErrUserNotFound
	}
	const q = `
		SELECT ` + userColumns + `
		FROM users
		WHERE ($1 <> '' AND (github_id = $1 OR github_username = $1))
		   OR ($2 <> '' AND github_id = $2)
		ORDER BY (github_id = $2) DESC NULLS LAST, id
		LIMIT 1;
	`
	u, err := scanUser(r.querier.QueryRow(ctx, q, login, githubID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.ErrUserNotFound
		}
		r.log.Error("FindByGitHubIdentity failed", "login", login, "github_id", githubID, "err", err)
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) UpdateGitHubAccount(ctx context.Context, id int64, githubID string, githubUsername string) error {
	const q = `
		UPDATE users
		SET github_id = NULLIF($2, ''),
			github_username = NULLIF($3, ''),
			updated_at = now()
		WHERE id = $1;
	`
	tag, err := r.querier.Exec(ctx, q, id, githubID, githubUsername)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == postgres.CodeUniqueViolation {
			return utils.ErrAlreadyExists
		}
		r.log.Error("UpdateGitHubAccount failed", "user_id", id, "err", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrUserNotFound
	}
	return nil
}
