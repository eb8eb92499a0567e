package pr_repository

import (
	"context"
	"errors"
	"training-hub/internal/domain/models"
	ports "training-hub/internal/domain/ports/output"
	pr_port "training-hub/internal/domain/ports/output/pr"
	"training-hub/internal/infrastructure/persistence/postgres"
	"training-hub/internal/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const prColumns = `id, trainee_id, course_id, task_id, title, description, repo_name, repo_url, pr_url,
		pr_number, github_author_id, status, reviewer_id, created_at, updated_at, reviewed_at`

type PRRepository struct {
	querier postgres.Querier
	log     ports.Logger
}

func NewPRRepository(querier postgres.Querier, log ports.Logger) pr_port.PRRepository {
	return &PRRepository{querier: querier, log: log}
}

func scanPR(row pgx.Row) (*models.PullRequest, error) {
	var pr models.PullRequest
	err := row.Scan(
		&pr.ID, &pr.TraineeID, &pr.CourseID, &pr.TaskID, &pr.Title, &pr.Description,
		&pr.RepoName, &pr.RepoURL, &pr.PRURL, &pr.PRNumber, &pr.GitHubAuthorID,
		&pr.Status, &pr.ReviewerID, &pr.CreatedAt, &pr.UpdatedAt, &pr.ReviewedAt,
	)
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

func (r *PRRepository) CreatePR(ctx context.Context, pr *models.PullRequest) error {
	if pr.RepoName == "" || pr.PRNumber <= 0 || pr.TraineeID == 0 || pr.CourseID == 0 {
		return utils.ErrInvalidArgument
	}
	if pr.ID == uuid.Nil {
		pr.ID = uuid.New()
	}
	const q = `
		INSERT INTO pull_requests (id, trainee_id, course_id, task_id, title, description, repo_name, repo_url,
			pr_url, pr_number, github_author_id, status, created_at, updated_at)
		VALUES (@id, @trainee_id, @course_id, @task_id, @title, @description, @repo_name, @repo_url,
			@pr_url, @pr_number, @github_author_id, 'PENDING', now(), now())
		RETURNING status, created_at, updated_at;
	`
	row := r.querier.QueryRow(ctx, q, pgx.NamedArgs{
		"id":               pr.ID,
		"trainee_id":       pr.TraineeID,
		"course_id":        pr.CourseID,
		"task_id":          pr.TaskID,
		"title":            pr.Title,
		"description":      pr.Description,
		"repo_name":        pr.RepoName,
		"repo_url":         pr.RepoURL,
		"pr_url":           pr.PRURL,
		"pr_number":        pr.PRNumber,
		"github_author_id": pr.GitHubAuthorID,
	})
	if err := row.Scan(&pr.Status, &pr.CreatedAt, &pr.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case postgres.CodeUniqueViolation:
				return utils.ErrAlreadyExists
			case postgres.CodeForeignKeyViolation:
				r.log.Warn("CreatePR foreign key violation", "constraint", pgErr.ConstraintName, "repo", pr.RepoName, "pr_number", pr.PRNumber)
				if pgErr.ConstraintName == "pull_requests_course_id_fkey" {
					return utils.ErrCourseNotFound
				}
				return utils.ErrUserNotFound
			}
		}
		r.log.Error("CreatePR failed", "repo", pr.RepoName, "pr_number", pr.PRNumber, "err", err)
		return err
	}
	return nil
}

func (r *PRRepository) getOne(ctx context.Context, op string, q string, args pgx.NamedArgs) (*models.PullRequest, error) {
	pr, err := scanPR(r.querier.QueryRow(ctx, q, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.ErrPRNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == postgres.CodeInvalidText {
			return nil, utils.ErrInvalidArgument
		}
		r.log.Error(op+" failed", "err", err)
		return nil, err
	}
	return pr, nil
}

func (r *PRRepository) GetPRByID(ctx context.Context, id uuid.UUID) (*models.PullRequest, error) {
	const q = `SELECT ` + prColumns + ` FROM pull_requests WHERE id = @id;`
	return r.getOne(ctx, "GetPRByID", q, pgx.NamedArgs{"id": id})
}

func (r *PRRepository) LockPRByID(ctx context.Context, id uuid.UUID) (*models.PullRequest, error) {
	const q = `SELECT ` + prColumns + ` FROM pull_requests WHERE id = @id FOR UPDATE;`
	return r.getOne(ctx, "LockPRByID", q, pgx.NamedArgs{"id": id})
}

func (r *PRRepository) GetPRByRepoAndNumber(ctx context.Context, repoName string, number int) (*models.PullRequest, error) {
	const q = `SELECT ` + prColumns + ` FROM pull_requests WHERE repo_name = @repo_name AND pr_number = @pr_number;`
	return r.getOne(ctx, "GetPRByRepoAndNumber", q, pgx.NamedArgs{"repo_name": repoName, "pr_number": number})
}

func (r *PRRepository) LockPRByRepoAndNumber(ctx context.Context, repoName string, number int) (*models.PullRequest, error) {
	const q = `SELECT ` + prColumns + ` FROM pull_requests WHERE repo_name = @repo_name AND pr_number = @pr_number FOR UPDATE;`
	return r.getOne(ctx, "LockPRByRepoAndNumber", q, pgx.NamedArgs{"repo_name": repoName, "pr_number": number})
}

func (r *PRRepository) UpdateContent(ctx context.Context, pr *models.PullRequest) error {
	const q = `
		UPDATE pull_requests
		SET title = @title,
			description = @description,
			updated_at = now()
		WHERE id = @id
		RETURNING updated_at;
	`
	row := r.querier.QueryRow(ctx, q, pgx.NamedArgs{"id": pr.ID, "title": pr.Title, "description": pr.Description})
	if err := row.Scan(&pr.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return utils.ErrPRNotFound
		}
		r.log.Error("UpdateContent failed", "pr_id", pr.ID, "err", err)
		return err
	}
	return nil
}

// UpdateReview stores status, reviewer and review time. A reviewed PR never
// goes back to PENDING; a nil reviewer keeps the previous one.
func (r *PRRepository) UpdateReview(ctx context.Context, pr *models.PullRequest) error {
	switch pr.Status {
	case models.PRStatusPending, models.PRStatusApproved, models.PRStatusRejected:
	default:
		return utils.ErrInvalidStatus
	}
	const q = `
		UPDATE pull_requests
		SET status = @status,
			reviewer_id = COALESCE(@reviewer_id, reviewer_id),
			reviewed_at = COALESCE(@reviewed_at, reviewed_at),
			updated_at = now()
		WHERE id = @id AND (@status::text <> 'PENDING' OR status = 'PENDING')
		RETURNING reviewer_id, reviewed_at, updated_at;
	`
	row := r.querier.QueryRow(ctx, q, pgx.NamedArgs{
		"id":          pr.ID,
		"status":      pr.Status,
		"reviewer_id": pr.ReviewerID,
		"reviewed_at": pr.ReviewedAt,
	})
	if err := row.Scan(&pr.ReviewerID, &pr.ReviewedAt, &pr.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			const existsQ = `SELECT 1 FROM pull_requests WHERE id = @id;`
			var one int
			if err2 := r.querier.QueryRow(ctx, existsQ, pgx.NamedArgs{"id": pr.ID}).Scan(&one); err2 != nil {
				if errors.Is(err2, pgx.ErrNoRows) {
					return utils.ErrPRNotFound
				}
				r.log.Error("UpdateReview exists check failed", "pr_id", pr.ID, "err", err2)
				return err2
			}
			return utils.ErrInvalidStatus
		}
		r.log.Error("UpdateReview failed", "pr_id", pr.ID, "err", err)
		return err
	}
	return nil
}

func (r *PRRepository) ListPRsByCourse(ctx context.Context, courseID int64, status *models.PRStatus) ([]*models.PullRequest, error) {
	const q = `
		SELECT ` + prColumns + `
		FROM pull_requests
		WHERE course_id = @course_id AND (@status::text IS NULL OR status = @status::text)
		ORDER BY created_at DESC;
	`
	rows, err := r.querier.Query(ctx, q, pgx.NamedArgs{"course_id": courseID, "status": status})
	if err != nil {
		r.log.Error("ListPRsByCourse query failed", "course_id", courseID, "err", err)
		return nil, err
	}
	defer rows.Close()
	res := make([]*models.PullRequest, 0)
	for rows.Next() {
		pr, err := scanPR(rows)
		if err != nil {
			r.log.Error("ListPRsByCourse scan failed", "course_id", courseID, "err", err)
			return nil, err
		}
		res = append(res, pr)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return res, nil
}
