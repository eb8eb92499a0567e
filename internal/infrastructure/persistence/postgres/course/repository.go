package course_repository

import (
	"context"
	"errors"
	"training-hub/internal/domain/models"
	ports "training-hub/internal/domain/ports/output"
	course_port "training-hub/internal/domain/ports/output/course"
	"training-hub/internal/infrastructure/persistence/postgres"
	"training-hub/internal/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type CourseRepository struct {
	querier postgres.Querier
	log     ports.Logger
}

func NewCourseRepository(querier postgres.Querier, log ports.Logger) course_port.CourseRepository {
	return &CourseRepository{querier: querier, log: log}
}

// FindCourseIDByCourseRepo returns the course a repository is linked to.
// When several courses link the same repository the oldest link wins.
func (r *CourseRepository) FindCourseIDByCourseRepo(ctx context.Context, repoName string) (int64, error) {
	const q = `
		SELECT course_id
		FROM course_repos
		WHERE repo_name = @repo_name
		ORDER BY id
		LIMIT 1;
	`
	var courseID int64
	if err := r.querier.QueryRow(ctx, q, pgx.NamedArgs{"repo_name": repoName}).Scan(&courseID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, utils.ErrCourseNotFound
		}
		r.log.Error("FindCourseIDByCourseRepo failed", "repo", repoName, "err", err)
		return 0, err
	}
	return courseID, nil
}

func (r *CourseRepository) FindCourseIDByTraineeRepo(ctx context.Context, repoName string, traineeID int64) (int64, error) {
	const q = `
		SELECT course_id
		FROM trainee_repos
		WHERE repo_name = @repo_name AND trainee_id = @trainee_id
		ORDER BY id
		LIMIT 1;
	`
	var courseID int64
	if err := r.querier.QueryRow(ctx, q, pgx.NamedArgs{"repo_name": repoName, "trainee_id": traineeID}).Scan(&courseID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, utils.ErrCourseNotFound
		}
		r.log.Error("FindCourseIDByTraineeRepo failed", "repo", repoName, "trainee_id", traineeID, "err", err)
		return 0, err
	}
	return courseID, nil
}

func (r *CourseRepository) ListTrainerIDs(ctx context.Context, courseID int64) ([]int64, error) {
	const q = `
		SELECT trainer_id
		FROM course_trainers
		WHERE course_id = @course_id
		ORDER BY trainer_id;
	`
	rows, err := r.querier.Query(ctx, q, pgx.NamedArgs{"course_id": courseID})
	if err != nil {
		r.log.Error("ListTrainerIDs query failed", "course_id", courseID, "err", err)
		return nil, err
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			r.log.Error("ListTrainerIDs scan failed", "course_id", courseID, "err", err)
			return nil, err
		}
		ids = append(ids, id)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return ids, nil
}

func (r *CourseRepository) IsCourseTrainer(ctx context.Context, courseID int64, userID int64) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM course_trainers WHERE course_id = @course_id AND trainer_id = @trainer_id
		);
	`
	var ok bool
	if err := r.querier.QueryRow(ctx, q, pgx.NamedArgs{"course_id": courseID, "trainer_id": userID}).Scan(&ok); err != nil {
		r.log.Error("IsCourseTrainer failed", "course_id", courseID, "user_id", userID, "err", err)
		return false, err
	}
	return ok, nil
}

func (r *CourseRepository) CreateCourseRepo(ctx context.Context, link *models.CourseRepo) error {
	if link.CourseID == 0 || link.RepoName == "" {
		return utils.ErrInvalidArgument
	}
	const q = `
		INSERT INTO course_repos (course_id, repo_name, repo_url, created_at)
		VALUES (@course_id, @repo_name, @repo_url, now())
		RETURNING id, created_at;
	`
	row := r.querier.QueryRow(ctx, q, pgx.NamedArgs{
		"course_id": link.CourseID,
		"repo_name": link.RepoName,
		"repo_url":  link.RepoURL,
	})
	if err := row.Scan(&link.ID, &link.CreatedAt); err != nil {
		return r.mapInsertErr("CreateCourseRepo", link.RepoName, err)
	}
	return nil
}

func (r *CourseRepository) CreateTraineeRepo(ctx context.Context, link *models.TraineeRepo) error {
	if link.CourseID == 0 || link.TraineeID == 0 || link.RepoName == "" {
		return utils.ErrInvalidArgument
	}
	const q = `
		INSERT INTO trainee_repos (trainee_id, course_id, repo_name, repo_url, created_at)
		VALUES (@trainee_id, @course_id, @repo_name, @repo_url, now())
		RETURNING id, created_at;
	`
	row := r.querier.QueryRow(ctx, q, pgx.NamedArgs{
		"trainee_id": link.TraineeID,
		"course_id":  link.CourseID,
		"repo_name":  link.RepoName,
		"repo_url":   link.RepoURL,
	})
	if err := row.Scan(&link.ID, &link.CreatedAt); err != nil {
		return r.mapInsertErr("CreateTraineeRepo", link.RepoName, err)
	}
	return nil
}

func (r *CourseRepository) mapInsertErr(op, repoName string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case postgres.CodeUniqueViolation:
			return utils.ErrAlreadyExists
		case postgres.CodeForeignKeyViolation:
			r.log.Warn(op+" foreign key violation", "constraint", pgErr.ConstraintName, "repo", repoName)
			if pgErr.ConstraintName == "trainee_repos_trainee_id_fkey" {
				return utils.ErrUserNotFound
			}
			return utils.ErrCourseNotFound
		}
	}
	r.log.Error(op+" failed", "repo", repoName, "err", err)
	return err
}
