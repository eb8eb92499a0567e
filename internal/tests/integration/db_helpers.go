package integration

import (
	"context"
	"training-hub/internal/domain/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TruncateAll(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		TRUNCATE TABLE notifications, pull_requests, trainee_repos, course_repos, course_trainers,
			chat_participants, courses, users RESTART IDENTITY CASCADE;
	`)
	return err
}

func InsertUser(ctx context.Context, pool *pgxpool.Pool, id int64, name string, role models.Role, githubID, githubUsername string) error {
	_, err := pool.Exec(ctx, `
		INSERT INTO users (id, name, role, github_id, github_username)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''))
	`, id, name, string(role), githubID, githubUsername)
	return err
}

func InsertCourse(ctx context.Context, pool *pgxpool.Pool, id int64, title string) error {
	_, err := pool.Exec(ctx, `INSERT INTO courses (id, title) VALUES ($1, $2)`, id, title)
	return err
}

func AddCourseTrainer(ctx context.Context, pool *pgxpool.Pool, courseID, trainerID int64) error {
	_, err := pool.Exec(ctx, `INSERT INTO course_trainers (course_id, trainer_id) VALUES ($1, $2)`, courseID, trainerID)
	return err
}

func AddChatParticipant(ctx context.Context, pool *pgxpool.Pool, roomID string, userID int64) error {
	_, err := pool.Exec(ctx, `INSERT INTO chat_participants (room_id, user_id) VALUES ($1, $2)`, roomID, userID)
	return err
}

func CountRows(ctx context.Context, pool *pgxpool.Pool, query string, args ...any) (int, error) {
	var n int
	err := pool.QueryRow(ctx, query, args...).Scan(&n)
	return n, err
}
