package course

import (
	"context"
	"training-hub/internal/domain/models"
)

//go:generate mockery --name CourseRepository --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename CourseRepository.go

type CourseRepository interface {
	FindCourseIDByCourseRepo(ctx context.Context, repoName string) (int64, error)
	FindCourseIDByTraineeRepo(ctx context.Context, repoName string, traineeID int64) (int64, error)
	ListTrainerIDs(ctx context.Context, courseID int64) ([]int64, error)
	IsCourseTrainer(ctx context.Context, courseID int64, userID int64) (bool, error)
	CreateCourseRepo(ctx context.Context, link *models.CourseRepo) error
	CreateTraineeRepo(ctx context.Context, link *models.TraineeRepo) error
}
