package input

import (
	"context"
	"training-hub/internal/domain/models"
)

//go:generate mockery --name CourseInputPort --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename CourseInputPort.go

type CourseInputPort interface {
	LinkCourseRepo(ctx context.Context, actorID int64, courseID int64, repoName string, repoURL string) (*models.CourseRepo, error)
	LinkTraineeRepo(ctx context.Context, traineeID int64, courseID int64, repoName string, repoURL string) (*models.TraineeRepo, error)
}
