package resolver

import (
	"context"
	"errors"
	ports "training-hub/internal/domain/ports/output"
	course "training-hub/internal/domain/ports/output/course"
	"training-hub/internal/domain/services"
	"training-hub/internal/utils"
)

type RepositoryResolver struct {
	log ports.Logger
}

func NewRepositoryResolver(log ports.Logger) services.RepositoryResolver {
	return &RepositoryResolver{log: log}
}

func (r *RepositoryResolver) ResolveCourse(ctx context.Context, courses course.CourseRepository, repoName string, traineeID int64) (int64, error) {
	if repoName == "" {
		return 0, utils.ErrCourseUnresolved
	}
	courseID, err := courses.FindCourseIDByCourseRepo(ctx, repoName)
	if err == nil {
		return courseID, nil
	}
	if !errors.Is(err, utils.ErrCourseNotFound) {
		return 0, err
	}
	if traineeID == 0 {
		return 0, utils.ErrCourseUnresolved
	}

	courseID, err = courses.FindCourseIDByTraineeRepo(ctx, repoName, traineeID)
	if err != nil {
		if errors.Is(err, utils.ErrCourseNotFound) {
			return 0, utils.ErrCourseUnresolved
		}
		return 0, err
	}
	r.log.Debug("course resolved from trainee link", "repo", repoName, "trainee_id", traineeID, "course_id", courseID)
	return courseID, nil
}
