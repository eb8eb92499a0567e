package services

import (
	"context"
	"training-hub/internal/domain/models"
	course "training-hub/internal/domain/ports/output/course"
	user "training-hub/internal/domain/ports/output/user"
)

//go:generate mockery --name IdentityResolver --dir . --output ../../../mocks --outpkg mocks --with-expecter --filename IdentityResolver.go
//go:generate mockery --name RepositoryResolver --dir . --output ../../../mocks --outpkg mocks --with-expecter --filename RepositoryResolver.go

type IdentityResolver interface {
	ResolveTrainee(ctx context.Context, users user.UserRepository, subject models.IdentitySubject) (int64, error)
}

// RepositoryResolver returns the course a repository belongs to, or
// utils.ErrCourseUnresolved. traineeID 0 disables the trainee fallback.
type RepositoryResolver interface {
	ResolveCourse(ctx context.Context, courses course.CourseRepository, repoName string, traineeID int64) (int64, error)
}
