package uow

import (
	"context"
	course "training-hub/internal/domain/ports/output/course"
	notification "training-hub/internal/domain/ports/output/notification"
	pr "training-hub/internal/domain/ports/output/pr"
	user "training-hub/internal/domain/ports/output/user"
)

//go:generate mockery --name UnitOfWork --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename UnitOfWork.go
//go:generate mockery --name Transaction --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename Transaction.go

type UnitOfWork interface {
	Begin(ctx context.Context) (Transaction, error)
}

type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	UserRepository() user.UserRepository
	CourseRepository() course.CourseRepository
	PRRepository() pr.PRRepository
	NotificationRepository() notification.NotificationRepository
}
