package input

import (
	"context"
	"training-hub/internal/domain/models"
)

//go:generate mockery --name UserInputPort --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename UserInputPort.go

type UserInputPort interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
	LinkGitHubAccount(ctx context.Context, id int64, githubID string, githubUsername string) (*models.User, error)
}
