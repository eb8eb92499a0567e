package user

import (
	"context"
	"training-hub/internal/domain/models"
)

//go:generate mockery --name UserRepository --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename UserRepository.go

type UserRepository interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	FindByGitHubIdentity(ctx context.Context, login string, githubID string) (*models.User, error)
	UpdateGitHubAccount(ctx context.Context, id int64, githubID string, githubUsername string) error
}
