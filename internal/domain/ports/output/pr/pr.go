package pr

import (
	"context"
	"training-hub/internal/domain/models"

	"github.com/google/uuid"
)

//go:generate mockery --name PRRepository --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename PRRepository.go

type PRRepository interface {
	// CreatePR returns utils.ErrAlreadyExists when (repo, number) is already tracked.
	CreatePR(ctx context.Context, pr *models.PullRequest) error
	GetPRByID(ctx context.Context, id uuid.UUID) (*models.PullRequest, error)
	LockPRByID(ctx context.Context, id uuid.UUID) (*models.PullRequest, error)
	GetPRByRepoAndNumber(ctx context.Context, repoName string, number int) (*models.PullRequest, error)
	LockPRByRepoAndNumber(ctx context.Context, repoName string, number int) (*models.PullRequest, error)
	UpdateContent(ctx context.Context, pr *models.PullRequest) error
	UpdateReview(ctx context.Context, pr *models.PullRequest) error
	ListPRsByCourse(ctx context.Context, courseID int64, status *models.PRStatus) ([]*models.PullRequest, error)
}
