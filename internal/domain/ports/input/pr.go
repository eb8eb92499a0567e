package input

import (
	"context"
	"training-hub/internal/domain/models"

	"github.com/google/uuid"
)

//go:generate mockery --name PRInputPort --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename PRInputPort.go

type PRInputPort interface {
	HandlePullRequest(ctx context.Context, event *models.PullRequestEvent) error
	HandleComment(ctx context.Context, event *models.CommentEvent) error
	HandleReview(ctx context.Context, event *models.ReviewEvent) error
	ReviewPR(ctx context.Context, prID uuid.UUID, reviewerID int64, status models.PRStatus) (*models.PullRequest, error)
	GetPR(ctx context.Context, prID uuid.UUID) (*models.PullRequest, error)
	ListPRsByCourse(ctx context.Context, courseID int64, status *models.PRStatus) ([]*models.PullRequest, error)
}
