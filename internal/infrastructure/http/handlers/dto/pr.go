package dto

import (
	"time"
	"training-hub/internal/domain/models"
)

type PRDTO struct {
	ID             string     `json:"id"`
	TraineeID      int64      `json:"traineeId"`
	CourseID       int64      `json:"courseId"`
	TaskID         *int64     `json:"taskId,omitempty"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	RepoName       string     `json:"repoName"`
	RepoURL        string     `json:"repoUrl"`
	PRURL          string     `json:"prUrl"`
	PRNumber       int        `json:"prNumber"`
	GitHubAuthorID string     `json:"githubAuthorId,omitempty"`
	Status         string     `json:"status"`
	ReviewerID     *int64     `json:"reviewerId,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	ReviewedAt     *time.Time `json:"reviewedAt,omitempty"`
}

func ToPRDTO(pr *models.PullRequest) PRDTO {
	return PRDTO{
		ID:             pr.ID.String(),
		TraineeID:      pr.TraineeID,
		CourseID:       pr.CourseID,
		TaskID:         pr.TaskID,
		Title:          pr.Title,
		Description:    pr.Description,
		RepoName:       pr.RepoName,
		RepoURL:        pr.RepoURL,
		PRURL:          pr.PRURL,
		PRNumber:       pr.PRNumber,
		GitHubAuthorID: pr.GitHubAuthorID,
		Status:         string(pr.Status),
		ReviewerID:     pr.ReviewerID,
		CreatedAt:      pr.CreatedAt,
		UpdatedAt:      pr.UpdatedAt,
		ReviewedAt:     pr.ReviewedAt,
	}
}

func ToPRDTOs(prs []*models.PullRequest) []PRDTO {
	res := make([]PRDTO, 0, len(prs))
	for _, pr := range prs {
		res = append(res, ToPRDTO(pr))
	}
	return res
}
