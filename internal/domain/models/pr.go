package models

import (
	"time"

	"github.com/google/uuid"
)

type PRStatus string

const (
	PRStatusPending  PRStatus = "PENDING"
	PRStatusApproved PRStatus = "APPROVED"
	PRStatusRejected PRStatus = "REJECTED"
)

func (s PRStatus) IsReviewed() bool {
	return s == PRStatusApproved || s == PRStatusRejected
}

type PullRequest struct {
	ID             uuid.UUID
	TraineeID      int64
	CourseID       int64
	TaskID         *int64
	Title          string
	Description    string
	RepoName       string
	RepoURL        string
	PRURL          string
	PRNumber       int
	GitHubAuthorID string
	Status         PRStatus
	ReviewerID     *int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	ReviewedAt     *time.Time
}
