package dto

import (
	"time"
	"training-hub/internal/domain/models"
)

type RepoLinkDTO struct {
	ID        int64     `json:"id"`
	CourseID  int64     `json:"courseId"`
	TraineeID int64     `json:"traineeId,omitempty"`
	RepoName  string    `json:"repoName"`
	RepoURL   string    `json:"repoUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromCourseRepo(r *models.CourseRepo) RepoLinkDTO {
	return RepoLinkDTO{ID: r.ID, CourseID: r.CourseID, RepoName: r.RepoName, RepoURL: r.RepoURL, CreatedAt: r.CreatedAt}
}

func FromTraineeRepo(r *models.TraineeRepo) RepoLinkDTO {
	return RepoLinkDTO{ID: r.ID, CourseID: r.CourseID, TraineeID: r.TraineeID, RepoName: r.RepoName, RepoURL: r.RepoURL, CreatedAt: r.CreatedAt}
}

type UserDTO struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	GitHubID       string `json:"githubId,omitempty"`
	GitHubUsername string `json:"githubUsername,omitempty"`
}

func ToUserDTO(u *models.User) UserDTO {
	return UserDTO{ID: u.ID, Name: u.Name, Role: string(u.Role), GitHubID: u.GitHubID, GitHubUsername: u.GitHubUsername}
}
