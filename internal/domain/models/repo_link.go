package models

import "time"

type CourseRepo struct {
	ID        int64
	CourseID  int64
	RepoName  string
	RepoURL   string
	CreatedAt time.Time
}

type TraineeRepo struct {
	ID        int64
	TraineeID int64
	CourseID  int64
	RepoName  string
	RepoURL   string
	CreatedAt time.Time
}
