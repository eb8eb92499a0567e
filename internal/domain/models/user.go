package models

import (
	"time"
)

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleSupervisor Role = "SUPERVISOR"
	RoleTrainer    Role = "TRAINER"
	RoleTrainee    Role = "TRAINEE"
)

func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleSupervisor || r == RoleTrainer
}

type User struct {
	ID             int64
	Name           string
	Role           Role
	GitHubID       string
	GitHubUsername string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
