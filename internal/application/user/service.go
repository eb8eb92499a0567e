package user

import (
	"context"
	"strings"
	"training-hub/internal/domain/models"
	"training-hub/internal/domain/ports/input"
	ports "training-hub/internal/domain/ports/output"
	uow "training-hub/internal/domain/ports/output/uow"
	"training-hub/internal/utils"
)

type Service struct {
	uow uow.UnitOfWork
	log ports.Logger
}

func NewService(uow uow.UnitOfWork, log ports.Logger) input.UserInputPort {
	return &Service{uow: uow, log: log}
}

func (s *Service) GetUser(ctx context.Context, id int64) (*models.User, error) {
	if id <= 0 {
		return nil, utils.ErrInvalidArgument
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	repo := tx.UserRepository()
	u, err := repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) LinkGitHubAccount(ctx context.Context, id int64, githubID string, githubUsername string) (*models.User, error) {
	githubID = strings.TrimSpace(githubID)
	githubUsername = strings.TrimSpace(githubUsername)
	if id <= 0 {
		s.log.Error("LinkGitHubAccount invalid argument", "id", id)
		return nil, utils.ErrInvalidArgument
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("LinkGitHubAccount begin tx failed", "err", err, "id", id)
		return nil, err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()
	repo := tx.UserRepository()
	if err := repo.UpdateGitHubAccount(ctx, id, githubID, githubUsername); err != nil {
		s.log.Error("LinkGitHubAccount repo failed", "err", err, "id", id)
		return nil, err
	}
	u, err := repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		s.log.Error("LinkGitHubAccount commit failed", "err", err, "id", id)
		return nil, err
	}
	commit = true
	return u, nil
}
