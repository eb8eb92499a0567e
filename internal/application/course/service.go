package course

import (
	"context"
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

func NewService(uow uow.UnitOfWork, log ports.Logger) input.CourseInputPort {
	return &Service{uow: uow, log: log}
}

func resolveRepoName(repoName, repoURL string) (string, bool) {
	if repoName != "" {
		return utils.NormalizeRepoName(repoName)
	}
	return utils.RepoNameFromURL(repoURL)
}

func (s *Service) LinkCourseRepo(ctx context.Context, actorID int64, courseID int64, repoName string, repoURL string) (*models.CourseRepo, error) {
	name, ok := resolveRepoName(repoName, repoURL)
	if !ok || courseID <= 0 || actorID <= 0 {
		s.log.Warn("LinkCourseRepo invalid argument", "course_id", courseID, "repo", repoName, "url", repoURL)
		return nil, utils.ErrInvalidArgument
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("LinkCourseRepo begin tx failed", "err", err)
		return nil, err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()

	actor, err := tx.UserRepository().GetUserByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.Role.IsStaff() {
		return nil, utils.ErrForbidden
	}
	courses := tx.CourseRepository()
	if actor.Role == models.RoleTrainer {
		ok, err := courses.IsCourseTrainer(ctx, courseID, actorID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, utils.ErrForbidden
		}
	}
	link := &models.CourseRepo{CourseID: courseID, RepoName: name, RepoURL: repoURL}
	if err := courses.CreateCourseRepo(ctx, link); err != nil {
		s.log.Error("LinkCourseRepo repo failed", "course_id", courseID, "repo", name, "err", err)
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		s.log.Error("LinkCourseRepo commit failed", "err", err)
		return nil, err
	}
	commit = true
	s.log.Info("course repository linked", "course_id", courseID, "repo", name, "actor_id", actorID)
	return link, nil
}

func (s *Service) LinkTraineeRepo(ctx context.Context, traineeID int64, courseID int64, repoName string, repoURL string) (*models.TraineeRepo, error) {
	name, ok := resolveRepoName(repoName, repoURL)
	if !ok || courseID <= 0 || traineeID <= 0 {
		return nil, utils.ErrInvalidArgument
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()

	u, err := tx.UserRepository().GetUserByID(ctx, traineeID)
	if err != nil {
		return nil, err
	}
	if u.Role != models.RoleTrainee {
		return nil, utils.ErrForbidden
	}
	link := &models.TraineeRepo{TraineeID: traineeID, CourseID: courseID, RepoName: name, RepoURL: repoURL}
	if err := tx.CourseRepository().CreateTraineeRepo(ctx, link); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	commit = true
	return link, nil
}
