package pr

import (
	"context"
	"errors"
	"time"
	"training-hub/internal/domain/models"
	"training-hub/internal/domain/ports/input"
	ports "training-hub/internal/domain/ports/output"
	uow "training-hub/internal/domain/ports/output/uow"
	"training-hub/internal/domain/services"
	"training-hub/internal/utils"

	"github.com/google/uuid"
)

type Service struct {
	uow        uow.UnitOfWork
	identity   services.IdentityResolver
	repos      services.RepositoryResolver
	dispatcher services.NotificationDispatcher
	log        ports.Logger
	now        func() time.Time
}

func NewService(
	uow uow.UnitOfWork,
	identity services.IdentityResolver,
	repos services.RepositoryResolver,
	dispatcher services.NotificationDispatcher,
	log ports.Logger,
) input.PRInputPort {
	return &Service{
		uow:        uow,
		identity:   identity,
		repos:      repos,
		dispatcher: dispatcher,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) HandleComment(ctx context.Context, e *models.CommentEvent) error {
	if e == nil || !e.IsPullRequest || !models.IsReadySignal(e.CommentBody) {
		return nil
	}
	repoName, ok := utils.NormalizeRepoName(e.RepoName)
	if !ok || e.Number <= 0 {
		s.log.Warn("ready comment with malformed repository", "repo", e.RepoName, "number", e.Number)
		return nil
	}
	log := s.log.With("repo", repoName, "pr_number", e.Number)

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		log.Error("HandleComment begin tx failed", "err", err)
		return err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()

	prRepo := tx.PRRepository()
	if _, err := prRepo.GetPRByRepoAndNumber(ctx, repoName, e.Number); err == nil {
		log.Info("ready signal for tracked pull request ignored")
		return nil
	} else if !errors.Is(err, utils.ErrPRNotFound) {
		return err
	}

	traineeID, err := s.identity.ResolveTrainee(ctx, tx.UserRepository(), models.IdentitySubject{
		Body:  e.Body,
		Title: e.Title,
		Actor: e.Commenter,
	})
	if err != nil {
		if errors.Is(err, utils.ErrTraineeUnresolved) {
			log.Info("ready signal dropped: trainee unresolved", "commenter", e.Commenter.Login)
			return nil
		}
		return err
	}
	courseID, err := s.repos.ResolveCourse(ctx, tx.CourseRepository(), repoName, traineeID)
	if err != nil {
		if errors.Is(err, utils.ErrCourseUnresolved) {
			log.Info("ready signal dropped: course unresolved", "trainee_id", traineeID)
			return nil
		}
		return err
	}

	pr := &models.PullRequest{
		ID:             uuid.New(),
		TraineeID:      traineeID,
		CourseID:       courseID,
		Title:          e.Title,
		Description:    e.Body,
		RepoName:       repoName,
		RepoURL:        e.RepoURL,
		PRURL:          e.URL,
		PRNumber:       e.Number,
		GitHubAuthorID: e.AuthorGitHubID,
		Status:         models.PRStatusPending,
	}
	if err := prRepo.CreatePR(ctx, pr); err != nil {
		switch {
		case errors.Is(err, utils.ErrAlreadyExists):
			log.Info("pull request created concurrently, ready signal is a no-op")
			return nil
		case errors.Is(err, utils.ErrUserNotFound), errors.Is(err, utils.ErrCourseNotFound):
			log.Warn("ready signal dropped: resolved ids do not exist", "trainee_id", traineeID, "course_id", courseID, "err", err)
			return nil
		}
		return err
	}

	trainerIDs, err := tx.CourseRepository().ListTrainerIDs(ctx, courseID)
	if err != nil {
		return err
	}
	drafts := readyDrafts(pr, trainerIDs)
	if err := s.dispatcher.Stage(ctx, tx, drafts); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		log.Error("HandleComment commit failed", "err", err)
		return err
	}
	commit = true
	log.Info("pull request tracked", "pr_id", pr.ID, "trainee_id", traineeID, "course_id", courseID, "trainers", len(trainerIDs))
	s.dispatcher.Publish(drafts)
	return nil
}

func (s *Service) HandlePullRequest(ctx context.Context, e *models.PullRequestEvent) error {
	if e == nil {
		return nil
	}
	repoName, ok := utils.NormalizeRepoName(e.RepoName)
	if !ok || e.Number <= 0 {
		s.log.Warn("pull request event with malformed repository", "repo", e.RepoName, "number", e.Number)
		return nil
	}
	switch e.Action {
	case models.PRActionOpened:
		s.log.Info("pull request opened, waiting for ready signal", "repo", repoName, "pr_number", e.Number)
		return nil
	case models.PRActionEdited, models.PRActionSynchronize, models.PRActionReopened:
		return s.applyUpdate(ctx, repoName, e)
	case models.PRActionClosed:
		return s.applyClose(ctx, repoName, e)
	default:
		s.log.Debug("pull request action ignored", "action", e.Action, "repo", repoName)
		return nil
	}
}

func (s *Service) applyUpdate(ctx context.Context, repoName string, e *models.PullRequestEvent) error {
	return s.mutate(ctx, repoName, e.Number, func(tx uow.Transaction, pr *models.PullRequest) ([]*models.Notification, error) {
		pr.Title = e.Title
		pr.Description = e.Body
		if err := tx.PRRepository().UpdateContent(ctx, pr); err != nil {
			return nil, err
		}
		trainerIDs, err := tx.CourseRepository().ListTrainerIDs(ctx, pr.CourseID)
		if err != nil {
			return nil, err
		}
		return updatedDrafts(pr, trainerIDs), nil
	})
}

func (s *Service) applyClose(ctx context.Context, repoName string, e *models.PullRequestEvent) error {
	return s.mutate(ctx, repoName, e.Number, func(tx uow.Transaction, pr *models.PullRequest) ([]*models.Notification, error) {
		pr.Status = models.PRStatusRejected
		if e.Merged {
			pr.Status = models.PRStatusApproved
		}
		reviewedAt := s.now()
		pr.ReviewedAt = &reviewedAt
		pr.ReviewerID = nil
		if err := tx.PRRepository().UpdateReview(ctx, pr); err != nil {
			return nil, err
		}
		return closedDrafts(pr, e.Merged), nil
	})
}

func (s *Service) HandleReview(ctx context.Context, e *models.ReviewEvent) error {
	if e == nil {
		return nil
	}
	if e.State != models.ReviewStateApproved && e.State != models.ReviewStateChangesRequested {
		s.log.Debug("review state ignored", "state", e.State, "repo", e.RepoName)
		return nil
	}
	repoName, ok := utils.NormalizeRepoName(e.RepoName)
	if !ok || e.Number <= 0 {
		s.log.Warn("review event with malformed repository", "repo", e.RepoName, "number", e.Number)
		return nil
	}
	return s.mutate(ctx, repoName, e.Number, func(tx uow.Transaction, pr *models.PullRequest) ([]*models.Notification, error) {
		reviewer, err := tx.UserRepository().FindByGitHubIdentity(ctx, e.Reviewer.Login, e.Reviewer.ID)
		switch {
		case err == nil:
			pr.ReviewerID = &reviewer.ID
		case errors.Is(err, utils.ErrUserNotFound):
			pr.ReviewerID = nil
		default:
			return nil, err
		}
		if e.State == models.ReviewStateApproved {
			pr.Status = models.PRStatusApproved
		}
		reviewedAt := s.now()
		pr.ReviewedAt = &reviewedAt
		if err := tx.PRRepository().UpdateReview(ctx, pr); err != nil {
			return nil, err
		}
		return reviewDrafts(pr, e.State), nil
	})
}

type mutation func(tx uow.Transaction, pr *models.PullRequest) ([]*models.Notification, error)

func (s *Service) mutate(ctx context.Context, repoName string, number int, fn mutation) error {
	log := s.log.With("repo", repoName, "pr_number", number)
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		log.Error("begin tx failed", "err", err)
		return err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()

	pr, err := tx.PRRepository().LockPRByRepoAndNumber(ctx, repoName, number)
	if err != nil {
		if errors.Is(err, utils.ErrPRNotFound) {
			log.Debug("event for untracked pull request ignored")
			return nil
		}
		return err
	}
	drafts, err := fn(tx, pr)
	if err != nil {
		log.Error("pull request update failed", "pr_id", pr.ID, "err", err)
		return err
	}
	if err := s.dispatcher.Stage(ctx, tx, drafts); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		log.Error("commit failed", "pr_id", pr.ID, "err", err)
		return err
	}
	commit = true
	log.Info("pull request updated", "pr_id", pr.ID, "status", pr.Status)
	s.dispatcher.Publish(drafts)
	return nil
}

func (s *Service) ReviewPR(ctx context.Context, prID uuid.UUID, reviewerID int64, status models.PRStatus) (*models.PullRequest, error) {
	if prID == uuid.Nil || reviewerID <= 0 {
		return nil, utils.ErrInvalidArgument
	}
	if !status.IsReviewed() {
		return nil, utils.ErrInvalidStatus
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

	reviewer, err := tx.UserRepository().GetUserByID(ctx, reviewerID)
	if err != nil {
		return nil, err
	}
	if !reviewer.Role.IsStaff() {
		return nil, utils.ErrForbidden
	}
	pr, err := tx.PRRepository().LockPRByID(ctx, prID)
	if err != nil {
		return nil, err
	}
	if reviewer.Role == models.RoleTrainer {
		ok, err := tx.CourseRepository().IsCourseTrainer(ctx, pr.CourseID, reviewerID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, utils.ErrForbidden
		}
	}

	pr.Status = status
	pr.ReviewerID = &reviewerID
	reviewedAt := s.now()
	pr.ReviewedAt = &reviewedAt
	if err := tx.PRRepository().UpdateReview(ctx, pr); err != nil {
		return nil, err
	}
	drafts := decisionDrafts(pr)
	if err := s.dispatcher.Stage(ctx, tx, drafts); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		s.log.Error("ReviewPR commit failed", "pr_id", prID, "err", err)
		return nil, err
	}
	commit = true
	s.dispatcher.Publish(drafts)
	return pr, nil
}

func (s *Service) GetPR(ctx context.Context, prID uuid.UUID) (*models.PullRequest, error) {
	if prID == uuid.Nil {
		return nil, utils.ErrInvalidArgument
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()
	return tx.PRRepository().GetPRByID(ctx, prID)
}

func (s *Service) ListPRsByCourse(ctx context.Context, courseID int64, status *models.PRStatus) ([]*models.PullRequest, error) {
	if courseID <= 0 {
		return nil, utils.ErrInvalidArgument
	}
	if status != nil {
		switch *status {
		case models.PRStatusPending, models.PRStatusApproved, models.PRStatusRejected:
		default:
			return nil, utils.ErrInvalidStatus
		}
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()
	return tx.PRRepository().ListPRsByCourse(ctx, courseID, status)
}
