package integration

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"training-hub/internal/domain/models"
	"training-hub/internal/infrastructure/logger"
	chatrepo "training-hub/internal/infrastructure/persistence/postgres/chat"
	courserepo "training-hub/internal/infrastructure/persistence/postgres/course"
	notificationrepo "training-hub/internal/infrastructure/persistence/postgres/notification"
	prrepo "training-hub/internal/infrastructure/persistence/postgres/pr"
	userrepo "training-hub/internal/infrastructure/persistence/postgres/user"
	"training-hub/internal/utils"
)

func newTrackedPR() *models.PullRequest {
	return &models.PullRequest{
		TraineeID: 5,
		CourseID:  7,
		Title:     "Week 2",
		RepoName:  "acme/bootcamp",
		PRNumber:  12,
	}
}

func TestPRRepository_Integration(t *testing.T) {
	ctx := testCtx
	repo := prrepo.NewPRRepository(pgC.Pool, logger.New("test"))

	t.Run("create then duplicate", func(t *testing.T) {
		mustTruncate(t)
		seedBootcamp(t)
		pr := newTrackedPR()
		require.NoError(t, repo.CreatePR(ctx, pr))
		assert.Equal(t, models.PRStatusPending, pr.Status)
		assert.False(t, pr.CreatedAt.IsZero())

		err := repo.CreatePR(ctx, newTrackedPR())
		assert.ErrorIs(t, err, utils.ErrAlreadyExists)
	})

	t.Run("concurrent creates leave one row", func(t *testing.T) {
		mustTruncate(t)
		seedBootcamp(t)
		var wg sync.WaitGroup
		var mu sync.Mutex
		created, dup := 0, 0
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := repo.CreatePR(ctx, newTrackedPR())
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					created++
				case errors.Is(err, utils.ErrAlreadyExists):
					dup++
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, created)
		assert.Equal(t, 7, dup)
	})

	t.Run("foreign keys", func(t *testing.T) {
		mustTruncate(t)
		seedBootcamp(t)
		pr := newTrackedPR()
		pr.CourseID = 404
		assert.ErrorIs(t, repo.CreatePR(ctx, pr), utils.ErrCourseNotFound)
		pr = newTrackedPR()
		pr.TraineeID = 404
		assert.ErrorIs(t, repo.CreatePR(ctx, pr), utils.ErrUserNotFound)
	})

	t.Run("review never returns to pending", func(t *testing.T) {
		mustTruncate(t)
		seedBootcamp(t)
		pr := newTrackedPR()
		require.NoError(t, repo.CreatePR(ctx, pr))

		reviewer := int64(2)
		now := time.Now().UTC()
		pr.Status = models.PRStatusApproved
		pr.ReviewerID = &reviewer
		pr.ReviewedAt = &now
		require.NoError(t, repo.UpdateReview(ctx, pr))

		pr.Status = models.PRStatusRejected
		pr.ReviewerID = nil
		require.NoError(t, repo.UpdateReview(ctx, pr))
		require.NotNil(t, pr.ReviewerID, "reviewer kept when not supplied")
		assert.Equal(t, int64(2), *pr.ReviewerID)

		pr.Status = models.PRStatusPending
		assert.ErrorIs(t, repo.UpdateReview(ctx, pr), utils.ErrInvalidStatus)

		got, err := repo.GetPRByRepoAndNumber(ctx, "acme/bootcamp", 12)
		require.NoError(t, err)
		assert.Equal(t, models.PRStatusRejected, got.Status)

		missing := &models.PullRequest{ID: uuid.New(), Status: models.PRStatusApproved}
		assert.ErrorIs(t, repo.UpdateReview(ctx, missing), utils.ErrPRNotFound)
	})

	t.Run("list by course with status filter", func(t *testing.T) {
		mustTruncate(t)
		seedBootcamp(t)
		for i := 1; i <= 3; i++ {
			pr := newTrackedPR()
			pr.PRNumber = i
			require.NoError(t, repo.CreatePR(ctx, pr))
			if i == 2 {
				pr.Status = models.PRStatusApproved
				require.NoError(t, repo.UpdateReview(ctx, pr))
			}
		}
		all, err := repo.ListPRsByCourse(ctx, 7, nil)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		pending := models.PRStatusPending
		open, err := repo.ListPRsByCourse(ctx, 7, &pending)
		require.NoError(t, err)
		assert.Len(t, open, 2)
	})
}

func TestCourseRepository_Integration(t *testing.T) {
	ctx := testCtx
	repo := courserepo.NewCourseRepository(pgC.Pool, logger.New("test"))

	t.Run("course repo wins over trainee repo", func(t *testing.T) {
		mustTruncate(t)
		seedBootcamp(t)
		require.NoError(t, repo.CreateTraineeRepo(ctx, &models.TraineeRepo{TraineeID: 5, CourseID: 8, RepoName: "acme/bootcamp"}))
		require.NoError(t, repo.CreateCourseRepo(ctx, &models.CourseRepo{CourseID: 7, RepoName: "acme/bootcamp"}))

		id, err := repo.FindCourseIDByCourseRepo(ctx, "acme/bootcamp")
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)

		id, err = repo.FindCourseIDByTraineeRepo(ctx, "acme/bootcamp", 5)
		require.NoError(t, err)
		assert.Equal(t, int64(8), id)
	})

	t.Run("lowest link id wins", func(t *testing.T) {
		mustTruncate(t)
		seedBootcamp(t)
		require.NoError(t, repo.CreateCourseRepo(ctx, &models.CourseRepo{CourseID: 8, RepoName: "acme/shared"}))
		require.NoError(t, repo.CreateCourseRepo(ctx, &models.CourseRepo{CourseID: 7, RepoName: "acme/shared"}))
		id, err := repo.FindCourseIDByCourseRepo(ctx, "acme/shared")
		require.NoError(t, err)
		assert.Equal(t, int64(8), id)
	})

	t.Run("duplicates and unknown references", func(t *testing.T) {
		mustTruncate(t)
		seedBootcamp(t)
		require.NoError(t, repo.CreateCourseRepo(ctx, &models.CourseRepo{CourseID: 7, RepoName: "acme/bootcamp"}))
		assert.ErrorIs(t, repo.CreateCourseRepo(ctx, &models.CourseRepo{CourseID: 7, RepoName: "acme/bootcamp"}), utils.ErrAlreadyExists)
		assert.ErrorIs(t, repo.CreateCourseRepo(ctx, &models.CourseRepo{CourseID: 404, RepoName: "acme/bootcamp"}), utils.ErrCourseNotFound)
		assert.ErrorIs(t, repo.CreateTraineeRepo(ctx, &models.TraineeRepo{TraineeID: 404, CourseID: 7, RepoName: "x/y"}), utils.ErrUserNotFound)

		_, err := repo.FindCourseIDByCourseRepo(ctx, "nobody/nothing")
		assert.ErrorIs(t, err, utils.ErrCourseNotFound)
	})

	t.Run("trainers", func(t *testing.T) {
		mustTruncate(t)
		seedBootcamp(t)
		ids, err := repo.ListTrainerIDs(ctx, 7)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{2, 3}, ids)

		ok, err := repo.IsCourseTrainer(ctx, 7, 4)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestNotificationRepository_Integration(t *testing.T) {
	ctx := testCtx
	repo := notificationrepo.NewNotificationRepository(pgC.Pool, logger.New("test"))

	mustTruncate(t)
	seedBootcamp(t)
	batch := []*models.Notification{
		{UserID: 5, Title: "Pull Request Approved", Message: "a"},
		{UserID: 5, Title: "Pull Request Merged", Message: "b"},
		{UserID: 2, Title: "Pull Request Updated", Message: "c"},
	}
	require.NoError(t, repo.CreateNotifications(ctx, batch))
	for _, n := range batch {
		assert.NotEqual(t, uuid.Nil, n.ID)
		assert.Equal(t, models.NotificationTypePR, n.Type)
	}

	assert.ErrorIs(t, repo.CreateNotifications(ctx, []*models.Notification{{UserID: 404, Title: "x", Message: "y"}}), utils.ErrUserNotFound)

	t.Run("only the recipient marks read", func(t *testing.T) {
		assert.ErrorIs(t, repo.MarkRead(ctx, batch[0].ID, 2), utils.ErrForbidden)
		assert.ErrorIs(t, repo.MarkRead(ctx, uuid.New(), 5), utils.ErrNotificationNotFound)
		require.NoError(t, repo.MarkRead(ctx, batch[0].ID, 5))

		unread, err := repo.ListByUser(ctx, 5, true, 0)
		require.NoError(t, err)
		require.Len(t, unread, 1)
		assert.Equal(t, batch[1].ID, unread[0].ID)
	})

	t.Run("mark all read", func(t *testing.T) {
		n, err := repo.MarkAllRead(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		all, err := repo.ListByUser(ctx, 5, false, 10)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}

func TestUserRepository_Integration(t *testing.T) {
	ctx := testCtx
	repo := userrepo.NewUserRepository(pgC.Pool, logger.New("test"))
	mustTruncate(t)
	seedBootcamp(t)

	t.Run("find by login or id", func(t *testing.T) {
		u, err := repo.FindByGitHubIdentity(ctx, "octo", "")
		require.NoError(t, err)
		assert.Equal(t, int64(5), u.ID)

		u, err = repo.FindByGitHubIdentity(ctx, "", "700")
		require.NoError(t, err)
		assert.Equal(t, int64(2), u.ID)

		_, err = repo.FindByGitHubIdentity(ctx, "ghost", "1")
		assert.ErrorIs(t, err, utils.ErrUserNotFound)
	})

	t.Run("link account", func(t *testing.T) {
		require.NoError(t, repo.UpdateGitHubAccount(ctx, 3, "4242", "torvalds"))
		u, err := repo.GetUserByID(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, "torvalds", u.GitHubUsername)

		assert.ErrorIs(t, repo.UpdateGitHubAccount(ctx, 4, "", "octo"), utils.ErrAlreadyExists)
		assert.ErrorIs(t, repo.UpdateGitHubAccount(ctx, 404, "", "nobody"), utils.ErrUserNotFound)
	})
}

func TestParticipantRepository_Integration(t *testing.T) {
	ctx := testCtx
	repo := chatrepo.NewParticipantRepository(pgC.Pool, logger.New("test"))
	mustTruncate(t)
	seedBootcamp(t)
	require.NoError(t, AddChatParticipant(ctx, pgC.Pool, "course-7", 5))

	ok, err := repo.IsParticipant(ctx, "course-7", 5)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.IsParticipant(ctx, "course-7", 6)
	require.NoError(t, err)
	assert.False(t, ok)
}
