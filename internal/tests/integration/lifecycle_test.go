package integration

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	notificationapp "training-hub/internal/application/notification"
	prapp "training-hub/internal/application/pr"
	"training-hub/internal/application/resolver"
	"training-hub/internal/domain/models"
	input "training-hub/internal/domain/ports/input"
	"training-hub/internal/infrastructure/logger"
	pguow "training-hub/internal/infrastructure/persistence/postgres/uow"
)

type published struct {
	userID  int64
	event   string
	payload any
}

type recordingPublisher struct {
	mu   sync.Mutex
	sent []published
}

func (p *recordingPublisher) PublishToUser(userID int64, event string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, published{userID: userID, event: event, payload: payload})
	return nil
}

func (p *recordingPublisher) recipients() []int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	res := make([]int64, 0, len(p.sent))
	for _, s := range p.sent {
		res = append(res, s.userID)
	}
	return res
}

func newLifecycle(t *testing.T) (input.PRInputPort, *notificationapp.Service, *recordingPublisher) {
	t.Helper()
	log := logger.New("test")
	u := pguow.NewPostgresUOW(pgC.Pool, log)
	pub := &recordingPublisher{}
	notifications := notificationapp.NewService(u, pub, log)
	svc := prapp.NewService(u,
		resolver.NewIdentityResolver(log, resolver.DefaultExtractors()...),
		resolver.NewRepositoryResolver(log),
		notifications, log)
	return svc, notifications, pub
}

func linkBootcampRepo(t *testing.T) {
	t.Helper()
	_, err := pgC.Pool.Exec(testCtx, `INSERT INTO course_repos (course_id, repo_name, repo_url) VALUES (7, 'acme/bootcamp', 'https://github.com/acme/bootcamp')`)
	require.NoError(t, err)
}

func readyComment() *models.CommentEvent {
	return &models.CommentEvent{
		RepoName:       "Acme/Bootcamp",
		RepoURL:        "https://github.com/acme/bootcamp",
		Number:         12,
		Title:          "Week 2 homework",
		Body:           "Solution for week 2\n\ntrainee_id:5",
		URL:            "https://github.com/acme/bootcamp/pull/12",
		AuthorGitHubID: "42",
		IsPullRequest:  true,
		CommentBody:    "READY for review",
		Commenter:      models.Actor{Login: "octo", ID: "42"},
	}
}

func countPRs(t *testing.T) int {
	t.Helper()
	n, err := CountRows(testCtx, pgC.Pool, `SELECT count(*) FROM pull_requests WHERE repo_name = 'acme/bootcamp' AND pr_number = 12`)
	require.NoError(t, err)
	return n
}

func countNotifications(t *testing.T, userID int64) int {
	t.Helper()
	n, err := CountRows(testCtx, pgC.Pool, `SELECT count(*) FROM notifications WHERE user_id = $1`, userID)
	require.NoError(t, err)
	return n
}

func TestPRLifecycle_Integration(t *testing.T) {
	ctx := testCtx

	t.Run("ready comment delivered twice creates one PENDING row", func(t *testing.T) {
		mustTruncate(t)
		seedBootcamp(t)
		linkBootcampRepo(t)
		svc, _, pub := newLifecycle(t)

		require.NoError(t, svc.HandleComment(ctx, readyComment()))
		require.NoError(t, svc.HandleComment(ctx, readyComment()))

		assert.Equal(t, 1, countPRs(t))
		assert.Equal(t, 1, countNotifications(t, 2))
		assert.Equal(t, 1, countNotifications(t, 3))
		assert.Equal(t, 0, countNotifications(t, 4))
		assert.ElementsMatch(t, []int64{2, 3}, pub.recipients())

		var status string
		var traineeID, courseID int64
		err := pgC.Pool.QueryRow(ctx, `SELECT status, trainee_id, course_id FROM pull_requests WHERE pr_number = 12`).Scan(&status, &traineeID, &courseID)
		require.NoError(t, err)
		assert.Equal(t, "PENDING", status)
		assert.Equal(t, int64(5), traineeID)
		assert.Equal(t, int64(7), courseID)
	})

	t.Run("concurrent ready deliveries race on the unique key", func(t *testing.T) {
		mustTruncate(t)
		seedBootcamp(t)
		linkBootcampRepo(t)
		svc, _, _ := newLifecycle(t)

		const workers = 5
		var wg sync.WaitGroup
		errs := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- svc.HandleComment(ctx, readyComment())
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			assert.NoError(t, err)
		}
		assert.Equal(t, 1, countPRs(t))
		assert.Equal(t, 1, countNotifications(t, 2))
	})

	t.Run("opened creates nothing", func(t *testing.T) {
		mustTruncate(t)
		seedBootcamp(t)
		linkBootcampRepo(t)
		svc, _, pub := newLifecycle(t)

		require.NoError(t, svc.HandlePullRequest(ctx, &models.PullRequestEvent{
			Action: models.PRActionOpened, RepoName: "acme/bootcamp", Number: 12, Title: "Week 2",
		}))
		assert.Equal(t, 0, countPRs(t))
		assert.Empty(t, pub.recipients())
	})

	t.Run("unresolvable trainee aborts silently", func(t *testing.T) {
		mustTruncate(t)
		seedBootcamp(t)
		linkBootcampRepo(t)
		svc, _, _ := newLifecycle(t)

		e := readyComment()
		e.Body = "no marker"
		e.Title = "Week 2"
		e.Commenter = models.Actor{Login: "stranger", ID: "999"}
		require.NoError(t, svc.HandleComment(ctx, e))
		assert.Equal(t, 0, countPRs(t))
	})

	t.Run("login fallback and trainee repo fallback", func(t *testing.T) {
		mustTruncate(t)
		seedBootcamp(t)
		_, err := pgC.Pool.Exec(ctx, `INSERT INTO trainee_repos (trainee_id, course_id, repo_name) VALUES (6, 8, 'bobby/homework')`)
		require.NoError(t, err)
		svc, _, _ := newLifecycle(t)

		require.NoError(t, svc.HandleComment(ctx, &models.CommentEvent{
			RepoName: "bobby/homework", Number: 3, Title: "Task 1", CommentBody: "ready",
			Commenter: models.Actor{Login: "bobby"},
		}))
		var traineeID, courseID int64
		err = pgC.Pool.QueryRow(ctx, `SELECT trainee_id, course_id FROM pull_requests WHERE repo_name = 'bobby/homework' AND pr_number = 3`).Scan(&traineeID, &courseID)
		require.NoError(t, err)
		assert.Equal(t, int64(6), traineeID)
		assert.Equal(t, int64(8), courseID)
		assert.Equal(t, 1, countNotifications(t, 4))
	})

	t.Run("update, review and close walk the state machine forward", func(t *testing.T) {
		mustTruncate(t)
		seedBootcamp(t)
		linkBootcampRepo(t)
		svc, _, pub := newLifecycle(t)
		require.NoError(t, svc.HandleComment(ctx, readyComment()))

		var createdAt time.Time
		require.NoError(t, pgC.Pool.QueryRow(ctx, `SELECT created_at FROM pull_requests WHERE pr_number = 12`).Scan(&createdAt))

		require.NoError(t, svc.HandlePullRequest(ctx, &models.PullRequestEvent{
			Action: models.PRActionSynchronize, RepoName: "acme/bootcamp", Number: 12, Title: "Week 2 v2", Body: "fixed",
		}))
		var title, status string
		var gotCreated time.Time
		require.NoError(t, pgC.Pool.QueryRow(ctx, `SELECT title, status, created_at FROM pull_requests WHERE pr_number = 12`).Scan(&title, &status, &gotCreated))
		assert.Equal(t, "Week 2 v2", title)
		assert.Equal(t, "PENDING", status)
		assert.True(t, createdAt.Equal(gotCreated))
		assert.Equal(t, 2, countNotifications(t, 2))

		require.NoError(t, svc.HandleReview(ctx, &models.ReviewEvent{
			RepoName: "acme/bootcamp", Number: 12, State: models.ReviewStateChangesRequested,
			Reviewer: models.Actor{Login: "grace-h", ID: "700"},
		}))
		var reviewerID *int64
		require.NoError(t, pgC.Pool.QueryRow(ctx, `SELECT status, reviewer_id FROM pull_requests WHERE pr_number = 12`).Scan(&status, &reviewerID))
		assert.Equal(t, "PENDING", status)
		require.NotNil(t, reviewerID)
		assert.Equal(t, int64(2), *reviewerID)

		require.NoError(t, svc.HandleReview(ctx, &models.ReviewEvent{
			RepoName: "acme/bootcamp", Number: 12, State: models.ReviewStateApproved,
			Reviewer: models.Actor{Login: "grace-h", ID: "700"},
		}))
		require.NoError(t, pgC.Pool.QueryRow(ctx, `SELECT status FROM pull_requests WHERE pr_number = 12`).Scan(&status))
		assert.Equal(t, "APPROVED", status)

		require.NoError(t, svc.HandlePullRequest(ctx, &models.PullRequestEvent{
			Action: models.PRActionClosed, RepoName: "acme/bootcamp", Number: 12, Merged: false,
		}))
		var reviewedAt *time.Time
		require.NoError(t, pgC.Pool.QueryRow(ctx, `SELECT status, reviewer_id, reviewed_at FROM pull_requests WHERE pr_number = 12`).Scan(&status, &reviewerID, &reviewedAt))
		assert.Equal(t, "REJECTED", status)
		require.NotNil(t, reviewerID)
		assert.Equal(t, int64(2), *reviewerID)
		assert.NotNil(t, reviewedAt)

		// changes requested, approved, closed
		assert.Equal(t, 3, countNotifications(t, 5))
		assert.Contains(t, pub.recipients(), int64(5))
	})

	t.Run("events for untracked pull requests are no-ops", func(t *testing.T) {
		mustTruncate(t)
		seedBootcamp(t)
		svc, _, pub := newLifecycle(t)

		require.NoError(t, svc.HandlePullRequest(ctx, &models.PullRequestEvent{Action: models.PRActionClosed, RepoName: "acme/bootcamp", Number: 99, Merged: true}))
		require.NoError(t, svc.HandleReview(ctx, &models.ReviewEvent{RepoName: "acme/bootcamp", Number: 99, State: models.ReviewStateApproved}))
		assert.Empty(t, pub.recipients())
	})

	t.Run("trainer reject and notification catch-up", func(t *testing.T) {
		mustTruncate(t)
		seedBootcamp(t)
		linkBootcampRepo(t)
		svc, notifications, _ := newLifecycle(t)
		require.NoError(t, svc.HandleComment(ctx, readyComment()))

		prs, err := svc.ListPRsByCourse(ctx, 7, nil)
		require.NoError(t, err)
		require.Len(t, prs, 1)

		_, err = svc.ReviewPR(ctx, prs[0].ID, 4, models.PRStatusRejected)
		require.Error(t, err, "trainer of another course")

		reviewed, err := svc.ReviewPR(ctx, prs[0].ID, 3, models.PRStatusRejected)
		require.NoError(t, err)
		assert.Equal(t, models.PRStatusRejected, reviewed.Status)

		unread, err := notifications.ListForUser(ctx, 5, true, 0)
		require.NoError(t, err)
		require.Len(t, unread, 1)
		assert.Equal(t, "Pull Request Rejected", unread[0].Title)

		require.Error(t, notifications.MarkRead(ctx, 2, unread[0].ID), "not the recipient")
		require.NoError(t, notifications.MarkRead(ctx, 5, unread[0].ID))
		unread, err = notifications.ListForUser(ctx, 5, true, 0)
		require.NoError(t, err)
		assert.Empty(t, unread)
	})
}
