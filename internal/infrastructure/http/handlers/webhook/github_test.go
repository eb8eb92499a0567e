package webhook_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"training-hub/internal/domain/models"
	"training-hub/internal/infrastructure/github"
	"training-hub/internal/infrastructure/http/handlers/webhook"
	"training-hub/internal/infrastructure/logger"
	"training-hub/internal/utils"
	"training-hub/mocks"
)

const secret = "s3cr3t"

const commentPayload = `{
	"action": "created",
	"issue": {"number": 12, "title": "Week 2", "body": "trainee_id:5", "html_url": "https://github.com/acme/bootcamp/pull/12",
		"user": {"login": "octo", "id": 42}, "pull_request": {"url": "https://api.github.com/repos/acme/bootcamp/pulls/12"}},
	"comment": {"body": "Ready for review!", "user": {"login": "octo", "id": 42}},
	"repository": {"full_name": "acme/bootcamp", "html_url": "https://github.com/acme/bootcamp"}
}`

func newRequest(event, body, signature string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/github", bytes.NewBufferString(body))
	if event != "" {
		req.Header.Set("X-GitHub-Event", event)
	}
	if signature != "" {
		req.Header.Set("X-Hub-Signature-256", signature)
	}
	req.Header.Set("X-GitHub-Delivery", "d-1")
	return req
}

func TestWebhookHandler_GitHub(t *testing.T) {
	tests := []struct {
		name       string
		event      string
		body       string
		signature  func(body string) string
		mockSetup  func(*mocks.PRInputPort)
		wantStatus int
	}{
		{
			name:  "ready comment dispatched",
			event: github.EventIssueComment,
			body:  commentPayload,
			mockSetup: func(s *mocks.PRInputPort) {
				s.EXPECT().HandleComment(mock.Anything, mock.MatchedBy(func(e *models.CommentEvent) bool {
					return e.RepoName == "acme/bootcamp" && e.Number == 12 && e.CommentBody == "Ready for review!"
				})).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "store failure asks for redelivery",
			event: github.EventIssueComment,
			body:  commentPayload,
			mockSetup: func(s *mocks.PRInputPort) {
				s.EXPECT().HandleComment(mock.Anything, mock.Anything).Return(errors.New("connection reset"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "bad signature",
			event:      github.EventIssueComment,
			body:       commentPayload,
			signature:  func(string) string { return "sha256=" + string(bytes.Repeat([]byte("0"), 64)) },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing signature",
			event:      github.EventIssueComment,
			body:       commentPayload,
			signature:  func(string) string { return "" },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "signed empty body",
			event:      github.EventIssueComment,
			body:       "",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unsigned empty body",
			event:      github.EventIssueComment,
			body:       "",
			signature:  func(string) string { return "" },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing event header",
			body:       commentPayload,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed payload",
			event:      github.EventPullRequest,
			body:       `{"action": "opened", "number": "twelve"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "ping ignored",
			event:      github.EventPing,
			body:       `{"zen": "Keep it logically awesome."}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown event ignored",
			event:      "push",
			body:       `{"ref": "refs/heads/main"}`,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewPRInputPort(t)
			if tt.mockSetup != nil {
				tt.mockSetup(svc)
			}
			h := webhook.NewWebhookHandler(svc, secret, logger.New("test"))

			sig := github.Sign([]byte(tt.body), []byte(secret))
			if tt.signature != nil {
				sig = tt.signature(tt.body)
			}
			rec := httptest.NewRecorder()
			h.GitHub(rec, newRequest(tt.event, tt.body, sig))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestWebhookHandler_GitHub_PullRequestClosed(t *testing.T) {
	body := `{
		"action": "closed",
		"number": 12,
		"pull_request": {"number": 12, "title": "Week 2", "merged": true, "html_url": "https://github.com/acme/bootcamp/pull/12",
			"head": {"ref": "trainee-5-week2"}, "user": {"login": "octo", "id": 42}},
		"repository": {"full_name": "acme/bootcamp", "html_url": "https://github.com/acme/bootcamp"},
		"sender": {"login": "octo", "id": 42}
	}`
	svc := mocks.NewPRInputPort(t)
	svc.EXPECT().HandlePullRequest(mock.Anything, mock.MatchedBy(func(e *models.PullRequestEvent) bool {
		return e.Action == models.PRActionClosed && e.Merged && e.HeadRef == "trainee-5-week2"
	})).Return(nil)
	h := webhook.NewWebhookHandler(svc, secret, logger.New("test"))

	rec := httptest.NewRecorder()
	h.GitHub(rec, newRequest(github.EventPullRequest, body, github.Sign([]byte(body), []byte(secret))))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhookHandler_GitHub_ReviewInvalidArgument(t *testing.T) {
	body := `{
		"action": "submitted",
		"review": {"state": "APPROVED", "body": "", "html_url": "", "user": {"login": "mentor", "id": 7}},
		"pull_request": {"number": 12, "title": "Week 2"},
		"repository": {"full_name": "acme/bootcamp"}
	}`
	svc := mocks.NewPRInputPort(t)
	svc.EXPECT().HandleReview(mock.Anything, mock.Anything).Return(utils.ErrInvalidArgument)
	h := webhook.NewWebhookHandler(svc, secret, logger.New("test"))

	rec := httptest.NewRecorder()
	h.GitHub(rec, newRequest(github.EventPullRequestReview, body, github.Sign([]byte(body), []byte(secret))))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
