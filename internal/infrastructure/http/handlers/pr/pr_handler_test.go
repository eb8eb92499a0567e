package pr_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"training-hub/internal/domain/models"
	"training-hub/internal/infrastructure/auth"
	"training-hub/internal/infrastructure/http/handlers/pr"
	"training-hub/internal/infrastructure/logger"
	"training-hub/internal/utils"
	"training-hub/mocks"
)

func request(method, target, body string, params map[string]string, caller *auth.Principal) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if caller != nil {
		ctx = auth.WithPrincipal(ctx, *caller)
	}
	return req.WithContext(ctx)
}

func TestPRHandler_Review(t *testing.T) {
	prID := uuid.New()
	trainer := &auth.Principal{UserID: 9, Role: models.RoleTrainer}
	tests := []struct {
		name       string
		param      string
		body       string
		caller     *auth.Principal
		mockSetup  func(*mocks.PRInputPort)
		wantStatus int
	}{
		{
			name:   "reject",
			param:  prID.String(),
			body:   `{"status":"REJECTED"}`,
			caller: trainer,
			mockSetup: func(s *mocks.PRInputPort) {
				reviewer := int64(9)
				now := time.Now()
				s.EXPECT().ReviewPR(mock.Anything, prID, int64(9), models.PRStatusRejected).Return(&models.PullRequest{
					ID: prID, Status: models.PRStatusRejected, ReviewerID: &reviewer, ReviewedAt: &now,
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "pending is not a decision",
			param:      prID.String(),
			body:       `{"status":"PENDING"}`,
			caller:     trainer,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "broken json",
			param:      prID.String(),
			body:       `{"status":`,
			caller:     trainer,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "not a course trainer",
			param:  prID.String(),
			body:   `{"status":"APPROVED"}`,
			caller: trainer,
			mockSetup: func(s *mocks.PRInputPort) {
				s.EXPECT().ReviewPR(mock.Anything, prID, int64(9), models.PRStatusApproved).Return(nil, utils.ErrForbidden)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "unknown pr",
			param:  prID.String(),
			body:   `{"status":"APPROVED"}`,
			caller: trainer,
			mockSetup: func(s *mocks.PRInputPort) {
				s.EXPECT().ReviewPR(mock.Anything, prID, int64(9), models.PRStatusApproved).Return(nil, utils.ErrPRNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "bad id",
			param:      "12",
			body:       `{"status":"APPROVED"}`,
			caller:     trainer,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "anonymous",
			param:      prID.String(),
			body:       `{"status":"APPROVED"}`,
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewPRInputPort(t)
			if tt.mockSetup != nil {
				tt.mockSetup(svc)
			}
			h := pr.NewPRHandler(svc, logger.New("test"))

			rec := httptest.NewRecorder()
			h.Review(rec, request(http.MethodPost, "/pull-requests/"+tt.param+"/review", tt.body, map[string]string{"id": tt.param}, tt.caller))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPRHandler_ListByCourse(t *testing.T) {
	svc := mocks.NewPRInputPort(t)
	svc.EXPECT().ListPRsByCourse(mock.Anything, int64(7), mock.MatchedBy(func(s *models.PRStatus) bool {
		return s != nil && *s == models.PRStatusPending
	})).Return([]*models.PullRequest{{ID: uuid.New(), CourseID: 7, RepoName: "acme/bootcamp", PRNumber: 12, Status: models.PRStatusPending}}, nil)
	h := pr.NewPRHandler(svc, logger.New("test"))

	rec := httptest.NewRecorder()
	h.ListByCourse(rec, request(http.MethodGet, "/courses/7/pull-requests?status=PENDING", "", map[string]string{"courseID": "7"}, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp pr.ListPRsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.PullRequests, 1)
	assert.Equal(t, 12, resp.PullRequests[0].PRNumber)
}

func TestPRHandler_GetPR_NotFound(t *testing.T) {
	prID := uuid.New()
	svc := mocks.NewPRInputPort(t)
	svc.EXPECT().GetPR(mock.Anything, prID).Return(nil, utils.ErrPRNotFound)
	h := pr.NewPRHandler(svc, logger.New("test"))

	rec := httptest.NewRecorder()
	h.GetPR(rec, request(http.MethodGet, "/pull-requests/"+prID.String(), "", map[string]string{"id": prID.String()}, nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}
