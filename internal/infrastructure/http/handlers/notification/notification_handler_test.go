package notification_test

import (
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
	"training-hub/internal/infrastructure/http/handlers/notification"
	"training-hub/internal/infrastructure/logger"
	"training-hub/internal/utils"
	"training-hub/mocks"
)

func withCaller(r *http.Request, userID int64) *http.Request {
	return r.WithContext(auth.WithPrincipal(r.Context(), auth.Principal{UserID: userID, Role: models.RoleTrainee}))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestNotificationHandler_List(t *testing.T) {
	link := "/pull-requests/1"
	tests := []struct {
		name       string
		query      string
		mockSetup  func(*mocks.NotificationInputPort)
		wantStatus int
		wantCount  int
	}{
		{
			name:  "unread with limit",
			query: "?unread=true&limit=10",
			mockSetup: func(s *mocks.NotificationInputPort) {
				s.EXPECT().ListForUser(mock.Anything, int64(3), true, 10).Return([]*models.Notification{
					{ID: uuid.New(), UserID: 3, Type: models.NotificationTypePR, Title: "Pull Request Merged", LinkTo: &link, CreatedAt: time.Now()},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantCount:  1,
		},
		{
			name:  "defaults",
			query: "",
			mockSetup: func(s *mocks.NotificationInputPort) {
				s.EXPECT().ListForUser(mock.Anything, int64(3), false, 0).Return([]*models.Notification{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "bad limit",
			query:      "?limit=ten",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "negative limit rejected by service",
			query: "?limit=-1",
			mockSetup: func(s *mocks.NotificationInputPort) {
				s.EXPECT().ListForUser(mock.Anything, int64(3), false, -1).Return(nil, utils.ErrInvalidArgument)
			},
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewNotificationInputPort(t)
			if tt.mockSetup != nil {
				tt.mockSetup(svc)
			}
			h := notification.NewNotificationHandler(svc, logger.New("test"))

			rec := httptest.NewRecorder()
			h.List(rec, withCaller(httptest.NewRequest(http.MethodGet, "/notifications"+tt.query, nil), 3))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			var resp notification.ListResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Len(t, resp.Notifications, tt.wantCount)
		})
	}
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		name       string
		param      string
		svcErr     error
		noCall     bool
		wantStatus int
	}{
		{name: "own notification", param: id.String(), wantStatus: http.StatusNoContent},
		{name: "someone else's", param: id.String(), svcErr: utils.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "missing", param: id.String(), svcErr: utils.ErrNotificationNotFound, wantStatus: http.StatusNotFound},
		{name: "bad id", param: "nope", noCall: true, wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewNotificationInputPort(t)
			if !tt.noCall {
				svc.EXPECT().MarkRead(mock.Anything, int64(3), id).Return(tt.svcErr)
			}
			h := notification.NewNotificationHandler(svc, logger.New("test"))

			req := httptest.NewRequest(http.MethodPost, "/notifications/"+tt.param+"/read", nil)
			req = withCaller(withURLParam(req, "id", tt.param), 3)
			rec := httptest.NewRecorder()
			h.MarkRead(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestNotificationHandler_MarkAllRead(t *testing.T) {
	svc := mocks.NewNotificationInputPort(t)
	svc.EXPECT().MarkAllRead(mock.Anything, int64(3)).Return(int64(4), nil)
	h := notification.NewNotificationHandler(svc, logger.New("test"))

	rec := httptest.NewRecorder()
	h.MarkAllRead(rec, withCaller(httptest.NewRequest(http.MethodPost, "/notifications/read-all", nil), 3))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp notification.MarkAllReadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(4), resp.Updated)
}

func TestNotificationHandler_RequiresCaller(t *testing.T) {
	h := notification.NewNotificationHandler(mocks.NewNotificationInputPort(t), logger.New("test"))
	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/notifications", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
