package user_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"training-hub/internal/domain/models"
	"training-hub/internal/infrastructure/auth"
	"training-hub/internal/infrastructure/http/handlers/user"
	"training-hub/internal/infrastructure/logger"
	"training-hub/internal/utils"
	"training-hub/mocks"
)

func TestUserHandler_LinkGitHub(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(*mocks.UserInputPort)
		wantStatus int
	}{
		{
			name: "linked",
			body: `{"githubId":"42","githubUsername":"octo"}`,
			mockSetup: func(s *mocks.UserInputPort) {
				s.EXPECT().LinkGitHubAccount(mock.Anything, int64(5), "42", "octo").
					Return(&models.User{ID: 5, Name: "Ann", Role: models.RoleTrainee, GitHubID: "42", GitHubUsername: "octo"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "account taken",
			body: `{"githubUsername":"octo"}`,
			mockSetup: func(s *mocks.UserInputPort) {
				s.EXPECT().LinkGitHubAccount(mock.Anything, int64(5), "", "octo").Return(nil, utils.ErrAlreadyExists)
			},
			wantStatus: http.StatusConflict,
		},
		{name: "nothing to link", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "non numeric id", body: `{"githubId":"octo"}`, wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewUserInputPort(t)
			if tt.mockSetup != nil {
				tt.mockSetup(svc)
			}
			h := user.NewUserHandler(svc, logger.New("test"))

			req := httptest.NewRequest(http.MethodPut, "/users/me/github", bytes.NewBufferString(tt.body))
			req = req.WithContext(auth.WithPrincipal(req.Context(), auth.Principal{UserID: 5, Role: models.RoleTrainee}))
			rec := httptest.NewRecorder()
			h.LinkGitHub(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
