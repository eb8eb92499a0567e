package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"training-hub/internal/domain/models"
	"training-hub/internal/infrastructure/auth"
	middlewares "training-hub/internal/infrastructure/http/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	v := auth.NewJWTValidator("secret", "training-hub")
	var seen auth.Principal
	h := middlewares.Authenticate(v)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = auth.PrincipalFrom(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("valid token", func(t *testing.T) {
		token, err := v.Sign(3, models.RoleTrainer, time.Minute)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, int64(3), seen.UserID)
		assert.Equal(t, models.RoleTrainer, seen.Role)
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/notifications", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
	})
}
