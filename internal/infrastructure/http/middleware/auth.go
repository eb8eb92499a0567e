package middlewares

import (
	"net/http"
	"training-hub/internal/infrastructure/auth"
	"training-hub/internal/utils"
)

type TokenValidator interface {
	Validate(token string) (auth.Principal, error)
}

func Authenticate(v TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, err := v.Validate(auth.TokenFromRequest(r))
			if err != nil {
				_ = utils.WriteError(w, http.StatusUnauthorized, utils.HTTPStatusToCode(http.StatusUnauthorized), utils.ErrUnauthorized.Error())
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), p)))
		})
	}
}
