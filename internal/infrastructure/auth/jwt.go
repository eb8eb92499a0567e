package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
	"training-hub/internal/domain/models"
	"training-hub/internal/utils"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID int64       `json:"id"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

type Principal struct {
	UserID int64
	Role   models.Role
}

type JWTValidator struct {
	secret []byte
	issuer string
	parser *jwt.Parser
}

func NewJWTValidator(secret string, issuer string) *JWTValidator {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired()}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	return &JWTValidator{secret: []byte(secret), issuer: issuer, parser: jwt.NewParser(opts...)}
}

func (v *JWTValidator) Validate(token string) (Principal, error) {
	if token == "" {
		return Principal{}, utils.ErrUnauthorized
	}
	claims := &Claims{}
	_, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return Principal{}, errors.Join(utils.ErrUnauthorized, err)
	}
	if claims.UserID <= 0 {
		return Principal{}, utils.ErrUnauthorized
	}
	return Principal{UserID: claims.UserID, Role: claims.Role}, nil
}

func (v *JWTValidator) Sign(userID int64, role models.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

// TokenFromRequest reads `Authorization: Bearer <token>`, falling back to the
// `token` query parameter browsers use for WebSocket handshakes.
func TokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	return r.URL.Query().Get("token")
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
