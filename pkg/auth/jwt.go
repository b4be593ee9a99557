// Package auth provides JWT issuance and verification for the tgvault API.
package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

// Jwt issues and verifies HS256 access tokens.
type Jwt struct {
	Secret            string
	Issuer            string
	Audience          string
	AccessTokenExpiry time.Duration
}

type Option func(*Jwt)

func WithIssuer(issuer string) Option {
	return func(j *Jwt) {
		j.Issuer = issuer
	}
}

func WithAudience(audience string) Option {
	return func(j *Jwt) {
		j.Audience = audience
	}
}

func WithAccessTokenExpiry(expiry time.Duration) Option {
	return func(j *Jwt) {
		j.AccessTokenExpiry = expiry
	}
}

// NewJwtService creates a Jwt service with the given signing secret.
func NewJwtService(secret string, opts ...Option) *Jwt {
	jwtSvc := &Jwt{
		Secret:            secret,
		AccessTokenExpiry: time.Hour,
	}

	for _, opt := range opts {
		opt(jwtSvc)
	}

	return jwtSvc
}

// AccessToken is a signed token and its expiry.
type AccessToken struct {
	Token  string
	Expiry time.Time
}

// CreateAccessToken issues a token for the given subject.
func (j Jwt) CreateAccessToken(subject string) (AccessToken, error) {
	expiry := time.Now().UTC().Add(j.AccessTokenExpiry)
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    j.Issuer,
		Audience:  jwt.ClaimStrings{j.Audience},
		IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
		ExpiresAt: jwt.NewNumericDate(expiry),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString([]byte(j.Secret))
	if err != nil {
		return AccessToken{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	return AccessToken{Token: tokenStr, Expiry: expiry}, nil
}

// TokenAuth returns the jwtauth verifier for middleware use.
func (j Jwt) TokenAuth() *jwtauth.JWTAuth {
	return jwtauth.New("HS256", []byte(j.Secret), nil)
}

// TokenFromAccessTokenQuery extracts a token from the access_token query
// parameter. Websocket clients cannot set an Authorization header on the
// upgrade request, so the hub endpoint accepts the token this way.
func TokenFromAccessTokenQuery(r *http.Request) string {
	return r.URL.Query().Get("access_token")
}

// Verifier seeks tokens in the Authorization header, the access_token
// query parameter, and the jwt cookie.
func Verifier(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return jwtauth.Verify(ja, jwtauth.TokenFromHeader, TokenFromAccessTokenQuery, jwtauth.TokenFromCookie)
}
