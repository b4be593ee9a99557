package users

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/go-chi/render"

	"github.com/tendant/tgvault/pkg/auth"
)

// Handle handles HTTP requests for local user auth and management.
type Handle struct {
	userService *UserService
	jwtService  *auth.Jwt
}

// NewHandle creates a new users handle.
func NewHandle(userService *UserService, jwtService *auth.Jwt) Handle {
	return Handle{
		userService: userService,
		jwtService:  jwtService,
	}
}

// Login authenticates a local user and issues an access token.
func (h Handle) Login(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := render.DecodeJSON(r.Body, &request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	username, err := h.userService.Authenticate(r.Context(), request.Username, request.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		slog.Error("Failed authenticating user", "username", request.Username, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	accessToken, err := h.jwtService.CreateAccessToken(username)
	if err != nil {
		slog.Error("Failed creating access token", "username", username, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}{
		AccessToken: accessToken.Token,
		TokenType:   "Bearer",
		ExpiresIn:   int(time.Until(accessToken.Expiry).Seconds()),
	})
}

// CreateUser creates a new local user. Only the configured admin may call
// it; mount behind the JWT middleware.
func (h Handle) CreateUser(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	subject, _ := claims["sub"].(string)
	if !h.userService.IsAdmin(subject) {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	var request struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := render.DecodeJSON(r.Body, &request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if request.Username == "" || request.Password == "" {
		http.Error(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.userService.CreateUser(r.Context(), request.Username, request.Password)
	if err != nil {
		var exists ErrUsernameAlreadyExists
		if errors.As(err, &exists) {
			http.Error(w, exists.Error(), http.StatusConflict)
			return
		}
		slog.Error("Failed creating user", "username", request.Username, "err", err)
		http.Error(w, "Failed creating user", http.StatusInternalServerError)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, user)
}
