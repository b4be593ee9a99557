package telegram

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

// Handle handles HTTP requests for Telegram account management.
type Handle struct {
	accountService *AccountService
}

// NewHandle creates a new Telegram handle.
func NewHandle(accountService *AccountService) Handle {
	return Handle{
		accountService: accountService,
	}
}

// RegisterRoutes registers the Telegram account routes.
func (h Handle) RegisterRoutes(r chi.Router) {
	r.Post("/login/start", h.StartLogin)
	r.Post("/login/submit-code", h.SubmitCode)
	r.Get("/accounts", h.ListAccounts)
}

// StartLogin handles the request to begin a login for a phone number.
func (h Handle) StartLogin(w http.ResponseWriter, r *http.Request) {
	var request struct {
		PhoneNumber string `json:"phone_number"`
		Password    string `json:"password"`
	}
	if err := render.DecodeJSON(r.Body, &request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.accountService.StartLogin(r.Context(), request.PhoneNumber, request.Password)
	if err != nil {
		if errors.Is(err, ErrPhoneRequired) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		slog.Error("Failed starting login", "err", err)
		http.Error(w, "Failed starting login", http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, result)
}

// SubmitCode handles the request to complete a pending login with a
// verification code.
func (h Handle) SubmitCode(w http.ResponseWriter, r *http.Request) {
	var request struct {
		LoginID uuid.UUID `json:"login_id"`
		Code    string    `json:"code"`
	}
	if err := render.DecodeJSON(r.Body, &request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	info, err := h.accountService.CompleteLogin(r.Context(), request.LoginID, request.Code)
	if err != nil {
		switch {
		case errors.Is(err, ErrLoginNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, ErrLoginIncomplete):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			slog.Error("Failed completing login", "login_id", request.LoginID, "err", err)
			http.Error(w, "Failed completing login", http.StatusInternalServerError)
		}
		return
	}

	render.JSON(w, r, info)
}

// ListAccounts handles the request to list all logged-in accounts.
func (h Handle) ListAccounts(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.accountService.ListAccounts())
}
