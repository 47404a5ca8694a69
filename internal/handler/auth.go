package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/pratik-hilale/hive/internal/domain"
)

const (
	msgFieldsRequired = "Email and password are required"
	msgInvalidEmail   = "Please enter a valid email"
	msgInvalidLogin   = "Invalid email or password"
	minLoginPassword  = 6
	minSignupPassword = 8
)

// AuthHandler handles login and registration
type AuthHandler struct {
	users  UserDataService
	logger *slog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(users UserDataService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		users:  users,
		logger: logger.With("component", "auth"),
	}
}

// credentialsRequest is the body of both login and registration requests
type credentialsRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// sessionResponse is the body returned on successful login or registration
type sessionResponse struct {
	Success       bool      `json:"success"`
	Token         string    `json:"token"`
	Email         string    `json:"email"`
	Firstname     string    `json:"firstname"`
	Lastname      string    `json:"lastname"`
	Name          string    `json:"name"`
	CurrentTeamID int64     `json:"current_team_id"`
	CreateTime    time.Time `json:"create_time"`
}

func newSessionResponse(session *domain.AuthSession) sessionResponse {
	return sessionResponse{
		Success:       true,
		Token:         session.Token,
		Email:         session.Email,
		Firstname:     session.Firstname,
		Lastname:      session.Lastname,
		Name:          session.Name,
		CurrentTeamID: session.CurrentTeamID,
		CreateTime:    session.CreatedAt,
	}
}

// validateCredentials normalizes the email and applies the shared checks.
// A non-empty message means validation failed and has already been decided.
func validateCredentials(req *credentialsRequest, minPassword int) string {
	req.Email = normalizeEmail(req.Email)

	if req.Email == "" || req.Password == "" {
		return msgFieldsRequired
	}
	if !isValidEmail(req.Email) {
		return msgInvalidEmail
	}
	if len(req.Password) < minPassword {
		return passwordTooShortMessage(minPassword)
	}

	return ""
}

func passwordTooShortMessage(minPassword int) string {
	if minPassword == minSignupPassword {
		return "Password must be at least 8 characters"
	}
	return "Password must be at least 6 characters"
}

// Login handles POST /user/login-v2
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := validateCredentials(&req, minLoginPassword); msg != "" {
		RespondWithError(w, r, http.StatusBadRequest, msg)
		return
	}

	session, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.respondLoginError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, newSessionResponse(session))
}

// respondLoginError maps login business failures to status codes. The
// not-found and bad-password cases collapse into one message so the
// response does not leak which emails have accounts.
func (h *AuthHandler) respondLoginError(w http.ResponseWriter, r *http.Request, err error) {
	var authErr *domain.AuthError
	if errors.As(err, &authErr) {
		switch {
		case errors.Is(authErr, domain.ErrUserNotFound), errors.Is(authErr, domain.ErrInvalidCredentials):
			RespondWithError(w, r, http.StatusUnauthorized, msgInvalidLogin)
		case errors.Is(authErr, domain.ErrOAuthRequired):
			RespondWithError(w, r, http.StatusBadRequest, authErr.Message)
		case errors.Is(authErr, domain.ErrAccountDisabled):
			RespondWithError(w, r, http.StatusForbidden, authErr.Message)
		default:
			h.logger.Error("login failed", "error", err)
			RespondWithError(w, r, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	h.logger.Error("login failed", "error", err)
	RespondWithError(w, r, http.StatusInternalServerError, msgInternalError)
}

// Register handles POST /user/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := validateCredentials(&req, minSignupPassword); msg != "" {
		RespondWithError(w, r, http.StatusBadRequest, msg)
		return
	}

	session, err := h.users.Register(r.Context(), domain.Registration{
		Email:     req.Email,
		Password:  req.Password,
		Name:      req.Name,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
	})
	if err != nil {
		var authErr *domain.AuthError
		if errors.As(err, &authErr) && errors.Is(authErr, domain.ErrEmailExists) {
			RespondWithError(w, r, http.StatusConflict, authErr.Message)
			return
		}
		h.logger.Error("registration failed", "error", err)
		RespondWithError(w, r, http.StatusInternalServerError, msgInternalError)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, newSessionResponse(session))
}
