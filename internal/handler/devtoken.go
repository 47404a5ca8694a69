package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pratik-hilale/hive/internal/domain"
)

// DevTokenHandler handles developer API token issuance and listing
type DevTokenHandler struct {
	users  UserDataService
	logger *slog.Logger
}

// NewDevTokenHandler creates a new DevTokenHandler
func NewDevTokenHandler(users UserDataService, logger *slog.Logger) *DevTokenHandler {
	return &DevTokenHandler{
		users:  users,
		logger: logger.With("component", "devtoken"),
	}
}

// devTokenListResponse wraps the token records of a user
type devTokenListResponse struct {
	Success bool              `json:"success"`
	Data    []domain.DevToken `json:"data"`
}

// List handles GET /user/get-dev-tokens
func (h *DevTokenHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := authenticate(w, r, h.users, h.logger)
	if !ok {
		return
	}

	tokens, err := h.users.GetDevTokens(r.Context(), user)
	if err != nil {
		h.logger.Error("dev token listing failed", "user_id", user.ID, "error", err)
		RespondWithError(w, r, http.StatusInternalServerError, msgInternalError)
		return
	}
	if tokens == nil {
		tokens = []domain.DevToken{}
	}

	RespondWithJSON(w, r, http.StatusOK, devTokenListResponse{Success: true, Data: tokens})
}

// generateDevTokenRequest is the body of POST /user/generate-dev-token.
// TTL is in days; zero requests a non-expiring token.
type generateDevTokenRequest struct {
	Label string `json:"label"`
	TTL   int    `json:"ttl"`
}

// devTokenResponse wraps a single issued token record
type devTokenResponse struct {
	Success bool             `json:"success"`
	Data    *domain.DevToken `json:"data"`
}

// Generate handles POST /user/generate-dev-token
func (h *DevTokenHandler) Generate(w http.ResponseWriter, r *http.Request) {
	user, ok := authenticate(w, r, h.users, h.logger)
	if !ok {
		return
	}

	var req generateDevTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.users.GenerateDevToken(r.Context(), user, req.Label, req.TTL)
	if err != nil {
		h.logger.Error("dev token generation failed", "user_id", user.ID, "error", err)
		RespondWithError(w, r, http.StatusInternalServerError, msgInternalError)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, devTokenResponse{Success: true, Data: token})
}
