package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
)

// ProfileHandler handles profile retrieval and updates
type ProfileHandler struct {
	users  UserDataService
	logger *slog.Logger
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(users UserDataService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		users:  users,
		logger: logger.With("component", "profile"),
	}
}

// profileView is the legacy projection served on GET /user/profile. Ids are
// stringified and the team id falls back to "1" for accounts predating
// teams; newer clients use /user/me instead.
type profileView struct {
	Firstname     string   `json:"firstname"`
	Lastname      string   `json:"lastname"`
	Email         string   `json:"email"`
	CompanyName   string   `json:"company_name"`
	ProfileImgURL string   `json:"profile_img_url"`
	RoleID        int64    `json:"roleId"`
	UserID        string   `json:"user_id"`
	TeamID        string   `json:"team_id"`
	Roles         []string `json:"roles"`
}

// profileResponse wraps the projection in a data envelope
type profileResponse struct {
	Data profileView `json:"data"`
}

// GetProfile handles GET /user/profile
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := authenticate(w, r, h.users, h.logger)
	if !ok {
		return
	}

	teamID := "1"
	if user.CurrentTeamID != 0 {
		teamID = strconv.FormatInt(user.CurrentTeamID, 10)
	}

	RespondWithJSON(w, r, http.StatusOK, profileResponse{
		Data: profileView{
			Firstname:     user.Firstname,
			Lastname:      user.Lastname,
			Email:         user.Email,
			CompanyName:   user.CompanyName,
			ProfileImgURL: user.ProfileImgURL,
			RoleID:        user.RoleID,
			UserID:        strconv.FormatInt(user.ID, 10),
			TeamID:        teamID,
			Roles:         []string{"user"},
		},
	})
}

// updateProfileRequest is the body of PUT /user/profile
type updateProfileRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// messageResponse is a bare message envelope
type messageResponse struct {
	Message string `json:"message"`
}

// UpdateProfile handles PUT /user/profile
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := authenticate(w, r, h.users, h.logger)
	if !ok {
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.users.UpdateProfile(r.Context(), user.ID, req.Firstname, req.Lastname); err != nil {
		h.logger.Error("profile update failed", "user_id", user.ID, "error", err)
		RespondWithError(w, r, http.StatusInternalServerError, msgInternalError)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, messageResponse{Message: "Profile updated"})
}

// meView is the current-user projection served on GET /user/me
type meView struct {
	ID            int64  `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	Firstname     string `json:"firstname"`
	Lastname      string `json:"lastname"`
	CurrentTeamID int64  `json:"current_team_id"`
	AvatarURL     string `json:"avatar_url"`
}

// meResponse wraps the current-user projection
type meResponse struct {
	Success bool   `json:"success"`
	User    meView `json:"user"`
}

// Me handles GET /user/me
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := authenticate(w, r, h.users, h.logger)
	if !ok {
		return
	}

	RespondWithJSON(w, r, http.StatusOK, meResponse{
		Success: true,
		User: meView{
			ID:            user.ID,
			Email:         user.Email,
			Name:          user.Name,
			Firstname:     user.Firstname,
			Lastname:      user.Lastname,
			CurrentTeamID: user.CurrentTeamID,
			AvatarURL:     user.ProfileImgURL,
		},
	})
}
