package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pratik-hilale/hive/internal/domain"
)

// SettingsHandler handles UI settings stored in the user's preferences map.
// prefs may be nil: writes are then computed and returned but not persisted.
type SettingsHandler struct {
	users  UserDataService
	prefs  PreferenceStore
	logger *slog.Logger
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(users UserDataService, prefs PreferenceStore, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{
		users:  users,
		prefs:  prefs,
		logger: logger.With("component", "settings"),
	}
}

// settingsResponse wraps the merged UI settings
type settingsResponse struct {
	Success bool              `json:"success"`
	Data    domain.UISettings `json:"data"`
}

// Get handles GET /user/settings
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := authenticate(w, r, h.users, h.logger)
	if !ok {
		return
	}

	RespondWithJSON(w, r, http.StatusOK, settingsResponse{
		Success: true,
		Data:    domain.UISettingsFrom(user.Preferences),
	})
}

// Update handles PUT /user/settings. The patch is shallow-merged into the
// existing preferences map so keys owned by other features survive. Without
// a configured store the merge is still returned; persistence is best-effort.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := authenticate(w, r, h.users, h.logger)
	if !ok {
		return
	}

	var patch domain.UISettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	merged := patch.ApplyTo(user.Preferences)

	if h.prefs == nil {
		h.logger.Warn("no preference store configured, skipping settings persistence", "user_id", user.ID)
	} else if err := h.prefs.UpdatePreferences(r.Context(), user.ID, merged); err != nil {
		h.logger.Error("settings persistence failed", "user_id", user.ID, "error", err)
		RespondWithError(w, r, http.StatusInternalServerError, msgInternalError)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, settingsResponse{
		Success: true,
		Data:    domain.UISettingsFrom(merged),
	})
}
