package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/pratik-hilale/hive/internal/domain"
)

// Messages shared by every authenticated route
const (
	msgNoToken       = "No token provided"
	msgInvalidToken  = "Invalid or expired token"
	msgInternalError = "Internal server error"
)

// ExtractToken strips a "jwt " or "Bearer " scheme prefix from an
// Authorization header value. Anything else passes through unchanged.
func ExtractToken(header string) string {
	for _, prefix := range []string{"Bearer ", "jwt "} {
		if strings.HasPrefix(header, prefix) {
			return strings.TrimPrefix(header, prefix)
		}
	}
	return header
}

// authenticate resolves the Authorization header to a user. On failure it
// writes the response itself and returns ok=false; callers just return.
// The service is never called when the header is absent.
func authenticate(w http.ResponseWriter, r *http.Request, users UserDataService, logger *slog.Logger) (*domain.User, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		RespondWithError(w, r, http.StatusUnauthorized, msgNoToken)
		return nil, false
	}

	found, err := users.FindByToken(r.Context(), ExtractToken(header))
	if err != nil {
		logger.Error("token lookup failed", "error", err)
		RespondWithError(w, r, http.StatusInternalServerError, msgInternalError)
		return nil, false
	}
	if found == nil {
		RespondWithError(w, r, http.StatusUnauthorized, msgInvalidToken)
		return nil, false
	}

	return found, true
}
