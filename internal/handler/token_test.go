package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pratik-hilale/hive/internal/domain"
)

func TestExtractToken(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"Bearer abc123", "abc123"},
		{"jwt abc123", "abc123"},
		{"abc123", "abc123"},
		{"", ""},
		{"Basic abc123", "Basic abc123"},
		{"bearer abc123", "bearer abc123"}, // prefixes are case-sensitive
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ExtractToken(tc.header), "header %q", tc.header)
	}
}

// Every authenticated route must 401 without calling the service when the
// Authorization header is absent, and 401 on a token the service rejects.
func TestAuthenticatedRoutes_RequireToken(t *testing.T) {
	svc := &fakeUserService{}
	logger := testLogger()

	profile := NewProfileHandler(svc, logger)
	devTokens := NewDevTokenHandler(svc, logger)
	settings := NewSettingsHandler(svc, &fakePrefStore{}, logger)

	routes := []struct {
		name    string
		method  string
		handler http.HandlerFunc
	}{
		{"get profile", http.MethodGet, profile.GetProfile},
		{"update profile", http.MethodPut, profile.UpdateProfile},
		{"me", http.MethodGet, profile.Me},
		{"list dev tokens", http.MethodGet, devTokens.List},
		{"generate dev token", http.MethodPost, devTokens.Generate},
		{"get settings", http.MethodGet, settings.Get},
		{"update settings", http.MethodPut, settings.Update},
	}

	for _, route := range routes {
		t.Run(route.name, func(t *testing.T) {
			before := svc.findByTokenCalls

			rec := doRequest(route.handler, route.method, "/user/x", "", "")

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "No token provided", errorMessage(t, rec.Body.Bytes()))
			assert.Equal(t, before, svc.findByTokenCalls, "FindByToken must not be called")
		})
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	svc := &fakeUserService{} // FindByToken resolves to nil by default
	profile := NewProfileHandler(svc, testLogger())

	rec := doRequest(profile.GetProfile, http.MethodGet, "/user/profile", "", "Bearer expired")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid or expired token", errorMessage(t, rec.Body.Bytes()))
	assert.Equal(t, "expired", svc.lastToken, "scheme prefix must be stripped")
}

func TestAuthenticate_BareTokenHeader(t *testing.T) {
	svc := &fakeUserService{findByTokenFn: resolveUser(testUser())}
	profile := NewProfileHandler(svc, testLogger())

	rec := doRequest(profile.Me, http.MethodGet, "/user/me", "", "raw-token-value")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "raw-token-value", svc.lastToken)
}

func TestAuthenticate_LookupFailure(t *testing.T) {
	svc := &fakeUserService{
		findByTokenFn: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, assert.AnError
		},
	}
	profile := NewProfileHandler(svc, testLogger())

	rec := doRequest(profile.GetProfile, http.MethodGet, "/user/profile", "", "Bearer token")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", errorMessage(t, rec.Body.Bytes()))
}
