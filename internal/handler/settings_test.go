package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSettings_Defaults(t *testing.T) {
	user := testUser()
	user.Preferences = map[string]any{}

	svc := &fakeUserService{findByTokenFn: resolveUser(user)}
	h := NewSettingsHandler(svc, &fakePrefStore{}, testLogger())

	rec := doRequest(h.Get, http.MethodGet, "/user/settings", "", "Bearer token")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp settingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.False(t, resp.Data.SidebarCollapsed)
	assert.Equal(t, "today", resp.Data.PerformanceDashboardTimeRange)
}

func TestGetSettings_StoredValues(t *testing.T) {
	user := testUser()
	user.Preferences = map[string]any{
		"sidebarCollapsed":              true,
		"performanceDashboardTimeRange": "week",
	}

	svc := &fakeUserService{findByTokenFn: resolveUser(user)}
	h := NewSettingsHandler(svc, &fakePrefStore{}, testLogger())

	rec := doRequest(h.Get, http.MethodGet, "/user/settings", "", "Bearer token")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp settingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Data.SidebarCollapsed)
	assert.Equal(t, "week", resp.Data.PerformanceDashboardTimeRange)
}

func TestUpdateSettings_MergePreservesUnrelatedKeys(t *testing.T) {
	user := testUser()
	user.Preferences = map[string]any{
		"performanceDashboardTimeRange": "week",
		"otherKey":                      "x",
	}

	store := &fakePrefStore{}
	svc := &fakeUserService{findByTokenFn: resolveUser(user)}
	h := NewSettingsHandler(svc, store, testLogger())

	rec := doRequest(h.Update, http.MethodPut, "/user/settings",
		`{"sidebarCollapsed":true}`, "Bearer token")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp settingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Data.SidebarCollapsed)
	assert.Equal(t, "week", resp.Data.PerformanceDashboardTimeRange)

	require.Equal(t, 1, store.calls)
	assert.Equal(t, int64(42), store.lastUserID)
	assert.Equal(t, "x", store.lastPrefs["otherKey"], "unrelated keys must survive the merge")
	assert.Equal(t, true, store.lastPrefs["sidebarCollapsed"])
	assert.Equal(t, "week", store.lastPrefs["performanceDashboardTimeRange"])
}

func TestUpdateSettings_NoStoreStillSucceeds(t *testing.T) {
	user := testUser()
	svc := &fakeUserService{findByTokenFn: resolveUser(user)}
	h := NewSettingsHandler(svc, nil, testLogger())

	rec := doRequest(h.Update, http.MethodPut, "/user/settings",
		`{"sidebarCollapsed":true}`, "Bearer token")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp settingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.Data.SidebarCollapsed)
	assert.Equal(t, "today", resp.Data.PerformanceDashboardTimeRange)
}

func TestUpdateSettings_StoreFailure(t *testing.T) {
	store := &fakePrefStore{updateErr: assert.AnError}
	svc := &fakeUserService{findByTokenFn: resolveUser(testUser())}
	h := NewSettingsHandler(svc, store, testLogger())

	rec := doRequest(h.Update, http.MethodPut, "/user/settings",
		`{"sidebarCollapsed":true}`, "Bearer token")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
