package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/pratik-hilale/hive/internal/domain"
)

// fakeUserService is a scriptable UserDataService. Each method counts its
// calls and delegates to the corresponding fn when one is set.
type fakeUserService struct {
	loginFn            func(ctx context.Context, email, password string) (*domain.AuthSession, error)
	registerFn         func(ctx context.Context, reg domain.Registration) (*domain.AuthSession, error)
	findByTokenFn      func(ctx context.Context, token string) (*domain.User, error)
	updateProfileFn    func(ctx context.Context, userID int64, firstname, lastname string) error
	getDevTokensFn     func(ctx context.Context, user *domain.User) ([]domain.DevToken, error)
	generateDevTokenFn func(ctx context.Context, user *domain.User, label string, ttlDays int) (*domain.DevToken, error)

	loginCalls       int
	registerCalls    int
	findByTokenCalls int
	lastLoginEmail   string
	lastToken        string
}

func (f *fakeUserService) Login(ctx context.Context, email, password string) (*domain.AuthSession, error) {
	f.loginCalls++
	f.lastLoginEmail = email
	if f.loginFn != nil {
		return f.loginFn(ctx, email, password)
	}
	return &domain.AuthSession{Token: "session-token", Email: email, CurrentTeamID: 1}, nil
}

func (f *fakeUserService) Register(ctx context.Context, reg domain.Registration) (*domain.AuthSession, error) {
	f.registerCalls++
	f.lastLoginEmail = reg.Email
	if f.registerFn != nil {
		return f.registerFn(ctx, reg)
	}
	return &domain.AuthSession{Token: "session-token", Email: reg.Email, CurrentTeamID: 1}, nil
}

func (f *fakeUserService) FindByToken(ctx context.Context, token string) (*domain.User, error) {
	f.findByTokenCalls++
	f.lastToken = token
	if f.findByTokenFn != nil {
		return f.findByTokenFn(ctx, token)
	}
	return nil, nil
}

func (f *fakeUserService) UpdateProfile(ctx context.Context, userID int64, firstname, lastname string) error {
	if f.updateProfileFn != nil {
		return f.updateProfileFn(ctx, userID, firstname, lastname)
	}
	return nil
}

func (f *fakeUserService) GetDevTokens(ctx context.Context, user *domain.User) ([]domain.DevToken, error) {
	if f.getDevTokensFn != nil {
		return f.getDevTokensFn(ctx, user)
	}
	return nil, nil
}

func (f *fakeUserService) GenerateDevToken(ctx context.Context, user *domain.User, label string, ttlDays int) (*domain.DevToken, error) {
	if f.generateDevTokenFn != nil {
		return f.generateDevTokenFn(ctx, user, label, ttlDays)
	}
	return &domain.DevToken{ID: "t1", UserID: user.ID, Label: label, Token: "dev-token"}, nil
}

// fakePrefStore records preference writes
type fakePrefStore struct {
	updateErr  error
	lastUserID int64
	lastPrefs  map[string]any
	calls      int
}

func (f *fakePrefStore) UpdatePreferences(ctx context.Context, userID int64, prefs map[string]any) error {
	f.calls++
	f.lastUserID = userID
	f.lastPrefs = prefs
	return f.updateErr
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// resolveUser makes FindByToken succeed for any non-empty token
func resolveUser(user *domain.User) func(context.Context, string) (*domain.User, error) {
	return func(ctx context.Context, token string) (*domain.User, error) {
		return user, nil
	}
}

func testUser() *domain.User {
	return &domain.User{
		ID:            42,
		Email:         "user@example.com",
		Firstname:     "Ada",
		Lastname:      "Lovelace",
		Name:          "Ada Lovelace",
		CurrentTeamID: 3,
		IsActive:      true,
		Preferences:   map[string]any{},
		CreatedAt:     time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func doRequest(h http.HandlerFunc, method, target, body, authHeader string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}
