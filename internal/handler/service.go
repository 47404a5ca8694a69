package handler

import (
	"context"

	"github.com/pratik-hilale/hive/internal/domain"
)

// UserDataService is the user-data collaborator the handlers delegate to.
// Business failures from Login and Register are *domain.AuthError values;
// FindByToken reports an invalid or expired token as (nil, nil).
type UserDataService interface {
	Login(ctx context.Context, email, password string) (*domain.AuthSession, error)
	Register(ctx context.Context, reg domain.Registration) (*domain.AuthSession, error)
	FindByToken(ctx context.Context, token string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int64, firstname, lastname string) error
	GetDevTokens(ctx context.Context, user *domain.User) ([]domain.DevToken, error)
	GenerateDevToken(ctx context.Context, user *domain.User, label string, ttlDays int) (*domain.DevToken, error)
}

// PreferenceStore persists the preferences map of a user. The settings
// handler treats it as optional: deployments without a database pool run
// with a nil store and settings writes become best-effort.
type PreferenceStore interface {
	UpdatePreferences(ctx context.Context, userID int64, prefs map[string]any) error
}
