package repository

import (
	"context"

	"github.com/pratik-hilale/hive/internal/domain"
)

// UserRepository defines persistence operations for user accounts
type UserRepository interface {
	// Create inserts a new user and fills in ID/CreatedAt/UpdatedAt.
	// Returns domain.ErrEmailExists when the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByEmail fetches a user by normalized email
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetByID fetches a user by primary key
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// UpdateProfile updates the name fields of a user
	UpdateProfile(ctx context.Context, id int64, firstname, lastname string) error

	// UpdatePreferences replaces the preferences JSON of a user
	UpdatePreferences(ctx context.Context, id int64, prefs map[string]any) error
}

// DevTokenRepository defines persistence operations for developer API tokens
type DevTokenRepository interface {
	// Create stores a newly issued dev token
	Create(ctx context.Context, token *domain.DevToken) error

	// ListByUser returns all dev tokens issued to a user, newest first
	ListByUser(ctx context.Context, userID int64) ([]domain.DevToken, error)
}
