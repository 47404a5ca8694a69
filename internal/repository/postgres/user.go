package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pratik-hilale/hive/internal/domain"
)

const uniqueViolation = "23505"

// UserRepository implements repository.UserRepository for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `
	id, email, password_hash, firstname, lastname, name, company_name,
	profile_img_url, role_id, current_team_id, is_active, preferences,
	created_at, updated_at
`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Firstname,
		&user.Lastname,
		&user.Name,
		&user.CompanyName,
		&user.ProfileImgURL,
		&user.RoleID,
		&user.CurrentTeamID,
		&user.IsActive,
		&user.Preferences,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user and fills in the generated fields
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (
			email, password_hash, firstname, lastname, name, company_name,
			profile_img_url, role_id, current_team_id, is_active, preferences
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		user.Email,
		user.PasswordHash,
		user.Firstname,
		user.Lastname,
		user.Name,
		user.CompanyName,
		user.ProfileImgURL,
		user.RoleID,
		user.CurrentTeamID,
		user.IsActive,
		user.Preferences,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrEmailExists
		}
		return err
	}

	return nil
}

// GetByEmail fetches a user by normalized email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

// GetByID fetches a user by primary key
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

// UpdateProfile updates the name fields of a user
func (r *UserRepository) UpdateProfile(ctx context.Context, id int64, firstname, lastname string) error {
	query := `
		UPDATE users
		SET firstname = $1, lastname = $2, name = TRIM($1 || ' ' || $2), updated_at = NOW()
		WHERE id = $3
	`

	result, err := r.db.Exec(ctx, query, firstname, lastname, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

// UpdatePreferences replaces the preferences JSON of a user
func (r *UserRepository) UpdatePreferences(ctx context.Context, id int64, prefs map[string]any) error {
	query := `
		UPDATE users
		SET preferences = $1, updated_at = NOW()
		WHERE id = $2
	`

	result, err := r.db.Exec(ctx, query, prefs, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}
