package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pratik-hilale/hive/internal/domain"
)

// DevTokenRepository implements repository.DevTokenRepository for PostgreSQL
type DevTokenRepository struct {
	db *pgxpool.Pool
}

// NewDevTokenRepository creates a new DevTokenRepository
func NewDevTokenRepository(db *pgxpool.Pool) *DevTokenRepository {
	return &DevTokenRepository{db: db}
}

// Create stores a newly issued dev token
func (r *DevTokenRepository) Create(ctx context.Context, token *domain.DevToken) error {
	query := `
		INSERT INTO dev_tokens (id, user_id, label, token, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	return r.db.QueryRow(ctx, query,
		token.ID,
		token.UserID,
		token.Label,
		token.Token,
		token.ExpiresAt,
	).Scan(&token.CreatedAt)
}

// ListByUser returns all dev tokens issued to a user, newest first
func (r *DevTokenRepository) ListByUser(ctx context.Context, userID int64) ([]domain.DevToken, error) {
	query := `
		SELECT id, user_id, label, token, created_at, expires_at
		FROM dev_tokens
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []domain.DevToken
	for rows.Next() {
		var t domain.DevToken
		if err := rows.Scan(&t.ID, &t.UserID, &t.Label, &t.Token, &t.CreatedAt, &t.ExpiresAt); err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}

	return tokens, rows.Err()
}
