package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/wonderland-bot/internal/domain/entities"
	"github.com/aliskhannn/wonderland-bot/internal/infra/postgres"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository provides access to player records in the database.
type UserRepository struct {
	db postgres.DBTX
}

// NewUserRepository creates a new UserRepository with the provided database handle.
func NewUserRepository(db postgres.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// Save inserts a new player or refreshes the chat of an existing one.
// It reports whether a new row was created.
func (r *UserRepository) Save(ctx context.Context, user *entities.User) (bool, error) {
	query := `
		INSERT INTO players (id, chat_id, is_active, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			chat_id = EXCLUDED.chat_id,
			is_active = EXCLUDED.is_active
		RETURNING (xmax = 0) AS created
	`

	var created bool
	err := r.db.QueryRow(ctx, query, user.ID, user.ChatID, user.IsActive, user.CreatedAt).Scan(&created)
	if err != nil {
		return false, fmt.Errorf("save user: %w", err)
	}

	return created, nil
}

// Exists checks if a player with the given ID exists in the database.
func (r *UserRepository) Exists(ctx context.Context, userID int64) (bool, error) {
	query := "SELECT EXISTS(SELECT 1 FROM players WHERE id = $1)"

	var exists bool
	err := r.db.QueryRow(ctx, query, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check user existence: %w", err)
	}

	return exists, nil
}

// GetByID retrieves a player by ID.
func (r *UserRepository) GetByID(ctx context.Context, userID int64) (*entities.User, error) {
	query := `
		SELECT id, chat_id, is_active, created_at
		FROM players
		WHERE id = $1
	`

	var user entities.User
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&user.ID,
		&user.ChatID,
		&user.IsActive,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}
