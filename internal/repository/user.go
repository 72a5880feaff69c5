package repository

import (
	"context"
	"fmt"

	"github.com/aliskhannn/portfolio-bot/internal/domain/entities"
)

// UserRepository provides access to user data in the database.
type UserRepository struct {
	db DBTX
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// SaveUser inserts the user or refreshes chat, username and last_seen_at of an
// existing one. CreatedAt and LastSeenAt are filled from the database.
func (r *UserRepository) SaveUser(ctx context.Context, user *entities.User) error {
	query := `
    INSERT INTO users (id, chat_id, username)
    VALUES ($1, $2, $3)
    ON CONFLICT (id) DO UPDATE
        SET chat_id = EXCLUDED.chat_id,
            username = EXCLUDED.username,
            last_seen_at = NOW()
    RETURNING created_at, last_seen_at
    `
	err := r.db.QueryRow(ctx, query, user.ID, user.ChatID, user.Username).
		Scan(&user.CreatedAt, &user.LastSeenAt)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}
