package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

var ErrPreferenceNotFound = errors.New("preference not found")

// PreferenceRepository stores per-user preferences as key/value strings.
type PreferenceRepository struct {
	db DBTX
}

func NewPreferenceRepository(db DBTX) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// GetAll returns every stored preference of the user.
// A user without preferences gets an empty map.
func (r *PreferenceRepository) GetAll(ctx context.Context, userID int64) (map[string]string, error) {
	query := `
        SELECT key, value
        FROM user_preferences
        WHERE user_id = $1
    `

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query preferences: %w", err)
	}
	defer rows.Close()

	kv := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan preference: %w", err)
		}
		kv[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate preferences: %w", err)
	}

	return kv, nil
}

// GetForUpdate reads one preference and locks its row until the surrounding
// transaction ends. Returns ErrPreferenceNotFound if the key was never set.
func (r *PreferenceRepository) GetForUpdate(ctx context.Context, userID int64, key string) (string, error) {
	query := `
        SELECT value
        FROM user_preferences
        WHERE user_id = $1 AND key = $2
        FOR UPDATE
    `

	var value string
	err := r.db.QueryRow(ctx, query, userID, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrPreferenceNotFound
		}
		return "", fmt.Errorf("get preference %s: %w", key, err)
	}

	return value, nil
}

// Set stores value under key, replacing any previous value.
func (r *PreferenceRepository) Set(ctx context.Context, userID int64, key, value string) error {
	query := `
        INSERT INTO user_preferences (user_id, key, value, updated_at)
        VALUES ($1, $2, $3, NOW())
        ON CONFLICT (user_id, key) DO UPDATE
            SET value = EXCLUDED.value, updated_at = NOW()
    `

	if _, err := r.db.Exec(ctx, query, userID, key, value); err != nil {
		return fmt.Errorf("set preference %s: %w", key, err)
	}

	return nil
}
