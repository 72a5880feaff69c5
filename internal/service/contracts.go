package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/portfolio-bot/internal/domain/entities"
)

type UserRepository interface {
	SaveUser(ctx context.Context, user *entities.User) error
}

type PreferenceRepository interface {
	GetAll(ctx context.Context, userID int64) (map[string]string, error)
	GetForUpdate(ctx context.Context, userID int64, key string) (string, error)
	Set(ctx context.Context, userID int64, key, value string) error
}

type ProjectRepository interface {
	GetAll() []entities.Project
	Categories() []string
}

type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}

// CountdownNotifier redraws a countdown message that was already sent.
type CountdownNotifier interface {
	RefreshCountdown(ctx context.Context, chatID int64, messageID int, view CountdownView) error
}
