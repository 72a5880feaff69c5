package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/portfolio-bot/internal/domain/entities"
	"github.com/aliskhannn/portfolio-bot/internal/service"
)

// BotAPI is the subset of *tgbotapi.BotAPI the handler uses.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type UserService interface {
	EnsureUser(ctx context.Context, userID, chatID int64, username string) error
}

type PreferenceService interface {
	Get(ctx context.Context, userID int64) (*entities.Preferences, error)
	SetFontSize(ctx context.Context, userID int64, size string) (*entities.Preferences, error)
	ToggleDarkMode(ctx context.Context, userID int64) (*entities.Preferences, error)
}

type ProjectService interface {
	Categories() []string
	Filter(sess *entities.PageSession) *entities.CategoryFilter
	Toggle(sess *entities.PageSession, tag string) (*entities.CategoryFilter, error)
}

type QuizService interface {
	Start(sess *entities.PageSession, variant entities.QuizVariant) (*entities.QuizPass, error)
	Answer(sess *entities.PageSession, variant entities.QuizVariant, passID string, qIdx, optIdx int) (*entities.QuizPass, error)
	Submit(sess *entities.PageSession, variant entities.QuizVariant, passID string) (entities.QuizResult, error)
	Reset(sess *entities.PageSession, variant entities.QuizVariant, passID string) (*entities.QuizPass, error)
}

type CountdownService interface {
	Render() service.CountdownView
	Track(sess *entities.PageSession, messageID int)
}

// SessionStore keeps one page session per chat.
type SessionStore interface {
	GetOrCreate(chatID int64) *entities.PageSession
	Delete(chatID int64)
}
