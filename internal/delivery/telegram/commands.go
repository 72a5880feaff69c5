package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/portfolio-bot/internal/domain/entities"
)

func (h *Handler) startCommand(_ *tgbotapi.Message, sess *entities.PageSession) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		msg := newMessage(chatID, welcomeMessage())
		kb := buildMenuKeyboard(sess.MenuOpen)
		msg.ReplyMarkup = kb
		h.send(msg)
		return nil
	}
}

func (h *Handler) helpCommand(_ *tgbotapi.Message, _ *entities.PageSession) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.send(newMessage(chatID, helpMessage()))
		return nil
	}
}

func (h *Handler) menuCommand(_ *tgbotapi.Message, sess *entities.PageSession) HandlerFunc {
	return h.menuHandler(sess)
}

func (h *Handler) settingsCommand(msg *tgbotapi.Message, sess *entities.PageSession) HandlerFunc {
	return h.settingsHandler(userIDOf(msg.From), sess)
}

func (h *Handler) projectsCommand(msg *tgbotapi.Message, sess *entities.PageSession) HandlerFunc {
	return h.projectsHandler(userIDOf(msg.From), sess)
}

// quizCommand starts the configured quiz, or the one named in the arguments.
func (h *Handler) quizCommand(msg *tgbotapi.Message, sess *entities.PageSession) HandlerFunc {
	variant := h.defaultQuiz
	if v, ok := entities.ParseQuizVariant(strings.TrimSpace(msg.CommandArguments())); ok {
		variant = v
	}
	return h.quizHandler(userIDOf(msg.From), sess, variant)
}

func (h *Handler) quickQuizCommand(msg *tgbotapi.Message, sess *entities.PageSession) HandlerFunc {
	return h.quizHandler(userIDOf(msg.From), sess, entities.VariantPattern)
}

func (h *Handler) countdownCommand(_ *tgbotapi.Message, sess *entities.PageSession) HandlerFunc {
	return h.countdownHandler(sess)
}

func (h *Handler) gradeCommand(msg *tgbotapi.Message, _ *entities.PageSession) HandlerFunc {
	args := strings.TrimSpace(msg.CommandArguments())
	if args == "" {
		return func(ctx context.Context, chatID int64) error {
			h.send(newPlainMessage(chatID, msgGradePrompt))
			return nil
		}
	}
	return h.gradeHandler(args)
}

// resetCommand drops the chat's session. Stored preferences are kept.
func (h *Handler) resetCommand(_ *tgbotapi.Message, sess *entities.PageSession) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.sessions.Delete(sess.ChatID)
		h.logger.Info("session reset", zap.Int64("chat_id", chatID))
		h.send(newPlainMessage(chatID, msgSessionReset))
		return nil
	}
}

func (h *Handler) menuHandler(sess *entities.PageSession) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		msg := newMessage(chatID, formatMenu(sess.MenuOpen))
		msg.ReplyMarkup = buildMenuKeyboard(sess.MenuOpen)
		h.send(msg)
		return nil
	}
}

// settingsHandler sends the accessibility popup already open. A popup left
// open in an older message is closed first.
func (h *Handler) settingsHandler(userID int64, sess *entities.PageSession) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.closePopup(ctx, sess, userID)

		prefs, err := h.preferenceService.Get(ctx, userID)
		if err != nil {
			h.logger.Error("failed to load preferences",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
			h.sendError(chatID, msgSettingsUnavailable)
			return nil
		}

		sess.PopupOpen = true

		msg := newMessage(chatID, formatSettings(prefs, true))
		msg.ReplyMarkup = buildSettingsKeyboard(prefs, true)

		sent, err := h.sendMessage(msg)
		if err != nil {
			sess.PopupOpen = false
			return nil
		}
		sess.SettingsMessageID = sent.MessageID

		return nil
	}
}

func (h *Handler) projectsHandler(userID int64, sess *entities.PageSession) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		prefs := h.preferences(ctx, userID)
		f := h.projectService.Filter(sess)

		msg := newMessage(chatID, formatProjects(f, prefs))
		msg.ReplyMarkup = buildFilterKeyboard(h.projectService.Categories(), f)
		h.send(msg)

		return nil
	}
}

func (h *Handler) quizHandler(userID int64, sess *entities.PageSession, variant entities.QuizVariant) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		pass, err := h.quizService.Start(sess, variant)
		if err != nil {
			return fmt.Errorf("start quiz %q: %w", variant, err)
		}

		prefs := h.preferences(ctx, userID)

		msg := newMessage(chatID, formatQuizPass(pass, prefs))
		msg.ReplyMarkup = buildQuizKeyboard(pass)
		h.send(msg)

		return nil
	}
}

// countdownHandler sends the countdown and tracks it for hourly refreshes.
func (h *Handler) countdownHandler(sess *entities.PageSession) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		view := h.countdownService.Render()

		sent, err := h.sendMessage(newMessage(chatID, formatCountdown(view)))
		if err != nil {
			return nil
		}

		if !view.Remaining.Done {
			h.countdownService.Track(sess, sent.MessageID)
		}

		return nil
	}
}

func (h *Handler) gradeHandler(input string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		g, err := entities.ConvertInput(input)
		if err != nil {
			if errors.Is(err, entities.ErrInvalidMark) {
				h.send(newPlainMessage(chatID, msgInvalidMark))
				return nil
			}
			return err
		}

		h.send(newMessage(chatID, formatGrade(g)))
		return nil
	}
}

// preferences loads the user's preferences, falling back to the defaults
// when storage is unavailable.
func (h *Handler) preferences(ctx context.Context, userID int64) *entities.Preferences {
	prefs, err := h.preferenceService.Get(ctx, userID)
	if err != nil {
		h.logger.Warn("failed to load preferences, using defaults",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return entities.NewPreferences(userID)
	}
	return prefs
}
