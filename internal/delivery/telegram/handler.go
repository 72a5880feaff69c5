package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/portfolio-bot/internal/domain/entities"
)

// commandFunc builds the handler for a command sent in msg.
type commandFunc func(msg *tgbotapi.Message, sess *entities.PageSession) HandlerFunc

type Handler struct {
	bot    BotAPI
	logger *zap.Logger

	userService       UserService
	preferenceService PreferenceService
	projectService    ProjectService
	quizService       QuizService
	countdownService  CountdownService
	sessions          SessionStore

	defaultQuiz entities.QuizVariant

	commands  map[string]commandFunc
	callbacks map[string]callbackFunc
}

func NewHandler(
	bot BotAPI,
	logger *zap.Logger,
	userService UserService,
	preferenceService PreferenceService,
	projectService ProjectService,
	quizService QuizService,
	countdownService CountdownService,
	sessions SessionStore,
	defaultQuiz entities.QuizVariant,
) *Handler {
	h := &Handler{
		bot:               bot,
		logger:            logger,
		userService:       userService,
		preferenceService: preferenceService,
		projectService:    projectService,
		quizService:       quizService,
		countdownService:  countdownService,
		sessions:          sessions,
		defaultQuiz:       defaultQuiz,
	}

	h.commands = map[string]commandFunc{
		"start":     h.startCommand,
		"help":      h.helpCommand,
		"menu":      h.menuCommand,
		"settings":  h.settingsCommand,
		"projects":  h.projectsCommand,
		"quiz":      h.quizCommand,
		"quickquiz": h.quickQuizCommand,
		"countdown": h.countdownCommand,
		"grade":     h.gradeCommand,
		"reset":     h.resetCommand,
	}

	h.callbacks = map[string]callbackFunc{
		actionPopup:  h.popupCallback,
		actionFont:   h.fontCallback,
		actionDark:   h.darkModeCallback,
		actionMenu:   h.menuCallback,
		actionNav:    h.navCallback,
		actionFilter: h.filterCallback,
		actionQuiz:   h.quizCallback,
	}

	return h
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		cb := update.CallbackQuery
		h.logger.Debug("callback received",
			zap.Int64("user_id", cb.From.ID),
			zap.String("data", cb.Data),
		)
		if cb.Message == nil {
			h.answerCallback(cb.ID, "")
			return
		}

		// The clicker may never have written to the bot, e.g. in a group.
		h.ensureUser(ctx, cb.From, cb.Message.Chat.ID)

		sess := h.sessions.GetOrCreate(cb.Message.Chat.ID)
		sess.Lock()
		defer sess.Unlock()

		h.handleCallback(ctx, cb, sess)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	msg := update.Message
	h.logger.Debug("update received",
		zap.Int64("chat_id", msg.Chat.ID),
		zap.String("text", msg.Text),
	)

	h.ensureUser(ctx, msg.From, msg.Chat.ID)

	sess := h.sessions.GetOrCreate(msg.Chat.ID)
	sess.Lock()
	defer sess.Unlock()

	h.handleMessage(ctx, msg, sess)
}

func (h *Handler) handleMessage(ctx context.Context, msg *tgbotapi.Message, sess *entities.PageSession) {
	chatID := msg.Chat.ID

	if !msg.IsCommand() {
		if strings.TrimSpace(msg.Text) == "" {
			return
		}
		h.closePopup(ctx, sess, userIDOf(msg.From))
		_ = h.withErrorHandling(h.gradeHandler(msg.Text))(ctx, chatID)
		return
	}

	command := msg.Command()
	fn, ok := h.commands[command]
	if !ok {
		h.send(newPlainMessage(chatID, msgUnknownCommand))
		return
	}

	if command != "settings" {
		h.closePopup(ctx, sess, userIDOf(msg.From))
	}

	_ = h.withErrorHandling(fn(msg, sess))(ctx, chatID)
}

// ensureUser records the sender so preferences can be stored for them.
func (h *Handler) ensureUser(ctx context.Context, from *tgbotapi.User, chatID int64) {
	if from == nil {
		return
	}
	if err := h.userService.EnsureUser(ctx, from.ID, chatID, from.UserName); err != nil {
		h.logger.Error("failed to ensure user",
			zap.Int64("user_id", from.ID),
			zap.Error(err),
		)
	}
}

// closePopup hides an open accessibility popup and redraws its message.
func (h *Handler) closePopup(ctx context.Context, sess *entities.PageSession, userID int64) {
	if !sess.PopupOpen {
		return
	}
	sess.ClosePopup()

	if sess.SettingsMessageID == 0 {
		return
	}

	prefs, err := h.preferenceService.Get(ctx, userID)
	if err != nil {
		h.logger.Warn("failed to load preferences for popup",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		prefs = entities.NewPreferences(userID)
	}

	edit := newEdit(sess.ChatID, sess.SettingsMessageID, formatSettings(prefs, false))
	kb := buildSettingsKeyboard(prefs, false)
	edit.ReplyMarkup = &kb
	h.edit(edit)
}

func (h *Handler) sendError(chatID int64, text string) {
	h.send(newPlainMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}

// sendMessage sends c and returns the message Telegram created.
func (h *Handler) sendMessage(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	sent, err := h.bot.Send(c)
	if err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
	return sent, err
}

// edit applies an in-place edit. Re-drawing identical content is not an error.
func (h *Handler) edit(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil && !isNotModified(err) {
		h.logger.Error("failed to edit telegram message",
			zap.Error(err),
		)
	}
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.logger.Warn("failed to answer callback", zap.Error(err))
	}
}

func isNotModified(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}

func userIDOf(u *tgbotapi.User) int64 {
	if u == nil {
		return 0
	}
	return u.ID
}
