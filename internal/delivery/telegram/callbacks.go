package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/portfolio-bot/internal/domain/entities"
	"github.com/aliskhannn/portfolio-bot/internal/service"
)

// callbackResult describes how the clicked message changes.
type callbackResult struct {
	text     string
	keyboard *tgbotapi.InlineKeyboardMarkup
	notice   string // short toast shown to the user
	noEdit   bool
}

type callbackFunc func(
	ctx context.Context,
	cb *tgbotapi.CallbackQuery,
	sess *entities.PageSession,
	data callbackData,
) (callbackResult, error)

// insidePopup lists actions that belong to the accessibility popup. Any
// other click closes it.
var insidePopup = map[string]bool{
	actionPopup: true,
	actionFont:  true,
	actionDark:  true,
}

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, sess *entities.PageSession) {
	data := decodeCallback(cb.Data)

	fn, ok := h.callbacks[data.Action]
	if !ok {
		h.logger.Debug("unknown callback action", zap.String("data", cb.Data))
		h.answerCallback(cb.ID, "")
		return
	}

	if !insidePopup[data.Action] {
		h.closePopup(ctx, sess, cb.From.ID)
	}

	res, err := fn(ctx, cb, sess, data)
	if err != nil {
		h.logger.Error("callback error",
			zap.String("data", cb.Data),
			zap.Int64("chat_id", sess.ChatID),
			zap.Error(err),
		)
		h.answerCallback(cb.ID, msgInternalError)
		return
	}

	if !res.noEdit {
		edit := newEdit(cb.Message.Chat.ID, cb.Message.MessageID, res.text)
		if res.keyboard != nil {
			edit.ReplyMarkup = res.keyboard
		}
		h.edit(edit)
	}

	// Remove the user's "clock".
	h.answerCallback(cb.ID, res.notice)
}

func (h *Handler) popupCallback(
	ctx context.Context,
	cb *tgbotapi.CallbackQuery,
	sess *entities.PageSession,
	_ callbackData,
) (callbackResult, error) {
	prefs, err := h.preferenceService.Get(ctx, cb.From.ID)
	if err != nil {
		h.logger.Error("failed to load preferences",
			zap.Int64("user_id", cb.From.ID),
			zap.Error(err),
		)
		return callbackResult{notice: msgSettingsUnavailable, noEdit: true}, nil
	}

	h.moveSettings(ctx, sess, cb)
	open := sess.TogglePopup()

	return settingsResult(prefs, open), nil
}

func (h *Handler) fontCallback(
	ctx context.Context,
	cb *tgbotapi.CallbackQuery,
	sess *entities.PageSession,
	data callbackData,
) (callbackResult, error) {
	prefs, err := h.preferenceService.SetFontSize(ctx, cb.From.ID, data.param(0))
	if err != nil {
		if errors.Is(err, entities.ErrInvalidFontSize) {
			return callbackResult{noEdit: true}, nil
		}
		h.logger.Error("failed to save font size",
			zap.Int64("user_id", cb.From.ID),
			zap.Error(err),
		)
		return callbackResult{notice: msgSettingsUnavailable, noEdit: true}, nil
	}

	h.moveSettings(ctx, sess, cb)

	res := settingsResult(prefs, sess.PopupOpen)
	res.notice = "Text size: " + formatFontSize(prefs.FontSize)
	return res, nil
}

func (h *Handler) darkModeCallback(
	ctx context.Context,
	cb *tgbotapi.CallbackQuery,
	sess *entities.PageSession,
	_ callbackData,
) (callbackResult, error) {
	prefs, err := h.preferenceService.ToggleDarkMode(ctx, cb.From.ID)
	if err != nil {
		h.logger.Error("failed to save dark mode",
			zap.Int64("user_id", cb.From.ID),
			zap.Error(err),
		)
		return callbackResult{notice: msgSettingsUnavailable, noEdit: true}, nil
	}

	h.moveSettings(ctx, sess, cb)

	res := settingsResult(prefs, sess.PopupOpen)
	res.notice = "Dark mode: " + formatBool(prefs.DarkMode)
	return res, nil
}

// moveSettings makes the clicked message the settings host. A popup left
// open on another message is collapsed first.
func (h *Handler) moveSettings(ctx context.Context, sess *entities.PageSession, cb *tgbotapi.CallbackQuery) {
	if sess.PopupOpen && sess.SettingsMessageID != cb.Message.MessageID {
		h.closePopup(ctx, sess, cb.From.ID)
	}
	sess.SettingsMessageID = cb.Message.MessageID
}

func settingsResult(prefs *entities.Preferences, open bool) callbackResult {
	kb := buildSettingsKeyboard(prefs, open)
	return callbackResult{
		text:     formatSettings(prefs, open),
		keyboard: &kb,
	}
}

func (h *Handler) menuCallback(
	_ context.Context,
	_ *tgbotapi.CallbackQuery,
	sess *entities.PageSession,
	_ callbackData,
) (callbackResult, error) {
	return menuResult(sess.ToggleMenu()), nil
}

func menuResult(open bool) callbackResult {
	kb := buildMenuKeyboard(open)
	return callbackResult{
		text:     formatMenu(open),
		keyboard: &kb,
	}
}

// navCallback follows a menu link. The menu closes and the destination is
// sent as a new message.
func (h *Handler) navCallback(
	ctx context.Context,
	cb *tgbotapi.CallbackQuery,
	sess *entities.PageSession,
	data callbackData,
) (callbackResult, error) {
	var next HandlerFunc

	switch data.param(0) {
	case navProjects:
		next = h.projectsHandler(cb.From.ID, sess)
	case navQuiz:
		next = h.quizHandler(cb.From.ID, sess, h.defaultQuiz)
	case navQuickQuiz:
		next = h.quizHandler(cb.From.ID, sess, entities.VariantPattern)
	case navCountdown:
		next = h.countdownHandler(sess)
	case navGrade:
		next = func(ctx context.Context, chatID int64) error {
			h.send(newPlainMessage(chatID, msgGradePrompt))
			return nil
		}
	case navSettings:
		next = h.settingsHandler(cb.From.ID, sess)
	default:
		return callbackResult{noEdit: true}, nil
	}

	sess.MenuOpen = false
	res := menuResult(false)

	_ = h.withErrorHandling(next)(ctx, cb.Message.Chat.ID)

	return res, nil
}

func (h *Handler) filterCallback(
	ctx context.Context,
	cb *tgbotapi.CallbackQuery,
	sess *entities.PageSession,
	data callbackData,
) (callbackResult, error) {
	f, err := h.projectService.Toggle(sess, data.param(0))
	if err != nil {
		if errors.Is(err, service.ErrUnknownCategory) {
			return callbackResult{notice: msgUnknownCategory, noEdit: true}, nil
		}
		return callbackResult{}, fmt.Errorf("toggle filter: %w", err)
	}

	prefs := h.preferences(ctx, cb.From.ID)
	kb := buildFilterKeyboard(h.projectService.Categories(), f)

	return callbackResult{
		text:     formatProjects(f, prefs),
		keyboard: &kb,
	}, nil
}

// quizCallback handles quiz:<sub>:<variant>:<pass>[:<question>[:<option>]].
func (h *Handler) quizCallback(
	ctx context.Context,
	cb *tgbotapi.CallbackQuery,
	sess *entities.PageSession,
	data callbackData,
) (callbackResult, error) {
	variant, ok := entities.ParseQuizVariant(data.param(1))
	if !ok {
		return callbackResult{noEdit: true}, nil
	}
	passID := data.param(2)

	var (
		pass *entities.QuizPass
		err  error
	)

	switch data.param(0) {
	case quizAnswer:
		qIdx, okQ := data.intParam(3)
		optIdx, okO := data.intParam(4)
		if !okQ || !okO {
			return callbackResult{noEdit: true}, nil
		}
		pass, err = h.quizService.Answer(sess, variant, passID, qIdx, optIdx)
		if err == nil {
			pass.Focus = nextFocus(pass, qIdx)
		}

	case quizFocus:
		qIdx, okQ := data.intParam(3)
		if !okQ {
			return callbackResult{noEdit: true}, nil
		}
		current, found := sess.Quizzes[variant]
		if !found || current.PassID != passID || current.Submitted {
			return quizErrorResult(service.ErrStalePass)
		}
		pass = current
		if qIdx >= 0 && qIdx < len(pass.Engine.Definition().Questions) {
			pass.Focus = qIdx
		}

	case quizSubmit:
		result, err := h.quizService.Submit(sess, variant, passID)
		if err != nil {
			return quizErrorResult(err)
		}
		h.logger.Info("quiz submitted",
			zap.Int64("chat_id", sess.ChatID),
			zap.String("variant", string(variant)),
			zap.String("label", result.Label),
		)
		kb := buildQuizResultKeyboard(sess.Quizzes[variant])
		return callbackResult{text: formatQuizResult(result), keyboard: &kb}, nil

	case quizReset:
		pass, err = h.quizService.Reset(sess, variant, passID)

	default:
		return callbackResult{noEdit: true}, nil
	}

	if err != nil {
		return quizErrorResult(err)
	}

	prefs := h.preferences(ctx, cb.From.ID)
	kb := buildQuizKeyboard(pass)

	return callbackResult{
		text:     formatQuizPass(pass, prefs),
		keyboard: &kb,
	}, nil
}

// quizErrorResult turns expected quiz errors into a toast.
func quizErrorResult(err error) (callbackResult, error) {
	switch {
	case errors.Is(err, service.ErrStalePass):
		return callbackResult{notice: msgQuizRestarted, noEdit: true}, nil
	case errors.Is(err, service.ErrQuizNotReady):
		return callbackResult{notice: msgQuizNotReady, noEdit: true}, nil
	case errors.Is(err, service.ErrQuizSubmitted):
		return callbackResult{notice: msgQuizAlreadySubmitted, noEdit: true}, nil
	case errors.Is(err, service.ErrInvalidAnswer),
		errors.Is(err, service.ErrUnknownVariant),
		errors.Is(err, entities.ErrUnknownOption),
		errors.Is(err, entities.ErrUnknownQuestion):
		return callbackResult{noEdit: true}, nil
	default:
		return callbackResult{}, fmt.Errorf("quiz: %w", err)
	}
}

// nextFocus returns the first unanswered question after answered, wrapping
// around. It stays put when every question has an answer.
func nextFocus(pass *entities.QuizPass, answered int) int {
	questions := pass.Engine.Definition().Questions
	n := len(questions)

	for step := 1; step <= n; step++ {
		i := (answered + step) % n
		if _, ok := pass.Engine.Answer(questions[i].ID); !ok {
			return i
		}
	}

	return answered
}
