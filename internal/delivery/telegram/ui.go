package telegram

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/portfolio-bot/internal/domain/entities"
)

// buildSettingsKeyboard builds the accessibility popup. Only the toggle is
// shown while the popup is closed.
func buildSettingsKeyboard(p *entities.Preferences, open bool) tgbotapi.InlineKeyboardMarkup {
	toggle := "♿ Accessibility"
	if open {
		toggle = "✕ Close"
	}

	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(toggle, buildPopupCallback()),
		),
	}
	if !open {
		return tgbotapi.NewInlineKeyboardMarkup(rows...)
	}

	var sizes []tgbotapi.InlineKeyboardButton
	for _, size := range entities.FontSizes {
		label := formatFontSize(size)
		if p.FontSize == size {
			label = "• " + label
		}
		sizes = append(sizes, tgbotapi.NewInlineKeyboardButtonData(label, buildFontCallback(size)))
	}

	dark := "🌙 Dark mode: off"
	if p.DarkMode {
		dark = "☀️ Dark mode: on"
	}

	rows = append(rows,
		sizes,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(dark, buildDarkModeCallback()),
		),
	)

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildMenuKeyboard builds the navigation menu. Links are only listed while it is open.
func buildMenuKeyboard(open bool) tgbotapi.InlineKeyboardMarkup {
	icon := entities.MenuIconClosed
	if open {
		icon = entities.MenuIconOpen
	}

	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(icon, buildMenuCallback()),
		),
	}
	if !open {
		return tgbotapi.NewInlineKeyboardMarkup(rows...)
	}

	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗂 Projects", buildNavCallback(navProjects)),
			tgbotapi.NewInlineKeyboardButtonData("⏳ Countdown", buildNavCallback(navCountdown)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🧑‍🏫 Teaching quiz", buildNavCallback(navQuiz)),
			tgbotapi.NewInlineKeyboardButtonData("⚡ Quick check", buildNavCallback(navQuickQuiz)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📝 Grade converter", buildNavCallback(navGrade)),
			tgbotapi.NewInlineKeyboardButtonData("♿ Settings", buildNavCallback(navSettings)),
		),
	)

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildFilterKeyboard builds one button per category, "all" first. Active
// categories are marked.
func buildFilterKeyboard(categories []string, f *entities.CategoryFilter) tgbotapi.InlineKeyboardMarkup {
	tags := append([]string{entities.CategoryAll}, categories...)

	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton

	for _, tag := range tags {
		label := filterLabel(tag)
		if f.IsActive(tag) {
			label = "✅ " + label
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, buildFilterCallback(tag)))

		if len(row) == 3 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func filterLabel(tag string) string {
	if tag == entities.CategoryAll {
		return "All"
	}
	r, size := utf8.DecodeRuneInString(tag)
	if r == utf8.RuneError {
		return tag
	}
	return string(unicode.ToUpper(r)) + tag[size:]
}

// buildQuizKeyboard lists the options of the focused question, then
// navigation, then the submit button once every question is answered.
func buildQuizKeyboard(pass *entities.QuizPass) tgbotapi.InlineKeyboardMarkup {
	def := pass.Engine.Definition()
	variant := def.Variant
	q := def.Questions[pass.Focus]
	selected, _ := pass.Engine.Answer(q.ID)

	var rows [][]tgbotapi.InlineKeyboardButton
	for i, opt := range q.Options {
		label := opt.Text
		if opt.Token == selected {
			label = "✅ " + label
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildQuizAnswerCallback(variant, pass.PassID, pass.Focus, i)),
		))
	}

	var nav []tgbotapi.InlineKeyboardButton
	if pass.Focus > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(
			"◀️ Previous", buildQuizFocusCallback(variant, pass.PassID, pass.Focus-1),
		))
	}
	if pass.Focus < len(def.Questions)-1 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(
			"Next ▶️", buildQuizFocusCallback(variant, pass.PassID, pass.Focus+1),
		))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	if pass.Engine.Ready() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("📨 Submit (%d/%d)", pass.Engine.Answered(), len(def.Questions)),
				buildQuizSubmitCallback(variant, pass.PassID),
			),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func buildQuizResultKeyboard(pass *entities.QuizPass) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				"🔄 Take Quiz Again",
				buildQuizResetCallback(pass.Engine.Definition().Variant, pass.PassID),
			),
		),
	)
}
