// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/portfolio-bot/internal/domain/entities"
	"github.com/aliskhannn/portfolio-bot/internal/service"
)

// Error and notice messages.
const (
	msgInvalidMark          = "Please enter a valid percentage between 0 and 100"
	msgGradePrompt          = "Send me a mark between 0 and 100, for example: /grade 85"
	msgSettingsUnavailable  = "Settings are unavailable right now. Please try again later."
	msgInternalError        = "Something went wrong. Please try again later."
	msgUnknownCommand       = "Unknown command. Try /menu to see everything I can do."
	msgQuizRestarted        = "This quiz was restarted, use the latest message."
	msgQuizNotReady         = "Answer every question first."
	msgQuizAlreadySubmitted = "Already submitted. Take the quiz again to change answers."
	msgUnknownCategory      = "That category no longer exists."
	msgSessionReset         = "Session cleared. Menu, filters and quiz answers are back to the start."
)

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

func italic(s string) string {
	return "_" + md(s) + "_"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a plain message without MarkdownV2 parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newEdit creates an edit with MarkdownV2 parse mode.
func newEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	return edit
}

// theme holds the glyphs that change with dark mode.
type theme struct {
	header string
	bullet string
	off    string
}

func themeFor(p *entities.Preferences) theme {
	if p != nil && p.DarkMode {
		return theme{header: "🌙", bullet: "▪️", off: "▫️"}
	}
	return theme{header: "☀️", bullet: "🔹", off: "▫️"}
}

func welcomeMessage() string {
	var sb strings.Builder

	sb.WriteString(bold("Hi, and welcome to my portfolio!"))
	sb.WriteString("\n\n")
	sb.WriteString(md("Here you can:"))
	sb.WriteString("\n")
	sb.WriteString(md("🗂 Browse my projects and filter them by category: /projects"))
	sb.WriteString("\n")
	sb.WriteString(md("🧑‍🏫 Find your teaching style: /quiz or the shorter /quickquiz"))
	sb.WriteString("\n")
	sb.WriteString(md("⏳ See how long until graduation: /countdown"))
	sb.WriteString("\n")
	sb.WriteString(md("📝 Convert a mark to an HSC grade and band: /grade 85"))
	sb.WriteString("\n")
	sb.WriteString(md("♿ Change text size and dark mode: /settings"))
	sb.WriteString("\n\n")
	sb.WriteString(md("Open /menu at any time to jump around."))

	return sb.String()
}

func helpMessage() string {
	lines := []string{
		"/menu — open or close the navigation menu",
		"/projects — project cards with category filters",
		"/quiz — six-question teaching style quiz",
		"/quickquiz — three-question teaching style check",
		"/countdown — time left until graduation",
		"/grade N — convert a percentage to a grade and band",
		"/settings — accessibility options",
		"/reset — start over with a fresh session",
	}
	return md(strings.Join(lines, "\n"))
}

// formatSettings renders the accessibility section.
func formatSettings(p *entities.Preferences, popupOpen bool) string {
	t := themeFor(p)

	var sb strings.Builder
	sb.WriteString(bold(t.header + " Accessibility"))
	sb.WriteString("\n\n")
	sb.WriteString(md(fmt.Sprintf("🔠 Text size: %s", formatFontSize(p.FontSize))))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("🌓 Dark mode: %s", formatBool(p.DarkMode))))

	if popupOpen {
		sb.WriteString("\n\n")
		sb.WriteString(italic("Pick a text size or switch dark mode below."))
	}

	return sb.String()
}

func formatFontSize(size entities.FontSize) string {
	switch size {
	case entities.FontSmall:
		return "Small"
	case entities.FontLarge:
		return "Large"
	default:
		return "Normal"
	}
}

func formatBool(b bool) string {
	if b {
		return "On ✅"
	}
	return "Off ❌"
}

// formatMenu renders the navigation menu header.
func formatMenu(open bool) string {
	if open {
		return bold("Menu") + "\n\n" + md("Where to?")
	}
	return bold("Menu") + "\n\n" + md("Tap ☰ to open the navigation.")
}

// formatProjects renders the visible project cards. The amount of detail
// follows the preferred text size.
func formatProjects(f *entities.CategoryFilter, p *entities.Preferences) string {
	t := themeFor(p)
	visible := f.Visible()

	var sb strings.Builder
	sb.WriteString(bold(fmt.Sprintf("%s Projects (%d of %d)", t.header, len(visible), len(f.Cards()))))
	sb.WriteString("\n")
	sb.WriteString(italic("Showing: " + strings.Join(f.Active(), ", ")))

	for _, card := range visible {
		sb.WriteString("\n\n")
		sb.WriteString(md(t.bullet + " "))
		sb.WriteString(bold(card.Title))
		sb.WriteString(md(" [" + card.Category + "]"))

		if p.FontSize == entities.FontSmall {
			continue
		}
		if card.Summary != "" {
			sb.WriteString("\n")
			sb.WriteString(md(card.Summary))
		}

		if p.FontSize != entities.FontLarge {
			continue
		}
		if card.Description != "" {
			sb.WriteString("\n")
			sb.WriteString(md(card.Description))
		}
		if card.URL != "" {
			sb.WriteString("\n")
			sb.WriteString(md("🔗 " + card.URL))
		}
	}

	return sb.String()
}

// formatQuizPass renders the quiz overview and the focused question.
func formatQuizPass(pass *entities.QuizPass, p *entities.Preferences) string {
	t := themeFor(p)
	def := pass.Engine.Definition()
	total := len(def.Questions)

	var sb strings.Builder
	sb.WriteString(bold(t.header + " " + def.Title))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("Answered %d of %d", pass.Engine.Answered(), total)))
	sb.WriteString("\n")
	sb.WriteString(md(buildProgressBar(pass.Engine.Answered(), total, total*2)))
	sb.WriteString("\n\n")

	for i, q := range def.Questions {
		mark := t.off
		if _, ok := pass.Engine.Answer(q.ID); ok {
			mark = "✅"
		}
		line := fmt.Sprintf("%s %d. %s", mark, i+1, q.Text)
		if i == pass.Focus {
			sb.WriteString(bold(line))
		} else {
			sb.WriteString(md(line))
		}
		sb.WriteString("\n")
	}

	if pass.Engine.Ready() {
		sb.WriteString("\n")
		sb.WriteString(italic("All questions answered. Submit when you are ready."))
	}

	return strings.TrimRight(sb.String(), "\n")
}

// formatQuizResult renders the classification.
func formatQuizResult(res entities.QuizResult) string {
	return fmt.Sprintf(
		"%s\n\n%s\n\n%s %s",
		bold("Your Primary Teaching Style: "+res.Label),
		md(res.Description),
		bold("Score:"),
		md(fmt.Sprintf("%d out of %d questions", res.Score, res.Total)),
	)
}

// formatCountdown renders the time left until the target date.
func formatCountdown(view service.CountdownView) string {
	target := view.Target.Format("2 January 2006")

	if view.Remaining.Done {
		return bold("🎓 Graduation") + "\n\n" + md(fmt.Sprintf("%s is here. Congratulations!", target))
	}

	r := view.Remaining
	return fmt.Sprintf(
		"%s\n\n%s\n\n%s\n%s",
		bold("🎓 Countdown to graduation"),
		bold(fmt.Sprintf("%d Years  %d Months  %d Days", r.Years, r.Months, r.Days)),
		md(fmt.Sprintf("%s, %s.", target, view.Relative)),
		italic("Updates every hour."),
	)
}

// formatGrade renders a converted mark.
func formatGrade(g entities.Grade) string {
	return fmt.Sprintf(
		"%s\n\n%s %s\n%s %s",
		bold("📝 Mark: "+formatMark(g.Mark)+"%"),
		md("Letter grade:"),
		bold(g.Letter),
		md("Band:"),
		bold(g.Band),
	)
}

func formatMark(mark float64) string {
	if mark == float64(int(mark)) {
		return fmt.Sprintf("%d", int(mark))
	}
	return fmt.Sprintf("%.2f", mark)
}

func buildProgressBar(current, total, length int) string {
	if total <= 0 || length <= 0 {
		return ""
	}

	filled := current * length / total
	if filled > length {
		filled = length
	}

	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", length-filled) + "]"
}
