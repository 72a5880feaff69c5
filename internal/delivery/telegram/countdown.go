package telegram

import (
	"context"

	"github.com/aliskhannn/portfolio-bot/internal/service"
)

// RefreshCountdown redraws a countdown message sent earlier. It satisfies
// service.CountdownNotifier.
func (h *Handler) RefreshCountdown(_ context.Context, chatID int64, messageID int, view service.CountdownView) error {
	edit := newEdit(chatID, messageID, formatCountdown(view))

	if _, err := h.bot.Send(edit); err != nil && !isNotModified(err) {
		return err
	}
	return nil
}
