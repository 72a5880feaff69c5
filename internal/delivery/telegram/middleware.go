package telegram

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// HandlerFunc renders one screen into chatID.
type HandlerFunc func(ctx context.Context, chatID int64) error

// withErrorHandling logs a failed screen and sends the generic error message.
// A panic inside fn is recovered and reported the same way.
func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
			if err != nil {
				h.logger.Error("handle error",
					zap.Int64("chat_id", chatID),
					zap.Error(err),
				)
				h.sendError(chatID, msgInternalError)
				err = nil
			}
		}()

		return fn(ctx, chatID)
	}
}
