package telegram

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

// run executes fn for the named command. Errors and panics are logged and
// the user gets a generic message.
func (h *Handler) run(ctx context.Context, command string, chatID int64, fn HandlerFunc) {
	_ = h.withErrorHandling(command, fn)(ctx, chatID)
}

func (h *Handler) withErrorHandling(command string, fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		defer func() {
			if r := recover(); r != nil {
				h.fail(command, chatID, fmt.Errorf("panic: %v", r))
			}
		}()

		if err := fn(ctx, chatID); err != nil {
			h.fail(command, chatID, err)
		}
		return nil
	}
}

func (h *Handler) fail(command string, chatID int64, err error) {
	h.logger.Error("handle error",
		zap.String("command", command),
		zap.Int64("chat_id", chatID),
		zap.Error(err),
	)
	h.sendError(chatID, msgInternalError)
}
