package telegram

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Handler struct {
	bot           Bot
	logger        *zap.Logger
	gameService   GameService
	playerService PlayerService
	wordPicker    WordPicker

	// afterFunc schedules the move to the next phrase.
	afterFunc func(d time.Duration, f func()) *time.Timer
}

func NewHandler(
	bot Bot,
	logger *zap.Logger,
	gameService GameService,
	playerService PlayerService,
	wordPicker WordPicker,
) *Handler {
	return &Handler{
		bot:           bot,
		logger:        logger,
		gameService:   gameService,
		playerService: playerService,
		wordPicker:    wordPicker,
		afterFunc:     time.AfterFunc,
	}
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
	if update.Message == nil {
		h.logger.Debug("update without message")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	from := update.Message.From
	chatID := update.Message.Chat.ID
	if from == nil {
		return
	}

	if err := h.playerService.EnsurePlayer(ctx, from.ID, chatID); err != nil {
		h.logger.Error("failed to ensure player",
			zap.Int64("user_id", from.ID),
			zap.Error(err),
		)
	}

	if update.Message.IsCommand() {
		switch update.Message.Command() {
		case "start":
			h.run(ctx, "start", chatID, h.handleStart(from.ID))

		case "help":
			h.send(newHTMLMessage(chatID, msgHelp))

		case "score":
			h.run(ctx, "score", chatID, h.handleScore(from.ID))

		case "stop":
			h.run(ctx, "stop", chatID, h.handleStop(from.ID))

		case "words":
			h.send(newHTMLMessage(chatID, renderWords(h.wordPicker.Pick())))

		case "prompt":
			h.send(newHTMLMessage(chatID, h.buildPrompt(update.Message.CommandArguments())))

		case "stats":
			h.run(ctx, "stats", chatID, h.handleStats())

		default:
			h.send(newHTMLMessage(chatID, msgUnknownCommand))
		}

		return
	}

	h.run(ctx, "answer", chatID, h.handleAnswer(from.ID, update.Message.Text))
}

func (h *Handler) sendError(chatID int64, err string) {
	h.send(newHTMLMessage(chatID, err))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
