package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/aliskhannn/wonderland-bot/internal/domain/entities"
	"github.com/aliskhannn/wonderland-bot/internal/service"
)

// Bot is the part of *tgbotapi.BotAPI the handler uses.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type GameService interface {
	Start(ctx context.Context, userID, chatID int64) (*entities.GameSession, *entities.Phrase, error)
	Submit(ctx context.Context, userID int64, answer string) (*service.SubmitResult, error)
	Advance(ctx context.Context, userID int64, sessionID uuid.UUID) (*entities.GameSession, *entities.Phrase, error)
	Summary(ctx context.Context, userID int64) (*entities.GameSession, error)
	End(ctx context.Context, userID int64) (*entities.GameSession, error)
	HardestPhrases(ctx context.Context, limit int) ([]entities.PhraseStats, error)
	Phrase(ctx context.Context, index int) (*entities.Phrase, error)
}

type PlayerService interface {
	EnsurePlayer(ctx context.Context, userID, chatID int64) error
}

type WordPicker interface {
	Pick() []entities.WordPick
}
