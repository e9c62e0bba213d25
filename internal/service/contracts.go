package service

import (
	"context"

	"github.com/aliskhannn/wonderland-bot/internal/domain/entities"
)

type UserRepository interface {
	Save(ctx context.Context, user *entities.User) (bool, error)
	Exists(ctx context.Context, userID int64) (bool, error)
}

type PhraseRepository interface {
	GetByIndex(ctx context.Context, index int) (*entities.Phrase, error)
	Count() int
}

// SessionStore keeps game sessions in memory, keyed by user ID.
type SessionStore interface {
	Get(userID int64) (*entities.GameSession, bool)
	Save(session *entities.GameSession)
	Delete(userID int64)
}

// AnswerRepository journals scored answers.
type AnswerRepository interface {
	Save(ctx context.Context, answer *entities.Answer) error
	HardestPhrases(ctx context.Context, limit int) ([]entities.PhraseStats, error)
}
