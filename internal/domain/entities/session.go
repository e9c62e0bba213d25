package entities

import (
	"time"

	"github.com/google/uuid"
)

// InitialScore is the score every new game session starts with.
const InitialScore = 0.3

// GameSession holds the running score and phrase cursor of one player.
// It lives only in memory for the lifetime of the session.
type GameSession struct {
	ID          uuid.UUID    // unique session ID
	UserID      int64        // Telegram user ID
	ChatID      int64        // chat the session is played in
	Score       float64      // running score in [0,1]
	PhraseIndex int          // index of the current phrase
	Attempts    int          // number of scored submissions
	TierCounts  map[Tier]int // scored submissions per tier
	LockedUntil time.Time    // earliest instant of the next phrase, zero when unlocked
	StartedAt   time.Time    // timestamp when the session started
}

// NewGameSession creates a session positioned on the first phrase.
func NewGameSession(userID, chatID int64, now time.Time) *GameSession {
	return &GameSession{
		ID:         uuid.New(),
		UserID:     userID,
		ChatID:     chatID,
		Score:      InitialScore,
		TierCounts: make(map[Tier]int),
		StartedAt:  now,
	}
}

// IsLocked reports whether the session is waiting for the next phrase.
// The lock outlives LockedUntil until the phrase is advanced.
func (s *GameSession) IsLocked() bool {
	return !s.LockedUntil.IsZero()
}

// Clone returns a deep copy of the session.
func (s *GameSession) Clone() *GameSession {
	c := *s
	c.TierCounts = make(map[Tier]int, len(s.TierCounts))
	for k, v := range s.TierCounts {
		c.TierCounts[k] = v
	}
	return &c
}
