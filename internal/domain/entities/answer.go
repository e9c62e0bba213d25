package entities

import (
	"time"

	"github.com/google/uuid"
)

// Tier is the matching level an answer was classified into.
type Tier string

const (
	TierExact      Tier = "exact"
	TierAcceptable Tier = "acceptable"
	TierSimilarity Tier = "similarity"
)

// Answer is a journal entry for one scored submission.
type Answer struct {
	ID          uuid.UUID // unique answer ID
	SessionID   uuid.UUID // game session the answer belongs to
	UserID      int64     // user who answered
	PhraseIndex int       // phrase the answer was given for
	UserAnswer  string    // raw text typed by the user
	Tier        Tier      // matching tier
	Delta       float64   // score change
	ScoreBefore float64   // score before the answer
	ScoreAfter  float64   // score after clamping
	AnsweredAt  time.Time // timestamp when the answer was submitted
}

// PhraseStats aggregates journaled answers for one phrase.
type PhraseStats struct {
	PhraseIndex  int
	Attempts     int
	ExactCount   int
	AverageDelta float64
}
