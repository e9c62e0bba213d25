package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aliskhannn/wonderland-bot/internal/domain/entities"
)

var (
	ErrNoSession    = errors.New("no active game session")
	ErrAnswerLocked = errors.New("answer submitted while waiting for the next phrase")
	ErrStaleSession = errors.New("game session changed")
	ErrNoPhrases    = errors.New("no phrases available")
)

const hardestPhraseMax = 10

// SubmitResult is everything the UI needs to render one scored answer.
type SubmitResult struct {
	Evaluation Evaluation
	Category   entities.FeedbackCategory
	Feedback   string
	Phrase     *entities.Phrase      // phrase the answer was given for
	Session    *entities.GameSession // session snapshot after the update
	Delay      time.Duration         // pause before Advance should be called
}

// GameService runs quiz sessions on top of the score engine.
type GameService struct {
	mu sync.Mutex

	phrases  PhraseRepository
	sessions SessionStore
	answers  AnswerRepository
	engine   *ScoreEngine
	feedback *FeedbackPicker
	delay    time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

func NewGameService(
	phrases PhraseRepository,
	sessions SessionStore,
	answers AnswerRepository,
	engine *ScoreEngine,
	feedback *FeedbackPicker,
	delay time.Duration,
	logger *zap.Logger,
) *GameService {
	return &GameService{
		phrases:  phrases,
		sessions: sessions,
		answers:  answers,
		engine:   engine,
		feedback: feedback,
		delay:    delay,
		logger:   logger,
		now:      time.Now,
	}
}

// Start begins a new session on the first phrase, replacing any existing one.
func (s *GameService) Start(ctx context.Context, userID, chatID int64) (*entities.GameSession, *entities.Phrase, error) {
	if s.phrases.Count() == 0 {
		return nil, nil, ErrNoPhrases
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session := entities.NewGameSession(userID, chatID, s.now())
	phrase, err := s.phrases.GetByIndex(ctx, session.PhraseIndex)
	if err != nil {
		return nil, nil, fmt.Errorf("get phrase: %w", err)
	}

	s.sessions.Save(session)

	s.logger.Info("game started",
		zap.Int64("user_id", userID),
		zap.String("session_id", session.ID.String()),
	)

	return session.Clone(), phrase, nil
}

// Current returns the session and the phrase the user is answering.
func (s *GameService) Current(ctx context.Context, userID int64) (*entities.GameSession, *entities.Phrase, error) {
	session, ok := s.sessions.Get(userID)
	if !ok {
		return nil, nil, ErrNoSession
	}

	phrase, err := s.phrases.GetByIndex(ctx, session.PhraseIndex)
	if err != nil {
		return nil, nil, fmt.Errorf("get phrase: %w", err)
	}

	return session, phrase, nil
}

// Submit scores an answer for the current phrase.
//
// Empty answers and answers sent during the pacing window return an error
// and leave the session untouched. The answer is journaled before the
// session is updated.
func (s *GameService) Submit(ctx context.Context, userID int64, answer string) (*SubmitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions.Get(userID)
	if !ok {
		return nil, ErrNoSession
	}

	now := s.now()
	if session.IsLocked() {
		return nil, ErrAnswerLocked
	}

	phrase, err := s.phrases.GetByIndex(ctx, session.PhraseIndex)
	if err != nil {
		return nil, fmt.Errorf("get phrase: %w", err)
	}

	eval, err := s.engine.Evaluate(answer, phrase, session.Score)
	if err != nil {
		return nil, err
	}

	record := &entities.Answer{
		ID:          uuid.New(),
		SessionID:   session.ID,
		UserID:      userID,
		PhraseIndex: phrase.Index,
		UserAnswer:  answer,
		Tier:        eval.Tier,
		Delta:       eval.Delta,
		ScoreBefore: session.Score,
		ScoreAfter:  eval.Score,
		AnsweredAt:  now,
	}
	if err := s.answers.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("save answer: %w", err)
	}

	session.Score = eval.Score
	session.Attempts++
	session.TierCounts[eval.Tier]++
	session.LockedUntil = now.Add(s.delay)
	s.sessions.Save(session)

	category := CategoryFor(eval.Delta)

	s.logger.Debug("answer scored",
		zap.Int64("user_id", userID),
		zap.Int("phrase", phrase.Index),
		zap.String("tier", string(eval.Tier)),
		zap.Float64("delta", eval.Delta),
		zap.Float64("score", eval.Score),
	)

	return &SubmitResult{
		Evaluation: eval,
		Category:   category,
		Feedback:   s.feedback.Pick(category),
		Phrase:     phrase,
		Session:    session.Clone(),
		Delay:      s.delay,
	}, nil
}

// Advance moves the session to the next phrase once the pacing window ends.
// sessionID guards against advancing a session that was restarted meanwhile.
func (s *GameService) Advance(ctx context.Context, userID int64, sessionID uuid.UUID) (*entities.GameSession, *entities.Phrase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions.Get(userID)
	if !ok {
		return nil, nil, ErrNoSession
	}
	if session.ID != sessionID || session.LockedUntil.IsZero() {
		return nil, nil, ErrStaleSession
	}

	session.PhraseIndex = (session.PhraseIndex + 1) % s.phrases.Count()
	session.LockedUntil = time.Time{}

	phrase, err := s.phrases.GetByIndex(ctx, session.PhraseIndex)
	if err != nil {
		return nil, nil, fmt.Errorf("get phrase: %w", err)
	}

	s.sessions.Save(session)

	return session.Clone(), phrase, nil
}

// Summary returns a snapshot of the user's session.
func (s *GameService) Summary(_ context.Context, userID int64) (*entities.GameSession, error) {
	session, ok := s.sessions.Get(userID)
	if !ok {
		return nil, ErrNoSession
	}
	return session, nil
}

// End removes the user's session and returns its final state.
// A pending Advance for it becomes stale.
func (s *GameService) End(_ context.Context, userID int64) (*entities.GameSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions.Get(userID)
	if !ok {
		return nil, ErrNoSession
	}
	s.sessions.Delete(userID)

	s.logger.Info("game ended",
		zap.Int64("user_id", userID),
		zap.String("session_id", session.ID.String()),
		zap.Float64("score", session.Score),
		zap.Int("attempts", session.Attempts),
		zap.Duration("duration", s.now().Sub(session.StartedAt)),
	)

	return session, nil
}

// HardestPhrases returns journal statistics for the lowest scoring phrases.
func (s *GameService) HardestPhrases(ctx context.Context, limit int) ([]entities.PhraseStats, error) {
	if limit <= 0 || limit > hardestPhraseMax {
		limit = hardestPhraseMax
	}
	return s.answers.HardestPhrases(ctx, limit)
}

// Phrase returns the phrase at index.
func (s *GameService) Phrase(ctx context.Context, index int) (*entities.Phrase, error) {
	return s.phrases.GetByIndex(ctx, index)
}
