package telegram

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aliskhannn/wonderland-bot/internal/domain/entities"
	"github.com/aliskhannn/wonderland-bot/internal/service"
)

type fakeBot struct {
	mu      sync.Mutex
	sent    []string
	updates chan tgbotapi.Update
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if m, ok := c.(tgbotapi.MessageConfig); ok {
		b.sent = append(b.sent, m.Text)
	}
	return tgbotapi.Message{}, nil
}

func (b *fakeBot) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return b.updates
}

func (b *fakeBot) StopReceivingUpdates() {}

func (b *fakeBot) texts() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.sent...)
}

type fakeGame struct {
	session    *entities.GameSession
	phrase     *entities.Phrase
	next       *entities.Phrase
	submitErr  error
	advanceErr error
	advanced   []uuid.UUID
	stats      []entities.PhraseStats
	statsPanic bool
}

func (g *fakeGame) Start(_ context.Context, userID, chatID int64) (*entities.GameSession, *entities.Phrase, error) {
	if g.phrase == nil {
		return nil, nil, service.ErrNoPhrases
	}
	g.session = entities.NewGameSession(userID, chatID, time.Now())
	return g.session, g.phrase, nil
}

func (g *fakeGame) Submit(_ context.Context, _ int64, answer string) (*service.SubmitResult, error) {
	if g.submitErr != nil {
		return nil, g.submitErr
	}
	if strings.TrimSpace(answer) == "" {
		return nil, service.ErrEmptyInput
	}
	if g.session == nil {
		return nil, service.ErrNoSession
	}
	return &service.SubmitResult{
		Evaluation: service.Evaluation{Tier: entities.TierExact, Delta: 0.1, Score: 0.4},
		Category:   entities.FeedbackSmallChange,
		Feedback:   "Casi.",
		Phrase:     g.phrase,
		Session:    g.session,
		Delay:      2 * time.Second,
	}, nil
}

func (g *fakeGame) Advance(_ context.Context, _ int64, sessionID uuid.UUID) (*entities.GameSession, *entities.Phrase, error) {
	g.advanced = append(g.advanced, sessionID)
	if g.advanceErr != nil {
		return nil, nil, g.advanceErr
	}
	return g.session, g.next, nil
}

func (g *fakeGame) Summary(context.Context, int64) (*entities.GameSession, error) {
	if g.session == nil {
		return nil, service.ErrNoSession
	}
	return g.session, nil
}

func (g *fakeGame) End(context.Context, int64) (*entities.GameSession, error) {
	if g.session == nil {
		return nil, service.ErrNoSession
	}
	s := g.session
	g.session = nil
	return s, nil
}

func (g *fakeGame) HardestPhrases(context.Context, int) ([]entities.PhraseStats, error) {
	if g.statsPanic {
		panic("boom")
	}
	return g.stats, nil
}

func (g *fakeGame) Phrase(context.Context, int) (*entities.Phrase, error) {
	return g.phrase, nil
}

type fakePlayers struct{ calls int }

func (p *fakePlayers) EnsurePlayer(context.Context, int64, int64) error {
	p.calls++
	return nil
}

type fakeWords struct{}

func (fakeWords) Pick() []entities.WordPick {
	return []entities.WordPick{{Category: "rareza", Word: "curioso"}}
}

type handlerFixture struct {
	h       *Handler
	bot     *fakeBot
	game    *fakeGame
	players *fakePlayers
	delays  []time.Duration
}

func newHandlerFixture() *handlerFixture {
	f := &handlerFixture{
		bot: &fakeBot{updates: make(chan tgbotapi.Update)},
		game: &fakeGame{
			phrase: &entities.Phrase{Index: 0, Question: "El _____ blanco."},
			next:   &entities.Phrase{Index: 1, Question: "Tomaban _____."},
		},
		players: &fakePlayers{},
	}
	f.h = NewHandler(f.bot, zap.NewNop(), f.game, f.players, fakeWords{})
	f.h.afterFunc = func(d time.Duration, fn func()) *time.Timer {
		f.delays = append(f.delays, d)
		fn()
		return nil
	}
	return f
}

func textUpdate(text string) tgbotapi.Update {
	msg := &tgbotapi.Message{
		Text: text,
		Chat: &tgbotapi.Chat{ID: 70},
		From: &tgbotapi.User{ID: 7},
	}
	if strings.HasPrefix(text, "/") {
		cmd, _, _ := strings.Cut(text, " ")
		msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(cmd)}}
	}
	return tgbotapi.Update{Message: msg}
}

func TestHandlerStartShowsFirstPhrase(t *testing.T) {
	f := newHandlerFixture()

	f.h.handleUpdate(context.Background(), textUpdate("/start"))

	sent := f.bot.texts()
	if len(sent) != 2 {
		t.Fatalf("sent %d messages, want 2: %q", len(sent), sent)
	}
	if sent[0] != msgWelcome {
		t.Errorf("first message = %q", sent[0])
	}
	if !strings.Contains(sent[1], "El <b>_____</b> blanco.") {
		t.Errorf("phrase message = %q", sent[1])
	}
	if f.players.calls != 1 {
		t.Errorf("EnsurePlayer called %d times", f.players.calls)
	}
}

func TestHandlerStartWithoutPhrases(t *testing.T) {
	f := newHandlerFixture()
	f.game.phrase = nil

	f.h.handleUpdate(context.Background(), textUpdate("/start"))

	if sent := f.bot.texts(); len(sent) != 1 || sent[0] != msgNoPhrases {
		t.Errorf("sent = %q", sent)
	}
}

func TestHandlerAnswerSchedulesNextPhrase(t *testing.T) {
	f := newHandlerFixture()
	ctx := context.Background()
	f.h.handleUpdate(ctx, textUpdate("/start"))

	f.h.handleUpdate(ctx, textUpdate("conejo"))

	sent := f.bot.texts()[2:]
	if len(sent) != 2 {
		t.Fatalf("sent %d messages, want 2: %q", len(sent), sent)
	}
	if !strings.Contains(sent[0], "<b>40%</b>") || !strings.Contains(sent[0], "<i>Casi.</i>") {
		t.Errorf("result message = %q", sent[0])
	}
	if !strings.HasPrefix(sent[1], msgNextPhraseTitle) || !strings.Contains(sent[1], "Tomaban <b>_____</b>.") {
		t.Errorf("next phrase message = %q", sent[1])
	}
	if len(f.delays) != 1 || f.delays[0] != 2*time.Second {
		t.Errorf("delays = %v", f.delays)
	}
	if len(f.game.advanced) != 1 || f.game.advanced[0] != f.game.session.ID {
		t.Errorf("advanced = %v", f.game.advanced)
	}
}

func TestHandlerAnswerErrors(t *testing.T) {
	tests := []struct {
		name    string
		start   bool
		text    string
		err     error
		wantMsg string
	}{
		{"empty", true, "   ", nil, msgEmptyAnswer},
		{"no game", false, "conejo", nil, msgNoGame},
		{"locked", true, "conejo", service.ErrAnswerLocked, msgWaitNextPhrase},
		{"internal", true, "conejo", errors.New("db down"), msgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture()
			ctx := context.Background()
			skip := 0
			if tt.start {
				f.h.handleUpdate(ctx, textUpdate("/start"))
				skip = 2
			}
			f.game.submitErr = tt.err

			f.h.handleUpdate(ctx, textUpdate(tt.text))

			sent := f.bot.texts()[skip:]
			if len(sent) != 1 || sent[0] != tt.wantMsg {
				t.Errorf("sent = %q, want %q", sent, tt.wantMsg)
			}
			if len(f.game.advanced) != 0 {
				t.Errorf("advance scheduled after error")
			}
		})
	}
}

func TestHandlerStaleAdvanceIsSilent(t *testing.T) {
	f := newHandlerFixture()
	ctx := context.Background()
	f.h.handleUpdate(ctx, textUpdate("/start"))
	f.game.advanceErr = service.ErrStaleSession

	f.h.handleUpdate(ctx, textUpdate("conejo"))

	if sent := f.bot.texts()[2:]; len(sent) != 1 {
		t.Errorf("sent = %q, want only the result", sent)
	}
}

func TestHandlerScore(t *testing.T) {
	f := newHandlerFixture()
	ctx := context.Background()

	f.h.handleUpdate(ctx, textUpdate("/score"))
	if sent := f.bot.texts(); len(sent) != 1 || sent[0] != msgNoGame {
		t.Fatalf("sent = %q", sent)
	}

	f.h.handleUpdate(ctx, textUpdate("/start"))
	f.h.handleUpdate(ctx, textUpdate("/score"))
	sent := f.bot.texts()
	if last := sent[len(sent)-1]; !strings.Contains(last, "<b>30%</b>") {
		t.Errorf("score message = %q", last)
	}
}

func TestHandlerWordsPromptAndStats(t *testing.T) {
	f := newHandlerFixture()
	ctx := context.Background()
	f.game.stats = []entities.PhraseStats{{PhraseIndex: 0, Attempts: 2, AverageDelta: -0.3}}

	f.h.handleUpdate(ctx, textUpdate("/words"))
	f.h.handleUpdate(ctx, textUpdate("/prompt idea: un cuento"))
	f.h.handleUpdate(ctx, textUpdate("/stats"))
	f.h.handleUpdate(ctx, textUpdate("/nope"))

	sent := f.bot.texts()
	if len(sent) != 4 {
		t.Fatalf("sent %d messages, want 4: %q", len(sent), sent)
	}
	if !strings.Contains(sent[0], "<b>Rareza:</b> curioso") {
		t.Errorf("words = %q", sent[0])
	}
	if !strings.Contains(sent[1], "un cuento") || !strings.Contains(sent[1], "<pre>") {
		t.Errorf("prompt = %q", sent[1])
	}
	if !strings.Contains(sent[2], "El _____ blanco.") || !strings.Contains(sent[2], "promedio: -30") {
		t.Errorf("stats = %q", sent[2])
	}
	if sent[3] != msgUnknownCommand {
		t.Errorf("unknown = %q", sent[3])
	}
}

func TestHandlerRunStopsOnContextCancel(t *testing.T) {
	f := newHandlerFixture()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- f.h.Run(ctx) }()

	f.bot.updates <- textUpdate("/help")
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run err = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not stop")
	}

	if sent := f.bot.texts(); len(sent) != 1 || sent[0] != msgHelp {
		t.Errorf("sent = %q", sent)
	}
}

func TestHandlerStop(t *testing.T) {
	f := newHandlerFixture()
	ctx := context.Background()
	f.h.handleUpdate(ctx, textUpdate("/start"))

	f.h.handleUpdate(ctx, textUpdate("/stop"))
	f.h.handleUpdate(ctx, textUpdate("/stop"))

	sent := f.bot.texts()[2:]
	if len(sent) != 2 {
		t.Fatalf("sent %d messages, want 2: %q", len(sent), sent)
	}
	if !strings.Contains(sent[0], msgGameOverTitle) || !strings.Contains(sent[0], "<b>30%</b>") {
		t.Errorf("stop message = %q", sent[0])
	}
	if sent[1] != msgNoGame {
		t.Errorf("second stop = %q", sent[1])
	}
}

func TestHandlerRecoversFromPanic(t *testing.T) {
	f := newHandlerFixture()
	f.game.statsPanic = true

	f.h.handleUpdate(context.Background(), textUpdate("/stats"))

	if sent := f.bot.texts(); len(sent) != 1 || sent[0] != msgInternalError {
		t.Errorf("sent = %q", sent)
	}
}
