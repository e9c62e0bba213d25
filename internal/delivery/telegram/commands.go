package telegram

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aliskhannn/wonderland-bot/internal/service"
)

const statsLimit = 5

// handleStart begins a new game and shows the first phrase.
func (h *Handler) handleStart(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		_, phrase, err := h.gameService.Start(ctx, userID, chatID)
		if errors.Is(err, service.ErrNoPhrases) {
			h.send(newHTMLMessage(chatID, msgNoPhrases))
			return nil
		}
		if err != nil {
			return err
		}

		h.send(newHTMLMessage(chatID, msgWelcome))
		h.send(newHTMLMessage(chatID, "<b>"+msgNewGameTitle+"</b>\n\n"+renderPhrase(phrase)))
		return nil
	}
}

// handleAnswer scores a typed word and schedules the next phrase.
func (h *Handler) handleAnswer(userID int64, text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		res, err := h.gameService.Submit(ctx, userID, text)
		switch {
		case errors.Is(err, service.ErrEmptyInput):
			h.send(newHTMLMessage(chatID, msgEmptyAnswer))
			return nil
		case errors.Is(err, service.ErrNoSession):
			h.send(newHTMLMessage(chatID, msgNoGame))
			return nil
		case errors.Is(err, service.ErrAnswerLocked):
			h.send(newHTMLMessage(chatID, msgWaitNextPhrase))
			return nil
		case err != nil:
			return err
		}

		h.send(newHTMLMessage(chatID, renderResult(res)))
		h.scheduleAdvance(ctx, userID, chatID, res.Session.ID, res.Delay)
		return nil
	}
}

// scheduleAdvance shows the next phrase once the pacing delay has passed.
func (h *Handler) scheduleAdvance(ctx context.Context, userID, chatID int64, sessionID uuid.UUID, delay time.Duration) {
	h.afterFunc(delay, func() {
		if ctx.Err() != nil {
			return
		}

		_, phrase, err := h.gameService.Advance(ctx, userID, sessionID)
		if errors.Is(err, service.ErrStaleSession) || errors.Is(err, service.ErrNoSession) {
			h.logger.Debug("skip advance for replaced session",
				zap.Int64("user_id", userID),
				zap.String("session_id", sessionID.String()),
			)
			return
		}
		if err != nil {
			h.logger.Error("failed to advance game",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
			h.sendError(chatID, msgInternalError)
			return
		}

		h.send(newHTMLMessage(chatID, msgNextPhraseTitle+"\n\n"+renderPhrase(phrase)))
	})
}

// handleScore shows the running score of the current session.
func (h *Handler) handleScore(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		session, err := h.gameService.Summary(ctx, userID)
		if errors.Is(err, service.ErrNoSession) {
			h.send(newHTMLMessage(chatID, msgNoGame))
			return nil
		}
		if err != nil {
			return err
		}

		h.send(newHTMLMessage(chatID, renderSummary(session)))
		return nil
	}
}

// handleStop ends the game and shows the final score.
func (h *Handler) handleStop(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		session, err := h.gameService.End(ctx, userID)
		if errors.Is(err, service.ErrNoSession) {
			h.send(newHTMLMessage(chatID, msgNoGame))
			return nil
		}
		if err != nil {
			return err
		}

		h.send(newHTMLMessage(chatID, "<b>"+msgGameOverTitle+"</b>\n\n"+renderSummary(session)))
		return nil
	}
}

// handleStats shows the phrases with the lowest average score change.
func (h *Handler) handleStats() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		stats, err := h.gameService.HardestPhrases(ctx, statsLimit)
		if err != nil {
			return err
		}

		question := func(index int) string {
			p, err := h.gameService.Phrase(ctx, index)
			if err != nil {
				return "?"
			}
			return p.Question
		}

		h.send(newHTMLMessage(chatID, renderStats(stats, question)))
		return nil
	}
}

// buildPrompt assembles the prompt sections given after /prompt.
func (h *Handler) buildPrompt(args string) string {
	return renderPrompt(service.BuildPrompt(service.ParsePromptSections(args)))
}
