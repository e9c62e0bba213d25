package postgres

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS players (
		id         BIGINT PRIMARY KEY,
		chat_id    BIGINT NOT NULL,
		is_active  BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS quiz_answers (
		id           UUID PRIMARY KEY,
		session_id   UUID NOT NULL,
		user_id      BIGINT NOT NULL,
		phrase_index INTEGER NOT NULL,
		user_answer  TEXT NOT NULL,
		tier         TEXT NOT NULL,
		delta        DOUBLE PRECISION NOT NULL,
		score_before DOUBLE PRECISION NOT NULL,
		score_after  DOUBLE PRECISION NOT NULL,
		answered_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS quiz_answers_session_idx ON quiz_answers (session_id)`,
	`CREATE TABLE IF NOT EXISTS phrase_stats (
		phrase_index INTEGER PRIMARY KEY,
		attempts     INTEGER NOT NULL DEFAULT 0,
		exact_count  INTEGER NOT NULL DEFAULT 0,
		delta_sum    DOUBLE PRECISION NOT NULL DEFAULT 0
	)`,
}

// EnsureSchema creates the tables the bot needs if they don't exist.
func EnsureSchema(ctx context.Context, db DBTX) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
