package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/wonderland-bot/internal/domain/entities"
	"github.com/aliskhannn/wonderland-bot/internal/infra/postgres"
)

// AnswerRepository journals scored answers and keeps per-phrase aggregates.
type AnswerRepository struct {
	db         postgres.DBTX
	transactor *postgres.Transactor
}

// NewAnswerRepository creates a new AnswerRepository.
func NewAnswerRepository(db postgres.DBTX, transactor *postgres.Transactor) *AnswerRepository {
	return &AnswerRepository{db: db, transactor: transactor}
}

// Save inserts the answer and updates its phrase aggregate in one transaction.
func (r *AnswerRepository) Save(ctx context.Context, a *entities.Answer) error {
	return r.transactor.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		insert := `
			INSERT INTO quiz_answers (
				id, session_id, user_id, phrase_index, user_answer,
				tier, delta, score_before, score_after, answered_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`
		_, err := tx.Exec(ctx, insert,
			a.ID,
			a.SessionID,
			a.UserID,
			a.PhraseIndex,
			a.UserAnswer,
			string(a.Tier),
			a.Delta,
			a.ScoreBefore,
			a.ScoreAfter,
			a.AnsweredAt,
		)
		if err != nil {
			return fmt.Errorf("insert answer: %w", err)
		}

		exact := 0
		if a.Tier == entities.TierExact {
			exact = 1
		}

		upsert := `
			INSERT INTO phrase_stats (phrase_index, attempts, exact_count, delta_sum)
			VALUES ($1, 1, $2, $3)
			ON CONFLICT (phrase_index) DO UPDATE SET
				attempts = phrase_stats.attempts + 1,
				exact_count = phrase_stats.exact_count + EXCLUDED.exact_count,
				delta_sum = phrase_stats.delta_sum + EXCLUDED.delta_sum
		`
		if _, err := tx.Exec(ctx, upsert, a.PhraseIndex, exact, a.Delta); err != nil {
			return fmt.Errorf("update phrase stats: %w", err)
		}

		return nil
	})
}

// HardestPhrases returns phrases ordered by the lowest average delta.
func (r *AnswerRepository) HardestPhrases(ctx context.Context, limit int) ([]entities.PhraseStats, error) {
	query := `
		SELECT phrase_index, attempts, exact_count, delta_sum / attempts AS avg_delta
		FROM phrase_stats
		WHERE attempts > 0
		ORDER BY avg_delta ASC, attempts DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query hardest phrases: %w", err)
	}
	defer rows.Close()

	var result []entities.PhraseStats
	for rows.Next() {
		var s entities.PhraseStats
		if err := rows.Scan(&s.PhraseIndex, &s.Attempts, &s.ExactCount, &s.AverageDelta); err != nil {
			return nil, fmt.Errorf("scan phrase stats: %w", err)
		}
		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate phrase stats: %w", err)
	}

	return result, nil
}
