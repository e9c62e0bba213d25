package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aliskhannn/wonderland-bot/internal/domain/entities"
)

var (
	ErrPhraseNotFound = errors.New("phrase not found")
	ErrNoPhrases      = errors.New("phrase list is empty")
)

// PhraseRepository provides access to the quiz phrases.
// Phrases are loaded once from a JSON array and never change afterwards.
type PhraseRepository struct {
	phrases []*entities.Phrase
}

// NewPhraseRepository loads phrases from the JSON file at path.
func NewPhraseRepository(path string) (*PhraseRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read phrases: %w", err)
	}

	phrases, err := parsePhrases(data)
	if err != nil {
		return nil, err
	}

	return &PhraseRepository{phrases: phrases}, nil
}

// GetByIndex returns the phrase at index.
func (r *PhraseRepository) GetByIndex(_ context.Context, index int) (*entities.Phrase, error) {
	if index < 0 || index >= len(r.phrases) {
		return nil, ErrPhraseNotFound
	}
	return r.phrases[index], nil
}

// Count returns the number of loaded phrases.
func (r *PhraseRepository) Count() int {
	return len(r.phrases)
}

func parsePhrases(data []byte) ([]*entities.Phrase, error) {
	var phrases []*entities.Phrase
	if err := json.Unmarshal(data, &phrases); err != nil {
		return nil, fmt.Errorf("failed to unmarshal phrases JSON: %w", err)
	}

	if len(phrases) == 0 {
		return nil, ErrNoPhrases
	}

	for i, p := range phrases {
		if p == nil {
			return nil, fmt.Errorf("phrase %d: empty record", i)
		}
		if !strings.Contains(p.Question, entities.PhrasePlaceholder) {
			return nil, fmt.Errorf("phrase %d: question has no %q placeholder", i, entities.PhrasePlaceholder)
		}
		p.Index = i
	}

	return phrases, nil
}
