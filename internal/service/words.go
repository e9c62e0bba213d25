package service

import (
	"github.com/aliskhannn/wonderland-bot/internal/domain/entities"
)

// WordPicker selects one random word from each category.
type WordPicker struct {
	categories []entities.WordCategory
	rnd        RandomSource
}

// NewWordPicker creates a new WordPicker.
func NewWordPicker(categories []entities.WordCategory, rnd RandomSource) *WordPicker {
	if rnd == nil {
		rnd = NewRandomSource()
	}
	return &WordPicker{categories: categories, rnd: rnd}
}

// Pick returns one word per non-empty category, in category order.
func (p *WordPicker) Pick() []entities.WordPick {
	picks := make([]entities.WordPick, 0, len(p.categories))
	for _, c := range p.categories {
		if len(c.Words) == 0 {
			continue
		}
		picks = append(picks, entities.WordPick{
			Category: c.Name,
			Word:     c.Words[p.rnd.Intn(len(c.Words))],
		})
	}
	return picks
}
