package service

import (
	"github.com/aliskhannn/wonderland-bot/internal/domain/entities"
)

// FeedbackPicker chooses feedback templates from a loaded catalog.
type FeedbackPicker struct {
	catalog entities.FeedbackCatalog
	rnd     RandomSource
}

// NewFeedbackPicker creates a new FeedbackPicker.
func NewFeedbackPicker(catalog entities.FeedbackCatalog, rnd RandomSource) *FeedbackPicker {
	if rnd == nil {
		rnd = NewRandomSource()
	}
	return &FeedbackPicker{catalog: catalog, rnd: rnd}
}

// Pick returns a uniformly random template for the category.
// An empty or missing list yields an empty string.
func (p *FeedbackPicker) Pick(category entities.FeedbackCategory) string {
	templates := p.catalog[category]
	if len(templates) == 0 {
		return ""
	}
	return templates[p.rnd.Intn(len(templates))]
}
