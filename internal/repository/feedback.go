package repository

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aliskhannn/wonderland-bot/internal/domain/entities"
)

// LoadFeedbackCatalog reads feedback templates from a YAML file keyed by category.
func LoadFeedbackCatalog(path string) (entities.FeedbackCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read feedback catalog: %w", err)
	}

	return parseFeedbackCatalog(data)
}

func parseFeedbackCatalog(data []byte) (entities.FeedbackCatalog, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal feedback YAML: %w", err)
	}

	catalog := make(entities.FeedbackCatalog, len(raw))
	for key, templates := range raw {
		category := entities.FeedbackCategory(key)
		if !category.Valid() {
			return nil, fmt.Errorf("unknown feedback category %q", key)
		}
		catalog[category] = templates
	}

	return catalog, nil
}
