package repository

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aliskhannn/wonderland-bot/internal/domain/entities"
)

// LoadWordCategories reads the random-word categories from a YAML file.
// Category order in the file is preserved.
func LoadWordCategories(path string) ([]entities.WordCategory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read word categories: %w", err)
	}

	var wrapper struct {
		Categories []entities.WordCategory `yaml:"categories"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal words YAML: %w", err)
	}

	for i, c := range wrapper.Categories {
		if c.Name == "" {
			return nil, fmt.Errorf("word category %d has no name", i)
		}
	}

	return wrapper.Categories, nil
}
