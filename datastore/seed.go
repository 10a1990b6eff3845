package datastore

import (
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/BurntSushi/toml"
	"github.com/coreybb/studio/models"
)

//go:embed seed/catalog.toml
var embeddedSeed string

// Seed is the initial catalog state.
type Seed struct {
	Categories []models.Category    `toml:"categories"`
	Content    []models.ContentItem `toml:"content"`
}

// LoadSeed decodes the seed catalog from path, or from the embedded sample
// catalog when path is empty. The result is validated before it is returned.
func LoadSeed(path string) (*Seed, error) {
	var seed Seed
	if path == "" {
		if _, err := toml.Decode(embeddedSeed, &seed); err != nil {
			return nil, fmt.Errorf("failed to decode embedded seed catalog: %w", err)
		}
	} else {
		meta, err := toml.DecodeFile(path, &seed)
		if err != nil {
			return nil, fmt.Errorf("failed to decode seed catalog %s: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			slog.Warn("Seed catalog has unknown keys", "path", path, "keys", fmt.Sprint(undecoded))
		}
	}

	if err := validateSeed(&seed); err != nil {
		return nil, err
	}
	return &seed, nil
}

func validateSeed(seed *Seed) error {
	seen := make(map[int64]bool, len(seed.Content))
	for i := range seed.Content {
		item := &seed.Content[i]
		if seen[item.ID] {
			return fmt.Errorf("duplicate content id %d in seed catalog", item.ID)
		}
		seen[item.ID] = true

		if item.Title == "" {
			return fmt.Errorf("content %d: title cannot be empty", item.ID)
		}
		if _, ok := models.ParseContentType(string(item.Type)); !ok {
			return fmt.Errorf("content %d: invalid type %q", item.ID, item.Type)
		}
		if !models.IsValidContentStatus(item.Status) {
			return fmt.Errorf("content %d: invalid status %q", item.ID, item.Status)
		}
		if item.Views < 0 {
			return fmt.Errorf("content %d: views cannot be negative", item.ID)
		}
		if item.Hashtags == nil {
			item.Hashtags = []string{}
		}
		if item.Filters == nil {
			item.Filters = []string{}
		}
		if item.Keywords == nil {
			item.Keywords = []string{}
		}
	}
	return nil
}
