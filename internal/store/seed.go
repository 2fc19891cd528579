package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/Daniel-Blankson/todo/internal/model"
)

// Optional JSON seed. Single file, human-readable, read-only: it
// pre-populates the session and is never written back.

// LoadSeed reads a JSON array of items from path. A missing file means
// an empty starting collection, not an error.
func LoadSeed(path string) ([]model.Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Item{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var items []model.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return items, nil
}
