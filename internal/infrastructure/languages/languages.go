// Package languages loads the embedded language table consumed by the
// translator. The table is loaded once at startup and never mutated.
package languages

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"tradbot/internal/domain/entities"
)

//go:embed languages.toml
var tableTOML []byte

type tableFile struct {
	Languages []tableEntry `toml:"languages"`
}

// supports_formality is decoded through a pointer so that an entry missing
// the flag is rejected at load time instead of silently defaulting to false.
type tableEntry struct {
	Name              string `toml:"name"`
	Key               string `toml:"key"`
	SupportsFormality *bool  `toml:"supports_formality"`
}

// Load returns the embedded language table, in file order.
// A malformed entry is a configuration error and fails the whole load.
func Load() ([]entities.Language, error) {
	return parse(tableTOML)
}

func parse(data []byte) ([]entities.Language, error) {
	var file tableFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("languages: decode table: %w", err)
	}
	if len(file.Languages) == 0 {
		return nil, fmt.Errorf("languages: table is empty")
	}

	seen := make(map[string]struct{}, len(file.Languages))
	out := make([]entities.Language, 0, len(file.Languages))
	for i, e := range file.Languages {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("languages: entry %d has no name", i)
		}
		if strings.TrimSpace(e.Key) == "" {
			return nil, fmt.Errorf("languages: entry %q has no key", e.Name)
		}
		if e.SupportsFormality == nil {
			return nil, fmt.Errorf("languages: entry %q is missing supports_formality", e.Name)
		}
		upper := strings.ToUpper(e.Name)
		if _, dup := seen[upper]; dup {
			return nil, fmt.Errorf("languages: duplicate entry %q", e.Name)
		}
		seen[upper] = struct{}{}
		out = append(out, entities.Language{
			Name:              e.Name,
			Key:               e.Key,
			SupportsFormality: *e.SupportsFormality,
		})
	}
	return out, nil
}
