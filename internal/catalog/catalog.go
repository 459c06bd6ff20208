// Package catalog provides the fixed set of activities the registry is
// seeded with at process start.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mergington/activities/internal/domain/activity"
)

//go:embed activities.yaml
var defaultCatalog []byte

// Default returns the built-in seed catalog.
func Default() ([]activity.Activity, error) {
	return parse(defaultCatalog)
}

// LoadFile reads a catalog from a YAML file with the same shape as the
// built-in seed: a list of activities in display order.
func LoadFile(path string) ([]activity.Activity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) ([]activity.Activity, error) {
	var acts []activity.Activity
	if err := yaml.Unmarshal(data, &acts); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(acts))
	for i := range acts {
		name := acts[i].Name
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("catalog entry %d: missing name", i)
		}
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("catalog entry %q: duplicate name", name)
		}
		seen[name] = struct{}{}
		if acts[i].MaxParticipants <= 0 {
			return nil, fmt.Errorf("catalog entry %q: max_participants must be positive", name)
		}
		if acts[i].Participants == nil {
			acts[i].Participants = []string{}
		}
	}
	return acts, nil
}
