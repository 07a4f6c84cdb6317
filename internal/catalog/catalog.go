// Package catalog loads the seed table of activities.
//
// The default table ships embedded in the binary; deployments can point
// SEED_FILE at a YAML document of the same shape to replace it.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"example.com/activities/internal/domain"
)

//go:embed seed.yaml
var defaultSeed []byte

// Entry mirrors one activity in the YAML document. The map key carries the name.
type Entry struct {
	Description     string   `yaml:"description"`
	Schedule        string   `yaml:"schedule"`
	MaxParticipants int      `yaml:"max_participants"`
	Participants    []string `yaml:"participants"`
}

// Load returns the seed activities from path, or the embedded default when
// path is empty. The result is sorted by name for deterministic seeding.
func Load(path string) ([]domain.Activity, error) {
	raw := defaultSeed
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		raw = data
	}
	return Parse(raw)
}

// Parse decodes and validates a YAML activity table.
func Parse(raw []byte) ([]domain.Activity, error) {
	var doc map[string]Entry
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if len(doc) == 0 {
		return nil, fmt.Errorf("seed defines no activities")
	}

	activities := make([]domain.Activity, 0, len(doc))
	for name, entry := range doc {
		activity, err := entry.toActivity(name)
		if err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Name < activities[j].Name
	})
	return activities, nil
}

func (e Entry) toActivity(name string) (domain.Activity, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Activity{}, fmt.Errorf("seed contains an activity with an empty name")
	}
	if e.MaxParticipants <= 0 {
		return domain.Activity{}, fmt.Errorf("activity %q: max_participants must be positive", name)
	}
	if len(e.Participants) > e.MaxParticipants {
		return domain.Activity{}, fmt.Errorf("activity %q: seeded roster exceeds max_participants", name)
	}

	seen := make(map[string]struct{}, len(e.Participants))
	for _, email := range e.Participants {
		if strings.TrimSpace(email) == "" {
			return domain.Activity{}, fmt.Errorf("activity %q: seeded roster contains a blank email", name)
		}
		if _, dup := seen[email]; dup {
			return domain.Activity{}, fmt.Errorf("activity %q: duplicate participant %s", name, email)
		}
		seen[email] = struct{}{}
	}

	return domain.Activity{
		Name:            name,
		Description:     e.Description,
		Schedule:        e.Schedule,
		MaxParticipants: e.MaxParticipants,
		Participants:    append([]string(nil), e.Participants...),
	}, nil
}
