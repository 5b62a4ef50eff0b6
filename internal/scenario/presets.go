package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/careops-incubation/icu-bed-allocator/internal/logging"
)

// DefaultPresetName keys the built-in severity split used when no preset is
// requested.
const DefaultPresetName = "default"

// DefaultTiers is the built-in three-tier severity split.
func DefaultTiers() []Tier {
	return []Tier{
		{Name: "moderate", Percent: 30, Weight: 1.0},
		{Name: "severe", Percent: 40, Weight: 2.0},
		{Name: "critical", Percent: 30, Weight: 3.0},
	}
}

// Presets maps preset name to a tier split.
type Presets map[string][]Tier

// LoadPresets reads a YAML file mapping preset names to tier lists. Entries
// that fail validation are skipped with a log line rather than failing the
// whole set. The default preset is always present; a file entry of the same
// name overrides it.
func LoadPresets(path string) (Presets, error) {
	out := Presets{DefaultPresetName: DefaultTiers()}
	if path == "" {
		return out, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tier presets %s: %w", path, err)
	}
	var file map[string][]Tier
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse tier presets %s: %w", path, err)
	}

	logger := logging.Named("scenario")
	for name, tiers := range file {
		probe := Scenario{Patients: 100, Tiers: tiers}
		if err := probe.Validate(); err != nil {
			logger.Infow("Invalid tier preset, skipping",
				"preset", name,
				"error", err)
			continue
		}
		out[name] = tiers
	}
	return out, nil
}
