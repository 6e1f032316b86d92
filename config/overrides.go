package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrUnknownSpecies is returned when an override names a species that is not
// registered.
var ErrUnknownSpecies = errors.New("config: unknown species")

// overrideFile is the layout of a tuning YAML file. Only the fields present
// in the file replace the defaults:
//
//	species:
//	  kingPig:
//	    run_speed: 90
//	    detection_range: 240
type overrideFile struct {
	Species map[string]yaml.Node `yaml:"species"`
	Camera  *yaml.Node           `yaml:"camera"`
}

// LoadOverrides reads a tuning YAML file and merges it onto the current
// configuration.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read overrides %s: %w", path, err)
	}
	if err := ApplyOverrides(data); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

// ApplyOverrides merges tuning YAML onto the current configuration. Nothing
// is changed unless the whole document applies cleanly. Species are updated
// in place so characters holding a *SpeciesConfig see the new values.
func ApplyOverrides(data []byte) error {
	var file overrideFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("unmarshal overrides: %w", err)
	}

	staged := make(map[string]SpeciesConfig, len(file.Species))
	for key, node := range file.Species {
		current, ok := Species[key]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSpecies, key)
		}
		next := *current
		if err := node.Decode(&next); err != nil {
			return fmt.Errorf("species %s: %w", key, err)
		}
		staged[key] = next
	}

	camera := Camera
	if file.Camera != nil {
		if err := file.Camera.Decode(&camera); err != nil {
			return fmt.Errorf("camera: %w", err)
		}
	}

	for key, next := range staged {
		*Species[key] = next
	}
	Camera = camera
	return nil
}
