package devtools

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"mazerooms/pkg/game/layout"
)

// WriteYAML exports the world snapshot to path, creating parent directories
func WriteYAML(path string, w *layout.World) error {
	data, err := yaml.Marshal(w.Snapshot())
	if err != nil {
		return fmt.Errorf("failed to marshal world: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	header := fmt.Sprintf("# Generated world, seed %d\n# Symbols: . open_path  # wall  , room_path  W room_wall  D door  K key_feature\n\n", w.Seed)
	if err := os.WriteFile(path, append([]byte(header), data...), 0644); err != nil {
		return fmt.Errorf("failed to write YAML file: %w", err)
	}
	return nil
}

// ReadYAML loads a world previously written by WriteYAML
func ReadYAML(path string) (*layout.World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file: %w", err)
	}

	var s layout.Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML file: %w", err)
	}
	return layout.Restore(s)
}
