// Package config loads the generator's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mazerooms/pkg/engine/logger"
	"mazerooms/pkg/game/archive"
	"mazerooms/pkg/game/generator"
	"mazerooms/pkg/game/rooms"
)

// MinGridSide is the smallest grid that fits a room inside the perimeter with
// a corridor ring around it.
const MinGridSide = 7

// Config holds every setting the CLI needs.
type Config struct {
	Grid        GridConfig    `yaml:"grid"`
	Generator   string        `yaml:"generator"`
	Seed        int64         `yaml:"seed"` // 0 picks a seed from the clock
	MaxAttempts int           `yaml:"max_attempts"`
	Rooms       []string      `yaml:"rooms"`
	Output      OutputConfig  `yaml:"output"`
	Archive     ArchiveConfig `yaml:"archive"`
	Locale      LocaleConfig  `yaml:"locale"`
	Logging     logger.Config `yaml:"logging"`
}

// GridConfig sizes the maze.
type GridConfig struct {
	Rows       int     `yaml:"rows"`
	Cols       int     `yaml:"cols"`
	LoopChance float64 `yaml:"loop_chance"`
}

// OutputConfig selects what gets written after a successful build.
type OutputConfig struct {
	Color    bool   `yaml:"color"`
	Legend   bool   `yaml:"legend"`
	YAMLPath string `yaml:"yaml_path"`
	DumpPath string `yaml:"dump_path"`
	HTMLPath string `yaml:"html_path"`
}

// ArchiveConfig enables storing built worlds.
type ArchiveConfig struct {
	Enabled        bool `yaml:"enabled"`
	archive.Config `yaml:",inline"`
}

// LocaleConfig points gotext at the translation catalogue.
type LocaleConfig struct {
	Dir      string `yaml:"dir"`
	Language string `yaml:"language"`
	Domain   string `yaml:"domain"`
}

// DefaultConfig returns a Config that builds a 21x41 braided maze with an
// entrance and a key room.
func DefaultConfig() *Config {
	return &Config{
		Grid: GridConfig{
			Rows:       21,
			Cols:       41,
			LoopChance: 0.05,
		},
		Generator:   generator.DefaultBacktracker.Name(),
		MaxAttempts: 10,
		Rooms:       []string{"entrance", "key"},
		Output: OutputConfig{
			Color:  true,
			Legend: true,
		},
		Archive: ArchiveConfig{
			Config: archive.DefaultConfig("data/worlds.db"),
		},
		Locale: LocaleConfig{
			Dir:      "locales",
			Language: "en_GB",
			Domain:   "default",
		},
		Logging: logger.DefaultConfig(),
	}
}

// LoadConfig loads configuration from a YAML file.
// A missing file is not an error; the defaults are returned.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return config, nil
}

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Grid.Rows < MinGridSide || c.Grid.Cols < MinGridSide {
		errs = append(errs, fmt.Errorf("grid is %dx%d, minimum is %dx%d", c.Grid.Rows, c.Grid.Cols, MinGridSide, MinGridSide))
	}
	if c.Grid.LoopChance < 0 || c.Grid.LoopChance > 1 {
		errs = append(errs, fmt.Errorf("loop_chance %v is outside 0..1", c.Grid.LoopChance))
	}
	if _, err := generator.ByName(c.Generator); err != nil {
		errs = append(errs, err)
	}
	if c.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("max_attempts must be at least 1, got %d", c.MaxAttempts))
	}
	if len(c.Rooms) == 0 {
		errs = append(errs, errors.New("rooms list is empty"))
	}
	for _, name := range c.Rooms {
		if _, err := rooms.New(name); err != nil {
			errs = append(errs, fmt.Errorf("rooms: %w (have %v)", err, rooms.Variants()))
		}
	}
	if c.Archive.Enabled {
		if _, err := archive.NewDialect(archive.DialectType(c.Archive.Driver)); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// MazeGenerator returns the configured generator, applying LoopChance to the backtracker
func (c *Config) MazeGenerator() (generator.GridGenerator, error) {
	gen, err := generator.ByName(c.Generator)
	if err != nil {
		return nil, err
	}
	if _, ok := gen.(*generator.Backtracker); ok {
		return &generator.Backtracker{LoopChance: c.Grid.LoopChance}, nil
	}
	return gen, nil
}
