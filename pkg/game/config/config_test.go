package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mazerooms/pkg/game/generator"
	"mazerooms/pkg/game/rooms"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
	if cfg.Grid.Rows != 21 || cfg.Grid.Cols != 41 {
		t.Errorf("grid = %dx%d, want 21x41", cfg.Grid.Rows, cfg.Grid.Cols)
	}
	if strings.Join(cfg.Rooms, ",") != "entrance,key" {
		t.Errorf("Rooms = %v, want [entrance key]", cfg.Rooms)
	}
	if cfg.Archive.Enabled {
		t.Error("archive enabled by default")
	}
	if cfg.Archive.Driver != "sqlite" {
		t.Errorf("Archive.Driver = %q, want sqlite", cfg.Archive.Driver)
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.MaxAttempts != DefaultConfig().MaxAttempts {
		t.Errorf("MaxAttempts = %d, want default", cfg.MaxAttempts)
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
grid:
  rows: 31
  cols: 31
  loop_chance: 0.2
generator: open
seed: 99
rooms: [entrance, key, key]
output:
  color: false
  yaml_path: out/world.yaml
archive:
  enabled: true
  driver: postgres
  postgres:
    host: db.internal
    port: 5433
    conn_max_lifetime: 2m
logging:
  level: DEBUG
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Grid.Rows != 31 || cfg.Grid.LoopChance != 0.2 {
		t.Errorf("Grid = %+v", cfg.Grid)
	}
	if cfg.Seed != 99 || cfg.Generator != "open" {
		t.Errorf("Seed, Generator = %d, %q", cfg.Seed, cfg.Generator)
	}
	if len(cfg.Rooms) != 3 {
		t.Errorf("Rooms = %v, want 3 entries", cfg.Rooms)
	}
	if cfg.Output.Color || cfg.Output.YAMLPath != "out/world.yaml" {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if !cfg.Archive.Enabled || cfg.Archive.Driver != "postgres" || cfg.Archive.Postgres.Host != "db.internal" || cfg.Archive.Postgres.Port != 5433 {
		t.Errorf("Archive = %+v", cfg.Archive)
	}
	if cfg.Archive.Postgres.ConnMaxLifetime.Minutes() != 2 {
		t.Errorf("ConnMaxLifetime = %v, want 2m", cfg.Archive.Postgres.ConnMaxLifetime)
	}
	// Fields missing from the file keep their defaults
	if cfg.MaxAttempts != 10 || cfg.Archive.Postgres.SSLMode != "disable" || !cfg.Logging.ConsoleEnabled {
		t.Errorf("defaults lost: max_attempts=%d sslmode=%q console=%v",
			cfg.MaxAttempts, cfg.Archive.Postgres.SSLMode, cfg.Logging.ConsoleEnabled)
	}
	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("Logging.Level = %q, want DEBUG", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("grid: [1, 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err == nil {
		t.Fatal("LoadConfig(invalid) error = nil")
	}
	if cfg.Grid.Rows != DefaultConfig().Grid.Rows {
		t.Error("invalid file did not fall back to defaults")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"small grid", func(c *Config) { c.Grid.Rows = 5 }, "minimum is 7x7"},
		{"loop chance", func(c *Config) { c.Grid.LoopChance = 1.5 }, "loop_chance"},
		{"generator", func(c *Config) { c.Generator = "bsp" }, "unknown maze generator"},
		{"attempts", func(c *Config) { c.MaxAttempts = 0 }, "max_attempts"},
		{"no rooms", func(c *Config) { c.Rooms = nil }, "rooms list is empty"},
		{"unknown room", func(c *Config) { c.Rooms = []string{"entrance", "vault"} }, "vault"},
		{"driver", func(c *Config) { c.Archive.Enabled = true; c.Archive.Driver = "mysql" }, "unknown archive driver"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.want)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Rooms = []string{"vault"}
	if err := cfg.Validate(); !errors.Is(err, rooms.ErrUnknownVariant) {
		t.Errorf("Validate() = %v, want ErrUnknownVariant in the chain", err)
	}
}

func TestMazeGenerator(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Grid.LoopChance = 0.4
	gen, err := cfg.MazeGenerator()
	if err != nil {
		t.Fatalf("MazeGenerator: %v", err)
	}
	bt, ok := gen.(*generator.Backtracker)
	if !ok || bt.LoopChance != 0.4 {
		t.Errorf("MazeGenerator() = %#v, want backtracker with LoopChance 0.4", gen)
	}

	cfg.Generator = "open"
	if gen, _ := cfg.MazeGenerator(); gen != generator.OpenFloor {
		t.Errorf("MazeGenerator() = %#v, want the open generator", gen)
	}
}
