package archive

import (
	"context"
	"os"
	"strconv"
	"testing"

	"mazerooms/pkg/game/generator"
)

// getPostgresTestConfig returns PostgreSQL config if available, nil otherwise.
// Set MAZEROOMS_TEST_POSTGRES=1 plus the optional MAZEROOMS_TEST_POSTGRES_{HOST,PORT,USER,PASSWORD,DATABASE}.
func getPostgresTestConfig() *Config {
	if os.Getenv("MAZEROOMS_TEST_POSTGRES") == "" {
		return nil
	}

	env := func(name, fallback string) string {
		if v := os.Getenv(name); v != "" {
			return v
		}
		return fallback
	}

	cfg := DefaultConfig("")
	cfg.Driver = string(DialectPostgres)
	cfg.Postgres.Host = env("MAZEROOMS_TEST_POSTGRES_HOST", "localhost")
	cfg.Postgres.Port, _ = strconv.Atoi(env("MAZEROOMS_TEST_POSTGRES_PORT", "5432"))
	cfg.Postgres.User = env("MAZEROOMS_TEST_POSTGRES_USER", "mazerooms")
	cfg.Postgres.Password = env("MAZEROOMS_TEST_POSTGRES_PASSWORD", "mazerooms")
	cfg.Postgres.Database = env("MAZEROOMS_TEST_POSTGRES_DATABASE", "mazerooms_test")
	return &cfg
}

func TestPostgres_SaveAndLoadWorld(t *testing.T) {
	cfg := getPostgresTestConfig()
	if cfg == nil {
		t.Skip("Skipping PostgreSQL test: MAZEROOMS_TEST_POSTGRES not set")
	}

	a, err := Open(*cfg)
	if err != nil {
		t.Fatalf("Failed to open PostgreSQL archive: %v", err)
	}
	defer a.Close()

	ctx := context.Background()
	w := buildWorld(t, generator.OpenFloor, 31)
	id, err := a.SaveWorld(ctx, w)
	if err != nil {
		t.Fatalf("SaveWorld: %v", err)
	}
	t.Cleanup(func() { a.DeleteWorld(ctx, id) })

	got, err := a.LoadWorld(ctx, id)
	if err != nil {
		t.Fatalf("LoadWorld: %v", err)
	}
	assertSameWorld(t, got, w)
}
