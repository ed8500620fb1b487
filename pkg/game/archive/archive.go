// Package archive stores generated worlds in SQLite or PostgreSQL so a layout
// can be reloaded by id or by seed.
package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mazerooms/pkg/engine/logger"
	"mazerooms/pkg/engine/world"
	"mazerooms/pkg/game/layout"
)

// ErrNotFound is returned when no stored world matches a lookup
var ErrNotFound = errors.New("world not found")

// Archive wraps the database connection and the dialect used to talk to it.
type Archive struct {
	db      *sql.DB
	dialect Dialect
	qb      *QueryBuilder
}

// Open connects to the configured database and creates the schema if needed.
func Open(cfg Config) (*Archive, error) {
	dialect, err := NewDialect(DialectType(cfg.Driver))
	if err != nil {
		return nil, err
	}

	var db *sql.DB
	switch dialect.(type) {
	case *PostgresDialect:
		db, err = sql.Open(dialect.DriverName(), cfg.Postgres.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to connect to postgres at %s:%d: %w", cfg.Postgres.Host, cfg.Postgres.Port, err)
		}

	default:
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("sqlite archive needs a path")
		}
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		db, err = sql.Open(dialect.DriverName(), cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
	}

	for _, stmt := range dialect.InitStatements() {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to run %q: %w", stmt, err)
		}
	}

	a := &Archive{db: db, dialect: dialect, qb: NewQueryBuilder(dialect)}
	if err := a.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Debug("archive opened", "driver", dialect.DriverName())
	return a, nil
}

// Close closes the database connection.
func (a *Archive) Close() error {
	return a.db.Close()
}

// migrate creates the schema if it doesn't exist.
func (a *Archive) migrate() error {
	pk := a.dialect.AutoIncrementPrimaryKey()
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS worlds (
			id ` + pk + `,
			seed BIGINT NOT NULL,
			attempts INTEGER NOT NULL,
			grid_rows INTEGER NOT NULL,
			grid_cols INTEGER NOT NULL,
			grid TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS world_rooms (
			id ` + pk + `,
			world_id BIGINT NOT NULL REFERENCES worlds(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			variant TEXT NOT NULL,
			strategy TEXT NOT NULL,
			height INTEGER NOT NULL,
			width INTEGER NOT NULL,
			anchor_row INTEGER NOT NULL,
			anchor_col INTEGER NOT NULL,
			door_row INTEGER NOT NULL,
			door_col INTEGER NOT NULL,
			door_pass INTEGER NOT NULL,
			opened_row INTEGER,
			opened_col INTEGER
		)`,

		`CREATE INDEX IF NOT EXISTS idx_worlds_seed ON worlds(seed)`,
		`CREATE INDEX IF NOT EXISTS idx_world_rooms_world ON world_rooms(world_id)`,
	}

	for _, m := range migrations {
		if _, err := a.db.Exec(m); err != nil {
			return err
		}
	}
	return nil
}

// SaveWorld stores w and its rooms in one transaction and returns the new id.
func (a *Archive) SaveWorld(ctx context.Context, w *layout.World) (int64, error) {
	s := w.Snapshot()

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertWorld := a.qb.BuildWithReturning(
		`INSERT INTO worlds (seed, attempts, grid_rows, grid_cols, grid) VALUES (?, ?, ?, ?, ?)`, "id")
	args := []any{s.Seed, s.Attempts, s.Rows, s.Cols, strings.Join(s.Grid, "\n")}

	var id int64
	if a.dialect.SupportsLastInsertID() {
		res, err := tx.ExecContext(ctx, insertWorld, args...)
		if err != nil {
			return 0, fmt.Errorf("failed to insert world: %w", err)
		}
		if id, err = res.LastInsertId(); err != nil {
			return 0, fmt.Errorf("failed to get world id: %w", err)
		}
	} else {
		if err := tx.QueryRowContext(ctx, insertWorld, args...).Scan(&id); err != nil {
			return 0, fmt.Errorf("failed to insert world: %w", err)
		}
	}

	insertRoom := a.qb.Build(`INSERT INTO world_rooms
		(world_id, position, variant, strategy, height, width, anchor_row, anchor_col, door_row, door_col, door_pass, opened_row, opened_col)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	for i, r := range s.Rooms {
		var openedRow, openedCol sql.NullInt64
		if r.Opened != nil {
			openedRow = sql.NullInt64{Int64: int64(r.Opened.Row), Valid: true}
			openedCol = sql.NullInt64{Int64: int64(r.Opened.Col), Valid: true}
		}
		if _, err := tx.ExecContext(ctx, insertRoom,
			id, i, r.Variant, r.Strategy, r.Height, r.Width,
			r.Anchor.Row, r.Anchor.Col, r.Door.Row, r.Door.Col, r.DoorPass,
			openedRow, openedCol,
		); err != nil {
			return 0, fmt.Errorf("failed to insert room %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit world: %w", err)
	}

	logger.Info("world archived", "id", id, "seed", s.Seed, "rooms", len(s.Rooms))
	return id, nil
}

// LoadWorld reads the world with the given id.
func (a *Archive) LoadWorld(ctx context.Context, id int64) (*layout.World, error) {
	var s layout.Snapshot
	var grid string
	err := a.db.QueryRowContext(ctx,
		a.qb.Build(`SELECT seed, attempts, grid_rows, grid_cols, grid FROM worlds WHERE id = ?`), id,
	).Scan(&s.Seed, &s.Attempts, &s.Rows, &s.Cols, &grid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("world %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load world %d: %w", id, err)
	}
	s.Grid = strings.Split(grid, "\n")

	rows, err := a.db.QueryContext(ctx, a.qb.Build(`SELECT
		variant, strategy, height, width, anchor_row, anchor_col, door_row, door_col, door_pass, opened_row, opened_col
		FROM world_rooms WHERE world_id = ? ORDER BY position`), id)
	if err != nil {
		return nil, fmt.Errorf("failed to load rooms for world %d: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var r layout.RoomRecord
		var openedRow, openedCol sql.NullInt64
		if err := rows.Scan(&r.Variant, &r.Strategy, &r.Height, &r.Width,
			&r.Anchor.Row, &r.Anchor.Col, &r.Door.Row, &r.Door.Col, &r.DoorPass,
			&openedRow, &openedCol,
		); err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		if openedRow.Valid && openedCol.Valid {
			r.Opened = &world.Coord{Row: int(openedRow.Int64), Col: int(openedCol.Int64)}
		}
		s.Rooms = append(s.Rooms, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rooms: %w", err)
	}

	return layout.Restore(s)
}

// LatestBySeed returns the most recently archived world for seed.
func (a *Archive) LatestBySeed(ctx context.Context, seed int64) (*layout.World, int64, error) {
	var id int64
	err := a.db.QueryRowContext(ctx,
		a.qb.Build(`SELECT id FROM worlds WHERE seed = ? ORDER BY id DESC LIMIT 1`), seed,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, fmt.Errorf("seed %d: %w", seed, ErrNotFound)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to look up seed %d: %w", seed, err)
	}

	w, err := a.LoadWorld(ctx, id)
	if err != nil {
		return nil, 0, err
	}
	return w, id, nil
}

// DeleteWorld removes a stored world and its rooms.
func (a *Archive) DeleteWorld(ctx context.Context, id int64) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, a.qb.Build(`DELETE FROM world_rooms WHERE world_id = ?`), id); err != nil {
		return fmt.Errorf("failed to delete rooms: %w", err)
	}
	res, err := tx.ExecContext(ctx, a.qb.Build(`DELETE FROM worlds WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete world: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("world %d: %w", id, ErrNotFound)
	}
	return tx.Commit()
}
