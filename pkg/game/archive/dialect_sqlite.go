package archive

import (
	_ "modernc.org/sqlite"
)

// SQLiteDialect implements Dialect for the modernc.org/sqlite driver.
type SQLiteDialect struct{}

func (d *SQLiteDialect) DriverName() string { return "sqlite" }

// Placeholder returns "?" for all positions.
func (d *SQLiteDialect) Placeholder(position int) string { return "?" }

func (d *SQLiteDialect) SupportsLastInsertID() bool { return true }

func (d *SQLiteDialect) ReturningClause(column string) string { return "" }

func (d *SQLiteDialect) InitStatements() []string {
	return []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
}

func (d *SQLiteDialect) AutoIncrementPrimaryKey() string {
	return "INTEGER PRIMARY KEY AUTOINCREMENT"
}
