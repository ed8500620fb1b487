package archive

import (
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresDialect implements Dialect for PostgreSQL through lib/pq.
type PostgresDialect struct{}

func (d *PostgresDialect) DriverName() string { return "postgres" }

// Placeholder returns "$N" for the given position.
func (d *PostgresDialect) Placeholder(position int) string {
	return fmt.Sprintf("$%d", position)
}

// SupportsLastInsertID is false; inserts use RETURNING instead.
func (d *PostgresDialect) SupportsLastInsertID() bool { return false }

func (d *PostgresDialect) ReturningClause(column string) string {
	return fmt.Sprintf(" RETURNING %s", column)
}

// InitStatements is empty; foreign keys are always enforced in PostgreSQL.
func (d *PostgresDialect) InitStatements() []string { return nil }

func (d *PostgresDialect) AutoIncrementPrimaryKey() string {
	return "BIGSERIAL PRIMARY KEY"
}
