package archive

import "fmt"

// Dialect abstracts the SQL differences between SQLite and PostgreSQL.
type Dialect interface {
	// DriverName returns the driver name for sql.Open().
	DriverName() string

	// Placeholder returns the parameter placeholder for the given position (1-indexed).
	Placeholder(position int) string

	// SupportsLastInsertID reports whether Result.LastInsertId() works.
	SupportsLastInsertID() bool

	// ReturningClause returns the RETURNING clause for INSERT statements.
	ReturningClause(column string) string

	// InitStatements run once after connecting.
	InitStatements() []string

	// AutoIncrementPrimaryKey returns the column definition for a generated id.
	AutoIncrementPrimaryKey() string
}

// DialectType identifies the database dialect.
type DialectType string

const (
	DialectSQLite   DialectType = "sqlite"
	DialectPostgres DialectType = "postgres"
)

// NewDialect creates a new Dialect for the given type.
func NewDialect(dialectType DialectType) (Dialect, error) {
	switch dialectType {
	case DialectSQLite, "":
		return &SQLiteDialect{}, nil
	case DialectPostgres:
		return &PostgresDialect{}, nil
	default:
		return nil, fmt.Errorf("unknown archive driver %q", dialectType)
	}
}
