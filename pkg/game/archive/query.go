package archive

import "strings"

// QueryBuilder converts SQL written with ? placeholders to the dialect's form.
type QueryBuilder struct {
	dialect Dialect
}

// NewQueryBuilder creates a new QueryBuilder for the given dialect.
func NewQueryBuilder(dialect Dialect) *QueryBuilder {
	return &QueryBuilder{dialect: dialect}
}

// Build rewrites each ? as the dialect placeholder for its position.
//
//	input:    "SELECT * FROM worlds WHERE seed = ? AND id > ?"
//	Postgres: "SELECT * FROM worlds WHERE seed = $1 AND id > $2"
func (qb *QueryBuilder) Build(query string) string {
	if _, ok := qb.dialect.(*SQLiteDialect); ok {
		return query
	}

	var result strings.Builder
	position := 1
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			result.WriteString(qb.dialect.Placeholder(position))
			position++
		} else {
			result.WriteByte(query[i])
		}
	}
	return result.String()
}

// BuildWithReturning appends a RETURNING clause if the dialect needs one to
// report the inserted id.
func (qb *QueryBuilder) BuildWithReturning(query string, column string) string {
	converted := qb.Build(query)
	if !qb.dialect.SupportsLastInsertID() {
		converted += qb.dialect.ReturningClause(column)
	}
	return converted
}
