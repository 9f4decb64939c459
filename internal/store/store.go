package store

import (
	"fmt"
	"sort"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// buildUpdateClause creates the SET clause for ON CONFLICT DO UPDATE
// e.g., "name = EXCLUDED.name, slug = EXCLUDED.slug, ..."
func buildUpdateClause(fields map[string]any, skip ...string) string {
	columns := make([]string, 0, len(fields))

fieldloop:
	for field := range fields {
		for _, s := range skip {
			if field == s {
				continue fieldloop
			}
		}
		columns = append(columns, field)
	}
	sort.Strings(columns)

	parts := make([]string, 0, len(columns))
	for _, column := range columns {
		parts = append(parts, fmt.Sprintf("%s = EXCLUDED.%s", column, column))
	}

	return strings.Join(parts, ", ")
}
