package database

import (
	"errors"
	"strings"
)

// ErrNoFields is returned when a partial update carries no fields; executing
// it would produce a syntactically invalid UPDATE.
var ErrNoFields = errors.New("no fields to update")

// Field is one column assignment in a partial update. Fields are handed to
// BuildSetClause in the order they should appear in the SET clause.
type Field struct {
	Name  string
	Value any
}

// BuildSetClause turns a sparse field list into a parameterized SET clause
// plus the bound values in matching order:
//
//	BuildSetClause([]Field{{"firstName", "A"}, {"isAdmin", true}},
//	    map[string]string{"firstName": "first_name", "isAdmin": "is_admin"})
//	=> "first_name = ?, is_admin = ?", []any{"A", true}
//
// Field names missing from colMap pass through unchanged, so simple
// same-named columns need no table entry. That also means an unvetted field
// name would be interpolated as a literal column: callers must restrict
// input to an allow-list (the typed update request) before calling this.
// Placeholders are GORM positional parameters; any trailing fixed parameters
// (such as the row key) are appended by the caller.
func BuildSetClause(fields []Field, colMap map[string]string) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, ErrNoFields
	}

	cols := make([]string, 0, len(fields))
	values := make([]any, 0, len(fields))
	for _, f := range fields {
		col, ok := colMap[f.Name]
		if !ok {
			col = f.Name
		}
		cols = append(cols, col+" = ?")
		values = append(values, f.Value)
	}

	return strings.Join(cols, ", "), values, nil
}
