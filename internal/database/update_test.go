package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var userCols = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
	"isAdmin":   "is_admin",
}

func TestBuildSetClause(t *testing.T) {
	clause, values, err := BuildSetClause([]Field{
		{Name: "firstName", Value: "A"},
		{Name: "isAdmin", Value: true},
	}, userCols)

	assert.NoError(t, err)
	assert.Equal(t, "first_name = ?, is_admin = ?", clause)
	assert.Equal(t, []any{"A", true}, values)
}

func TestBuildSetClauseEmpty(t *testing.T) {
	_, _, err := BuildSetClause(nil, userCols)
	assert.ErrorIs(t, err, ErrNoFields)

	_, _, err = BuildSetClause([]Field{}, userCols)
	assert.ErrorIs(t, err, ErrNoFields)
}

func TestBuildSetClauseUnmappedFieldPassesThrough(t *testing.T) {
	clause, values, err := BuildSetClause([]Field{
		{Name: "email", Value: "a@b.com"},
	}, userCols)

	assert.NoError(t, err)
	assert.Equal(t, "email = ?", clause)
	assert.Equal(t, []any{"a@b.com"}, values)
}

func TestBuildSetClausePreservesInputOrder(t *testing.T) {
	clause, values, err := BuildSetClause([]Field{
		{Name: "lastName", Value: "Z"},
		{Name: "firstName", Value: "A"},
		{Name: "email", Value: "z@a.com"},
	}, userCols)

	assert.NoError(t, err)
	assert.Equal(t, "last_name = ?, first_name = ?, email = ?", clause)
	assert.Equal(t, []any{"Z", "A", "z@a.com"}, values)
}
