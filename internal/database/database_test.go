package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every persisted table must be in the migration set, or a fresh deployment
// comes up without it.
func TestSchemaModelsCoverAllTables(t *testing.T) {
	want := []string{
		"users",
		"refresh_tokens",
		"audit_logs",
		"wards",
		"beds",
		"patients",
		"admissions",
	}

	var got []string
	for _, model := range schemaModels {
		named, ok := model.(interface{ TableName() string })
		require.True(t, ok, "model %T has no table name", model)
		got = append(got, named.TableName())
	}

	assert.ElementsMatch(t, want, got)
}
