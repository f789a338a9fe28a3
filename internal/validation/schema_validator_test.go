package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"weight": {"type": "number", "minimum": 0}
	},
	"required": ["id"]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "test.schema.json", testSchema)
	v := NewSchemaValidator()

	tests := []struct {
		name     string
		data     string
		wantErr  bool
		contains string
	}{
		{name: "valid", data: `{"id": "ore_iron", "weight": 1.5}`},
		{name: "optional field omitted", data: `{"id": "gem_ruby"}`},
		{name: "missing required", data: `{"weight": 2}`, wantErr: true, contains: "required"},
		{name: "negative weight", data: `{"id": "x", "weight": -1}`, wantErr: true, contains: "/weight"},
		{name: "malformed JSON", data: `{"id":`, wantErr: true, contains: "failed to parse JSON data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), schemaPath)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "test.schema.json", testSchema)
	dataPath := writeFile(t, dir, "data.json", `{"id": "ore_iron"}`)
	v := NewSchemaValidator()

	t.Run("valid file", func(t *testing.T) {
		assert.NoError(t, v.ValidateFile(dataPath, schemaPath))
	})

	t.Run("missing data file", func(t *testing.T) {
		err := v.ValidateFile(filepath.Join(dir, "nope.json"), schemaPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read data file")
	})

	t.Run("missing schema file", func(t *testing.T) {
		err := v.ValidateFile(dataPath, "does/not/exist.schema.json")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrFileNotFound)
	})
}

func TestResolvePath_FindsRepositoryFile(t *testing.T) {
	path, err := ResolvePath("configs/schemas/items.schema.json")

	require.NoError(t, err)
	assert.FileExists(t, path)
}
