package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name", "age"],
  "properties": {
    "name": { "type": "string" },
    "age": { "type": "integer", "minimum": 0 },
    "address": {
      "type": "object",
      "required": ["city"],
      "properties": { "city": { "type": "string" } }
    }
  }
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateJSON_Valid(t *testing.T) {
	schemaPath := writeTemp(t, "schema.json", personSchema)
	jsonPath := writeTemp(t, "doc.json", `{"name": "Ada", "age": 36}`)

	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))
}

func TestValidateJSON_MissingField(t *testing.T) {
	schemaPath := writeTemp(t, "schema.json", personSchema)
	jsonPath := writeTemp(t, "doc.json", `{"name": "Ada"}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSON_NonExistentSchema(t *testing.T) {
	jsonPath := writeTemp(t, "doc.json", `{}`)

	err := ValidateJSON(filepath.Join(t.TempDir(), "missing.json"), jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_NonExistentJSON(t *testing.T) {
	schemaPath := writeTemp(t, "schema.json", personSchema)

	err := ValidateJSON(schemaPath, filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateBytes(t *testing.T) {
	schemaPath := writeTemp(t, "schema.json", personSchema)

	assert.NoError(t, ValidateBytes(schemaPath, []byte(`{"name": "Ada", "age": 36}`)))

	err := ValidateBytes(schemaPath, []byte(`{"name": "Ada", "age": -1}`))
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "age", validationErr.Errors[0].Field)
}

func TestValidateBytes_Malformed(t *testing.T) {
	schemaPath := writeTemp(t, "schema.json", personSchema)

	err := ValidateBytes(schemaPath, []byte(`{"name": `))
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateJSONString(t *testing.T) {
	assert.NoError(t, ValidateJSONString(personSchema, `{"name": "Ada", "age": 1}`))

	err := ValidateJSONString(personSchema, `{"name": 5, "age": 1}`)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "name", validationErr.Errors[0].Field)
}

func TestValidateJSONString_NestedField(t *testing.T) {
	err := ValidateJSONString(personSchema, `{"name": "Ada", "age": 1, "address": {}}`)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Errors[0].Field, "address")
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "score", Message: "Must be less than or equal to 100"},
		{Field: "(root)", Message: "sections is required"},
	}}

	msg := err.Error()
	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "1. score: Must be less than or equal to 100")
	assert.Contains(t, msg, "2. (root): sections is required")
}

func TestSchemaLoadError(t *testing.T) {
	cause := os.ErrPermission
	err := &SchemaLoadError{Path: "x.json", Message: "bad", Cause: cause}
	assert.Contains(t, err.Error(), "failed to load schema x.json: bad")
	assert.ErrorIs(t, err, cause)
}

func TestResolveSchemaPath(t *testing.T) {
	// Tests run from internal/schemas, two levels below the repository root
	path := ResolveSchemaPath(AnalysisResultSchema)
	require.NotEmpty(t, path)
	assert.True(t, filepath.IsAbs(path))

	assert.Empty(t, ResolveSchemaPath("schemas/does_not_exist.schema.json"))
}
