package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderRejectsNoMetaSchemas(t *testing.T) {
	_, err := NewBuilder().WithDefaultMetaSchema(Draft4URI).Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestBuilderRejectsMissingDefault(t *testing.T) {
	_, err := NewBuilder().WithMetaSchema(NewDraft4MetaSchema()).Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestBuilderRejectsUnregisteredDefault(t *testing.T) {
	_, err := NewBuilder().
		WithMetaSchema(NewDraft4MetaSchema()).
		WithDefaultMetaSchema("http://example.com/not-registered").
		Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestNewCompilerUsesDraft4ByDefault(t *testing.T) {
	compiler := NewCompiler()
	compiled, err := compiler.Compile([]byte(`{"type": "string"}`), "")
	require.NoError(t, err)

	instance, err := DecodeInstance([]byte(`"hello"`))
	require.NoError(t, err)
	assert.Empty(t, compiled.Validate(instance).Messages())
}

func TestCompileRejectsUnknownMetaSchema(t *testing.T) {
	compiler := NewCompiler()
	_, err := compiler.Compile([]byte(`{"$schema": "https://json-schema.org/draft/2020-12/schema", "type": "string"}`), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownMetaSchema)
}

func TestCompileCachesByDocURL(t *testing.T) {
	compiler := NewCompiler()
	first, err := compiler.Compile([]byte(`{"type": "string"}`), "https://example.com/schema.json")
	require.NoError(t, err)

	second, err := compiler.Compile([]byte(`{"type": "number"}`), "https://example.com/schema.json")
	require.NoError(t, err)

	// The second Compile call for the same docURL returns the cached
	// compilation of the first document rather than recompiling.
	assert.Same(t, first, second)
}

func TestCompileRejectsNonObjectSchema(t *testing.T) {
	compiler := NewCompiler()
	_, err := compiler.Compile([]byte(`"not a schema"`), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSchemaType)
}
