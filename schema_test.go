package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustValidate(t *testing.T, schemaJSON, instanceJSON string) []ValidationMessage {
	t.Helper()
	compiler := NewCompiler()
	compiled, err := compiler.Compile([]byte(schemaJSON), "")
	require.NoError(t, err)

	instance, err := DecodeInstance([]byte(instanceJSON))
	require.NoError(t, err)

	return compiled.Validate(instance).Messages()
}

func TestTypeKeyword(t *testing.T) {
	schema := `{"type": "string"}`
	assert.Empty(t, mustValidate(t, schema, `"hello"`))
	assert.NotEmpty(t, mustValidate(t, schema, `42`))
}

func TestTypeAcceptsIntegerAsNumber(t *testing.T) {
	schema := `{"type": "number"}`
	assert.Empty(t, mustValidate(t, schema, `42`))
	assert.Empty(t, mustValidate(t, schema, `42.5`))
}

func TestIntegerRejectsFraction(t *testing.T) {
	schema := `{"type": "integer"}`
	assert.Empty(t, mustValidate(t, schema, `42`))
	assert.NotEmpty(t, mustValidate(t, schema, `42.5`))
}

func TestEnumKeyword(t *testing.T) {
	schema := `{"enum": ["red", "green", "blue"]}`
	assert.Empty(t, mustValidate(t, schema, `"red"`))
	assert.NotEmpty(t, mustValidate(t, schema, `"purple"`))
}

func TestEnumNumericDeepEquality(t *testing.T) {
	schema := `{"enum": [1, 2, 3]}`
	assert.Empty(t, mustValidate(t, schema, `2`))
	assert.Empty(t, mustValidate(t, schema, `2.0`))
}

func TestAllOfRequiresEveryBranch(t *testing.T) {
	schema := `{"allOf": [{"type": "number"}, {"minimum": 0}]}`
	assert.Empty(t, mustValidate(t, schema, `5`))
	assert.NotEmpty(t, mustValidate(t, schema, `-5`))
	assert.NotEmpty(t, mustValidate(t, schema, `"x"`))
}

func TestAnyOfRequiresOneBranch(t *testing.T) {
	schema := `{"anyOf": [{"type": "string"}, {"type": "number"}]}`
	assert.Empty(t, mustValidate(t, schema, `"x"`))
	assert.Empty(t, mustValidate(t, schema, `5`))
	assert.NotEmpty(t, mustValidate(t, schema, `true`))
}

func TestOneOfExactlyOneBranch(t *testing.T) {
	schema := `{"oneOf": [{"minimum": 0}, {"maximum": 10}]}`
	// 20 passes only the first branch (not <=10)
	assert.Empty(t, mustValidate(t, schema, `20`))
	// 5 passes both branches -> invalid
	assert.NotEmpty(t, mustValidate(t, schema, `5`))
}

func TestNotKeyword(t *testing.T) {
	schema := `{"not": {"type": "string"}}`
	assert.Empty(t, mustValidate(t, schema, `5`))
	assert.NotEmpty(t, mustValidate(t, schema, `"x"`))
}

func TestPropertiesAndRequired(t *testing.T) {
	schema := `{
		"type": "object",
		"properties": {"name": {"type": "string"}, "age": {"type": "integer"}},
		"required": ["name"]
	}`
	assert.Empty(t, mustValidate(t, schema, `{"name": "ann", "age": 5}`))
	assert.NotEmpty(t, mustValidate(t, schema, `{"age": 5}`))
	assert.NotEmpty(t, mustValidate(t, schema, `{"name": 5}`))
}

func TestAdditionalPropertiesFalse(t *testing.T) {
	schema := `{
		"type": "object",
		"properties": {"name": {"type": "string"}},
		"additionalProperties": false
	}`
	assert.Empty(t, mustValidate(t, schema, `{"name": "ann"}`))
	assert.NotEmpty(t, mustValidate(t, schema, `{"name": "ann", "extra": true}`))
}

func TestAdditionalPropertiesSchema(t *testing.T) {
	schema := `{
		"type": "object",
		"properties": {"name": {"type": "string"}},
		"additionalProperties": {"type": "number"}
	}`
	assert.Empty(t, mustValidate(t, schema, `{"name": "ann", "age": 5}`))
	assert.NotEmpty(t, mustValidate(t, schema, `{"name": "ann", "age": "old"}`))
}

func TestPatternPropertiesAppliesToMatchingNames(t *testing.T) {
	schema := `{
		"type": "object",
		"patternProperties": {"^S_": {"type": "string"}, "^N_": {"type": "number"}}
	}`
	assert.Empty(t, mustValidate(t, schema, `{"S_name": "ann", "N_age": 5}`))
	assert.NotEmpty(t, mustValidate(t, schema, `{"S_name": 5}`))
}

func TestMinMaxProperties(t *testing.T) {
	schema := `{"minProperties": 1, "maxProperties": 2}`
	assert.Empty(t, mustValidate(t, schema, `{"a": 1}`))
	assert.NotEmpty(t, mustValidate(t, schema, `{}`))
	assert.NotEmpty(t, mustValidate(t, schema, `{"a": 1, "b": 2, "c": 3}`))
}

func TestDependenciesPropertyForm(t *testing.T) {
	schema := `{"dependencies": {"credit_card": ["billing_address"]}}`
	assert.Empty(t, mustValidate(t, schema, `{"name": "ann"}`))
	assert.Empty(t, mustValidate(t, schema, `{"credit_card": "1234", "billing_address": "x"}`))
	assert.NotEmpty(t, mustValidate(t, schema, `{"credit_card": "1234"}`))
}

func TestDependenciesSchemaForm(t *testing.T) {
	schema := `{"dependencies": {"credit_card": {"required": ["billing_address"]}}}`
	assert.Empty(t, mustValidate(t, schema, `{"credit_card": "1234", "billing_address": "x"}`))
	assert.NotEmpty(t, mustValidate(t, schema, `{"credit_card": "1234"}`))
}

func TestItemsSingleSchema(t *testing.T) {
	schema := `{"items": {"type": "number"}}`
	assert.Empty(t, mustValidate(t, schema, `[1, 2, 3]`))
	assert.NotEmpty(t, mustValidate(t, schema, `[1, "x", 3]`))
}

func TestItemsTupleAndAdditionalItems(t *testing.T) {
	schema := `{
		"items": [{"type": "string"}, {"type": "number"}],
		"additionalItems": false
	}`
	assert.Empty(t, mustValidate(t, schema, `["x", 1]`))
	assert.NotEmpty(t, mustValidate(t, schema, `["x", 1, "extra"]`))
}

func TestMinMaxItems(t *testing.T) {
	schema := `{"minItems": 1, "maxItems": 2}`
	assert.Empty(t, mustValidate(t, schema, `[1]`))
	assert.NotEmpty(t, mustValidate(t, schema, `[]`))
	assert.NotEmpty(t, mustValidate(t, schema, `[1, 2, 3]`))
}

func TestUniqueItems(t *testing.T) {
	schema := `{"uniqueItems": true}`
	assert.Empty(t, mustValidate(t, schema, `[1, 2, 3]`))
	assert.NotEmpty(t, mustValidate(t, schema, `[1, 2, 1]`))
}

func TestMinMaxLengthCountsCodePoints(t *testing.T) {
	schema := `{"minLength": 2, "maxLength": 3}`
	assert.Empty(t, mustValidate(t, schema, `"ab"`))
	assert.NotEmpty(t, mustValidate(t, schema, `"a"`))
	assert.NotEmpty(t, mustValidate(t, schema, `"abcd"`))
	// "日本語" is 3 Unicode code points, well within bounds despite being 9 bytes.
	assert.Empty(t, mustValidate(t, schema, `"日本語"`))
}

func TestPatternKeyword(t *testing.T) {
	schema := `{"pattern": "^a+$"}`
	assert.Empty(t, mustValidate(t, schema, `"aaa"`))
	assert.NotEmpty(t, mustValidate(t, schema, `"aab"`))
}

func TestMinimumMaximum(t *testing.T) {
	schema := `{"minimum": 0, "maximum": 10}`
	assert.Empty(t, mustValidate(t, schema, `5`))
	assert.NotEmpty(t, mustValidate(t, schema, `-1`))
	assert.NotEmpty(t, mustValidate(t, schema, `11`))
}

func TestExclusiveMinimumMaximum(t *testing.T) {
	schema := `{"minimum": 0, "exclusiveMinimum": true, "maximum": 10, "exclusiveMaximum": true}`
	assert.NotEmpty(t, mustValidate(t, schema, `0`))
	assert.NotEmpty(t, mustValidate(t, schema, `10`))
	assert.Empty(t, mustValidate(t, schema, `5`))
}

func TestMultipleOfExactDecimal(t *testing.T) {
	schema := `{"multipleOf": 0.1}`
	// 0.3 is not exactly representable in float64 but is a clean multiple
	// of 0.1 mathematically.
	assert.Empty(t, mustValidate(t, schema, `0.3`))
	assert.NotEmpty(t, mustValidate(t, schema, `0.35`))
}

func TestFormatUnknownNamesAreIgnored(t *testing.T) {
	schema := `{"format": "no-such-format"}`
	assert.Empty(t, mustValidate(t, schema, `"anything"`))
}

func TestFormatEmail(t *testing.T) {
	schema := `{"format": "email"}`
	assert.Empty(t, mustValidate(t, schema, `"a@example.com"`))
	assert.NotEmpty(t, mustValidate(t, schema, `"not-an-email"`))
}

func TestFormatIgnoresNonStringInstances(t *testing.T) {
	schema := `{"format": "email"}`
	assert.Empty(t, mustValidate(t, schema, `5`))
}

func TestKeywordOrderDeterminesMessageOrder(t *testing.T) {
	schema := `{"type": "number", "minLength": 5}`
	messages := mustValidate(t, schema, `"abc"`)
	require.Len(t, messages, 2)
	assert.Equal(t, TypeType, messages[0].Type)
	assert.Equal(t, TypeMinLength, messages[1].Type)
}

func TestAllOfSurfacesUnionOfSubErrors(t *testing.T) {
	schema := `{"allOf": [{"type": "string"}, {"minLength": 5}]}`
	messages := mustValidate(t, schema, `5`)
	// Only the type branch fails (minLength doesn't apply to a non-string),
	// and allOf surfaces that branch's own message rather than a single
	// allOf-level summary.
	require.Len(t, messages, 1)
	assert.Equal(t, TypeType, messages[0].Type)
}

func TestAllOfDeduplicatesIdenticalSubErrors(t *testing.T) {
	schema := `{"allOf": [{"type": "string"}, {"type": "string"}]}`
	messages := mustValidate(t, schema, `5`)
	// Both branches report the identical type mismatch; the de-duplicating
	// MessageSet collapses them into one message instead of two duplicates
	// or a separate allOf-level message.
	require.Len(t, messages, 1)
	assert.Equal(t, TypeType, messages[0].Type)
}

func TestAnyOfSurfacesUnionWhenAllBranchesFail(t *testing.T) {
	schema := `{"anyOf": [{"type": "string"}, {"type": "boolean"}]}`
	messages := mustValidate(t, schema, `5`)
	require.Len(t, messages, 2)
	assert.Equal(t, TypeType, messages[0].Type)
	assert.Equal(t, TypeType, messages[1].Type)
}

func TestOneOfSurfacesUnionOnZeroPasses(t *testing.T) {
	schema := `{"oneOf": [{"type": "string"}, {"type": "boolean"}]}`
	messages := mustValidate(t, schema, `5`)
	require.Len(t, messages, 2)
}

func TestOneOfReportsDedicatedMessageOnMultiplePasses(t *testing.T) {
	schema := `{"oneOf": [{"minimum": 0}, {"maximum": 10}]}`
	messages := mustValidate(t, schema, `5`)
	require.Len(t, messages, 1)
	assert.Equal(t, TypeOneOf, messages[0].Type)
}
