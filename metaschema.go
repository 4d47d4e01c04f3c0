package jsonschema

// Validator is the trait every compiled keyword implements (spec.md §9:
// "a small trait with validate(instance, root, at) -> set<Message>, stored
// as trait objects in CompiledSchema.validators"). Each concrete validator
// carries exactly the compiled state it needs; there is no shared mutable
// base state.
type Validator interface {
	Validate(instance any, root any, at string) MessageSet
}

// KeywordFactory builds a Validator for one keyword occurrence. rawValue
// is the keyword's own JSON value; s is the CompiledSchema under
// construction, already carrying its SchemaPath/Context/Parent, so the
// factory can recursively compile sub-schemas (via s.compileChild) and
// peek at sibling keywords (via s.sibling) when a keyword's meaning
// depends on one (exclusiveMinimum/exclusiveMaximum on minimum/maximum).
//
// A factory returns (nil, nil) when the keyword is recognized but
// contributes no independent validator (e.g. exclusiveMinimum, which is
// consumed by the minimum/maximum factories).
type KeywordFactory func(rawValue any, s *CompiledSchema) (Validator, error)

// FormatValidator checks whether an instance conforms to a named format.
// Per spec.md §4.3 it only applies to strings; non-string instances always
// pass (format is not a type constraint).
type FormatValidator func(instance any) bool

// JsonMetaSchema defines a dialect (spec.md §3): which keywords are active
// and what they mean, plus the named format checkers available to the
// "format" keyword. Two meta-schemas are never merged; selection is exact
// by URI (spec.md §4.1).
type JsonMetaSchema struct {
	URI              string
	IDKeyword        string // "id" for Draft 4, "$id" for Draft 6+
	KeywordFactories map[string]KeywordFactory
	FormatValidators map[string]FormatValidator
}

// Draft4URI is the reference dialect's URI (spec.md §6).
const Draft4URI = "http://json-schema.org/draft-04/schema#"

// NewDraft4MetaSchema builds the reference Draft 4 JsonMetaSchema, wiring
// every keyword validator described in spec.md §4.3 plus the standard
// format checkers from formats.go.
func NewDraft4MetaSchema() *JsonMetaSchema {
	m := &JsonMetaSchema{
		URI:              Draft4URI,
		IDKeyword:        "id",
		KeywordFactories: make(map[string]KeywordFactory),
		FormatValidators: make(map[string]FormatValidator),
	}
	registerDraft4Keywords(m)
	registerStandardFormats(m)
	return m
}

// registerDraft4Keywords wires each Draft 4 keyword's factory. Keywords
// with no table entry here (e.g. "title", "description", "default",
// "definitions", "id", "$schema") are inert metadata or are only ever
// reached through explicit $ref navigation; compileNode silently skips
// any key absent from this map (spec.md §4.2 step 2).
func registerDraft4Keywords(m *JsonMetaSchema) {
	m.KeywordFactories["type"] = typeFactory
	m.KeywordFactories["enum"] = enumFactory
	m.KeywordFactories["allOf"] = allOfFactory
	m.KeywordFactories["anyOf"] = anyOfFactory
	m.KeywordFactories["oneOf"] = oneOfFactory
	m.KeywordFactories["not"] = notFactory
	m.KeywordFactories["properties"] = propertiesFactory
	m.KeywordFactories["patternProperties"] = patternPropertiesFactory
	m.KeywordFactories["additionalProperties"] = additionalPropertiesFactory
	m.KeywordFactories["required"] = requiredFactory
	m.KeywordFactories["minProperties"] = minPropertiesFactory
	m.KeywordFactories["maxProperties"] = maxPropertiesFactory
	m.KeywordFactories["dependencies"] = dependenciesFactory
	m.KeywordFactories["items"] = itemsFactory
	m.KeywordFactories["additionalItems"] = additionalItemsFactory
	m.KeywordFactories["minItems"] = minItemsFactory
	m.KeywordFactories["maxItems"] = maxItemsFactory
	m.KeywordFactories["uniqueItems"] = uniqueItemsFactory
	m.KeywordFactories["minLength"] = minLengthFactory
	m.KeywordFactories["maxLength"] = maxLengthFactory
	m.KeywordFactories["pattern"] = patternFactory
	m.KeywordFactories["format"] = formatFactory
	m.KeywordFactories["minimum"] = minimumFactory
	m.KeywordFactories["maximum"] = maximumFactory
	m.KeywordFactories["multipleOf"] = multipleOfFactory
	m.KeywordFactories["$ref"] = refFactory

	// exclusiveMinimum/exclusiveMaximum are Draft 4 booleans read
	// directly by the minimum/maximum factories (spec.md §4.3); register
	// them as known-but-silent so they aren't misreported as extension
	// keywords by tooling that inspects KeywordFactories.
	m.KeywordFactories["exclusiveMinimum"] = noopFactory
	m.KeywordFactories["exclusiveMaximum"] = noopFactory
}

func noopFactory(any, *CompiledSchema) (Validator, error) {
	return nil, nil
}
