// Package jsonschema compiles JSON Schema Draft 4 documents into
// CompiledSchema values and validates JSON instances against them,
// supporting same- and cross-document $ref resolution (including cyclic
// schemas), a pluggable meta-schema/format registry, and structured,
// de-duplicated ValidationMessage output.
//
// Credit to https://github.com/santhosh-tekuri/jsonschema for format validators.
package jsonschema
