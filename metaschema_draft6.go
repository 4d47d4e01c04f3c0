package jsonschema

// Draft6ExperimentalURI identifies the extension-seam dialect demonstrated
// here: Draft 4's keyword set plus "const" and the "$id" identifier
// keyword (Draft 6 renamed Draft 4's "id" to "$id"). It is registered
// alongside the Draft 4 dialect by NewCompiler, selectable by a schema's
// own "$schema" value; Draft 4 remains the default for documents that
// omit "$schema" entirely.
const Draft6ExperimentalURI = "http://json-schema.org/draft-06/schema#"

// NewDraft6ExperimentalMetaSchema builds a second JsonMetaSchema to show
// that a caller can add a dialect (a newer draft, or an entirely custom
// keyword set) without touching the compiler or any existing keyword
// validator (spec.md §9: JsonMetaSchema is "an extensibility surface for
// newer drafts and custom keywords"). It reuses every Draft 4 keyword
// factory and format checker, then layers on "const" and renames the
// identifier keyword to "$id".
func NewDraft6ExperimentalMetaSchema() *JsonMetaSchema {
	m := &JsonMetaSchema{
		URI:              Draft6ExperimentalURI,
		IDKeyword:        "$id",
		KeywordFactories: make(map[string]KeywordFactory),
		FormatValidators: make(map[string]FormatValidator),
	}
	registerDraft4Keywords(m)
	registerStandardFormats(m)
	m.KeywordFactories["const"] = constFactory
	return m
}
