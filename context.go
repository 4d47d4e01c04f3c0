package jsonschema

// ValidationContext is the per-compilation state threaded into every
// sub-schema built during the compilation of one root schema (spec.md
// §3). It pins the active meta-schema (so nested compiles use the same
// keyword registry and format registry as their ancestor) and carries a
// back-reference to the factory for nested $ref resolution.
type ValidationContext struct {
	MetaSchema *JsonMetaSchema
	Factory    *Compiler

	// docURL is the absolute URL of the document currently being
	// compiled (possibly "" for an anonymous in-memory schema); it's the
	// namespace $ref pointers within this document are resolved against.
	docURL string

	session *compileSession
}
