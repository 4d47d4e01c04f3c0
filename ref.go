package jsonschema

// refValidator defers its target lookup to the compile session's pending
// queue (spec.md §6: "$ref never recurses at compile time"), so that a
// forward reference within the same document, or a schema cycle, can be
// compiled safely. target is filled in by compileSession.resolvePending
// once the whole document (and anything it points outside of) has been
// walked.
type refValidator struct {
	source *CompiledSchema
	ref    string
	target *CompiledSchema
}

func refFactory(rawValue any, s *CompiledSchema) (Validator, error) {
	ref, ok := rawValue.(string)
	if !ok {
		return nil, ErrInvalidKeywordValue
	}
	rv := &refValidator{source: s, ref: ref}
	s.Context.session.addPending(rv)
	return rv, nil
}

func (v *refValidator) Validate(instance any, root any, at string) MessageSet {
	if v.target == nil {
		return newMessageSet()
	}
	return v.target.validate(instance, root, at)
}
