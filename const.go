package jsonschema

// constValidator requires the instance to deep-equal a single fixed value
// (the Draft 6+ "const" keyword, wired by the draft6Experimental dialect
// in metaschema_draft6.go as an extension-seam demonstration — Draft 4
// itself has no "const" keyword).
type constValidator struct {
	value any
}

func constFactory(rawValue any, s *CompiledSchema) (Validator, error) {
	return &constValidator{value: rawValue}, nil
}

func (v *constValidator) Validate(instance any, root any, at string) MessageSet {
	result := newMessageSet()
	if !deepEqual(instance, v.value) {
		result.Add(newMessage(TypeConst, at))
	}
	return result
}
