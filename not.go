package jsonschema

// notValidator requires the instance to fail a sub-schema (spec.md §4.3
// not).
type notValidator struct {
	branch *CompiledSchema
}

func notFactory(rawValue any, s *CompiledSchema) (Validator, error) {
	child, err := s.compileChild(rawValue, "not")
	if err != nil {
		return nil, err
	}
	return &notValidator{branch: child}, nil
}

func (v *notValidator) Validate(instance any, root any, at string) MessageSet {
	result := newMessageSet()
	if v.branch.validate(instance, root, at).Empty() {
		result.Add(newMessage(TypeNot, at))
	}
	return result
}
