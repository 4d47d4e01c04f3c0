package jsonschema

// formatValidator applies one named format checker to string instances
// (spec.md §4.3 format). Non-string instances and unrecognized format
// names both pass, the latter per format's "never raises on unknown
// formats" rule.
type formatValidator struct {
	name  string
	check FormatValidator
}

func formatFactory(rawValue any, s *CompiledSchema) (Validator, error) {
	name, ok := rawValue.(string)
	if !ok {
		return nil, ErrInvalidKeywordValue
	}
	check, ok := s.Context.MetaSchema.FormatValidators[name]
	if !ok {
		return nil, nil
	}
	return &formatValidator{name: name, check: check}, nil
}

func (v *formatValidator) Validate(instance any, root any, at string) MessageSet {
	result := newMessageSet()
	if _, ok := instance.(string); !ok {
		return result
	}
	if !v.check(instance) {
		result.Add(newMessage(TypeFormat, at, v.name))
	}
	return result
}
