package jsonschema

// requiredValidator rejects object instances missing any of a fixed list
// of property names (spec.md §4.3 required).
type requiredValidator struct {
	names []string
}

func requiredFactory(rawValue any, s *CompiledSchema) (Validator, error) {
	items, ok := asArray(rawValue)
	if !ok {
		return nil, ErrInvalidKeywordValue
	}
	names := make([]string, 0, len(items))
	for _, item := range items {
		name, ok := item.(string)
		if !ok {
			return nil, ErrInvalidKeywordValue
		}
		names = append(names, name)
	}
	return &requiredValidator{names: names}, nil
}

func (v *requiredValidator) Validate(instance any, root any, at string) MessageSet {
	result := newMessageSet()
	obj, ok := asObject(instance)
	if !ok {
		return result
	}
	for _, name := range v.names {
		if _, present := obj.Get(name); !present {
			result.Add(newMessage(TypeRequired, at, name))
		}
	}
	return result
}
