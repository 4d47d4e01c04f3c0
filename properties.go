package jsonschema

// propertiesValidator compiles one sub-schema per named property and
// applies each to the matching instance property, if present (spec.md
// §4.3 properties). Property names not mentioned here are untouched by
// this validator; additionalProperties/patternProperties handle those.
type propertiesValidator struct {
	names   []string
	schemas map[string]*CompiledSchema
}

func propertiesFactory(rawValue any, s *CompiledSchema) (Validator, error) {
	obj, ok := asObject(rawValue)
	if !ok {
		return nil, ErrInvalidKeywordValue
	}
	schemas := make(map[string]*CompiledSchema, obj.Len())
	for _, name := range obj.Keys() {
		raw, _ := obj.Get(name)
		child, err := s.compileChild(raw, "properties/"+name)
		if err != nil {
			return nil, err
		}
		schemas[name] = child
	}
	return &propertiesValidator{names: obj.Keys(), schemas: schemas}, nil
}

func (v *propertiesValidator) Validate(instance any, root any, at string) MessageSet {
	result := newMessageSet()
	obj, ok := asObject(instance)
	if !ok {
		return result
	}
	for _, name := range v.names {
		value, present := obj.Get(name)
		if !present {
			continue
		}
		result.AddAll(v.schemas[name].validate(value, root, atProperty(at, name)))
	}
	return result
}
