package jsonschema

import "strconv"

type maxPropertiesValidator struct {
	max int
}

func maxPropertiesFactory(rawValue any, s *CompiledSchema) (Validator, error) {
	max, ok := asBound(rawValue)
	if !ok {
		return nil, ErrInvalidKeywordValue
	}
	return &maxPropertiesValidator{max: max}, nil
}

func (v *maxPropertiesValidator) Validate(instance any, root any, at string) MessageSet {
	result := newMessageSet()
	obj, ok := asObject(instance)
	if !ok {
		return result
	}
	if obj.Len() > v.max {
		result.Add(newMessage(TypeMaxProperties, at, strconv.Itoa(v.max)))
	}
	return result
}
