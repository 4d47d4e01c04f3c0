package jsonschema

import "strconv"

type minPropertiesValidator struct {
	min int
}

func minPropertiesFactory(rawValue any, s *CompiledSchema) (Validator, error) {
	min, ok := asBound(rawValue)
	if !ok {
		return nil, ErrInvalidKeywordValue
	}
	return &minPropertiesValidator{min: min}, nil
}

func (v *minPropertiesValidator) Validate(instance any, root any, at string) MessageSet {
	result := newMessageSet()
	obj, ok := asObject(instance)
	if !ok {
		return result
	}
	if obj.Len() < v.min {
		result.Add(newMessage(TypeMinProperties, at, strconv.Itoa(v.min)))
	}
	return result
}
