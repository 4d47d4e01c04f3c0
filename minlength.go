package jsonschema

import "strconv"

type minLengthValidator struct {
	min int
}

func minLengthFactory(rawValue any, s *CompiledSchema) (Validator, error) {
	min, ok := asBound(rawValue)
	if !ok {
		return nil, ErrInvalidKeywordValue
	}
	return &minLengthValidator{min: min}, nil
}

func (v *minLengthValidator) Validate(instance any, root any, at string) MessageSet {
	result := newMessageSet()
	s, ok := instance.(string)
	if !ok {
		return result
	}
	if utf8Len(s) < v.min {
		result.Add(newMessage(TypeMinLength, at, strconv.Itoa(v.min)))
	}
	return result
}
