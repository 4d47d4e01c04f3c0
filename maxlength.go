package jsonschema

import "strconv"

type maxLengthValidator struct {
	max int
}

func maxLengthFactory(rawValue any, s *CompiledSchema) (Validator, error) {
	max, ok := asBound(rawValue)
	if !ok {
		return nil, ErrInvalidKeywordValue
	}
	return &maxLengthValidator{max: max}, nil
}

func (v *maxLengthValidator) Validate(instance any, root any, at string) MessageSet {
	result := newMessageSet()
	s, ok := instance.(string)
	if !ok {
		return result
	}
	if utf8Len(s) > v.max {
		result.Add(newMessage(TypeMaxLength, at, strconv.Itoa(v.max)))
	}
	return result
}
