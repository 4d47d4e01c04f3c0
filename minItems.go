package jsonschema

import "strconv"

type minItemsValidator struct {
	min int
}

func minItemsFactory(rawValue any, s *CompiledSchema) (Validator, error) {
	min, ok := asBound(rawValue)
	if !ok {
		return nil, ErrInvalidKeywordValue
	}
	return &minItemsValidator{min: min}, nil
}

func (v *minItemsValidator) Validate(instance any, root any, at string) MessageSet {
	result := newMessageSet()
	arr, ok := asArray(instance)
	if !ok {
		return result
	}
	if len(arr) < v.min {
		result.Add(newMessage(TypeMinItems, at, strconv.Itoa(v.min)))
	}
	return result
}
