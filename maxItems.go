package jsonschema

import "strconv"

type maxItemsValidator struct {
	max int
}

func maxItemsFactory(rawValue any, s *CompiledSchema) (Validator, error) {
	max, ok := asBound(rawValue)
	if !ok {
		return nil, ErrInvalidKeywordValue
	}
	return &maxItemsValidator{max: max}, nil
}

func (v *maxItemsValidator) Validate(instance any, root any, at string) MessageSet {
	result := newMessageSet()
	arr, ok := asArray(instance)
	if !ok {
		return result
	}
	if len(arr) > v.max {
		result.Add(newMessage(TypeMaxItems, at, strconv.Itoa(v.max)))
	}
	return result
}
