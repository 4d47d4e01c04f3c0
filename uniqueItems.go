package jsonschema

import "strconv"

// uniqueItemsValidator enforces pairwise deep-inequality across an array's
// items (spec.md §4.3 uniqueItems), reporting the first colliding pair.
type uniqueItemsValidator struct {
	enabled bool
}

func uniqueItemsFactory(rawValue any, s *CompiledSchema) (Validator, error) {
	enabled, ok := rawValue.(bool)
	if !ok {
		return nil, ErrInvalidKeywordValue
	}
	if !enabled {
		return nil, nil
	}
	return &uniqueItemsValidator{enabled: true}, nil
}

func (v *uniqueItemsValidator) Validate(instance any, root any, at string) MessageSet {
	result := newMessageSet()
	arr, ok := asArray(instance)
	if !ok {
		return result
	}
	for i := 0; i < len(arr); i++ {
		for j := i + 1; j < len(arr); j++ {
			if deepEqual(arr[i], arr[j]) {
				result.Add(newMessage(TypeUniqueItems, at, strconv.Itoa(i), strconv.Itoa(j)))
				return result
			}
		}
	}
	return result
}
