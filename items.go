package jsonschema

import "strconv"

// itemsValidator applies either one schema to every array item, or a
// tuple of schemas positionally (spec.md §4.3 items: "a single schema or
// an array of schemas", Draft 4's tuple-typing form). additionalItems
// governs positions beyond a tuple's length, read as a sibling.
type itemsValidator struct {
	single *CompiledSchema
	tuple  []*CompiledSchema
}

func itemsFactory(rawValue any, s *CompiledSchema) (Validator, error) {
	if tuple, ok := asArray(rawValue); ok {
		schemas := make([]*CompiledSchema, 0, len(tuple))
		for i, item := range tuple {
			child, err := s.compileChild(item, "items/"+strconv.Itoa(i))
			if err != nil {
				return nil, err
			}
			schemas = append(schemas, child)
		}
		return &itemsValidator{tuple: schemas}, nil
	}
	child, err := s.compileChild(rawValue, "items")
	if err != nil {
		return nil, err
	}
	return &itemsValidator{single: child}, nil
}

func (v *itemsValidator) Validate(instance any, root any, at string) MessageSet {
	result := newMessageSet()
	arr, ok := asArray(instance)
	if !ok {
		return result
	}
	if v.single != nil {
		for i, item := range arr {
			result.AddAll(v.single.validate(item, root, atIndex(at, i)))
		}
		return result
	}
	for i, item := range arr {
		if i >= len(v.tuple) {
			break
		}
		result.AddAll(v.tuple[i].validate(item, root, atIndex(at, i)))
	}
	return result
}

// tupleLen reports the tuple width, or 0 for a single-schema items.
// additionalItems does not call it; it reads the sibling "items" value
// itself.
func (v *itemsValidator) tupleLen() int {
	return len(v.tuple)
}
