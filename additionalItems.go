package jsonschema

import "strconv"

// additionalItemsValidator governs array positions beyond a tuple-typed
// "items" (spec.md §4.3 additionalItems). It has no effect when "items"
// is absent or is a single schema rather than a tuple.
type additionalItemsValidator struct {
	allowed  bool
	schema   *CompiledSchema
	tupleLen int
}

func additionalItemsFactory(rawValue any, s *CompiledSchema) (Validator, error) {
	tupleLen := 0
	if raw, ok := s.sibling("items"); ok {
		if tuple, ok := asArray(raw); ok {
			tupleLen = len(tuple)
		}
	}
	v := &additionalItemsValidator{tupleLen: tupleLen}
	switch t := rawValue.(type) {
	case bool:
		v.allowed = t
		return v, nil
	default:
		child, err := s.compileChild(rawValue, "additionalItems")
		if err != nil {
			return nil, err
		}
		v.schema = child
		return v, nil
	}
}

func (v *additionalItemsValidator) Validate(instance any, root any, at string) MessageSet {
	result := newMessageSet()
	arr, ok := asArray(instance)
	if !ok || v.tupleLen == 0 {
		return result
	}
	for i := v.tupleLen; i < len(arr); i++ {
		if v.schema != nil {
			result.AddAll(v.schema.validate(arr[i], root, atIndex(at, i)))
			continue
		}
		if !v.allowed {
			result.Add(newMessage(TypeAdditionalItems, at, strconv.Itoa(i)))
		}
	}
	return result
}
