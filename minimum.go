package jsonschema

import "math/big"

// minimumValidator enforces a lower numeric bound, exclusive when the
// Draft 4 sibling "exclusiveMinimum" boolean is true (spec.md §4.3
// minimum/exclusiveMinimum — Draft 4's boolean-modifier form, not Draft
// 6+'s standalone numeric exclusiveMinimum).
type minimumValidator struct {
	bound     *big.Rat
	exclusive bool
}

func minimumFactory(rawValue any, s *CompiledSchema) (Validator, error) {
	bound, ok := toRat(rawValue)
	if !ok {
		return nil, ErrInvalidKeywordValue
	}
	exclusive := false
	if raw, ok := s.sibling("exclusiveMinimum"); ok {
		exclusive, _ = raw.(bool)
	}
	return &minimumValidator{bound: bound, exclusive: exclusive}, nil
}

func (v *minimumValidator) Validate(instance any, root any, at string) MessageSet {
	result := newMessageSet()
	n, ok := toRat(instance)
	if !ok {
		return result
	}
	cmp := n.Cmp(v.bound)
	if cmp < 0 || (v.exclusive && cmp == 0) {
		suffix := ""
		if v.exclusive {
			suffix = " (exclusive)"
		}
		result.Add(newMessage(TypeMinimum, at, formatRat(v.bound), suffix))
	}
	return result
}
