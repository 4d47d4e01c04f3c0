package jsonschema

import "math/big"

// maximumValidator enforces an upper numeric bound, exclusive when the
// Draft 4 sibling "exclusiveMaximum" boolean is true.
type maximumValidator struct {
	bound     *big.Rat
	exclusive bool
}

func maximumFactory(rawValue any, s *CompiledSchema) (Validator, error) {
	bound, ok := toRat(rawValue)
	if !ok {
		return nil, ErrInvalidKeywordValue
	}
	exclusive := false
	if raw, ok := s.sibling("exclusiveMaximum"); ok {
		exclusive, _ = raw.(bool)
	}
	return &maximumValidator{bound: bound, exclusive: exclusive}, nil
}

func (v *maximumValidator) Validate(instance any, root any, at string) MessageSet {
	result := newMessageSet()
	n, ok := toRat(instance)
	if !ok {
		return result
	}
	cmp := n.Cmp(v.bound)
	if cmp > 0 || (v.exclusive && cmp == 0) {
		suffix := ""
		if v.exclusive {
			suffix = " (exclusive)"
		}
		result.Add(newMessage(TypeMaximum, at, formatRat(v.bound), suffix))
	}
	return result
}
