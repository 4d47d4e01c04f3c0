package jsonschema

import "math/big"

// multipleOfValidator requires a numeric instance to be an exact integer
// multiple of a positive divisor, computed over rationals rather than
// float64 (spec.md §4.3 multipleOf).
type multipleOfValidator struct {
	divisor *big.Rat
}

func multipleOfFactory(rawValue any, s *CompiledSchema) (Validator, error) {
	divisor, ok := toRat(rawValue)
	if !ok || divisor.Sign() <= 0 {
		return nil, ErrInvalidKeywordValue
	}
	return &multipleOfValidator{divisor: divisor}, nil
}

func (v *multipleOfValidator) Validate(instance any, root any, at string) MessageSet {
	result := newMessageSet()
	n, ok := toRat(instance)
	if !ok {
		return result
	}
	if !isMultipleOf(n, v.divisor) {
		result.Add(newMessage(TypeMultipleOf, at, formatRat(v.divisor)))
	}
	return result
}
