package jsonschema

import (
	"math/big"
	"strings"
)

// formatNumber renders a numeric node for a ValidationMessage argument
// (spec.md §3 arguments are always strings). Integral values print without
// a decimal point; everything else prints as a trimmed decimal, mirroring
// how a Draft 4 schema author wrote the bound in the first place.
func formatNumber(v any) string {
	r, ok := toRat(v)
	if !ok {
		return ""
	}
	return formatRat(r)
}

func formatRat(r *big.Rat) string {
	if r == nil {
		return "null"
	}
	if r.IsInt() {
		return r.Num().String()
	}
	dec := r.FloatString(12)
	dec = strings.TrimRight(dec, "0")
	dec = strings.TrimRight(dec, ".")
	if dec == "" || dec == "-" {
		return "0"
	}
	return dec
}

// asBound converts a keyword's numeric value (minProperties, maxItems,
// minLength, ...) into a non-negative int bound.
func asBound(v any) (int, bool) {
	r, ok := toRat(v)
	if !ok || !r.IsInt() || r.Sign() < 0 {
		return 0, false
	}
	return int(r.Num().Int64()), true
}

// isMultipleOf reports whether value is an integer multiple of divisor,
// computed exactly over rationals (spec.md §4.3 multipleOf: "computed
// exactly, not via floating point division", avoiding e.g. 0.1 not being a
// clean multiple of itself under float64 arithmetic).
func isMultipleOf(value, divisor *big.Rat) bool {
	if divisor.Sign() == 0 {
		return false
	}
	quotient := new(big.Rat).Quo(value, divisor)
	return quotient.IsInt()
}
