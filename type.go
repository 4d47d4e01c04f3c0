package jsonschema

import "strings"

// typeValidator checks an instance's JSON type against one or more
// allowed Draft 4 type names (spec.md §4.3 type): "integer" is a stricter
// subset of "number", so a schema declaring "number" also accepts
// integral values, but one declaring only "integer" rejects fractional
// numbers.
type typeValidator struct {
	allowed []string
}

func typeFactory(rawValue any, s *CompiledSchema) (Validator, error) {
	var allowed []string
	switch v := rawValue.(type) {
	case string:
		allowed = []string{v}
	case []any:
		for _, item := range v {
			str, ok := item.(string)
			if !ok {
				return nil, ErrInvalidKeywordValue
			}
			allowed = append(allowed, str)
		}
	default:
		return nil, ErrInvalidKeywordValue
	}
	return &typeValidator{allowed: allowed}, nil
}

func (v *typeValidator) Validate(instance any, root any, at string) MessageSet {
	result := newMessageSet()
	actual := kind(instance)
	for _, t := range v.allowed {
		if t == actual {
			return result
		}
		if t == "number" && actual == "integer" {
			return result
		}
	}
	result.Add(newMessage(TypeType, at, strings.Join(v.allowed, ", ")))
	return result
}
