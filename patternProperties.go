package jsonschema

import "regexp"

type patternSchema struct {
	pattern string
	re      *regexp.Regexp
	schema  *CompiledSchema
}

// patternPropertiesValidator applies each pattern's sub-schema to every
// instance property whose name matches that pattern (spec.md §4.3
// patternProperties: unanchored match, a property may match more than one
// pattern and is checked against all of them).
type patternPropertiesValidator struct {
	patterns []patternSchema
}

func patternPropertiesFactory(rawValue any, s *CompiledSchema) (Validator, error) {
	obj, ok := asObject(rawValue)
	if !ok {
		return nil, ErrInvalidKeywordValue
	}
	patterns := make([]patternSchema, 0, obj.Len())
	for _, pattern := range obj.Keys() {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, err
		}
		raw, _ := obj.Get(pattern)
		child, err := s.compileChild(raw, "patternProperties/"+pattern)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, patternSchema{pattern: pattern, re: re, schema: child})
	}
	return &patternPropertiesValidator{patterns: patterns}, nil
}

func (v *patternPropertiesValidator) Validate(instance any, root any, at string) MessageSet {
	result := newMessageSet()
	obj, ok := asObject(instance)
	if !ok {
		return result
	}
	for _, name := range obj.Keys() {
		value, _ := obj.Get(name)
		for _, p := range v.patterns {
			if p.re.MatchString(name) {
				result.AddAll(p.schema.validate(value, root, atProperty(at, name)))
			}
		}
	}
	return result
}

// matchesAnyPattern reports whether name matches at least one compiled
// pattern. additionalProperties does not call it; it compiles the sibling
// "patternProperties" keys itself (declaredPatterns).
func (v *patternPropertiesValidator) matchesAnyPattern(name string) bool {
	for _, p := range v.patterns {
		if p.re.MatchString(name) {
			return true
		}
	}
	return false
}
