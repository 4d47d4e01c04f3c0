package jsonschema

import "regexp"

// additionalPropertiesValidator governs instance properties not covered
// by "properties" or "patternProperties" (spec.md §4.3
// additionalProperties): allowed=false rejects them outright, a schema
// applies to each of them, and allowed=true (or the keyword's absence)
// lets them through untouched.
type additionalPropertiesValidator struct {
	allowed       bool
	schema        *CompiledSchema
	declaredNames map[string]struct{}
	patterns      []*regexp.Regexp
}

func additionalPropertiesFactory(rawValue any, s *CompiledSchema) (Validator, error) {
	v := &additionalPropertiesValidator{declaredNames: declaredPropertyNames(s)}
	v.patterns = declaredPatterns(s)

	switch t := rawValue.(type) {
	case bool:
		v.allowed = t
		return v, nil
	default:
		child, err := s.compileChild(rawValue, "additionalProperties")
		if err != nil {
			return nil, err
		}
		v.schema = child
		return v, nil
	}
}

func declaredPropertyNames(s *CompiledSchema) map[string]struct{} {
	names := make(map[string]struct{})
	if raw, ok := s.sibling("properties"); ok {
		if obj, ok := asObject(raw); ok {
			for _, name := range obj.Keys() {
				names[name] = struct{}{}
			}
		}
	}
	return names
}

func declaredPatterns(s *CompiledSchema) []*regexp.Regexp {
	var patterns []*regexp.Regexp
	if raw, ok := s.sibling("patternProperties"); ok {
		if obj, ok := asObject(raw); ok {
			for _, pattern := range obj.Keys() {
				if re, err := regexp.Compile(pattern); err == nil {
					patterns = append(patterns, re)
				}
			}
		}
	}
	return patterns
}

func (v *additionalPropertiesValidator) isAdditional(name string) bool {
	if _, ok := v.declaredNames[name]; ok {
		return false
	}
	for _, re := range v.patterns {
		if re.MatchString(name) {
			return false
		}
	}
	return true
}

func (v *additionalPropertiesValidator) Validate(instance any, root any, at string) MessageSet {
	result := newMessageSet()
	obj, ok := asObject(instance)
	if !ok {
		return result
	}
	for _, name := range obj.Keys() {
		if !v.isAdditional(name) {
			continue
		}
		value, _ := obj.Get(name)
		if v.schema != nil {
			result.AddAll(v.schema.validate(value, root, atProperty(at, name)))
			continue
		}
		if !v.allowed {
			result.Add(newMessage(TypeAdditionalProperties, at, name))
		}
	}
	return result
}
