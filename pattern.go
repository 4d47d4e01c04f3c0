package jsonschema

import "regexp"

// patternValidator requires a string instance to contain a match (the
// pattern is not implicitly anchored) for a compiled regular expression
// (spec.md §4.3 pattern).
type patternValidator struct {
	pattern string
	re      *regexp.Regexp
}

func patternFactory(rawValue any, s *CompiledSchema) (Validator, error) {
	pattern, ok := rawValue.(string)
	if !ok {
		return nil, ErrInvalidKeywordValue
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &patternValidator{pattern: pattern, re: re}, nil
}

func (v *patternValidator) Validate(instance any, root any, at string) MessageSet {
	result := newMessageSet()
	s, ok := instance.(string)
	if !ok {
		return result
	}
	if !v.re.MatchString(s) {
		result.Add(newMessage(TypePattern, at, v.pattern))
	}
	return result
}
