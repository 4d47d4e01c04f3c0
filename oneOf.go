package jsonschema

import (
	"strconv"
	"strings"
)

// oneOfValidator requires the instance to satisfy exactly one sub-schema
// (spec.md §4.3 oneOf). On zero passes it reports the union of every
// branch's own messages; on two or more passes, ambiguity itself is the
// failure, so it reports a single dedicated oneOf message instead.
type oneOfValidator struct {
	branches []*CompiledSchema
}

func oneOfFactory(rawValue any, s *CompiledSchema) (Validator, error) {
	items, ok := asArray(rawValue)
	if !ok {
		return nil, ErrInvalidKeywordValue
	}
	branches := make([]*CompiledSchema, 0, len(items))
	for i, item := range items {
		child, err := s.compileChild(item, "oneOf/"+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		branches = append(branches, child)
	}
	return &oneOfValidator{branches: branches}, nil
}

func (v *oneOfValidator) Validate(instance any, root any, at string) MessageSet {
	var failing []MessageSet
	var passingIdx []string
	for i, branch := range v.branches {
		r := branch.validate(instance, root, at)
		if r.Empty() {
			passingIdx = append(passingIdx, strconv.Itoa(i))
			continue
		}
		failing = append(failing, r)
	}

	result := newMessageSet()
	switch len(passingIdx) {
	case 1:
		return result
	case 0:
		for _, r := range failing {
			result.AddAll(r)
		}
	default:
		result.Add(newMessage(TypeOneOf, at, strconv.Itoa(len(passingIdx)), strings.Join(passingIdx, ", ")))
	}
	return result
}
