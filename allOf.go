package jsonschema

import "strconv"

// allOfValidator requires the instance to satisfy every sub-schema,
// reporting the union of the failing branches' own messages rather than a
// single summary (spec.md §4.3 allOf: "reports the union of sub-errors").
type allOfValidator struct {
	branches []*CompiledSchema
}

func allOfFactory(rawValue any, s *CompiledSchema) (Validator, error) {
	items, ok := asArray(rawValue)
	if !ok {
		return nil, ErrInvalidKeywordValue
	}
	branches := make([]*CompiledSchema, 0, len(items))
	for i, item := range items {
		child, err := s.compileChild(item, "allOf/"+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		branches = append(branches, child)
	}
	return &allOfValidator{branches: branches}, nil
}

func (v *allOfValidator) Validate(instance any, root any, at string) MessageSet {
	result := newMessageSet()
	for _, branch := range v.branches {
		result.AddAll(branch.validate(instance, root, at))
	}
	return result
}
