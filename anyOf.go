package jsonschema

import "strconv"

// anyOfValidator requires the instance to satisfy at least one sub-schema;
// when none pass, it reports the union of every branch's own messages
// (spec.md §4.3 anyOf: "otherwise the union of all sub-errors").
type anyOfValidator struct {
	branches []*CompiledSchema
}

func anyOfFactory(rawValue any, s *CompiledSchema) (Validator, error) {
	items, ok := asArray(rawValue)
	if !ok {
		return nil, ErrInvalidKeywordValue
	}
	branches := make([]*CompiledSchema, 0, len(items))
	for i, item := range items {
		child, err := s.compileChild(item, "anyOf/"+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		branches = append(branches, child)
	}
	return &anyOfValidator{branches: branches}, nil
}

func (v *anyOfValidator) Validate(instance any, root any, at string) MessageSet {
	branchResults := make([]MessageSet, len(v.branches))
	for i, branch := range v.branches {
		r := branch.validate(instance, root, at)
		if r.Empty() {
			return newMessageSet()
		}
		branchResults[i] = r
	}
	result := newMessageSet()
	for _, r := range branchResults {
		result.AddAll(r)
	}
	return result
}
