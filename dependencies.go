package jsonschema

// dependency is either a list of property names that must also be present
// (propertyDeps) or a schema the whole instance must satisfy (schema),
// matching Draft 4's unified "dependencies" keyword (spec.md §4.3
// dependencies).
type dependency struct {
	trigger      string
	propertyDeps []string
	schema       *CompiledSchema
}

type dependenciesValidator struct {
	deps []dependency
}

func dependenciesFactory(rawValue any, s *CompiledSchema) (Validator, error) {
	obj, ok := asObject(rawValue)
	if !ok {
		return nil, ErrInvalidKeywordValue
	}
	deps := make([]dependency, 0, obj.Len())
	for _, trigger := range obj.Keys() {
		raw, _ := obj.Get(trigger)
		switch t := raw.(type) {
		case []any:
			names := make([]string, 0, len(t))
			for _, item := range t {
				name, ok := item.(string)
				if !ok {
					return nil, ErrInvalidKeywordValue
				}
				names = append(names, name)
			}
			deps = append(deps, dependency{trigger: trigger, propertyDeps: names})
		default:
			child, err := s.compileChild(raw, "dependencies/"+trigger)
			if err != nil {
				return nil, err
			}
			deps = append(deps, dependency{trigger: trigger, schema: child})
		}
	}
	return &dependenciesValidator{deps: deps}, nil
}

func (v *dependenciesValidator) Validate(instance any, root any, at string) MessageSet {
	result := newMessageSet()
	obj, ok := asObject(instance)
	if !ok {
		return result
	}
	for _, dep := range v.deps {
		if _, present := obj.Get(dep.trigger); !present {
			continue
		}
		if dep.schema != nil {
			result.AddAll(dep.schema.validate(instance, root, at))
			continue
		}
		for _, name := range dep.propertyDeps {
			if _, present := obj.Get(name); !present {
				result.Add(newMessage(TypeDependencies, at, dep.trigger, name))
			}
		}
	}
	return result
}
