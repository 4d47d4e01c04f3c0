package jsonschema

import (
	"fmt"
	"strconv"
)

// keywordValidator pairs a keyword with the Validator compiled for it,
// preserving the keyword's position in the schema document (spec.md §4.2:
// "validators are stored ... in the order the keywords appear in the
// document", which in turn is the order ValidationMessages are produced).
type keywordValidator struct {
	Keyword string
	V       Validator
}

// CompiledSchema is a compiled schema node (spec.md §3). It is built once
// by a Compiler and is immutable afterward: Validate never mutates it, so
// one CompiledSchema may be shared across goroutines without locking
// (spec.md §5).
type CompiledSchema struct {
	// SchemaNode is this node's raw, decoded form — always an *Object
	// under Draft 4, which has no boolean-schema shorthand.
	SchemaNode *Object

	// SchemaPath is a JSON-Pointer-shaped path from the compiled
	// document's root to this node, used both for $ref target lookup
	// and for diagnostics.
	SchemaPath string

	Parent  *CompiledSchema
	Context *ValidationContext

	// uri is this node's own absolute identity, set only when the node
	// itself carries an "id" keyword; baseURI is the URI
	// relative "id"/$ref values on this subtree resolve against.
	uri     string
	baseURI string

	validators []keywordValidator
}

// findAncestor walks Parent until it reaches the compiled document's root
// (the node with no Parent).
func (s *CompiledSchema) findAncestor() *CompiledSchema {
	cur := s
	for cur.Parent != nil {
		cur = cur.Parent
	}
	return cur
}

// sibling returns the raw value of another keyword on this same schema
// node, used by keywords whose meaning depends on one another (minimum
// reading its sibling exclusiveMinimum, maximum reading exclusiveMaximum).
func (s *CompiledSchema) sibling(key string) (any, bool) {
	return s.SchemaNode.Get(key)
}

// compileNode compiles a raw schema node into a CompiledSchema, threading
// docURL/baseURI/SchemaPath bookkeeping and registering the result in the
// session so that $ref targets pointing at it (including forward and
// cyclic references) can find it later (spec.md §4.2, §6).
func compileNode(raw any, parent *CompiledSchema, ctx *ValidationContext, path string) (*CompiledSchema, error) {
	obj, ok := asObject(raw)
	if !ok {
		return nil, fmt.Errorf("%w: at %s", ErrInvalidSchemaType, path)
	}

	s := &CompiledSchema{
		SchemaNode: obj,
		SchemaPath: path,
		Parent:     parent,
		Context:    ctx,
		baseURI:    ctx.docURL,
	}
	if parent != nil {
		s.baseURI = parent.baseURI
	}

	idKey := ctx.MetaSchema.IDKeyword
	if rawID, ok := obj.Get(idKey); ok {
		if idStr, ok := rawID.(string); ok && idStr != "" {
			abs, err := resolveURIReference(s.baseURI, idStr)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfiguration, idStr, err)
			}
			s.uri = abs
			s.baseURI = stripFragment(abs)
		}
	}

	ctx.session.registerNode(s)
	if s.uri != "" {
		ctx.session.registerByURI(s.uri, s)
	}

	for _, key := range obj.Keys() {
		factory, ok := ctx.MetaSchema.KeywordFactories[key]
		if !ok {
			continue
		}
		rawValue, _ := obj.Get(key)
		v, err := factory(rawValue, s)
		if err != nil {
			return nil, fmt.Errorf("%w: keyword %q at %s: %w", ErrInvalidKeywordValue, key, path, err)
		}
		if v == nil {
			continue
		}
		s.validators = append(s.validators, keywordValidator{Keyword: key, V: v})
	}

	return s, nil
}

// compileChild compiles a nested sub-schema (e.g. "properties.foo",
// "items", an allOf entry) sharing this node's context and building the
// child's SchemaPath from this node's own path plus segment.
func (s *CompiledSchema) compileChild(raw any, segment string) (*CompiledSchema, error) {
	return compileNode(raw, s, s.Context, joinPath(s.SchemaPath, segment))
}

func joinPath(base, segment string) string {
	if base == "" {
		return "#/" + segment
	}
	return base + "/" + segment
}

// rootPath is the instance path of the outermost value (spec.md §3, §8:
// "path = $"), distinct from SchemaPath's "#/..." JSON Pointer form used
// for $ref lookups.
const rootPath = "$"

// atProperty extends an instance path with a named object property, per
// spec.md's glossary example path "$.items[3].name".
func atProperty(at, name string) string {
	return at + "." + name
}

// atIndex extends an instance path with an array index.
func atIndex(at string, index int) string {
	return at + "[" + strconv.Itoa(index) + "]"
}

// Validate runs every compiled keyword validator against instance in
// document order and returns the accumulated, de-duplicated messages
// (spec.md §3, §5). Validate performs no mutation and is safe to call
// concurrently from many goroutines on the same CompiledSchema.
func (s *CompiledSchema) Validate(instance any) MessageSet {
	return s.validate(instance, instance, rootPath)
}

// validate is the recursive worker; root is threaded through for keywords
// (none in Draft 4, but kept for $ref consistency) that may need the
// top-level instance rather than the current one, and at is the instance's
// own path for message rendering.
func (s *CompiledSchema) validate(instance any, root any, at string) MessageSet {
	result := newMessageSet()
	for _, kv := range s.validators {
		result.AddAll(kv.V.Validate(instance, root, at))
	}
	return result
}
