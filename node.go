package jsonschema

import (
	"bytes"
	"math/big"
	"sort"
	"unicode/utf8"

	json "github.com/goccy/go-json"
)

// Object is the "object" variant of the JSON node model (spec: JsonNode).
// Plain Go maps don't preserve insertion order, but compilation needs the
// source's key order as the keyword evaluation order (spec.md §3, §5), so
// schema documents are decoded into Object rather than map[string]any.
type Object struct {
	keys   []string
	values map[string]any
}

func newObject() *Object {
	return &Object{values: make(map[string]any)}
}

// Set appends key (if new) preserving first-seen order, matching how a
// streaming JSON decoder sees duplicate keys: the last value wins but the
// position is the first occurrence's, same as encoding/json's own object
// decoding behavior.
func (o *Object) Set(key string, value any) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value for key and whether it was present.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the object's keys in source order.
func (o *Object) Keys() []string {
	return o.keys
}

// Len returns the number of properties.
func (o *Object) Len() int {
	return len(o.keys)
}

// objectFromMap wraps a plain map[string]any (e.g. a schema built
// programmatically by a caller rather than decoded from bytes) as an
// Object. Key order is not meaningful for a Go map, so keys are sorted for
// determinism rather than left to random map iteration.
func objectFromMap(m map[string]any) *Object {
	o := newObject()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		o.Set(k, m[k])
	}
	return o
}

// DecodeInstance parses raw JSON bytes into the node representation
// Validate expects: nil, bool, json.Number, string, []any, or *Object.
func DecodeInstance(data []byte) (any, error) {
	return decodeNode(data)
}

// decodeNode parses raw JSON bytes into the node representation described
// by spec.md §3: nil, bool, json.Number, string, []any, or *Object. It uses
// goccy/go-json's streaming token decoder (rather than a plain Unmarshal
// into map[string]any) specifically to preserve object key order.
func decodeNode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := newObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, _ := keyTok.(string)
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, val)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return obj, nil
		case '[':
			arr := []any{}
			for dec.More() {
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, val)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return arr, nil
		}
		return nil, ErrSchemaLoad
	default:
		// nil, bool, string, json.Number all pass through as-is.
		return tok, nil
	}
}

// kind reports the Draft 4 JSON-Schema type name for a node value.
func kind(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number:
		if isIntegerNumber(t) {
			return "integer"
		}
		return "number"
	case float64:
		if float64(int64(t)) == t {
			return "integer"
		}
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case *Object:
		return "object"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}

// isIntegerNumber reports whether a json.Number's mathematical value has
// no fractional part, using math/big for exactness (spec.md §4.3 "type":
// integer matches numbers whose mathematical value is an integer).
func isIntegerNumber(n json.Number) bool {
	if _, ok := new(big.Int).SetString(string(n), 10); ok {
		return true
	}
	r, ok := new(big.Rat).SetString(string(n))
	if !ok {
		return false
	}
	return r.IsInt()
}

// asObject returns a key-order-preserving view over an object-shaped
// instance or schema node, accepting both the decoder's own *Object and a
// plain map[string]any (for instances/schemas constructed programmatically
// by a caller, where order is not meaningful).
func asObject(v any) (*Object, bool) {
	switch t := v.(type) {
	case *Object:
		return t, true
	case map[string]any:
		return objectFromMap(t), true
	default:
		return nil, false
	}
}

func asArray(v any) ([]any, bool) {
	a, ok := v.([]any)
	return a, ok
}

// utf8Len counts a string's length in Unicode code points, per spec.md §4.3
// minLength/maxLength ("counted in Unicode code points, not UTF-16 units,
// not bytes").
func utf8Len(s string) int {
	return utf8.RuneCountInString(s)
}

// deepEqual implements spec.md's "Deep equality": recursive structural
// equality with numbers compared by mathematical value and object key
// order immaterial.
func deepEqual(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case json.Number, float64:
		return numericEqual(a, b)
	case []any:
		bv, ok := asArray(b)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !deepEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *Object, map[string]any:
		ao, _ := asObject(a)
		bo, ok := asObject(b)
		if !ok || ao.Len() != bo.Len() {
			return false
		}
		for _, k := range ao.Keys() {
			av, _ := ao.Get(k)
			bv, ok := bo.Get(k)
			if !ok || !deepEqual(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func isNumeric(v any) bool {
	switch v.(type) {
	case json.Number, float64:
		return true
	default:
		return false
	}
}

func numericEqual(a, b any) bool {
	if !isNumeric(a) || !isNumeric(b) {
		return false
	}
	ra, ok1 := toRat(a)
	rb, ok2 := toRat(b)
	if !ok1 || !ok2 {
		return false
	}
	return ra.Cmp(rb) == 0
}

// formatNode renders an instance value compactly for use as a
// ValidationMessage argument (e.g. the "enum" mismatch message embeds the
// rejected instance).
func formatNode(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "?"
	}
	return string(data)
}

func toRat(v any) (*big.Rat, bool) {
	switch t := v.(type) {
	case json.Number:
		r, ok := new(big.Rat).SetString(string(t))
		return r, ok
	case float64:
		return new(big.Rat).SetFloat64(t), true
	default:
		return nil, false
	}
}
