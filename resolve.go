package jsonschema

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonpointer"
)

// resolveURIReference resolves ref against base per RFC 3986 (spec.md §6,
// Open Question: "use net/url's RFC 3986 resolution rather than ad hoc
// string surgery"). An empty base is treated as ref already being
// self-contained (an in-memory schema with no document identity).
func resolveURIReference(base, ref string) (string, error) {
	if base == "" {
		u, err := url.Parse(ref)
		if err != nil {
			return "", fmt.Errorf("%w: %q: %w", ErrInvalidConfiguration, ref, err)
		}
		return u.String(), nil
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("%w: base %q: %w", ErrInvalidConfiguration, base, err)
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrInvalidConfiguration, ref, err)
	}
	return baseURL.ResolveReference(refURL).String(), nil
}

// stripFragment returns uri with any "#..." fragment removed, the form
// used as a document's identity key in the compile session registry.
func stripFragment(uri string) string {
	if i := strings.IndexByte(uri, '#'); i >= 0 {
		return uri[:i]
	}
	return uri
}

// splitRef splits a $ref value into its document part and fragment
// (without the leading '#'); splitRef("a.json#/b") -> ("a.json", "/b").
func splitRef(ref string) (doc string, fragment string) {
	if i := strings.IndexByte(ref, '#'); i >= 0 {
		return ref[:i], ref[i+1:]
	}
	return ref, ""
}

// navigatePointer walks a JSON Pointer (RFC 6901, via the jsonpointer
// package's ~0/~1-aware tokenizer) through a decoded node tree, following
// the same "properties"/"items"/"definitions"/array-index structural rules
// a schema author relies on when writing a $ref (spec.md §4.3 $ref).
func navigatePointer(root any, pointer string) (any, error) {
	if pointer == "" || pointer == "/" {
		return root, nil
	}
	tokens := jsonpointer.Parse(pointer)
	cur := root
	for _, tok := range tokens {
		switch node := cur.(type) {
		case *Object:
			v, ok := node.Get(tok)
			if !ok {
				return nil, fmt.Errorf("%w: segment %q", ErrInvalidJSONPointer, tok)
			}
			cur = v
		case []any:
			idx, err := strconv.Atoi(tok)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, fmt.Errorf("%w: index %q", ErrInvalidJSONPointer, tok)
			}
			cur = node[idx]
		default:
			return nil, fmt.Errorf("%w: cannot descend into %q", ErrInvalidJSONPointer, tok)
		}
	}
	return cur, nil
}
