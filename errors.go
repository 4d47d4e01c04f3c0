package jsonschema

import "errors"

// === Configuration Errors ===
var (
	// ErrInvalidConfiguration is returned when a Builder is built with an
	// inconsistent configuration (empty default meta-schema URI, empty
	// meta-schema set, or a default URI that isn't registered).
	ErrInvalidConfiguration = errors.New("invalid factory configuration")
)

// === Meta-Schema Selection Errors ===
var (
	// ErrUnknownMetaSchema is returned when a schema's $schema URI (or the
	// factory's configured default) does not match any registered
	// JsonMetaSchema.
	ErrUnknownMetaSchema = errors.New("unknown meta-schema")
)

// === Schema Loading Errors ===
var (
	// ErrSchemaLoad is returned when schema bytes cannot be parsed into a
	// JSON node, or a remote/classpath fetch fails.
	ErrSchemaLoad = errors.New("schema load failed")

	// ErrNoLoaderRegistered is returned when no loader is registered for
	// the URL's scheme.
	ErrNoLoaderRegistered = errors.New("no loader registered for scheme")

	// ErrInvalidStatusCode is returned when a remote fetch returns a
	// non-200 HTTP status.
	ErrInvalidStatusCode = errors.New("invalid http status code")
)

// === Reference Resolution Errors ===
var (
	// ErrUnresolvableReference is returned when a $ref target cannot be
	// located, either because the pointer doesn't exist in the target
	// document or the target document itself could not be loaded.
	ErrUnresolvableReference = errors.New("unresolvable reference")

	// ErrInvalidJSONPointer is produced by navigatePointer when a $ref
	// fragment names a segment or index that does not exist in the target
	// document (or descends into a non-container). resolveRef reports it
	// wrapped as ErrUnresolvableReference, carrying only its text.
	ErrInvalidJSONPointer = errors.New("invalid json pointer")
)

// === Compilation Errors ===
var (
	// ErrInvalidSchemaType is returned when a schema node (or sub-schema)
	// is not a JSON object where one is required.
	ErrInvalidSchemaType = errors.New("schema node must be a json object")

	// ErrInvalidKeywordValue is returned when a keyword's value has the
	// wrong JSON kind for that keyword (e.g. "required" not an array).
	ErrInvalidKeywordValue = errors.New("invalid keyword value")
)

// === Format Checker Errors ===
var (
	// ErrIPv6AddressNotEnclosed is returned by parseFormatURL (behind the
	// "uri"/"uri-reference"/"uri-template" format checkers) when a URI's
	// host is an IPv6 literal not wrapped in brackets.
	ErrIPv6AddressNotEnclosed = errors.New("ipv6 address must be enclosed in brackets")

	// ErrInvalidIPv6Address is returned by parseFormatURL when a bracketed
	// host is not a valid IPv6 literal.
	ErrInvalidIPv6Address = errors.New("invalid ipv6 address")
)
