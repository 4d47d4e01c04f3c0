package jsonschema

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
)

// compileSession is the per-Compile() bookkeeping that makes cyclic and
// forward $ref safe to compile (spec.md §6): every CompiledSchema built
// while walking one document is registered here by both its structural
// path and, if it carries an id, by its absolute URI; every $ref keyword
// encountered defers its target lookup onto the session's pending queue
// rather than resolving (and possibly recursing) inline.
type compileSession struct {
	compiler *Compiler
	docURL   string
	rawRoot  any

	byPath map[string]*CompiledSchema
	byURI  map[string]*CompiledSchema

	pending []*refValidator
}

func newCompileSession(c *Compiler, docURL string, rawRoot any) *compileSession {
	return &compileSession{
		compiler: c,
		docURL:   docURL,
		rawRoot:  rawRoot,
		byPath:   make(map[string]*CompiledSchema),
		byURI:    make(map[string]*CompiledSchema),
	}
}

func (sess *compileSession) registerNode(s *CompiledSchema) {
	sess.byPath[s.SchemaPath] = s
}

func (sess *compileSession) registerByURI(uri string, s *CompiledSchema) {
	sess.byURI[uri] = s
}

func (sess *compileSession) addPending(rv *refValidator) {
	sess.pending = append(sess.pending, rv)
}

// resolvePending drains the pending $ref queue, including any new entries
// added while resolving earlier ones (a target reached for the first time
// via on-demand compilation may itself contain $ref keywords).
func (sess *compileSession) resolvePending() error {
	for i := 0; i < len(sess.pending); i++ {
		rv := sess.pending[i]
		target, err := sess.compiler.resolveRef(sess, rv.source, rv.ref)
		if err != nil {
			return err
		}
		rv.target = target
	}
	return nil
}

// Compiler compiles schema documents into CompiledSchema trees (spec.md
// §3, §6). It caches compiled documents by URL and holds the registries a
// Compile() needs: meta-schemas, format checkers are per-meta-schema, and
// document loaders keyed by URL scheme. A Compiler's own state is guarded
// by mu; the CompiledSchema values it produces need no further locking.
type Compiler struct {
	mu sync.RWMutex

	metaSchemas          map[string]*JsonMetaSchema
	defaultMetaSchemaURI string

	loaders        map[string]Loader
	classpathRoots []string

	rawDocs      map[string]any            // decoded document cache, keyed by stripped URL
	compiledDocs map[string]*CompiledSchema // compiled root cache, keyed by stripped URL

	logger *slog.Logger
}

// Builder assembles a Compiler (spec.md §6: "configuration is assembled
// once, then frozen"). A Builder with no meta-schema registered, or whose
// DefaultMetaSchema doesn't match a registered one, fails Build with
// ErrInvalidConfiguration rather than letting a half-configured Compiler
// silently reject every document later.
type Builder struct {
	metaSchemas          map[string]*JsonMetaSchema
	defaultMetaSchemaURI string
	loaders              map[string]Loader
	classpathRoots       []string
	logger               *slog.Logger
}

// NewBuilder starts a Builder with no meta-schemas or loaders registered.
func NewBuilder() *Builder {
	return &Builder{
		metaSchemas: make(map[string]*JsonMetaSchema),
		loaders:     make(map[string]Loader),
	}
}

// WithMetaSchema registers a dialect, selectable by its URI (spec.md §3).
func (b *Builder) WithMetaSchema(m *JsonMetaSchema) *Builder {
	b.metaSchemas[m.URI] = m
	return b
}

// WithDefaultMetaSchema sets the dialect used for documents that omit
// "$schema" entirely.
func (b *Builder) WithDefaultMetaSchema(uri string) *Builder {
	b.defaultMetaSchemaURI = uri
	return b
}

// WithLoader registers a document loader for a URL scheme ("http",
// "https", "file", ...).
func (b *Builder) WithLoader(scheme string, l Loader) *Builder {
	b.loaders[scheme] = l
	return b
}

// WithClasspathRoot adds a directory searched, in registration order, for
// bare (schemeless) $ref targets that aren't found any other way.
func (b *Builder) WithClasspathRoot(root string) *Builder {
	b.classpathRoots = append(b.classpathRoots, root)
	return b
}

// WithLogger sets the structured logger used for compile/resolve
// diagnostics; the zero value falls back to slog.Default().
func (b *Builder) WithLogger(l *slog.Logger) *Builder {
	b.logger = l
	return b
}

// Build validates the accumulated configuration and returns a ready-to-use
// Compiler.
func (b *Builder) Build() (*Compiler, error) {
	if len(b.metaSchemas) == 0 {
		return nil, errors.Wrap(ErrInvalidConfiguration, "no meta-schemas registered")
	}
	if b.defaultMetaSchemaURI == "" {
		return nil, errors.Wrap(ErrInvalidConfiguration, "no default meta-schema set")
	}
	if _, ok := b.metaSchemas[b.defaultMetaSchemaURI]; !ok {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "default meta-schema %q is not registered", b.defaultMetaSchemaURI)
	}
	logger := b.logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Compiler{
		metaSchemas:          b.metaSchemas,
		defaultMetaSchemaURI: b.defaultMetaSchemaURI,
		loaders:              b.loaders,
		classpathRoots:       b.classpathRoots,
		rawDocs:              make(map[string]any),
		compiledDocs:         make(map[string]*CompiledSchema),
		logger:               logger,
	}, nil
}

// NewCompiler builds a Compiler preconfigured for Draft 4: the Draft 4
// meta-schema as the default dialect, plus the draft6Experimental dialect
// (metaschema_draft6.go) registered alongside it to demonstrate the
// JsonMetaSchema extensibility seam, plus http/https loaders with a
// reasonable fetch timeout. A document's own "$schema" selects whichever
// registered dialect it names; Draft 4 is used when "$schema" is absent.
func NewCompiler() *Compiler {
	c, err := NewBuilder().
		WithMetaSchema(NewDraft4MetaSchema()).
		WithMetaSchema(NewDraft6ExperimentalMetaSchema()).
		WithDefaultMetaSchema(Draft4URI).
		WithLoader("http", defaultHTTPLoader(10*time.Second)).
		WithLoader("https", defaultHTTPLoader(10*time.Second)).
		WithLoader("file", fileLoader).
		Build()
	if err != nil {
		// Unreachable: the configuration above is always internally
		// consistent.
		panic(err)
	}
	return c
}

// metaSchemaFor selects the dialect for a decoded root node: its own
// "$schema" URI if present and registered, otherwise the Compiler's
// default (spec.md §4.1).
func (c *Compiler) metaSchemaFor(root any) (*JsonMetaSchema, error) {
	if obj, ok := asObject(root); ok {
		if raw, ok := obj.Get("$schema"); ok {
			uri, _ := raw.(string)
			m, ok := c.metaSchemas[uri]
			if !ok {
				return nil, errors.Wrapf(ErrUnknownMetaSchema, "%q", uri)
			}
			return m, nil
		}
	}
	return c.metaSchemas[c.defaultMetaSchemaURI], nil
}

// Compile parses and compiles a schema document, using docURL as both its
// document identity (for registering it by URL, and for resolving
// relative $ref/id values within it) and its cache key, whether or not the
// document carries an "id". An empty docURL compiles an anonymous,
// uncached document.
func (c *Compiler) Compile(data []byte, docURL string) (*CompiledSchema, error) {
	root, err := decodeNode(data)
	if err != nil {
		return nil, errors.Wrapf(ErrSchemaLoad, "decoding %s: %v", docURL, err)
	}
	return c.compileDecoded(root, docURL)
}

func (c *Compiler) compileDecoded(root any, docURL string) (*CompiledSchema, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.compileDecodedLocked(root, docURL)
}

func (c *Compiler) compileDecodedLocked(root any, docURL string) (*CompiledSchema, error) {
	if docURL != "" {
		if cached, ok := c.compiledDocs[docURL]; ok {
			return cached, nil
		}
	}

	meta, err := c.metaSchemaFor(root)
	if err != nil {
		return nil, err
	}

	sess := newCompileSession(c, docURL, root)
	ctx := &ValidationContext{MetaSchema: meta, Factory: c, docURL: docURL, session: sess}

	compiled, err := compileNode(root, nil, ctx, "#")
	if err != nil {
		return nil, err
	}
	if err := sess.resolvePending(); err != nil {
		return nil, err
	}

	if docURL != "" {
		c.rawDocs[docURL] = root
		c.compiledDocs[docURL] = compiled
	}
	c.logger.Debug("compiled schema document", "url", docURL, "validators", len(compiled.validators))
	return compiled, nil
}

// loadDocument fetches and decodes an external document by absolute URL,
// trying its scheme's registered loader first and falling back to the
// classpath roots (spec.md §6 Open Question: dual-source lookup retained
// and documented, not treated as a bug).
func (c *Compiler) loadDocument(docURL string) (any, error) {
	if cached, ok := c.rawDocs[docURL]; ok {
		return cached, nil
	}

	scheme := urlScheme(docURL)
	var data []byte
	var err error
	if loader, ok := c.loaders[scheme]; ok {
		data, err = loader(docURL)
	} else {
		err = fmt.Errorf("%w: %q", ErrNoLoaderRegistered, scheme)
	}
	if err != nil && len(c.classpathRoots) > 0 {
		data, err = classpathLoader(c.classpathRoots)(docURL)
	}
	if err != nil {
		return nil, err
	}

	root, err := decodeNode(data)
	if err != nil {
		return nil, errors.Wrapf(ErrSchemaLoad, "decoding %s: %v", docURL, err)
	}
	c.rawDocs[docURL] = root
	return root, nil
}

func urlScheme(u string) string {
	for i := 0; i < len(u); i++ {
		switch u[i] {
		case ':':
			return u[:i]
		case '/', '?', '#':
			return ""
		}
	}
	return ""
}

// resolveRef resolves one $ref occurrence found on src to a CompiledSchema,
// loading and compiling the target document on demand if it isn't src's
// own document (spec.md §6). Must be called with c.mu held.
func (c *Compiler) resolveRef(sess *compileSession, src *CompiledSchema, ref string) (*CompiledSchema, error) {
	absolute, err := resolveURIReference(src.baseURI, ref)
	if err != nil {
		return nil, err
	}
	docURL, fragment := splitRef(absolute)

	if byURI, ok := sess.byURI[absolute]; ok {
		return byURI, nil
	}

	targetSess := sess
	rawRoot := sess.rawRoot
	if docURL != "" && docURL != sess.docURL {
		if compiled, ok := c.compiledDocs[docURL]; ok && fragment == "" {
			return compiled, nil
		}
		root, err := c.loadDocument(docURL)
		if err != nil {
			return nil, errors.Wrapf(ErrUnresolvableReference, "%s: %v", ref, err)
		}
		rawRoot = root
		meta, err := c.metaSchemaFor(root)
		if err != nil {
			return nil, err
		}
		otherSess := newCompileSession(c, docURL, root)
		ctx := &ValidationContext{MetaSchema: meta, Factory: c, docURL: docURL, session: otherSess}
		compiledRoot, err := compileNode(root, nil, ctx, "#")
		if err != nil {
			return nil, err
		}
		c.rawDocs[docURL] = root
		c.compiledDocs[docURL] = compiledRoot
		targetSess = otherSess
		if fragment == "" || fragment == "/" {
			if err := otherSess.resolvePending(); err != nil {
				return nil, err
			}
			return compiledRoot, nil
		}
	}

	path := "#"
	if fragment != "" {
		if fragment[0] == '/' {
			path = "#" + fragment
		} else {
			path = "#/" + fragment
		}
	}
	if existing, ok := targetSess.byPath[path]; ok {
		return existing, nil
	}

	rawTarget, err := navigatePointer(rawRoot, fragment)
	if err != nil {
		return nil, errors.Wrapf(ErrUnresolvableReference, "%s: %v", ref, err)
	}

	ctx := &ValidationContext{MetaSchema: src.Context.MetaSchema, Factory: c, docURL: targetSess.docURL, session: targetSess}
	compiled, err := compileNode(rawTarget, nil, ctx, path)
	if err != nil {
		return nil, err
	}
	if err := targetSess.resolvePending(); err != nil {
		return nil, err
	}
	return compiled, nil
}

// GetSchema compiles (if needed) and returns the schema identified by an
// absolute URI, optionally with a fragment — the entry point a caller
// uses to resolve a reference from outside any in-progress Compile.
func (c *Compiler) GetSchema(ref string) (*CompiledSchema, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	docURL, fragment := splitRef(ref)
	root, err := c.loadDocument(docURL)
	if err != nil {
		return nil, err
	}
	compiled, ok := c.compiledDocs[docURL]
	if !ok {
		compiled, err = c.compileDecodedLocked(root, docURL)
		if err != nil {
			return nil, err
		}
	}
	if fragment == "" {
		return compiled, nil
	}
	sess := newCompileSession(c, docURL, root)
	sess.registerNode(compiled)
	src := &CompiledSchema{Context: &ValidationContext{MetaSchema: compiled.Context.MetaSchema, Factory: c, docURL: docURL, session: sess}, baseURI: docURL}
	return c.resolveRef(sess, src, "#"+fragment)
}
