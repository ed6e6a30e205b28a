package typeschema

import (
	js "github.com/reoring/typeschema/jsonschema"
)

// ConvertOpt bundles conversion options. Pass at most one; when several
// are given the last wins.
type ConvertOpt struct {
	// TypeHandler intercepts every descriptor before built-in dispatch.
	// A non-nil result is used verbatim, replacing built-in logic for
	// that descriptor including annotated unwrapping. Handler panics are
	// not intercepted.
	TypeHandler func(t Type) *js.Schema
	// AnnotatedDocHandler receives the full metadata slice of an
	// annotated type and fully replaces the default heuristic (first
	// plain-string metadata item). An empty result means no description.
	AnnotatedDocHandler func(meta []any) string
	// Lenient substitutes a bare object schema for unsupported types and
	// missing annotations instead of returning UnsupportedTypeError.
	Lenient bool
	// MaxDepth bounds recursion over the type graph. Zero means the
	// package default of 128.
	MaxDepth int
}

// TypeToSchema converts a type descriptor into a JSON-compatible schema
// tree. The returned tree is freshly allocated on every call and must not
// be mutated afterwards. It fails with UnsupportedTypeError when no
// dispatch rule matches and no TypeHandler resolves the descriptor.
func TypeToSchema(t Type, opts ...ConvertOpt) (*js.Schema, error) {
	c := newConverter(opts)
	s, _, err := c.convert(t, 0)
	return s, err
}

// FuncToSchema converts a callable's parameter list into a single object
// schema. fn may be a Signature, a *Signature, or a native Go function
// value (adapted through SignatureOf with positional argN names).
func FuncToSchema(fn any, opts ...ConvertOpt) (*js.Schema, error) {
	c := newConverter(opts)
	switch v := fn.(type) {
	case Signature:
		return c.convertSignature(v)
	case *Signature:
		return c.convertSignature(*v)
	}
	sig, err := SignatureOf(fn)
	if err != nil {
		return nil, err
	}
	return c.convertSignature(sig)
}
