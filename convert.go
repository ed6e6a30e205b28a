package typeschema

import (
	js "github.com/reoring/typeschema/jsonschema"
)

const defaultMaxDepth = 128

// converter carries the options of one top-level conversion. Every call
// builds a fresh schema tree; nothing is shared across calls.
type converter struct {
	opt ConvertOpt
}

func newConverter(opts []ConvertOpt) *converter {
	var opt ConvertOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return &converter{opt: opt}
}

func (c *converter) maxDepth() int {
	if c.opt.MaxDepth > 0 {
		return c.opt.MaxDepth
	}
	return defaultMaxDepth
}

// convert translates one descriptor. The second result reports whether a
// field or parameter of this type counts as required by declaration:
// none-admitting unions, bare null, and the empty literal demote it.
//
// Dispatch order: TypeHandler override, annotated unwrapping, literal,
// enum, union, containers, scalars, records. First match wins.
func (c *converter) convert(t Type, depth int) (*js.Schema, bool, error) {
	if depth > c.maxDepth() {
		return nil, false, ErrDepthExceeded
	}
	if c.opt.TypeHandler != nil {
		if s := c.opt.TypeHandler(t); s != nil {
			return s, true, nil
		}
	}

	switch v := t.(type) {
	case AnnotatedType:
		inner, required, err := c.convert(v.Elem, depth+1)
		if err != nil {
			return nil, false, err
		}
		if doc, ok := resolveDoc(v.Metadata, c.opt.AnnotatedDocHandler); ok {
			inner.Description = doc
		}
		return inner, required, nil
	case LiteralType:
		if len(v.Values) == 0 {
			return &js.Schema{Type: js.TypeSet{"null"}}, false, nil
		}
		return enumSchema(v.Values), true, nil
	case EnumType:
		return enumSchema(v.Values), true, nil
	case UnionType:
		return c.convertUnion(v.Members, depth)
	case ListType:
		if v.Elem == nil {
			return &js.Schema{Type: js.TypeSet{"array"}}, true, nil
		}
		item, _, err := c.convert(v.Elem, depth+1)
		if err != nil {
			return nil, false, err
		}
		return &js.Schema{Type: js.TypeSet{"array"}, Items: item}, true, nil
	case DictType:
		return &js.Schema{Type: js.TypeSet{"object"}}, true, nil
	case scalarType:
		return &js.Schema{Type: js.TypeSet{v.name}}, v.kind != KindNull, nil
	case *RecordType:
		return c.convertRecord(v, depth)
	}
	return c.unsupported(t, "")
}

func (c *converter) unsupported(t Type, param string) (*js.Schema, bool, error) {
	if c.opt.Lenient {
		return &js.Schema{Type: js.TypeSet{"object"}}, true, nil
	}
	return nil, false, &UnsupportedTypeError{Type: t, Param: param}
}

// convertUnion partitions members into none-like and the rest. When every
// remaining member folds into a single-name schema with no substructure,
// the union collapses into one multi-name type list; otherwise it becomes
// a oneOf, with a null alternative appended when a none-like member was
// present. A lone non-null member degenerates to its own schema.
func (c *converter) convertUnion(members []Type, depth int) (*js.Schema, bool, error) {
	rest := make([]Type, 0, len(members))
	sawNull := false
	for _, m := range members {
		if m != nil && m.Kind() == KindNull {
			sawNull = true
			continue
		}
		rest = append(rest, m)
	}

	if len(rest) == 0 {
		return &js.Schema{Type: js.TypeSet{"null"}}, false, nil
	}
	if len(rest) == 1 && !sawNull {
		return c.convert(rest[0], depth+1)
	}

	schemas := make([]*js.Schema, 0, len(rest)+1)
	for _, m := range rest {
		s, _, err := c.convert(m, depth+1)
		if err != nil {
			return nil, false, err
		}
		schemas = append(schemas, s)
	}

	if names, ok := foldUnion(schemas, sawNull); ok {
		return &js.Schema{Type: names}, !sawNull, nil
	}
	if sawNull {
		schemas = append(schemas, &js.Schema{Type: js.TypeSet{"null"}})
	}
	return &js.Schema{OneOf: schemas}, !sawNull, nil
}

// foldUnion reports whether every member schema is a bare single-name
// primitive and, if so, returns the merged name list in first-seen order
// with duplicates removed and "null" appended last when requested.
func foldUnion(schemas []*js.Schema, sawNull bool) (js.TypeSet, bool) {
	names := make(js.TypeSet, 0, len(schemas)+1)
	for _, s := range schemas {
		if len(s.Type) != 1 || s.Items != nil || len(s.Properties) > 0 ||
			len(s.Enum) > 0 || len(s.OneOf) > 0 {
			return nil, false
		}
		names = appendUniqueName(names, s.Type[0])
	}
	if sawNull {
		names = appendUniqueName(names, "null")
	}
	return names, true
}

func appendUniqueName(names js.TypeSet, name string) js.TypeSet {
	for _, n := range names {
		if n == name {
			return names
		}
	}
	return append(names, name)
}

// convertRecord assembles an object schema from the record's normalized
// fields. A field lands in required only when its style rule says required
// and its type does not admit null.
func (c *converter) convertRecord(rec *RecordType, depth int) (*js.Schema, bool, error) {
	fields, doc := extractFields(rec)

	obj := &js.Schema{Type: js.TypeSet{"object"}}
	var required []string
	for _, f := range fields {
		fs, typRequired, err := c.convert(f.typ, depth+1)
		if err != nil {
			return nil, false, err
		}
		if f.hasDefault {
			fs.Default = f.def
		}
		obj.Properties = append(obj.Properties, js.Property{Name: f.name, Schema: fs})
		if f.required && typRequired {
			required = append(required, f.name)
		}
	}
	obj.Required = required
	if doc != "" {
		obj.Description = doc
	}
	return obj, true, nil
}

// enumSchema builds an enum node, inferring the type name when all values
// share one primitive JSON type.
func enumSchema(values []any) *js.Schema {
	s := &js.Schema{Enum: append([]any(nil), values...)}
	if name, ok := inferEnumType(values); ok {
		s.Type = js.TypeSet{name}
	}
	return s
}

func inferEnumType(values []any) (string, bool) {
	var name string
	for _, v := range values {
		n, ok := scalarNameOf(v)
		if !ok {
			return "", false
		}
		if name == "" {
			name = n
		} else if name != n {
			return "", false
		}
	}
	return name, name != ""
}

func scalarNameOf(v any) (string, bool) {
	switch v.(type) {
	case nil:
		return "null", true
	case string:
		return "string", true
	case bool:
		return "boolean", true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer", true
	case float32, float64:
		return "number", true
	}
	return "", false
}

// resolveDoc extracts a description from annotation metadata. A supplied
// handler fully replaces the fallback heuristic (first plain-string item).
// Absence is a normal outcome; this never errors.
func resolveDoc(meta []any, handler func(meta []any) string) (string, bool) {
	if handler != nil {
		s := handler(meta)
		return s, s != ""
	}
	for _, m := range meta {
		if s, ok := m.(string); ok {
			return s, true
		}
	}
	return "", false
}
