package typeschema

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// ResolveStructKey applies the repository-wide rule to resolve a struct
// field's external key.
// Priority: typeschema:"name=..." > json tag name > field name; "-" disables the field.
func ResolveStructKey(sf reflect.StructField) string {
	if tt := sf.Tag.Get("typeschema"); tt != "" {
		for _, p := range strings.Split(tt, ",") {
			p = strings.TrimSpace(p)
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			return jt[:i]
		}
		return jt
	}
	return sf.Name
}

// TypeOf adapts a native Go type into a type descriptor. Pointers become
// optional-style unions, structs become data-class records, maps become
// bare dicts. Self-referential structs fail with ErrDepthExceeded.
func TypeOf(t reflect.Type) (Type, error) {
	return typeOf(t, 0, StyleDataClass)
}

// StructOf adapts a struct value or struct pointer into a data-class-style
// record descriptor: fields are required unless they declare a default.
func StructOf(v any) (*RecordType, error) {
	return structOf(v, StyleDataClass)
}

// ModelOf adapts a struct value into a validated-model-style record
// descriptor: fields are required when they declare no default and are not
// nullable (pointer types or a typeschema:"notrequired" tag).
func ModelOf(v any) (*RecordType, error) {
	return structOf(v, StyleModel)
}

func structOf(v any, style RecordStyle) (*RecordType, error) {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil, fmt.Errorf("typeschema: nil value has no struct type")
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("typeschema: %s is not a struct type", t)
	}
	return structRecord(t, 0, style)
}

var timeType = reflect.TypeOf(time.Time{})

func typeOf(t reflect.Type, depth int, style RecordStyle) (Type, error) {
	if depth > defaultMaxDepth {
		return nil, ErrDepthExceeded
	}
	if t == timeType {
		return String, nil
	}
	switch t.Kind() {
	case reflect.Ptr:
		elem, err := typeOf(t.Elem(), depth+1, style)
		if err != nil {
			return nil, err
		}
		return Optional(elem), nil
	case reflect.String:
		return String, nil
	case reflect.Bool:
		return Bool, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Int, nil
	case reflect.Float32, reflect.Float64:
		return Float, nil
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return String, nil
		}
		elem, err := typeOf(t.Elem(), depth+1, style)
		if err != nil {
			return nil, err
		}
		return ListOf(elem), nil
	case reflect.Map:
		return Dict, nil
	case reflect.Struct:
		return structRecord(t, depth, style)
	}
	return nil, fmt.Errorf("typeschema: unsupported Go type %s", t)
}

func structRecord(t reflect.Type, depth int, style RecordStyle) (*RecordType, error) {
	rec := &RecordType{Name: t.Name(), Style: style}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		key := ResolveStructKey(sf)
		if key == "-" {
			continue
		}
		ft, err := typeOf(sf.Type, depth+1, style)
		if err != nil {
			return nil, err
		}
		f := RecordField{Name: key, Type: ft}
		if err := applyFieldTag(sf, &f); err != nil {
			return nil, err
		}
		rec.Fields = append(rec.Fields, f)
	}
	return rec, nil
}

// applyFieldTag folds the remaining typeschema tag parts into the field:
// default=<raw> (parsed per field kind), notrequired, doc=<text>.
func applyFieldTag(sf reflect.StructField, f *RecordField) error {
	tag := sf.Tag.Get("typeschema")
	if tag == "" {
		return nil
	}
	for _, p := range strings.Split(tag, ",") {
		p = strings.TrimSpace(p)
		switch {
		case p == "notrequired":
			f.NotRequired = true
		case strings.HasPrefix(p, "default="):
			v, err := parseTagDefault(sf.Type, strings.TrimPrefix(p, "default="))
			if err != nil {
				return fmt.Errorf("typeschema: field %s: %w", sf.Name, err)
			}
			f.Default = v
			f.HasDefault = true
		case strings.HasPrefix(p, "doc="):
			f.Type = Annotated(f.Type, strings.TrimPrefix(p, "doc="))
		}
	}
	return nil
}

func parseTagDefault(t reflect.Type, raw string) (any, error) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return raw, nil
	case reflect.Bool:
		return strconv.ParseBool(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		return int(n), nil
	case reflect.Float32, reflect.Float64:
		return strconv.ParseFloat(raw, 64)
	}
	return nil, fmt.Errorf("default tag is not supported for %s", t)
}

// descriptorOfValue infers a descriptor from a value's dynamic type. It
// backs the missing-annotation fallback for defaulted parameters and
// returns nil when no descriptor fits.
func descriptorOfValue(v any) Type {
	if v == nil {
		return Null
	}
	t, err := TypeOf(reflect.TypeOf(v))
	if err != nil {
		return nil
	}
	return t
}

var contextType = reflect.TypeOf((*context.Context)(nil)).Elem()

// SignatureOf adapts a native Go function value into a Signature. Go
// reflection erases parameter names, so callers pass them positionally;
// missing names fall back to arg0, arg1, ... Leading context.Context
// parameters and the variadic tail are skipped.
func SignatureOf(fn any, names ...string) (Signature, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return Signature{}, fmt.Errorf("typeschema: not a function: %T", fn)
	}
	t := v.Type()

	sig := Signature{Name: funcName(v)}
	idx := 0
	for i := 0; i < t.NumIn(); i++ {
		in := t.In(i)
		if in == contextType {
			continue
		}
		if t.IsVariadic() && i == t.NumIn()-1 {
			continue
		}
		pt, err := TypeOf(in)
		if err != nil {
			return Signature{}, err
		}
		name := fmt.Sprintf("arg%d", idx)
		if idx < len(names) {
			name = names[idx]
		}
		sig.Params = append(sig.Params, Param{Name: name, Type: pt})
		idx++
	}
	return sig, nil
}

func funcName(v reflect.Value) string {
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return ""
	}
	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}
