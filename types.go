package typeschema

import (
	"fmt"
	"strings"
)

// Kind identifies a type descriptor category.
type Kind int

const (
	KindInvalid Kind = iota
	KindString
	KindInteger
	KindNumber
	KindBool
	KindNull
	KindList
	KindDict
	KindUnion
	KindLiteral
	KindEnum
	KindAnnotated
	KindRecord
)

var kindNames = [...]string{
	"invalid", "string", "integer", "number", "boolean", "null",
	"list", "dict", "union", "literal", "enum", "annotated", "record",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// Type is an immutable type descriptor. Concrete variants are produced by
// the constructors below and by the reflection adapters; the converter
// consumes them via type switch and never touches host reflection itself.
type Type interface {
	Kind() Kind
	String() string
}

type scalarType struct {
	kind Kind
	name string
}

func (s scalarType) Kind() Kind     { return s.kind }
func (s scalarType) String() string { return s.name }

// Scalar descriptors. Null doubles as the none-like union member.
var (
	String Type = scalarType{KindString, "string"}
	Int    Type = scalarType{KindInteger, "integer"}
	Float  Type = scalarType{KindNumber, "number"}
	Bool   Type = scalarType{KindBool, "boolean"}
	Null   Type = scalarType{KindNull, "null"}
)

// ListType describes a sequence. A nil Elem means the element type was not
// declared and the resulting schema carries no item schema.
type ListType struct {
	Elem Type
}

func (l ListType) Kind() Kind { return KindList }

func (l ListType) String() string {
	if l.Elem == nil {
		return "list"
	}
	return "list[" + l.Elem.String() + "]"
}

// DictType describes a mapping without declared key/value types.
type DictType struct{}

func (DictType) Kind() Kind     { return KindDict }
func (DictType) String() string { return "dict" }

// Bare container descriptors.
var (
	List Type = ListType{}
	Dict Type = DictType{}
)

// ListOf describes a sequence with a declared element type.
func ListOf(elem Type) Type { return ListType{Elem: elem} }

// UnionType describes a set of alternative member types.
type UnionType struct {
	Members []Type
}

func (u UnionType) Kind() Kind { return KindUnion }

func (u UnionType) String() string {
	names := make([]string, 0, len(u.Members))
	for _, m := range u.Members {
		if m == nil {
			names = append(names, "<nil>")
			continue
		}
		names = append(names, m.String())
	}
	return "union[" + strings.Join(names, ", ") + "]"
}

// UnionOf describes a union of the given members.
func UnionOf(members ...Type) Type {
	return UnionType{Members: append([]Type(nil), members...)}
}

// Optional describes t-or-null, the optional-style union.
func Optional(t Type) Type { return UnionOf(t, Null) }

// LiteralType describes a fixed set of admissible values.
type LiteralType struct {
	Values []any
}

func (l LiteralType) Kind() Kind { return KindLiteral }

func (l LiteralType) String() string {
	return fmt.Sprintf("literal%v", l.Values)
}

// LiteralOf describes a literal value set.
func LiteralOf(values ...any) Type {
	return LiteralType{Values: append([]any(nil), values...)}
}

// EnumType describes a named enumeration with declared member values.
type EnumType struct {
	Name   string
	Values []any
}

func (e EnumType) Kind() Kind { return KindEnum }

func (e EnumType) String() string {
	if e.Name == "" {
		return "enum"
	}
	return "enum " + e.Name
}

// EnumOf describes an enumerated-value type.
func EnumOf(name string, values ...any) Type {
	return EnumType{Name: name, Values: append([]any(nil), values...)}
}

// AnnotatedType pairs an inner type with attached metadata items. Metadata
// items that are plain strings can serve as documentation; see ConvertOpt.
type AnnotatedType struct {
	Elem     Type
	Metadata []any
}

func (a AnnotatedType) Kind() Kind { return KindAnnotated }

func (a AnnotatedType) String() string {
	if a.Elem == nil {
		return "annotated[<nil>]"
	}
	return "annotated[" + a.Elem.String() + "]"
}

// Annotated wraps elem with metadata items.
func Annotated(elem Type, metadata ...any) Type {
	return AnnotatedType{Elem: elem, Metadata: append([]any(nil), metadata...)}
}
