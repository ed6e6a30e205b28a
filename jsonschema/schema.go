// Package jsonschema defines the serialized, JSON-compatible schema form
// emitted by typeschema. Absent fields are omitted entirely from the wire
// representation; they are never emitted as null or empty.
package jsonschema

import (
	"bytes"
	"fmt"

	j "github.com/goccy/go-json"
)

// TypeSet holds one or more primitive type names. It marshals as a bare
// string when it has a single entry and as an array otherwise, matching
// the JSON Schema "type" keyword. A multi-entry set appears exactly when
// a union collapsed into a nullable/alternate-primitive form.
type TypeSet []string

func (ts TypeSet) MarshalJSON() ([]byte, error) {
	if len(ts) == 1 {
		return j.Marshal(ts[0])
	}
	return j.Marshal([]string(ts))
}

func (ts *TypeSet) UnmarshalJSON(b []byte) error {
	var one string
	if err := j.Unmarshal(b, &one); err == nil {
		*ts = TypeSet{one}
		return nil
	}
	var many []string
	if err := j.Unmarshal(b, &many); err != nil {
		return fmt.Errorf("jsonschema: type must be a string or an array of strings: %w", err)
	}
	*ts = TypeSet(many)
	return nil
}

// Property is one named entry of an object schema.
type Property struct {
	Name   string
	Schema *Schema
}

// Properties is an ordered name-to-schema mapping. Declaration order is
// part of the contract; a Go map would shuffle it.
type Properties []Property

// Get returns the schema for name, scanning in declaration order.
func (ps Properties) Get(name string) (*Schema, bool) {
	for _, p := range ps {
		if p.Name == name {
			return p.Schema, true
		}
	}
	return nil, false
}

func (ps Properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range ps {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := j.Marshal(p.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := j.Marshal(p.Schema)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (ps *Properties) UnmarshalJSON(b []byte) error {
	dec := j.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(j.Delim); !ok || d != '{' {
		return fmt.Errorf("jsonschema: properties must be an object")
	}
	out := Properties{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("jsonschema: property key must be a string")
		}
		var s Schema
		if err := dec.Decode(&s); err != nil {
			return err
		}
		out = append(out, Property{Name: key, Schema: &s})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*ps = out
	return nil
}

// Schema is the JSON-compatible schema node. One struct covers all node
// shapes: primitives carry Type (possibly multi-name), object schemas
// carry Properties/Required, enums carry Enum, and unions that could not
// fold carry OneOf instead of Type.
type Schema struct {
	Type        TypeSet    `json:"type,omitempty"`
	Properties  Properties `json:"properties,omitempty"`
	Required    []string   `json:"required,omitempty"`
	Description string     `json:"description,omitempty"`
	Default     any        `json:"default,omitempty"`
	Enum        []any      `json:"enum,omitempty"`
	Items       *Schema    `json:"items,omitempty"`
	OneOf       []*Schema  `json:"oneOf,omitempty"`
}
