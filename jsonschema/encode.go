package jsonschema

import (
	"fmt"

	j "github.com/goccy/go-json"
)

// Marshal renders the schema as compact JSON bytes.
func Marshal(s *Schema) ([]byte, error) {
	return j.Marshal(s)
}

// MarshalIndent renders the schema as indented JSON for documentation
// output and logs.
func MarshalIndent(s *Schema, prefix, indent string) ([]byte, error) {
	return j.MarshalIndent(s, prefix, indent)
}

// ToMap converts the schema into a plain map form for callers that expect
// map-based payloads (tool registries, templating). Property order is lost
// in the map; use Marshal when order matters.
func ToMap(s *Schema) (map[string]any, error) {
	if s == nil {
		return nil, fmt.Errorf("jsonschema: cannot convert nil schema to map")
	}
	b, err := j.Marshal(s)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := j.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
