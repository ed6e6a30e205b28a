// Package openapi exports schema trees as YAML fragments for OpenAPI
// documentation pipelines. Property order from the schema tree is kept in
// the emitted document.
package openapi

import (
	"bytes"
	"errors"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/reoring/typeschema/jsonschema"
)

// ExportYAML renders a single schema as one YAML document.
func ExportYAML(s *jsonschema.Schema) ([]byte, error) {
	if s == nil {
		return nil, errors.New("openapi: nil schema")
	}
	node, err := schemaNode(s)
	if err != nil {
		return nil, err
	}
	return marshalDoc(node)
}

// ExportComponents renders named schemas under components.schemas, the
// layout OpenAPI documents expect. Names are emitted in sorted order so
// the output is deterministic.
func ExportComponents(schemas map[string]*jsonschema.Schema) ([]byte, error) {
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	byName := mappingNode()
	for _, name := range names {
		child, err := schemaNode(schemas[name])
		if err != nil {
			return nil, err
		}
		appendPair(byName, name, child)
	}

	inner := mappingNode()
	appendPair(inner, "schemas", byName)
	doc := mappingNode()
	appendPair(doc, "components", inner)
	return marshalDoc(doc)
}

func marshalDoc(node *yaml.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// schemaNode builds a mapping node field by field so that property order
// survives; yaml.Marshal over a Go map would lose it.
func schemaNode(s *jsonschema.Schema) (*yaml.Node, error) {
	if s == nil {
		return nil, errors.New("openapi: nil schema node")
	}
	m := mappingNode()

	switch len(s.Type) {
	case 0:
	case 1:
		appendPair(m, "type", strNode(s.Type[0]))
	default:
		seq := sequenceNode()
		for _, name := range s.Type {
			seq.Content = append(seq.Content, strNode(name))
		}
		appendPair(m, "type", seq)
	}

	if len(s.Properties) > 0 {
		props := mappingNode()
		for _, p := range s.Properties {
			child, err := schemaNode(p.Schema)
			if err != nil {
				return nil, err
			}
			appendPair(props, p.Name, child)
		}
		appendPair(m, "properties", props)
	}

	if len(s.Required) > 0 {
		seq := sequenceNode()
		for _, name := range s.Required {
			seq.Content = append(seq.Content, strNode(name))
		}
		appendPair(m, "required", seq)
	}

	if s.Description != "" {
		appendPair(m, "description", strNode(s.Description))
	}

	if s.Default != nil {
		n, err := valueNode(s.Default)
		if err != nil {
			return nil, err
		}
		appendPair(m, "default", n)
	}

	if len(s.Enum) > 0 {
		seq := sequenceNode()
		for _, v := range s.Enum {
			n, err := valueNode(v)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, n)
		}
		appendPair(m, "enum", seq)
	}

	if s.Items != nil {
		child, err := schemaNode(s.Items)
		if err != nil {
			return nil, err
		}
		appendPair(m, "items", child)
	}

	if len(s.OneOf) > 0 {
		seq := sequenceNode()
		for _, alt := range s.OneOf {
			child, err := schemaNode(alt)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, child)
		}
		appendPair(m, "oneOf", seq)
	}

	return m, nil
}

func valueNode(v any) (*yaml.Node, error) {
	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	return n, nil
}

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func sequenceNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
}

func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func appendPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, strNode(key), value)
}
