package openapi_test

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	js "github.com/reoring/typeschema/jsonschema"
	"github.com/reoring/typeschema/openapi"
)

func articleSchema() *js.Schema {
	return &js.Schema{
		Type: js.TypeSet{"object"},
		Properties: js.Properties{
			{Name: "id", Schema: &js.Schema{Type: js.TypeSet{"integer"}}},
			{Name: "name", Schema: &js.Schema{Type: js.TypeSet{"string"}}},
			{Name: "content", Schema: &js.Schema{
				Type:        js.TypeSet{"string", "null"},
				Description: "Body text.",
			}},
		},
		Required:    []string{"id", "name"},
		Description: "An article.",
	}
}

func TestExportYAML(t *testing.T) {
	b, err := openapi.ExportYAML(articleSchema())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	out := string(b)

	if !strings.Contains(out, "type: object") {
		t.Errorf("missing object type:\n%s", out)
	}
	idPos := strings.Index(out, "id:")
	namePos := strings.Index(out, "name:")
	contentPos := strings.Index(out, "content:")
	if !(idPos >= 0 && idPos < namePos && namePos < contentPos) {
		t.Errorf("property order lost:\n%s", out)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		t.Fatalf("emitted YAML does not parse: %v", err)
	}
	if doc["description"] != "An article." {
		t.Errorf("description = %v", doc["description"])
	}
}

func TestExportYAMLMultiTypeList(t *testing.T) {
	b, err := openapi.ExportYAML(&js.Schema{Type: js.TypeSet{"string", "null"}})
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		t.Fatalf("emitted YAML does not parse: %v", err)
	}
	names, ok := doc["type"].([]any)
	if !ok || len(names) != 2 || names[0] != "string" || names[1] != "null" {
		t.Errorf("type = %v, want [string null]", doc["type"])
	}
}

func TestExportComponents(t *testing.T) {
	b, err := openapi.ExportComponents(map[string]*js.Schema{
		"Article": articleSchema(),
		"Tag":     {Type: js.TypeSet{"string"}},
	})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	out := string(b)
	if strings.Index(out, "Article:") > strings.Index(out, "Tag:") {
		t.Errorf("names are not sorted:\n%s", out)
	}

	var doc struct {
		Components struct {
			Schemas map[string]any `yaml:"schemas"`
		} `yaml:"components"`
	}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		t.Fatalf("emitted YAML does not parse: %v", err)
	}
	if len(doc.Components.Schemas) != 2 {
		t.Errorf("schemas = %v, want 2 entries", doc.Components.Schemas)
	}
}

func TestExportYAMLNilSchema(t *testing.T) {
	if _, err := openapi.ExportYAML(nil); err == nil {
		t.Fatal("expected an error for a nil schema")
	}
}
