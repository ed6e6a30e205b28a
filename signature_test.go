package typeschema_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	typeschema "github.com/reoring/typeschema"
	js "github.com/reoring/typeschema/jsonschema"
)

func TestFuncToSchemaScenario(t *testing.T) {
	sig := typeschema.NewSignature("example", "Example function",
		typeschema.P("a", typeschema.Int),
		typeschema.P("b", typeschema.String).WithDefault("x"),
	)

	s, err := typeschema.FuncToSchema(sig)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(s.Type) != 1 || s.Type[0] != "object" {
		t.Fatalf("Type = %v, want [object]", s.Type)
	}
	if s.Description != "Example function" {
		t.Errorf("Description = %q", s.Description)
	}
	if diff := cmp.Diff([]string{"a"}, s.Required); diff != "" {
		t.Errorf("Required mismatch (-want +got):\n%s", diff)
	}

	b, ok := s.Properties.Get("b")
	if !ok {
		t.Fatal("missing property b")
	}
	if b.Default != "x" {
		t.Errorf("b.Default = %v, want %q", b.Default, "x")
	}

	raw, err := js.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"type":"object","properties":{"a":{"type":"integer"},"b":{"type":"string","default":"x"}},"required":["a"],"description":"Example function"}`
	if string(raw) != want {
		t.Errorf("serialized form mismatch:\n got %s\nwant %s", raw, want)
	}
}

func TestFuncToSchemaSkipsSelf(t *testing.T) {
	sig := typeschema.NewSignature("method", "",
		typeschema.P("self", typeschema.Dict),
		typeschema.P("id", typeschema.Int),
	)
	s, err := typeschema.FuncToSchema(sig)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := s.Properties.Get("self"); ok {
		t.Error("self parameter leaked into properties")
	}
	if len(s.Properties) != 1 {
		t.Errorf("properties = %v, want only id", s.Properties)
	}
}

func TestFuncToSchemaNullableParamNotRequired(t *testing.T) {
	sig := typeschema.NewSignature("f", "",
		typeschema.P("note", typeschema.Optional(typeschema.String)),
	)
	s, err := typeschema.FuncToSchema(sig)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(s.Required) != 0 {
		t.Errorf("Required = %v, want empty", s.Required)
	}
}

func TestMissingAnnotation(t *testing.T) {
	t.Run("without default fails", func(t *testing.T) {
		sig := typeschema.NewSignature("f", "", typeschema.Param{Name: "a"})
		_, err := typeschema.FuncToSchema(sig)
		var ute *typeschema.UnsupportedTypeError
		if !errors.As(err, &ute) {
			t.Fatalf("err = %v, want UnsupportedTypeError", err)
		}
		if ute.Param != "a" {
			t.Errorf("Param = %q, want %q", ute.Param, "a")
		}
	})

	t.Run("default value supplies the type", func(t *testing.T) {
		sig := typeschema.NewSignature("f", "",
			typeschema.Param{Name: "limit"}.WithDefault(25),
		)
		s, err := typeschema.FuncToSchema(sig)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		limit, ok := s.Properties.Get("limit")
		if !ok {
			t.Fatal("missing property limit")
		}
		if len(limit.Type) != 1 || limit.Type[0] != "integer" {
			t.Errorf("limit.Type = %v, want [integer]", limit.Type)
		}
		if limit.Default != 25 {
			t.Errorf("limit.Default = %v, want 25", limit.Default)
		}
		if len(s.Required) != 0 {
			t.Errorf("Required = %v, want empty", s.Required)
		}
	})

	t.Run("type handler resolves it", func(t *testing.T) {
		opt := typeschema.ConvertOpt{
			TypeHandler: func(tp typeschema.Type) *js.Schema {
				if tp == nil {
					return &js.Schema{Type: js.TypeSet{"string"}}
				}
				return nil
			},
		}
		sig := typeschema.NewSignature("f", "", typeschema.Param{Name: "a"})
		s, err := typeschema.FuncToSchema(sig, opt)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		a, ok := s.Properties.Get("a")
		if !ok || len(a.Type) != 1 || a.Type[0] != "string" {
			t.Errorf("a = %+v, want the handler schema", a)
		}
	})

	t.Run("lenient mode falls back to object", func(t *testing.T) {
		sig := typeschema.NewSignature("f", "", typeschema.Param{Name: "a"})
		s, err := typeschema.FuncToSchema(sig, typeschema.ConvertOpt{Lenient: true})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		a, ok := s.Properties.Get("a")
		if !ok || len(a.Type) != 1 || a.Type[0] != "object" {
			t.Errorf("a = %+v, want a bare object schema", a)
		}
	})
}

func searchArticles(ctx context.Context, query string, limit int) error {
	_ = ctx
	_ = query
	_ = limit
	return nil
}

func TestSignatureOf(t *testing.T) {
	sig, err := typeschema.SignatureOf(searchArticles, "query", "limit")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(sig.Params) != 2 {
		t.Fatalf("params = %+v, want query and limit (context skipped)", sig.Params)
	}
	if sig.Params[0].Name != "query" || sig.Params[0].Type.Kind() != typeschema.KindString {
		t.Errorf("param 0 = %+v", sig.Params[0])
	}
	if sig.Params[1].Name != "limit" || sig.Params[1].Type.Kind() != typeschema.KindInteger {
		t.Errorf("param 1 = %+v", sig.Params[1])
	}
}

func TestSignatureOfSkipsVariadicTail(t *testing.T) {
	join := func(sep string, parts ...string) string { _ = sep; return "" }
	sig, err := typeschema.SignatureOf(join, "sep")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(sig.Params) != 1 || sig.Params[0].Name != "sep" {
		t.Errorf("params = %+v, want only sep", sig.Params)
	}
}

func TestFuncToSchemaFromNativeFunc(t *testing.T) {
	s, err := typeschema.FuncToSchema(searchArticles)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(s.Properties) != 2 {
		t.Fatalf("properties = %v, want 2 entries", s.Properties)
	}
	// Names are positional when the caller does not supply them.
	if _, ok := s.Properties.Get("arg0"); !ok {
		t.Error("missing arg0 property")
	}
	if diff := cmp.Diff([]string{"arg0", "arg1"}, s.Required); diff != "" {
		t.Errorf("Required mismatch (-want +got):\n%s", diff)
	}
}

func TestFuncToSchemaRejectsNonFunc(t *testing.T) {
	if _, err := typeschema.FuncToSchema(42); err == nil {
		t.Fatal("expected an error for a non-function value")
	}
}
