package typeschema

import (
	"errors"

	js "github.com/reoring/typeschema/jsonschema"
)

// Param describes one callable parameter. A nil Type means the parameter
// carried no annotation; conversion then tries the TypeHandler, infers
// from the default value, or fails with UnsupportedTypeError.
type Param struct {
	Name       string
	Type       Type
	Default    any
	HasDefault bool
}

// P declares a parameter with the given name and type.
func P(name string, t Type) Param { return Param{Name: name, Type: t} }

// WithDefault returns a copy of the parameter carrying a default value.
func (p Param) WithDefault(v any) Param {
	p.Default = v
	p.HasDefault = true
	return p
}

// Signature is the introspected shape of a callable: ordered parameters
// plus the callable's documentation string.
type Signature struct {
	Name   string
	Doc    string
	Params []Param
}

// NewSignature assembles a signature descriptor by hand. Go reflection
// erases parameter names and defaults, so function-calling integrations
// typically declare them explicitly through this constructor.
func NewSignature(name, doc string, params ...Param) Signature {
	return Signature{Name: name, Doc: doc, Params: append([]Param(nil), params...)}
}

// convertSignature builds one object schema from a callable's parameters.
// Parameters named "self" (instance receiver convention) are skipped.
// Required lists parameters that carry no default and whose type does not
// admit null.
func (c *converter) convertSignature(sig Signature) (*js.Schema, error) {
	obj := &js.Schema{Type: js.TypeSet{"object"}}
	var required []string
	for _, p := range sig.Params {
		if p.Name == "self" {
			continue
		}

		ps, typRequired, err := c.convertParam(p)
		if err != nil {
			return nil, err
		}
		if p.HasDefault {
			ps.Default = p.Default
		}
		obj.Properties = append(obj.Properties, js.Property{Name: p.Name, Schema: ps})
		if typRequired && !p.HasDefault {
			required = append(required, p.Name)
		}
	}
	obj.Required = required
	if sig.Doc != "" {
		obj.Description = sig.Doc
	}
	return obj, nil
}

func (c *converter) convertParam(p Param) (*js.Schema, bool, error) {
	t := p.Type
	if t == nil && p.HasDefault {
		t = descriptorOfValue(p.Default)
	}
	if t == nil {
		if c.opt.TypeHandler != nil {
			if s := c.opt.TypeHandler(nil); s != nil {
				return s, true, nil
			}
		}
		return c.unsupported(nil, p.Name)
	}
	s, typRequired, err := c.convert(t, 0)
	if err != nil {
		var ute *UnsupportedTypeError
		if errors.As(err, &ute) && ute.Param == "" {
			return nil, false, &UnsupportedTypeError{Type: ute.Type, Param: p.Name}
		}
		return nil, false, err
	}
	return s, typRequired, nil
}
