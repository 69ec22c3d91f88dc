package tool

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/voicepod/devicekit-go/internal/errors"
)

// PropertyType is the JSON type a tool parameter accepts.
type PropertyType int

// Supported parameter types.
const (
	PropertyTypeBoolean PropertyType = iota
	PropertyTypeInteger
	PropertyTypeString
)

func (t PropertyType) String() string {
	switch t {
	case PropertyTypeBoolean:
		return "boolean"
	case PropertyTypeInteger:
		return "integer"
	case PropertyTypeString:
		return "string"
	default:
		return "unknown"
	}
}

// Property describes one tool parameter: name, type, optional default, and
// optional integer bounds. A Property also carries its bound value after
// PropertyList.Bind.
type Property struct {
	name       string
	typ        PropertyType
	value      any
	hasDefault bool
	hasRange   bool
	min        int
	max        int
}

// PropertyOption configures a Property during construction.
type PropertyOption func(*Property)

// WithDefault gives the property a default value, making it optional for
// callers. The value must match the property type (bool, int, or string).
func WithDefault(v any) PropertyOption {
	return func(p *Property) {
		p.value = v
		p.hasDefault = true
	}
}

// WithRange bounds an integer property to [min, max] inclusive. Ignored for
// non-integer properties.
func WithRange(min, max int) PropertyOption {
	return func(p *Property) {
		if p.typ != PropertyTypeInteger {
			return
		}

		p.hasRange = true
		p.min = min
		p.max = max
	}
}

// Boolean declares a boolean parameter.
func Boolean(name string, opts ...PropertyOption) Property {
	return newProperty(name, PropertyTypeBoolean, opts)
}

// Integer declares an integer parameter.
func Integer(name string, opts ...PropertyOption) Property {
	return newProperty(name, PropertyTypeInteger, opts)
}

// String declares a string parameter.
func String(name string, opts ...PropertyOption) Property {
	return newProperty(name, PropertyTypeString, opts)
}

func newProperty(name string, typ PropertyType, opts []PropertyOption) Property {
	p := Property{name: name, typ: typ}

	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// Name returns the parameter name.
func (p Property) Name() string { return p.name }

// Type returns the parameter type.
func (p Property) Type() PropertyType { return p.typ }

// HasDefault reports whether the parameter declares a default and may be
// omitted by the caller.
func (p Property) HasDefault() bool { return p.hasDefault }

// Bool returns the bound boolean value.
func (p Property) Bool() bool {
	v, _ := p.value.(bool)

	return v
}

// Int returns the bound integer value.
func (p Property) Int() int {
	v, _ := p.value.(int)

	return v
}

// Str returns the bound string value.
func (p Property) Str() string {
	v, _ := p.value.(string)

	return v
}

// schema returns the JSON Schema fragment for this parameter.
func (p Property) schema() *jsonschema.Schema {
	s := &jsonschema.Schema{Type: p.typ.String()}

	if p.typ == PropertyTypeInteger && p.hasRange {
		min := float64(p.min)
		max := float64(p.max)
		s.Minimum = &min
		s.Maximum = &max
	}

	if p.hasDefault {
		if raw, err := json.Marshal(p.value); err == nil {
			s.Default = raw
		}
	}

	return s
}

// PropertyList is an ordered list of tool parameters.
type PropertyList []Property

// Get returns the parameter with the given name.
func (pl PropertyList) Get(name string) (Property, bool) {
	for _, p := range pl {
		if p.name == name {
			return p, true
		}
	}

	return Property{}, false
}

// Schema builds the JSON Schema object for the whole parameter list.
// Parameters without defaults are required.
func (pl PropertyList) Schema() *jsonschema.Schema {
	s := &jsonschema.Schema{
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema, len(pl)),
	}

	for _, p := range pl {
		s.Properties[p.name] = p.schema()

		if !p.hasDefault {
			s.Required = append(s.Required, p.name)
		}
	}

	return s
}

// Bind produces a bound copy of the list from decoded JSON arguments.
//
// Each parameter is matched by exact name and JSON type. A missing or
// type-mismatched argument is tolerated only when the parameter declares a
// default; otherwise Bind fails naming the first offending parameter, before
// anything executes. Integer bounds are enforced here.
func (pl PropertyList) Bind(args map[string]any) (PropertyList, error) {
	bound := make(PropertyList, len(pl))
	copy(bound, pl)

	for i := range bound {
		p := &bound[i]
		found := false

		if raw, ok := args[p.name]; ok {
			switch p.typ {
			case PropertyTypeBoolean:
				if v, ok := raw.(bool); ok {
					p.value = v
					found = true
				}
			case PropertyTypeInteger:
				// encoding/json decodes numbers to float64.
				if v, ok := raw.(float64); ok {
					n := int(v)
					if p.hasRange && (n < p.min || n > p.max) {
						return nil, &errors.InvalidArgumentError{Name: p.name}
					}

					p.value = n
					found = true
				}
			case PropertyTypeString:
				if v, ok := raw.(string); ok {
					p.value = v
					found = true
				}
			}
		}

		if !found && !p.hasDefault {
			return nil, &errors.InvalidArgumentError{Name: p.name, Missing: true}
		}
	}

	return bound, nil
}
