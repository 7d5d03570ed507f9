package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"google.golang.org/genai"
)

type SchemaType string

const (
	TypeObject  SchemaType = "object"
	TypeArray   SchemaType = "array"
	TypeString  SchemaType = "string"
	TypeInteger SchemaType = "integer"
	TypeNumber  SchemaType = "number"
	TypeBoolean SchemaType = "boolean"
)

// Schema is the structured-output contract sent with a completion request
// and checked against the returned object. Object properties are always
// required; optional values are expressed with Nullable.
type Schema struct {
	Type        SchemaType
	Description string
	Properties  []Property
	Items       *Schema
	Enum        []string
	Minimum     *float64
	Maximum     *float64
	Nullable    bool

	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
}

type Property struct {
	Name   string
	Schema *Schema
}

func Object(props ...Property) *Schema {
	return &Schema{Type: TypeObject, Properties: props}
}

func Prop(name string, s *Schema) Property {
	return Property{Name: name, Schema: s}
}

func String() *Schema {
	return &Schema{Type: TypeString}
}

func Integer() *Schema {
	return &Schema{Type: TypeInteger}
}

// Score is an integer bounded to [0,100].
func Score() *Schema {
	lo, hi := 0.0, 100.0
	return &Schema{Type: TypeInteger, Minimum: &lo, Maximum: &hi}
}

func Enum(values ...string) *Schema {
	return &Schema{Type: TypeString, Enum: values}
}

func ArrayOf(item *Schema) *Schema {
	return &Schema{Type: TypeArray, Items: item}
}

func (s *Schema) Describe(desc string) *Schema {
	s.Description = desc
	return s
}

func (s *Schema) OrNull() *Schema {
	s.Nullable = true
	return s
}

// JSONSchema renders s in the strict JSON Schema dialect accepted by
// OpenAI-compatible response_format parameters.
func (s *Schema) JSONSchema() map[string]any {
	out := map[string]any{}
	if s.Nullable {
		out["type"] = []string{string(s.Type), "null"}
	} else {
		out["type"] = string(s.Type)
	}
	if s.Description != "" {
		out["description"] = s.Description
	}
	switch s.Type {
	case TypeObject:
		props := make(map[string]any, len(s.Properties))
		required := make([]string, 0, len(s.Properties))
		for _, p := range s.Properties {
			props[p.Name] = p.Schema.JSONSchema()
			required = append(required, p.Name)
		}
		out["properties"] = props
		out["required"] = required
		out["additionalProperties"] = false
	case TypeArray:
		if s.Items != nil {
			out["items"] = s.Items.JSONSchema()
		}
	}
	if len(s.Enum) > 0 {
		enum := make([]any, 0, len(s.Enum)+1)
		for _, v := range s.Enum {
			enum = append(enum, v)
		}
		if s.Nullable {
			enum = append(enum, nil)
		}
		out["enum"] = enum
	}
	if s.Minimum != nil {
		out["minimum"] = *s.Minimum
	}
	if s.Maximum != nil {
		out["maximum"] = *s.Maximum
	}
	return out
}

var genaiTypes = map[SchemaType]genai.Type{
	TypeObject:  genai.TypeObject,
	TypeArray:   genai.TypeArray,
	TypeString:  genai.TypeString,
	TypeInteger: genai.TypeInteger,
	TypeNumber:  genai.TypeNumber,
	TypeBoolean: genai.TypeBoolean,
}

// Genai renders s as a Gemini response schema.
func (s *Schema) Genai() *genai.Schema {
	out := &genai.Schema{
		Type:        genaiTypes[s.Type],
		Description: s.Description,
		Enum:        s.Enum,
		Minimum:     s.Minimum,
		Maximum:     s.Maximum,
	}
	if s.Nullable {
		out.Nullable = genai.Ptr(true)
	}
	if s.Type == TypeObject {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for _, p := range s.Properties {
			out.Properties[p.Name] = p.Schema.Genai()
			out.Required = append(out.Required, p.Name)
			out.PropertyOrdering = append(out.PropertyOrdering, p.Name)
		}
	}
	if s.Items != nil {
		out.Items = s.Items.Genai()
	}
	return out
}

// Validate checks raw JSON text against the JSON Schema rendering of s.
// The compiled form is built on first use and reused.
func (s *Schema) Validate(raw string) error {
	s.compileOnce.Do(func() {
		s.compiled, s.compileErr = s.compile()
	})
	if s.compileErr != nil {
		return fmt.Errorf("compile schema: %w", s.compileErr)
	}
	inst, err := jsonschema.UnmarshalJSON(strings.NewReader(raw))
	if err != nil {
		return err
	}
	return s.compiled.Validate(inst)
}

func (s *Schema) compile() (*jsonschema.Schema, error) {
	rendered, err := json.Marshal(s.JSONSchema())
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(rendered))
	if err != nil {
		return nil, err
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", doc); err != nil {
		return nil, err
	}
	return c.Compile("schema.json")
}
