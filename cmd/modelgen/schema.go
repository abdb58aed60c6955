package main

import (
	"fmt"
	"go/token"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Field kinds understood by the generator.
const (
	KindString    = "string"
	KindTimestamp = "timestamp"
	KindEnum      = "enum"
	KindRecord    = "record"
)

// Schema is the root of models/schema.yaml.
type Schema struct {
	Package string   `yaml:"package"`
	Enums   []Enum   `yaml:"enums"`
	Records []Record `yaml:"records"`
}

// Enum is a closed set of string tags.
type Enum struct {
	Name   string   `yaml:"name"`
	Doc    string   `yaml:"doc"`
	Values []string `yaml:"values"`
}

// Record is an open object with declared fields and an extension bag.
type Record struct {
	Name   string  `yaml:"name"`
	Doc    string  `yaml:"doc"`
	Fields []Field `yaml:"fields"`
}

// Field maps one wire key to one Go struct field.
type Field struct {
	Wire     string `yaml:"wire"`
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Kind     string `yaml:"kind"`
	Required bool   `yaml:"required"`
	Doc      string `yaml:"doc"`
}

// LoadSchema reads and validates a schema file.
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSchema(data)
}

// ParseSchema decodes and validates schema YAML.
func ParseSchema(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks names, kinds and type references.
func (s *Schema) Validate() error {
	if s.Package == "" {
		return fmt.Errorf("schema: package is required")
	}

	types := make(map[string]string)
	for _, e := range s.Enums {
		if !isExported(e.Name) {
			return fmt.Errorf("enum %q: name must be an exported Go identifier", e.Name)
		}
		if _, dup := types[e.Name]; dup {
			return fmt.Errorf("enum %q: duplicate type name", e.Name)
		}
		if len(e.Values) == 0 {
			return fmt.Errorf("enum %q: at least one value is required", e.Name)
		}
		seen := make(map[string]bool)
		for _, v := range e.Values {
			if v == "" {
				return fmt.Errorf("enum %q: empty value", e.Name)
			}
			if seen[v] {
				return fmt.Errorf("enum %q: duplicate value %q", e.Name, v)
			}
			seen[v] = true
		}
		types[e.Name] = KindEnum
	}
	for _, r := range s.Records {
		if !isExported(r.Name) {
			return fmt.Errorf("record %q: name must be an exported Go identifier", r.Name)
		}
		if _, dup := types[r.Name]; dup {
			return fmt.Errorf("record %q: duplicate type name", r.Name)
		}
		types[r.Name] = KindRecord
	}

	for _, r := range s.Records {
		wires := make(map[string]bool)
		names := make(map[string]bool)
		for _, f := range r.Fields {
			if f.Wire == "" {
				return fmt.Errorf("record %q: field %q has no wire key", r.Name, f.Name)
			}
			if wires[f.Wire] {
				return fmt.Errorf("record %q: duplicate wire key %q", r.Name, f.Wire)
			}
			wires[f.Wire] = true
			if !isExported(f.Name) {
				return fmt.Errorf("record %q: field name %q must be an exported Go identifier", r.Name, f.Name)
			}
			if f.Name == "AdditionalProperties" || names[f.Name] {
				return fmt.Errorf("record %q: field name %q is taken", r.Name, f.Name)
			}
			names[f.Name] = true

			switch f.Kind {
			case KindString, KindTimestamp:
				if f.Type != "" {
					return fmt.Errorf("record %q: field %q of kind %s takes no type", r.Name, f.Name, f.Kind)
				}
			case KindEnum, KindRecord:
				if types[f.Type] != f.Kind {
					return fmt.Errorf("record %q: field %q references unknown %s %q", r.Name, f.Name, f.Kind, f.Type)
				}
				if f.Kind == KindRecord && f.Type == r.Name {
					return fmt.Errorf("record %q: field %q cannot embed its own record", r.Name, f.Name)
				}
			default:
				return fmt.Errorf("record %q: field %q has unknown kind %q", r.Name, f.Name, f.Kind)
			}
		}
	}
	return nil
}

// GoType is the in-memory type of the field, wrapped in Optional when the
// field may be absent.
func (f Field) GoType() string {
	t := f.valueType()
	if !f.Required {
		return "Optional[" + t + "]"
	}
	return t
}

func (f Field) valueType() string {
	switch f.Kind {
	case KindString:
		return "string"
	case KindTimestamp:
		return "time.Time"
	}
	return f.Type
}

// Var is the local variable name used for the field during decode.
func (f Field) Var() string {
	v := lowerFirst(f.Name)
	if len(v) == 1 || token.IsKeyword(v) || reservedVars[v] {
		v += "Value"
	}
	return v
}

// reservedVars are identifiers the record template already uses in FromMap.
var reservedVars = map[string]bool{
	"err":      true,
	"src":      true,
	"required": true,
	"optional": true,
}

// Decoder is the expression that turns a raw JSON value into the field value.
func (f Field) Decoder() string {
	switch f.Kind {
	case KindString:
		return "decodeString"
	case KindTimestamp:
		return "decodeTimestamp"
	case KindEnum:
		return fmt.Sprintf("enumDecoder(%q, New%sFromString)", f.Type, f.Type)
	}
	return fmt.Sprintf("recordDecoder(%sFromMap)", f.Type)
}

// Encode returns the expression that renders expr in wire form.
func (f Field) Encode(expr string) string {
	switch f.Kind {
	case KindTimestamp:
		return "encodeTimestamp(" + expr + ")"
	case KindEnum:
		return expr + ".String()"
	case KindRecord:
		return expr + ".ToMap()"
	}
	return expr
}

// ConstName is the Go constant suffix for an enum tag: process_start becomes
// ProcessStart.
func ConstName(value string) string {
	parts := strings.FieldsFunc(value, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || r == ' '
	})
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(upperFirst(strings.ToLower(p)))
	}
	return b.String()
}

// FileName is the generated file name for a type: SandboxRun becomes
// sandbox_run.gen.go.
func FileName(typeName string) string {
	var b strings.Builder
	runes := []rune(typeName)
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (nextLower && unicode.IsUpper(runes[i-1])) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String() + ".gen.go"
}

func isExported(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 && !unicode.IsUpper(r) {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
