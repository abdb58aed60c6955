package main

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
)

const header = "// Code generated by modelgen. DO NOT EDIT.\n\n"

var funcs = template.FuncMap{
	"comment":   comment,
	"constName": ConstName,
	"quote":     func(s string) string { return fmt.Sprintf("%q", s) },
}

var enumTmpl = template.Must(template.New("enum").Funcs(funcs).Parse(header + `package {{.Package}}

{{comment (printf "%s %s" .Name .Doc)}}
type {{.Name}} string

const (
{{- range .Values}}
	{{$.Name}}{{constName .}} {{$.Name}} = {{quote .}}
{{- end}}
)

// {{.Name}}Values lists every declared {{.Name}} tag.
var {{.Name}}Values = []{{.Name}}{
{{- range .Values}}
	{{$.Name}}{{constName .}},
{{- end}}
}

// New{{.Name}}FromString parses s. It fails with ErrInvalidEnumValue when s
// is not a declared tag.
func New{{.Name}}FromString(s string) ({{.Name}}, error) {
	switch s {
{{- range .Values}}
	case {{quote .}}:
		return {{$.Name}}{{constName .}}, nil
{{- end}}
	}
	return "", &InvalidEnumValueError{Enum: {{quote .Name}}, Value: s}
}

// IsValid reports whether {{.Receiver}} is a declared tag.
func ({{.Receiver}} {{.Name}}) IsValid() bool {
	_, err := New{{.Name}}FromString(string({{.Receiver}}))
	return err == nil
}

func ({{.Receiver}} {{.Name}}) String() string {
	return string({{.Receiver}})
}

func ({{.Receiver}} {{.Name}}) Ptr() *{{.Name}} {
	return &{{.Receiver}}
}

// UnmarshalText implements encoding.TextUnmarshaler and rejects undeclared tags.
func ({{.Receiver}} *{{.Name}}) UnmarshalText(text []byte) error {
	v, err := New{{.Name}}FromString(string(text))
	if err != nil {
		return err
	}
	*{{.Receiver}} = v
	return nil
}
`))

var recordTmpl = template.Must(template.New("record").Funcs(funcs).Parse(header + `package {{.Package}}

import (
	"encoding/json"
{{- if .UsesTime}}
	"time"
{{- end}}
)

{{comment (printf "%s %s" .Name .Doc)}}
type {{.Name}} struct {
{{- range .Fields}}
{{- if .Doc}}
	// {{.Doc}}
{{- end}}
	{{.Name}} {{.GoType}}
{{- end}}
{{- if .Fields}}
{{end}}
	AdditionalProperties
}

// ToMap encodes {{.Receiver}} into its wire form. Extension entries are written
// first so that declared fields win on a key collision. Unset optional fields
// are omitted.
func ({{.Receiver}} {{.Name}}) ToMap() map[string]interface{} {
	out := {{.Receiver}}.AdditionalProperties.Properties()
{{- range .Fields}}
{{- if .Required}}
	out[{{quote .Wire}}] = {{.Encode (printf "%s.%s" $.Receiver .Name)}}
{{- else}}
	if v, ok := {{$.Receiver}}.{{.Name}}.Get(); ok {
		out[{{quote .Wire}}] = {{.Encode "v"}}
	}
{{- end}}
{{- end}}
	return out
}

// {{.Name}}FromMap decodes the wire form in src. Keys that are not declared
// fields of {{.Name}} are kept in the extension bag. src is not modified.
func {{.Name}}FromMap(src map[string]interface{}) (*{{.Name}}, error) {
	w := newWireObject({{quote .Name}}, src)
{{- range .Fields}}

	{{.Var}}, err := {{if .Required}}required{{else}}optional{{end}}(w, {{quote .Wire}}, {{.Decoder}})
	if err != nil {
		return nil, err
	}
{{- end}}

{{- if .Fields}}

	{{.Receiver}} := &{{.Name}}{
{{- range .Fields}}
		{{.Name}}: {{.Var}},
{{- end}}
	}
{{- else}}

	{{.Receiver}} := &{{.Name}}{}
{{- end}}
	{{.Receiver}}.AdditionalProperties = w.rest()
	return {{.Receiver}}, nil
}

// MarshalJSON encodes the wire form produced by ToMap.
func ({{.Receiver}} {{.Name}}) MarshalJSON() ([]byte, error) {
	return json.Marshal({{.Receiver}}.ToMap())
}

// UnmarshalJSON decodes a wire payload through {{.Name}}FromMap. The receiver
// is left untouched on error.
func ({{.Receiver}} *{{.Name}}) UnmarshalJSON(data []byte) error {
	src, err := unmarshalWireObject(data)
	if err != nil {
		return err
	}
	v, err := {{.Name}}FromMap(src)
	if err != nil {
		return err
	}
	*{{.Receiver}} = *v
	return nil
}

// Clone returns a copy of {{.Receiver}} that owns its extension bag. Plain
// assignment shares the bag with the original.
func ({{.Receiver}} {{.Name}}) Clone() {{.Name}} {
	c := {{.Receiver}}
	c.AdditionalProperties = {{.Receiver}}.AdditionalProperties.clone()
{{- range .Fields}}
{{- if eq .Kind "record"}}
{{- if .Required}}
	c.{{.Name}} = {{$.Receiver}}.{{.Name}}.Clone()
{{- else}}
	if v, ok := {{$.Receiver}}.{{.Name}}.Get(); ok {
		c.{{.Name}} = Some(v.Clone())
	}
{{- end}}
{{- end}}
{{- end}}
	return c
}
`))

type enumData struct {
	Enum
	Package  string
	Receiver string
}

type recordData struct {
	Record
	Package  string
	Receiver string
	UsesTime bool
}

// RenderEnum renders the Go source for one enum.
func RenderEnum(pkg string, e Enum) ([]byte, error) {
	return execute(enumTmpl, enumData{Enum: e, Package: pkg, Receiver: receiver(e.Name)})
}

// RenderRecord renders the Go source for one record.
func RenderRecord(pkg string, r Record) ([]byte, error) {
	data := recordData{Record: r, Package: pkg, Receiver: receiver(r.Name)}
	for _, f := range r.Fields {
		if f.Kind == KindTimestamp {
			data.UsesTime = true
		}
	}
	return execute(recordTmpl, data)
}

// Render renders every type in the schema, keyed by file name.
func Render(s *Schema) (map[string][]byte, error) {
	out := make(map[string][]byte)
	for _, e := range s.Enums {
		src, err := RenderEnum(s.Package, e)
		if err != nil {
			return nil, fmt.Errorf("enum %s: %w", e.Name, err)
		}
		out[FileName(e.Name)] = src
	}
	for _, r := range s.Records {
		src, err := RenderRecord(s.Package, r)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", r.Name, err)
		}
		out[FileName(r.Name)] = src
	}
	return out, nil
}

func execute(t *template.Template, data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code does not parse: %w\n%s", err, buf.String())
	}
	return src, nil
}

func receiver(typeName string) string {
	return strings.ToLower(typeName[:1])
}

// comment wraps text into // lines of at most 80 columns.
func comment(text string) string {
	const width = 77
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	for i, l := range lines {
		lines[i] = "// " + l
	}
	return strings.Join(lines, "\n")
}
