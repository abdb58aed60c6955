package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/relvacode/iso8601"
)

// wireObject is the working copy of a payload during decode. Declared keys are
// popped as they are decoded; whatever is left becomes the extension bag.
type wireObject struct {
	record string
	fields map[string]interface{}
}

func newWireObject(record string, src map[string]interface{}) *wireObject {
	fields := make(map[string]interface{}, len(src))
	for k, v := range src {
		fields[k] = v
	}
	return &wireObject{record: record, fields: fields}
}

func (w *wireObject) pop(key string) (interface{}, bool) {
	v, ok := w.fields[key]
	if ok {
		delete(w.fields, key)
	}
	return v, ok
}

func (w *wireObject) rest() AdditionalProperties {
	return AdditionalProperties{extra: w.fields}
}

// required pops key and decodes it, failing when the key is absent.
func required[T any](w *wireObject, key string, decode func(raw interface{}) (T, error)) (T, error) {
	raw, ok := w.pop(key)
	if !ok {
		var zero T
		return zero, &MissingRequiredFieldError{Record: w.record, Field: key}
	}
	v, err := decode(raw)
	if err != nil {
		var zero T
		return zero, &FieldError{Record: w.record, Field: key, Err: err}
	}
	return v, nil
}

// optional pops key and decodes it when present.
func optional[T any](w *wireObject, key string, decode func(raw interface{}) (T, error)) (Optional[T], error) {
	raw, ok := w.pop(key)
	if !ok {
		return Optional[T]{}, nil
	}
	v, err := decode(raw)
	if err != nil {
		return Optional[T]{}, &FieldError{Record: w.record, Field: key, Err: err}
	}
	return Some(v), nil
}

func decodeString(raw interface{}) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", &InvalidFieldTypeError{Want: "string", Value: raw}
	}
	return s, nil
}

func decodeTimestamp(raw interface{}) (time.Time, error) {
	s, ok := raw.(string)
	if !ok {
		return time.Time{}, &MalformedTimestampError{Value: raw}
	}
	return ParseTimestamp(s)
}

func enumDecoder[T ~string](enum string, parse func(string) (T, error)) func(raw interface{}) (T, error) {
	return func(raw interface{}) (T, error) {
		s, ok := raw.(string)
		if !ok {
			var zero T
			return zero, &InvalidEnumValueError{Enum: enum, Value: raw}
		}
		return parse(s)
	}
}

func recordDecoder[T any](fromMap func(map[string]interface{}) (*T, error)) func(raw interface{}) (T, error) {
	return func(raw interface{}) (T, error) {
		var zero T
		m, ok := raw.(map[string]interface{})
		if !ok {
			return zero, &InvalidFieldTypeError{Want: "object", Value: raw}
		}
		v, err := fromMap(m)
		if err != nil {
			return zero, err
		}
		return *v, nil
	}
}

// basicLayouts covers the ISO-8601 basic format, which iso8601 does not parse.
var basicLayouts = []string{
	"20060102T150405Z0700",
	"20060102T150405.999999999Z0700",
	"20060102T150405",
	"20060102T150405.999999999",
	"20060102",
}

// ParseTimestamp parses an ISO-8601 timestamp in extended or basic format. A
// space may separate date and time. Values without a zone are UTC.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := iso8601.ParseString(s)
	if err == nil {
		return t, nil
	}
	if len(s) > 10 && s[10] == ' ' {
		if t, spaceErr := iso8601.ParseString(s[:10] + "T" + s[11:]); spaceErr == nil {
			return t, nil
		}
	}
	for _, layout := range basicLayouts {
		if t, basicErr := time.Parse(layout, s); basicErr == nil {
			return t, nil
		}
	}
	return time.Time{}, &MalformedTimestampError{Value: s, Err: err}
}

// FormatTimestamp renders t as RFC 3339 with nanosecond precision, keeping its
// offset.
func FormatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func encodeTimestamp(t time.Time) string {
	return FormatTimestamp(t)
}

// unmarshalWireObject decodes a JSON object, keeping numbers as json.Number so
// extension values re-encode exactly.
func unmarshalWireObject(data []byte) (map[string]interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var src map[string]interface{}
	if err := dec.Decode(&src); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, &InvalidFieldTypeError{Want: "object", Value: nil}
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after JSON object")
	}
	return src, nil
}
