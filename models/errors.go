package models

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEnumValue is returned when a raw value is not a declared enum tag.
	ErrInvalidEnumValue = errors.New("invalid enum value")

	// ErrMissingRequiredField is returned when a required wire key is absent.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrMalformedTimestamp is returned when a timestamp is not valid ISO-8601.
	ErrMalformedTimestamp = errors.New("malformed timestamp")

	// ErrInvalidFieldType is returned when a wire value has the wrong JSON type.
	ErrInvalidFieldType = errors.New("invalid field type")

	// ErrKeyNotFound is returned by extension bag lookups on absent keys.
	ErrKeyNotFound = errors.New("key not found")
)

// InvalidEnumValueError reports a value outside an enum's declared tags.
type InvalidEnumValueError struct {
	Enum  string
	Value interface{}
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("%v is not a valid %s", e.Value, e.Enum)
}

func (e *InvalidEnumValueError) Unwrap() error {
	return ErrInvalidEnumValue
}

// MissingRequiredFieldError names the wire key a decode expected to find.
type MissingRequiredFieldError struct {
	Record string
	Field  string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Record, e.Field)
}

func (e *MissingRequiredFieldError) Unwrap() error {
	return ErrMissingRequiredField
}

// MalformedTimestampError wraps the parser failure for a timestamp value.
type MalformedTimestampError struct {
	Value interface{}
	Err   error
}

func (e *MalformedTimestampError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("malformed timestamp %v", e.Value)
	}
	return fmt.Sprintf("malformed timestamp %v: %v", e.Value, e.Err)
}

func (e *MalformedTimestampError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedTimestamp}
	}
	return []error{ErrMalformedTimestamp, e.Err}
}

// InvalidFieldTypeError reports a wire value whose JSON type does not match
// the declared field type.
type InvalidFieldTypeError struct {
	Want  string
	Value interface{}
}

func (e *InvalidFieldTypeError) Error() string {
	return fmt.Sprintf("expected %s, got %T", e.Want, e.Value)
}

func (e *InvalidFieldTypeError) Unwrap() error {
	return ErrInvalidFieldType
}

// FieldError attaches the record and wire key to a value decode failure.
type FieldError struct {
	Record string
	Field  string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Record, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// KeyNotFoundError is returned by AdditionalProperties.Get and Delete.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %q not found", e.Key)
}

func (e *KeyNotFoundError) Unwrap() error {
	return ErrKeyNotFound
}
