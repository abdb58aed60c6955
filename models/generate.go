// Package models holds the wire types of the sandbox runs and logs API.
//
// Enums and records are generated from schema.yaml, which is the single
// source of truth for the mapping between Go field names and wire keys.
// Records keep unknown wire keys in an embedded AdditionalProperties bag, so
// decoding and re-encoding a payload from a newer API version loses nothing.
// Optional fields use Optional[T] to tell an absent key from a zero value.
package models

//go:generate go run ../cmd/modelgen -schema schema.yaml -out .
