package models

import (
	"encoding/json"
	"fmt"
)

// Well-known keys of SandboxLogEntryFields.
const (
	FieldCommand       = "command"
	FieldProcessResult = "process_result"
)

// ProcessResult is the JSON document carried in the process_result field of a
// process_end entry.
type ProcessResult struct {
	ExitCode int    `json:"exit_code"`
	Error    string `json:"error,omitempty"`
}

// StringValue returns the string stored under key. The second result is false when
// the key is absent or not a string.
func (f SandboxLogEntryFields) StringValue(key string) (string, bool) {
	v, err := f.Get(key)
	if err != nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// ProcessResult decodes the process_result field.
func (f SandboxLogEntryFields) ProcessResult() (*ProcessResult, error) {
	raw, ok := f.StringValue(FieldProcessResult)
	if !ok {
		return nil, &KeyNotFoundError{Key: FieldProcessResult}
	}
	var res ProcessResult
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", FieldProcessResult, err)
	}
	return &res, nil
}
