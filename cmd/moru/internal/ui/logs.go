package ui

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/moru-ai/sdks/models"
)

// Format selects how runs and log entries are printed.
type Format string

const (
	FormatPretty Format = "pretty"
	FormatJSON   Format = "json"
)

// ParseFormat accepts pretty or json in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatPretty, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("invalid format %q (pretty, json)", s)
}

// FormatLogTime renders t in local time as HH:MM:SS.cc.
func FormatLogTime(t time.Time) string {
	lt := t.Local()
	return fmt.Sprintf("%s.%02d", lt.Format("15:04:05"), lt.Nanosecond()/int(10*time.Millisecond))
}

// ExitStatus returns the exit code and error message of a process_end entry.
// A process_result that is not valid JSON falls back to the message text.
func ExitStatus(entry *models.SandboxLogEntry) (int, string) {
	res, err := entry.Fields.ProcessResult()
	switch {
	case err == nil:
		return res.ExitCode, res.Error
	case errors.Is(err, models.ErrKeyNotFound):
		return 0, ""
	}
	code, _ := strconv.Atoi(strings.TrimSpace(entry.Message))
	return code, ""
}

// FormatLogEntry renders one entry for the terminal, without a trailing
// newline.
func FormatLogEntry(entry *models.SandboxLogEntry, showTimestamp bool) string {
	prefix := ""
	if showTimestamp {
		prefix = StyleDim.Render(FormatLogTime(entry.Timestamp) + "  ")
	}

	switch entry.EventType {
	case models.SandboxLogEventTypeProcessStart:
		command, _ := entry.Fields.StringValue(models.FieldCommand)
		if command == "" {
			command = entry.Message
		}
		return prefix + StyleDim.Render("$ "+command)

	case models.SandboxLogEventTypeProcessEnd:
		code, errMsg := ExitStatus(entry)
		text := fmt.Sprintf("exit %d", code)
		if errMsg != "" && code != 0 {
			text += " - " + errMsg
		}
		if code == 0 {
			return prefix + StyleSuccess.Render(text)
		}
		return prefix + StyleError.Render(text)

	case models.SandboxLogEventTypeStderr:
		return prefix + StyleError.Render(entry.Message)
	}
	return prefix + entry.Message
}

type logLine struct {
	Timestamp string                 `json:"timestamp"`
	EventType string                 `json:"eventType"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// MarshalLogEntry renders one entry as a single JSON line. Fields are omitted
// when empty and the timestamp is UTC with millisecond precision.
func MarshalLogEntry(entry *models.SandboxLogEntry) ([]byte, error) {
	return json.Marshal(logLine{
		Timestamp: entry.Timestamp.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		EventType: entry.EventType.String(),
		Message:   entry.Message,
		Fields:    entry.Fields.ToMap(),
	})
}
