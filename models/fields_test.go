package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessResult(t *testing.T) {
	var fields SandboxLogEntryFields

	_, err := fields.ProcessResult()
	assert.ErrorIs(t, err, ErrKeyNotFound)

	fields.Set(FieldProcessResult, `{"exit_code":2,"error":"boom"}`)
	res, err := fields.ProcessResult()
	require.NoError(t, err)
	assert.Equal(t, 2, res.ExitCode)
	assert.Equal(t, "boom", res.Error)

	fields.Set(FieldProcessResult, `not json`)
	_, err = fields.ProcessResult()
	assert.Error(t, err)
}

func TestStringValue(t *testing.T) {
	var fields SandboxLogEntryFields
	fields.Set(FieldCommand, "python main.py")
	fields.Set("pid", 42)

	cmd, ok := fields.StringValue(FieldCommand)
	assert.True(t, ok)
	assert.Equal(t, "python main.py", cmd)

	_, ok = fields.StringValue("pid")
	assert.False(t, ok)
	_, ok = fields.StringValue("missing")
	assert.False(t, ok)
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-01-01T00:00:00Z", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-01-01T00:00:00", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-05-01T12:30:00.123456+02:00", time.Date(2024, 5, 1, 10, 30, 0, 123456000, time.UTC)},
		{"2024-05-01T12:30:00-07:00", time.Date(2024, 5, 1, 19, 30, 0, 0, time.UTC)},
		{"2024-01-01 10:00:00", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{"2024-01-01 10:00:00+02:00", time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)},
		{"20240101T000000Z", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"20240101T103000.250+0200", time.Date(2024, 1, 1, 8, 30, 0, 250000000, time.UTC)},
		{"20240101T103000", time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}

	for _, bad := range []string{"", "yesterday", "01/02/2024", "20241301T000000Z"} {
		_, err := ParseTimestamp(bad)
		assert.ErrorIs(t, err, ErrMalformedTimestamp, bad)
	}
}

func TestFormatTimestampKeepsOffset(t *testing.T) {
	ts, err := ParseTimestamp("2024-05-01T12:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01T12:30:00+02:00", FormatTimestamp(ts))
}
