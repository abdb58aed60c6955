package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSandboxRunStatusFromString(t *testing.T) {
	for _, v := range SandboxRunStatusValues {
		got, err := NewSandboxRunStatusFromString(string(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.True(t, got.IsValid())
	}

	_, err := NewSandboxRunStatusFromString("archived")
	assert.ErrorIs(t, err, ErrInvalidEnumValue)
	assert.EqualError(t, err, "archived is not a valid SandboxRunStatus")

	_, err = NewSandboxRunStatusFromString("")
	assert.ErrorIs(t, err, ErrInvalidEnumValue)
}

func TestEnumTags(t *testing.T) {
	assert.Equal(t, []SandboxRunStatus{
		SandboxRunStatusPaused, SandboxRunStatusRunning, SandboxRunStatusStopped,
	}, SandboxRunStatusValues)

	assert.Equal(t, []SandboxRunEndReason{
		SandboxRunEndReasonError, SandboxRunEndReasonKilled, SandboxRunEndReasonShutdown, SandboxRunEndReasonTimeout,
	}, SandboxRunEndReasonValues)

	assert.Equal(t, "process_start", SandboxLogEventTypeProcessStart.String())
	assert.Equal(t, "process_end", SandboxLogEventTypeProcessEnd.String())
	assert.Equal(t, "stderr", SandboxLogEventTypeStderr.String())
	assert.Equal(t, "stdout", SandboxLogEventTypeStdout.String())
}

func TestEnumIsValid(t *testing.T) {
	assert.False(t, SandboxRunStatus("Running").IsValid())
	assert.False(t, SandboxRunEndReason("crashed").IsValid())
	assert.False(t, SandboxLogEventType("").IsValid())
	assert.True(t, SandboxLogEventType("stderr").IsValid())
}

func TestEnumPtr(t *testing.T) {
	p := SandboxRunEndReasonKilled.Ptr()
	require.NotNil(t, p)
	assert.Equal(t, SandboxRunEndReasonKilled, *p)
}

func TestEnumUnmarshalText(t *testing.T) {
	var filter struct {
		Status SandboxRunStatus `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"status":"paused"}`), &filter))
	assert.Equal(t, SandboxRunStatusPaused, filter.Status)

	err := json.Unmarshal([]byte(`{"status":"archived"}`), &filter)
	assert.ErrorIs(t, err, ErrInvalidEnumValue)
	assert.Equal(t, SandboxRunStatusPaused, filter.Status)
}
