package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	moru "github.com/moru-ai/sdks"
	"github.com/moru-ai/sdks/cmd/moru/internal/config"
	"github.com/moru-ai/sdks/models"
	"github.com/moru-ai/sdks/services"
)

type fakeSandboxAPI struct {
	runs      []*models.SandboxRun
	entries   []*models.SandboxLogEntry
	err       error
	listRuns  *services.ListRunsOptions
	listLogs  *services.ListLogsOptions
	follow    *services.FollowOptions
	killed    []string
	missing   map[string]bool
	logsCalls []string
}

func (f *fakeSandboxAPI) ListRuns(ctx context.Context, opts *services.ListRunsOptions) ([]*models.SandboxRun, error) {
	f.listRuns = opts
	return f.runs, f.err
}

func (f *fakeSandboxAPI) ListLogs(ctx context.Context, sandboxID string, opts *services.ListLogsOptions) ([]*models.SandboxLogEntry, error) {
	f.listLogs = opts
	f.logsCalls = append(f.logsCalls, sandboxID)
	return f.entries, f.err
}

func (f *fakeSandboxAPI) Kill(ctx context.Context, sandboxID string) error {
	if f.missing[sandboxID] {
		return fmt.Errorf("%w: %s", services.ErrSandboxNotFound, sandboxID)
	}
	f.killed = append(f.killed, sandboxID)
	return nil
}

func (f *fakeSandboxAPI) FollowLogs(ctx context.Context, sandboxID string, opts *services.FollowOptions, fn func(*models.SandboxLogEntry) error) error {
	f.follow = opts
	for _, e := range f.entries {
		if err := fn(e); err != nil {
			return err
		}
	}
	return f.err
}

func mustDecode[T any](t *testing.T, payload string) *T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(payload), &v))
	return &v
}

// runCLI executes the root command against api with flags reset to their
// defaults.
func runCLI(t *testing.T, api sandboxAPI, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	prevLoad := loadSandboxAPI
	loadSandboxAPI = func() (sandboxAPI, error) { return api, nil }
	t.Cleanup(func() { loadSandboxAPI = prevLoad })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return ansi.Strip(out.String()), err
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestParseStatuses(t *testing.T) {
	statuses, err := parseStatuses("running, paused")
	require.NoError(t, err)
	assert.Equal(t, []models.SandboxRunStatus{models.SandboxRunStatusRunning, models.SandboxRunStatusPaused}, statuses)

	statuses, err = parseStatuses("")
	require.NoError(t, err)
	assert.Nil(t, statuses)

	_, err = parseStatuses("running,archived")
	assert.ErrorIs(t, err, models.ErrInvalidEnumValue)
}

func TestParseEventType(t *testing.T) {
	et, err := parseEventType("all")
	require.NoError(t, err)
	assert.False(t, et.IsSet())

	et, err = parseEventType("STDERR")
	require.NoError(t, err)
	assert.Equal(t, models.SandboxLogEventTypeStderr, et.OrElse(""))

	_, err = parseEventType("process_start")
	assert.Error(t, err)
}

func TestSandboxListPretty(t *testing.T) {
	api := &fakeSandboxAPI{runs: []*models.SandboxRun{
		mustDecode[models.SandboxRun](t, `{"sandboxID":"sbx-1","status":"running","templateID":"t","createdAt":"2024-01-01T00:00:00Z"}`),
	}}

	out, err := runCLI(t, api, "sandbox", "ls", "-s", "running", "-L", "5")
	require.NoError(t, err)

	assert.Equal(t, 5, api.listRuns.Limit)
	assert.Equal(t, []models.SandboxRunStatus{models.SandboxRunStatusRunning}, api.listRuns.Status)
	assert.Contains(t, out, "Running sandboxes")
	assert.Contains(t, out, "sbx-1")
}

func TestSandboxListJSON(t *testing.T) {
	api := &fakeSandboxAPI{runs: []*models.SandboxRun{
		mustDecode[models.SandboxRun](t, `{"sandboxID":"sbx-1","status":"stopped","templateID":"t","createdAt":"2024-01-01T00:00:00Z","cpu":2}`),
	}}

	out, err := runCLI(t, api, "sandbox", "list", "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, services.DefaultRunsLimit, api.listRuns.Limit)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "sbx-1", decoded[0]["sandboxID"])
	assert.Equal(t, float64(2), decoded[0]["cpu"])
	assert.NotContains(t, decoded[0], "endedAt")
}

func TestSandboxListEmptyJSON(t *testing.T) {
	out, err := runCLI(t, &fakeSandboxAPI{}, "sandbox", "list", "-f", "json")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestSandboxListRejectsBadFlags(t *testing.T) {
	_, err := runCLI(t, &fakeSandboxAPI{}, "sandbox", "list", "-s", "archived")
	assert.ErrorIs(t, err, models.ErrInvalidEnumValue)

	_, err = runCLI(t, &fakeSandboxAPI{}, "sandbox", "list", "-f", "yaml")
	assert.Error(t, err)
}

func TestSandboxLogs(t *testing.T) {
	api := &fakeSandboxAPI{entries: []*models.SandboxLogEntry{
		mustDecode[models.SandboxLogEntry](t, `{"eventType":"process_start","fields":{"command":"make"},"message":"","timestamp":"2024-01-01T00:00:00Z"}`),
		mustDecode[models.SandboxLogEntry](t, `{"eventType":"stdout","fields":{},"message":"building","timestamp":"2024-01-01T00:00:01Z"}`),
		mustDecode[models.SandboxLogEntry](t, `{"eventType":"process_end","fields":{"process_result":"{\"exit_code\":1,\"error\":\"failed\"}"},"message":"","timestamp":"2024-01-01T00:00:02Z"}`),
	}}

	out, err := runCLI(t, api, "sandbox", "logs", "sbx-1", "--type", "stdout")
	require.NoError(t, err)

	assert.Equal(t, []string{"sbx-1"}, api.logsCalls)
	assert.Equal(t, models.SandboxLogEventTypeStdout, api.listLogs.EventType.OrElse(""))
	assert.Equal(t, "$ make\nbuilding\nexit 1 - failed\n", out)
}

func TestSandboxLogsFollowJSON(t *testing.T) {
	api := &fakeSandboxAPI{entries: []*models.SandboxLogEntry{
		mustDecode[models.SandboxLogEntry](t, `{"eventType":"stderr","fields":{},"message":"warn","timestamp":"2024-01-01T00:00:00Z"}`),
	}}

	out, err := runCLI(t, api, "sandbox", "lg", "sbx-1", "-f", "--format", "json")
	require.NoError(t, err)

	require.NotNil(t, api.follow)
	assert.False(t, api.follow.EventType.IsSet())
	assert.Equal(t, `{"timestamp":"2024-01-01T00:00:00.000Z","eventType":"stderr","message":"warn"}`+"\n", out)
}

func TestSandboxLogsFollowInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	api := &fakeSandboxAPI{err: context.Canceled}
	resetFlags(rootCmd)
	prevLoad := loadSandboxAPI
	loadSandboxAPI = func() (sandboxAPI, error) { return api, nil }
	defer func() { loadSandboxAPI = prevLoad }()

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"sandbox", "logs", "sbx-1", "--follow"})
	assert.NoError(t, rootCmd.ExecuteContext(ctx))
}

func TestSandboxKill(t *testing.T) {
	prevConfirm := confirmKill
	defer func() { confirmKill = prevConfirm }()

	t.Run("with yes flag", func(t *testing.T) {
		confirmKill = func([]string) (bool, error) {
			t.Fatal("confirmation must be skipped")
			return false, nil
		}
		api := &fakeSandboxAPI{missing: map[string]bool{"gone": true}}

		out, err := runCLI(t, api, "sandbox", "kill", "-y", "a", "gone", "b")
		assert.ErrorIs(t, err, services.ErrSandboxNotFound)
		assert.Equal(t, []string{"a", "b"}, api.killed)
		assert.Contains(t, out, "Sandbox a has been killed")
		assert.Contains(t, out, "Sandbox gone wasn't found")
	})

	t.Run("declined", func(t *testing.T) {
		var asked []string
		confirmKill = func(ids []string) (bool, error) {
			asked = ids
			return false, nil
		}
		api := &fakeSandboxAPI{}

		out, err := runCLI(t, api, "sandbox", "kill", "a")
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, asked)
		assert.Empty(t, api.killed)
		assert.Contains(t, out, "Cancelled")
	})

	t.Run("confirm error", func(t *testing.T) {
		confirmKill = func([]string) (bool, error) { return false, errors.New("no tty") }
		_, err := runCLI(t, &fakeSandboxAPI{}, "sandbox", "kill", "a")
		assert.EqualError(t, err, "no tty")
	})
}

func TestVersion(t *testing.T) {
	t.Setenv(config.EnvAPIURL, "")
	out, err := runCLI(t, &fakeSandboxAPI{}, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Moru CLI vdev\n"))
	assert.Contains(t, out, "API: "+moru.DefaultBaseURL)

	t.Setenv(config.EnvAPIURL, "http://localhost:3000")
	out, err = runCLI(t, &fakeSandboxAPI{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "API: http://localhost:3000")
}

func TestBrowseModel(t *testing.T) {
	api := &fakeSandboxAPI{
		runs: []*models.SandboxRun{
			mustDecode[models.SandboxRun](t, `{"sandboxID":"old","status":"stopped","templateID":"t","createdAt":"2024-01-01T00:00:00Z"}`),
			mustDecode[models.SandboxRun](t, `{"sandboxID":"new","status":"running","templateID":"t","createdAt":"2024-02-01T00:00:00Z"}`),
		},
		entries: []*models.SandboxLogEntry{
			mustDecode[models.SandboxLogEntry](t, `{"eventType":"stdout","fields":{},"message":"hello from new","timestamp":"2024-02-01T00:00:01Z"}`),
		},
	}

	var m tea.Model = newBrowseModel(context.Background(), api)
	assert.Contains(t, m.View(), "Loading")

	msg := loadRuns(context.Background(), api)()
	m, _ = m.Update(msg)
	view := ansi.Strip(m.View())
	assert.Contains(t, view, "new")
	assert.Contains(t, view, "old")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	bm := m.(browseModel)
	assert.Equal(t, browseViewLogs, bm.view)
	assert.Equal(t, "new", bm.selected)

	m, _ = m.Update(loadLogs(context.Background(), api, "new")())
	assert.Contains(t, ansi.Strip(m.View()), "hello from new")

	// a late page for another sandbox is dropped
	m, _ = m.Update(logsLoadedMsg{sandboxID: "old", err: errors.New("stale")})
	assert.NotContains(t, m.View(), "stale")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, browseViewRuns, m.(browseModel).view)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestBrowseModelError(t *testing.T) {
	api := &fakeSandboxAPI{err: errors.New("unauthorized")}
	var m tea.Model = newBrowseModel(context.Background(), api)

	m, _ = m.Update(loadRuns(context.Background(), api)())
	assert.Contains(t, ansi.Strip(m.View()), "Error: unauthorized")
}
