// Package services provides the sandbox service for Moru API operations.
//
// This file implements the SandboxService which lists sandbox runs, reads and
// follows sandbox process logs, and checks or kills running sandboxes. Runs
// and log entries are decoded into the open records of the models package, so
// fields added by newer API versions are kept in each record's extension bag.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/moru-ai/sdks/models"
)

var (
	// ErrSandboxNotFound is returned when the API has no sandbox with the given ID
	ErrSandboxNotFound = errors.New("sandbox not found")

	// ErrNullEntry is returned when a list response contains a null element
	ErrNullEntry = errors.New("null entry in list response")
)

const (
	// DefaultRunsLimit is the page size used by ListRuns when none is given
	DefaultRunsLimit = 30

	// DefaultPollInterval is how often FollowLogs asks for new entries
	DefaultPollInterval = 400 * time.Millisecond
)

// ClientInterface defines the methods needed from the Moru client
type ClientInterface interface {
	NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error)
	Do(req *http.Request) (*http.Response, error)
	CheckResponse(resp *http.Response) error
}

type SandboxService struct {
	client ClientInterface
}

func NewSandboxService(client ClientInterface) *SandboxService {
	return &SandboxService{
		client: client,
	}
}

// ListRunsOptions filters ListRuns. A nil options value lists the latest
// DefaultRunsLimit runs of any status.
type ListRunsOptions struct {
	Limit  int
	Status []models.SandboxRunStatus
}

// ListLogsOptions selects a page of log entries.
type ListLogsOptions struct {
	// Cursor is a unix time in milliseconds. Only entries at or after it are
	// returned when reading forward.
	Cursor    models.Optional[int64]
	Limit     int
	EventType models.Optional[models.SandboxLogEventType]
	// Direction is "forward" or "backward"; empty means forward.
	Direction string
}

// FollowOptions configures FollowLogs.
type FollowOptions struct {
	Cursor       models.Optional[int64]
	EventType    models.Optional[models.SandboxLogEventType]
	PollInterval time.Duration
}

type logsResponse struct {
	LogEntries []*models.SandboxLogEntry `json:"logEntries"`
}

// ListRuns retrieves sandbox runs, newest first as ordered by the API
func (s *SandboxService) ListRuns(ctx context.Context, opts *ListRunsOptions) ([]*models.SandboxRun, error) {
	limit := DefaultRunsLimit
	query := url.Values{}
	if opts != nil {
		if opts.Limit > 0 {
			limit = opts.Limit
		}
		for _, status := range opts.Status {
			if !status.IsValid() {
				return nil, fmt.Errorf("invalid status filter: %w", &models.InvalidEnumValueError{Enum: "SandboxRunStatus", Value: string(status)})
			}
			query.Add("status", status.String())
		}
	}
	query.Set("limit", strconv.Itoa(limit))

	path := "/v2/sandbox-runs?" + query.Encode()
	resp, err := s.get(ctx, path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := s.client.CheckResponse(resp); err != nil {
		return nil, fmt.Errorf("failed to list sandbox runs: %w", err)
	}

	var runs []*models.SandboxRun
	if err := json.NewDecoder(resp.Body).Decode(&runs); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if err := checkEntries(runs); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return runs, nil
}

// ListLogs retrieves one page of log entries for a sandbox
func (s *SandboxService) ListLogs(ctx context.Context, sandboxID string, opts *ListLogsOptions) ([]*models.SandboxLogEntry, error) {
	if sandboxID == "" {
		return nil, fmt.Errorf("sandbox ID is required")
	}

	query := url.Values{}
	direction := "forward"
	if opts != nil {
		if cursor, ok := opts.Cursor.Get(); ok {
			query.Set("cursor", strconv.FormatInt(cursor, 10))
		}
		if opts.Limit > 0 {
			query.Set("limit", strconv.Itoa(opts.Limit))
		}
		if eventType, ok := opts.EventType.Get(); ok {
			query.Set("eventType", eventType.String())
		}
		if opts.Direction != "" {
			direction = opts.Direction
		}
	}
	query.Set("direction", direction)

	path := fmt.Sprintf("/sandboxes/%s/logs?%s", url.PathEscape(sandboxID), query.Encode())
	resp, err := s.get(ctx, path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrSandboxNotFound, sandboxID)
	}
	if err := s.client.CheckResponse(resp); err != nil {
		return nil, fmt.Errorf("failed to get logs for sandbox %s: %w", sandboxID, err)
	}

	var logs logsResponse
	if err := json.NewDecoder(resp.Body).Decode(&logs); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if err := checkEntries(logs.LogEntries); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return logs.LogEntries, nil
}

// IsRunning reports whether the sandbox is still alive
func (s *SandboxService) IsRunning(ctx context.Context, sandboxID string) (bool, error) {
	if sandboxID == "" {
		return false, fmt.Errorf("sandbox ID is required")
	}

	resp, err := s.get(ctx, "/sandboxes/"+url.PathEscape(sandboxID))
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if err := s.client.CheckResponse(resp); err != nil {
		return false, fmt.Errorf("failed to get sandbox %s: %w", sandboxID, err)
	}

	return true, nil
}

// Kill terminates a running sandbox
func (s *SandboxService) Kill(ctx context.Context, sandboxID string) error {
	if sandboxID == "" {
		return fmt.Errorf("sandbox ID is required")
	}

	path := "/sandboxes/" + url.PathEscape(sandboxID)
	req, err := s.client.NewRequest(ctx, "DELETE", path, nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrSandboxNotFound, sandboxID)
	}
	if err := s.client.CheckResponse(resp); err != nil {
		return fmt.Errorf("failed to kill sandbox %s: %w", sandboxID, err)
	}

	return nil
}

// FollowLogs streams log entries to fn until the sandbox stops, fn returns an
// error, or ctx is done. Each poll resumes one millisecond after the last
// entry seen. Once the sandbox is no longer running one more page is read so
// that output written just before exit is not lost.
func (s *SandboxService) FollowLogs(ctx context.Context, sandboxID string, opts *FollowOptions, fn func(*models.SandboxLogEntry) error) error {
	if sandboxID == "" {
		return fmt.Errorf("sandbox ID is required")
	}

	interval := DefaultPollInterval
	listOpts := &ListLogsOptions{}
	if opts != nil {
		if opts.PollInterval > 0 {
			interval = opts.PollInterval
		}
		listOpts.Cursor = opts.Cursor
		listOpts.EventType = opts.EventType
	}

	emit := func() error {
		entries, err := s.ListLogs(ctx, sandboxID, listOpts)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if err := fn(entry); err != nil {
				return err
			}
		}
		if len(entries) > 0 {
			last := entries[len(entries)-1]
			listOpts.Cursor = models.Some(last.Timestamp.UnixMilli() + 1)
		}
		return nil
	}

	for {
		if err := emit(); err != nil {
			return err
		}

		running, err := s.IsRunning(ctx, sandboxID)
		if err != nil {
			return err
		}
		if !running {
			if err := emit(); err != nil && !errors.Is(err, ErrSandboxNotFound) {
				return err
			}
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}

// checkEntries rejects null list elements, which encoding/json leaves as nil
// pointers without calling UnmarshalJSON.
func checkEntries[T any](entries []*T) error {
	for i, entry := range entries {
		if entry == nil {
			return fmt.Errorf("%w at index %d", ErrNullEntry, i)
		}
	}
	return nil
}

func (s *SandboxService) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := s.client.NewRequest(ctx, "GET", path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}
