package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moru-ai/sdks/cmd/moru/internal/ui"
	"github.com/moru-ai/sdks/models"
	"github.com/moru-ai/sdks/services"
)

var sandboxCmd = &cobra.Command{
	Use:     "sandbox",
	Aliases: []string{"sbx"},
	Short:   "Work with sandboxes",
}

var sandboxListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List sandbox runs (including stopped)",
	Args:    cobra.NoArgs,
	RunE:    runSandboxList,
}

var sandboxLogsCmd = &cobra.Command{
	Use:     "logs <sandboxID>",
	Aliases: []string{"lg"},
	Short:   "Show logs for a sandbox",
	Args:    cobra.ExactArgs(1),
	RunE:    runSandboxLogs,
}

var (
	listStatus string
	listLimit  int
	listFormat string

	logsFollow     bool
	logsTimestamps bool
	logsType       string
	logsFormat     string
)

func init() {
	sandboxListCmd.Flags().StringVarP(&listStatus, "status", "s", "", "filter by status: running, paused, stopped (comma separated)")
	sandboxListCmd.Flags().IntVarP(&listLimit, "limit", "L", services.DefaultRunsLimit, "max runs to return")
	sandboxListCmd.Flags().StringVarP(&listFormat, "format", "f", string(ui.FormatPretty), "output format: pretty, json")

	sandboxLogsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "keep streaming logs until the sandbox is closed")
	sandboxLogsCmd.Flags().BoolVarP(&logsTimestamps, "timestamps", "t", false, "show timestamps for each log entry")
	sandboxLogsCmd.Flags().StringVar(&logsType, "type", "all", "filter by event type: all, stdout, stderr")
	sandboxLogsCmd.Flags().StringVar(&logsFormat, "format", string(ui.FormatPretty), "output format: pretty, json")

	sandboxCmd.AddCommand(sandboxBrowseCmd)
	sandboxCmd.AddCommand(sandboxKillCmd)
	sandboxCmd.AddCommand(sandboxListCmd)
	sandboxCmd.AddCommand(sandboxLogsCmd)
}

// parseStatuses splits a comma separated status filter.
func parseStatuses(value string) ([]models.SandboxRunStatus, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	var statuses []models.SandboxRunStatus
	for _, part := range strings.Split(value, ",") {
		status, err := models.NewSandboxRunStatusFromString(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid status filter: %w", err)
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// parseEventType maps the --type flag to an API event type filter.
func parseEventType(value string) (models.Optional[models.SandboxLogEventType], error) {
	switch v := strings.ToLower(value); v {
	case "", "all":
		return models.Unset[models.SandboxLogEventType](), nil
	case "stdout", "stderr":
		eventType, err := models.NewSandboxLogEventTypeFromString(v)
		if err != nil {
			return models.Optional[models.SandboxLogEventType]{}, err
		}
		return models.Some(eventType), nil
	}
	return models.Optional[models.SandboxLogEventType]{}, fmt.Errorf("invalid event type filter %q (all, stdout, stderr)", value)
}

func runSandboxList(cmd *cobra.Command, args []string) error {
	statuses, err := parseStatuses(listStatus)
	if err != nil {
		return err
	}
	format, err := ui.ParseFormat(listFormat)
	if err != nil {
		return err
	}

	api, err := loadSandboxAPI()
	if err != nil {
		return err
	}

	runs, err := api.ListRuns(cmd.Context(), &services.ListRunsOptions{
		Limit:  listLimit,
		Status: statuses,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == ui.FormatJSON {
		if runs == nil {
			runs = []*models.SandboxRun{}
		}
		data, err := json.MarshalIndent(runs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode runs: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprint(out, ui.RenderRunsTable(runs, statuses))
	return nil
}

func runSandboxLogs(cmd *cobra.Command, args []string) error {
	sandboxID := args[0]

	eventType, err := parseEventType(logsType)
	if err != nil {
		return err
	}
	format, err := ui.ParseFormat(logsFormat)
	if err != nil {
		return err
	}

	api, err := loadSandboxAPI()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printEntry := func(entry *models.SandboxLogEntry) error {
		if format == ui.FormatJSON {
			data, err := ui.MarshalLogEntry(entry)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, string(data))
			return err
		}
		_, err := fmt.Fprintln(out, ui.FormatLogEntry(entry, logsTimestamps))
		return err
	}

	ctx := cmd.Context()
	if logsFollow {
		err := api.FollowLogs(ctx, sandboxID, &services.FollowOptions{EventType: eventType}, printEntry)
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			// interrupted
			return nil
		}
		return err
	}

	entries, err := api.ListLogs(ctx, sandboxID, &services.ListLogsOptions{EventType: eventType})
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := printEntry(entry); err != nil {
			return err
		}
	}
	return nil
}
