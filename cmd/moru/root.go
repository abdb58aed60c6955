package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moru-ai/sdks/cmd/moru/internal/config"
	"github.com/moru-ai/sdks/cmd/moru/internal/ui"
	"github.com/moru-ai/sdks/cmd/moru/internal/utils"
	"github.com/moru-ai/sdks/models"
	"github.com/moru-ai/sdks/services"
)

var rootCmd = &cobra.Command{
	Use:           "moru",
	Short:         "Inspect and manage Moru sandboxes",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if config.IsDebug() {
			if err := utils.InitLogger(); err != nil {
				return fmt.Errorf("failed to initialize debug log: %w", err)
			}
		}
		utils.LogDebug("running %s %v", cmd.CommandPath(), args)
		return nil
	},
}

// sandboxAPI is the part of the sandbox service the commands use.
type sandboxAPI interface {
	browseSource
	Kill(ctx context.Context, sandboxID string) error
	FollowLogs(ctx context.Context, sandboxID string, opts *services.FollowOptions, fn func(*models.SandboxLogEntry) error) error
}

// loadSandboxAPI is replaced in tests.
var loadSandboxAPI = func() (sandboxAPI, error) {
	client, err := config.LoadClient()
	if err != nil {
		return nil, err
	}
	return client.Sandbox, nil
}

// Execute runs the CLI.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		utils.LogDebug("command failed: %v", err)
		fmt.Fprintln(rootCmd.ErrOrStderr(), ui.StyleError.Render("Error: "+err.Error()))
	}
	return err
}

func init() {
	rootCmd.AddCommand(sandboxCmd)
	rootCmd.AddCommand(versionCmd)
}
