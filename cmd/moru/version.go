package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/moru-ai/sdks/cmd/moru/internal/config"
	"github.com/moru-ai/sdks/cmd/moru/internal/ui"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Show version information",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Moru CLI %s\n", ui.VersionString())
		fmt.Fprintf(out, "  Built: %s\n", ui.BuildTime)
		fmt.Fprintf(out, "  OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		fmt.Fprintf(out, "  Go: %s\n", runtime.Version())
		fmt.Fprintf(out, "  API: %s\n", config.GetBaseURL())
	},
}
