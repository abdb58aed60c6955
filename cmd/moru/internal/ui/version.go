package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Build information - these are set via ldflags during build
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// VersionString returns the version with the short commit when known
func VersionString() string {
	versionInfo := fmt.Sprintf("v%s", Version)
	if GitCommit != "unknown" && len(GitCommit) > 7 {
		versionInfo += fmt.Sprintf(" (%s)", GitCommit[:7])
	}
	return versionInfo
}

// RenderHeader renders the CLI header with version information
func RenderHeader() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(colorBrand).
		Bold(true).
		MarginTop(1).
		MarginLeft(2)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		MarginLeft(2).
		MarginBottom(1)

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "unknown"
	}

	title := titleStyle.Render("Moru Sandbox CLI")
	subtitle := subtitleStyle.Render(fmt.Sprintf("%s · %s", VersionString(), cwd))

	return fmt.Sprintf("%s\n%s\n", title, subtitle)
}
