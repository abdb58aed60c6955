// Package ui renders sandbox runs and log entries for the Moru CLI.
package ui

import "github.com/charmbracelet/lipgloss"

// Adaptive colors shared by the CLI and the browser.
var (
	colorBrand = lipgloss.Color("#7D56F4")
	colorDim   = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed   = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
)

var (
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorBrand)
	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	StyleError   = lipgloss.NewStyle().Foreground(colorRed)
	StyleHeader  = lipgloss.NewStyle().Bold(true)
	StyleHelp    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).MarginLeft(2).MarginTop(1)
)
