// Package main provides the sandbox browser view for the Moru CLI.
//
// This file implements the browseModel, a bubbletea program that lists sandbox
// runs in a table and shows the logs of the selected sandbox in a viewport.
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/moru-ai/sdks/cmd/moru/internal/ui"
	"github.com/moru-ai/sdks/models"
	"github.com/moru-ai/sdks/services"
)

var sandboxBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse sandbox runs and their logs interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := loadSandboxAPI()
		if err != nil {
			return err
		}
		p := tea.NewProgram(newBrowseModel(cmd.Context(), api), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
		_, err = p.Run()
		return err
	},
}

// browseSource is what the browser needs from the sandbox service.
type browseSource interface {
	ListRuns(ctx context.Context, opts *services.ListRunsOptions) ([]*models.SandboxRun, error)
	ListLogs(ctx context.Context, sandboxID string, opts *services.ListLogsOptions) ([]*models.SandboxLogEntry, error)
}

type browseView int

const (
	browseViewRuns browseView = iota
	browseViewLogs
)

type runsLoadedMsg struct {
	runs []*models.SandboxRun
	err  error
}

type logsLoadedMsg struct {
	sandboxID string
	entries   []*models.SandboxLogEntry
	err       error
}

func loadRuns(ctx context.Context, src browseSource) tea.Cmd {
	return func() tea.Msg {
		runs, err := src.ListRuns(ctx, nil)
		return runsLoadedMsg{runs: runs, err: err}
	}
}

func loadLogs(ctx context.Context, src browseSource, sandboxID string) tea.Cmd {
	return func() tea.Msg {
		entries, err := src.ListLogs(ctx, sandboxID, nil)
		return logsLoadedMsg{sandboxID: sandboxID, entries: entries, err: err}
	}
}

type browseModel struct {
	ctx      context.Context
	src      browseSource
	view     browseView
	runs     table.Model
	logs     viewport.Model
	spinner  spinner.Model
	loading  bool
	err      error
	selected string
	width    int
}

var runColumnWidths = []int{24, 10, 16, 12, 20, 20}

func newBrowseModel(ctx context.Context, src browseSource) browseModel {
	columns := make([]table.Column, len(ui.RunColumns))
	for i, title := range ui.RunColumns {
		columns[i] = table.Column{Title: title, Width: runColumnWidths[i]}
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#7D56F4"))

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
		table.WithStyles(styles),
	)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = ui.StyleTitle

	return browseModel{
		ctx:     ctx,
		src:     src,
		view:    browseViewRuns,
		runs:    t,
		logs:    viewport.New(80, 20),
		spinner: s,
		loading: true,
		width:   80,
	}
}

func (m browseModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadRuns(m.ctx, m.src))
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		height := msg.Height - 8
		if height < 5 {
			height = 5
		}
		m.runs.SetHeight(height)
		m.logs.Width = msg.Width
		m.logs.Height = height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case runsLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			rows := ui.RunRows(msg.runs)
			tableRows := make([]table.Row, len(rows))
			for i, row := range rows {
				tableRows[i] = row.Cells()
			}
			m.runs.SetRows(tableRows)
		}
		return m, nil

	case logsLoadedMsg:
		if msg.sandboxID != m.selected {
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.logs.SetContent(m.renderLogs(msg.entries))
			m.logs.GotoBottom()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.view == browseViewLogs {
				m.view = browseViewRuns
				m.selected = ""
				m.err = nil
				m.loading = false
				return m, nil
			}
			return m, tea.Quit
		case "r":
			m.loading = true
			m.err = nil
			if m.view == browseViewLogs {
				return m, tea.Batch(m.spinner.Tick, loadLogs(m.ctx, m.src, m.selected))
			}
			return m, tea.Batch(m.spinner.Tick, loadRuns(m.ctx, m.src))
		case "enter":
			if m.view != browseViewRuns || m.loading {
				return m, nil
			}
			row := m.runs.SelectedRow()
			if len(row) == 0 {
				return m, nil
			}
			m.selected = row[0]
			m.view = browseViewLogs
			m.loading = true
			m.err = nil
			m.logs.SetContent("")
			return m, tea.Batch(m.spinner.Tick, loadLogs(m.ctx, m.src, m.selected))
		}
	}

	var cmd tea.Cmd
	if m.view == browseViewLogs {
		m.logs, cmd = m.logs.Update(msg)
	} else {
		m.runs, cmd = m.runs.Update(msg)
	}
	return m, cmd
}

func (m browseModel) renderLogs(entries []*models.SandboxLogEntry) string {
	if len(entries) == 0 {
		return ui.StyleDim.Render("No logs yet")
	}
	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = ansi.Truncate(ui.FormatLogEntry(entry, true), m.width, "…")
	}
	return strings.Join(lines, "\n")
}

func (m browseModel) View() string {
	var content strings.Builder
	content.WriteString(ui.RenderHeader() + "\n")

	title := "Sandbox Runs"
	help := "↑/↓: Navigate • Enter: Logs • r: Refresh • q: Quit"
	if m.view == browseViewLogs {
		title = fmt.Sprintf("Logs for %s", m.selected)
		help = "↑/↓: Scroll • r: Refresh • Esc: Back • q: Quit"
	}
	content.WriteString("  " + ui.StyleTitle.Render(title) + "\n\n")

	switch {
	case m.loading:
		content.WriteString("  " + m.spinner.View() + " Loading...")
	case m.err != nil:
		content.WriteString("  " + ui.StyleError.Render(fmt.Sprintf("Error: %s", m.err.Error())))
	case m.view == browseViewLogs:
		content.WriteString(m.logs.View())
	case len(m.runs.Rows()) == 0:
		content.WriteString("  No sandbox runs found")
	default:
		content.WriteString(m.runs.View())
	}

	content.WriteString("\n")
	content.WriteString(ui.StyleHelp.Render(help))
	return content.String()
}
