package ui

import (
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/moru-ai/sdks/models"
)

const (
	placeholder = "-"
	timeLayout  = "2006-01-02 15:04:05"
)

// RunColumns are the column titles of the runs table.
var RunColumns = []string{"Sandbox ID", "Status", "Template Name", "End Reason", "Started", "Ended"}

// RunRow is a sandbox run formatted for display.
type RunRow struct {
	SandboxID    string
	Status       string
	TemplateName string
	EndReason    string
	Started      string
	Ended        string
	Running      bool
}

// Cells returns the row in RunColumns order.
func (r RunRow) Cells() []string {
	return []string{r.SandboxID, r.Status, r.TemplateName, r.EndReason, r.Started, r.Ended}
}

// SortRuns returns a copy of runs ordered newest first, ties broken by
// sandbox ID.
func SortRuns(runs []*models.SandboxRun) []*models.SandboxRun {
	sorted := make([]*models.SandboxRun, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.SandboxID < b.SandboxID
	})
	return sorted
}

// RunRows formats runs for display in SortRuns order.
func RunRows(runs []*models.SandboxRun) []RunRow {
	sorted := SortRuns(runs)
	rows := make([]RunRow, 0, len(sorted))
	for _, run := range sorted {
		rows = append(rows, RunRow{
			SandboxID:    run.SandboxID,
			Status:       titleCase(run.Status.String()),
			TemplateName: orPlaceholder(run.Alias.OrElse("")),
			EndReason:    orPlaceholder(run.EndReason.OrElse("").String()),
			Started:      formatTime(run.CreatedAt),
			Ended:        formatOptionalTime(run.EndedAt),
			Running:      run.Status == models.SandboxRunStatusRunning,
		})
	}
	return rows
}

// RunsTitle names the table after the status filter.
func RunsTitle(statuses []models.SandboxRunStatus) string {
	if len(statuses) == 1 {
		return titleCase(statuses[0].String()) + " sandboxes"
	}
	return "Sandbox Runs"
}

// RenderRunsTable renders runs as a borderless table. Running sandboxes are
// highlighted.
func RenderRunsTable(runs []*models.SandboxRun, statuses []models.SandboxRunStatus) string {
	if len(runs) == 0 {
		return "No sandbox runs found\n"
	}

	rows := RunRows(runs)
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers(RunColumns...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().PaddingRight(2)
			switch {
			case row == table.HeaderRow:
				return style.Inherit(StyleHeader)
			case row >= 0 && row < len(rows) && rows[row].Running:
				return style.Inherit(StyleSuccess)
			}
			return style
		})
	for _, row := range rows {
		t.Row(row.Cells()...)
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render(RunsTitle(statuses)))
	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n")
	return b.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}

func formatTime(t time.Time) string {
	return t.Local().Format(timeLayout)
}

func formatOptionalTime(t models.Optional[time.Time]) string {
	v, ok := t.Get()
	if !ok {
		return placeholder
	}
	return formatTime(v)
}
