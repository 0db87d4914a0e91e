package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Rohit242003/timesheet-dashboard/internal/employee"
	"github.com/Rohit242003/timesheet-dashboard/internal/timesheet"
	"github.com/Rohit242003/timesheet-dashboard/internal/view"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")).Padding(0, 1)
	navStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	navActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("33")).Padding(0, 1)
	noticeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
)

// drafts is form state surviving between attempts, reset wholesale by
// ResetForms.
type drafts struct {
	loginEmail string
}

// Terminal renders the dashboard to a terminal and collects input through
// interactive prompts. It implements app.UI.
type Terminal struct {
	out      io.Writer
	loggedIn bool
	drafts   drafts
}

func New() *Terminal {
	return &Terminal{out: os.Stdout}
}

// ShowFrame draws one view's chrome: navigation with the active item
// highlighted, then the title.
func (t *Terminal) ShowFrame(frame view.Frame) {
	var items []string
	for _, item := range frame.Nav {
		if !t.loggedIn {
			continue
		}
		if item.Active {
			items = append(items, navActiveStyle.Render(item.Label))
		} else {
			items = append(items, navStyle.Render(item.Label))
		}
	}

	fmt.Fprintln(t.out)
	if len(items) > 0 {
		fmt.Fprintln(t.out, lipgloss.JoinHorizontal(lipgloss.Top, items...))
	}
	fmt.Fprintln(t.out, titleStyle.Render(frame.Title))
}

// Render fills the current panel with view data.
func (t *Terminal) Render(v view.ViewID, data any) {
	switch payload := data.(type) {
	case timesheet.OverviewData:
		t.renderOverview(payload)
	case employee.TeamData:
		t.renderTeam(payload)
	default:
		fmt.Fprintln(t.out, dimStyle.Render("Nothing to show here yet."))
	}
}

func (t *Terminal) renderOverview(data timesheet.OverviewData) {
	fmt.Fprintln(t.out, headerStyle.Render("Recent Timesheets"))

	if len(data.Recent) == 0 {
		fmt.Fprintln(t.out, dimStyle.Render("No recent timesheets found."))
	} else {
		tbl := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("Date", "Project", "Details", "Hours")
		for _, entry := range data.Recent {
			tbl.Row(
				entry.Date.Display(),
				entry.Project(),
				truncate(entry.TaskDetails, 40),
				fmt.Sprintf("%.1f", entry.HoursWorked),
			)
		}
		fmt.Fprintln(t.out, tbl.String())
	}

	fmt.Fprintln(t.out, headerStyle.Render("Hours Logged"))
	fmt.Fprintln(t.out, renderBars(data.HoursByDay))
	fmt.Fprintln(t.out, headerStyle.Render("Hours by Project"))
	fmt.Fprintln(t.out, renderBars(data.HoursByProject))
}

func (t *Terminal) renderTeam(data employee.TeamData) {
	if len(data.Employees) == 0 {
		fmt.Fprintln(t.out, dimStyle.Render("No team members found."))
		return
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Name", "Email", "Role")
	for _, emp := range data.Employees {
		tbl.Row(emp.Name, emp.Email, emp.Role)
	}
	fmt.Fprintln(t.out, tbl.String())
}

func (t *Terminal) SetLoggedIn(loggedIn bool) {
	t.loggedIn = loggedIn
}

func (t *Terminal) ResetForms() {
	t.drafts = drafts{}
}

// Notify prints a transient notice. Terminal output scrolls away on its own,
// which stands in for the auto-dismiss behavior.
func (t *Terminal) Notify(message string, isError bool) {
	if isError {
		fmt.Fprintln(t.out, errorStyle.Render("✗ "+message))
		return
	}
	fmt.Fprintln(t.out, noticeStyle.Render("✓ "+message))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return strings.TrimSpace(s[:max-1]) + "…"
}
