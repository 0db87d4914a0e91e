package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/Rohit242003/timesheet-dashboard/internal/app"
	"github.com/Rohit242003/timesheet-dashboard/internal/auth"
	"github.com/Rohit242003/timesheet-dashboard/internal/employee"
	"github.com/Rohit242003/timesheet-dashboard/internal/session"
	"github.com/Rohit242003/timesheet-dashboard/internal/timesheet"
)

// NextCommand prompts for the next action, offering only what the current
// login state and role allow.
func (t *Terminal) NextCommand(loggedIn bool, role session.Role) (app.Command, error) {
	var options []huh.Option[app.Command]

	if !loggedIn {
		options = []huh.Option[app.Command]{
			huh.NewOption("Log in", app.CmdLogin),
			huh.NewOption("Register", app.CmdRegister),
			huh.NewOption("Quit", app.CmdQuit),
		}
	} else {
		options = append(options, huh.NewOption("Overview", app.CmdOverview))
		if role == session.RoleAdmin {
			options = append(options,
				huh.NewOption("Team", app.CmdTeam),
				huh.NewOption("Delete employee", app.CmdDeleteEmployee),
			)
		}
		options = append(options,
			huh.NewOption("Add timesheet", app.CmdAddTimesheet),
			huh.NewOption("Edit timesheet", app.CmdEditTimesheet),
			huh.NewOption("Delete timesheet", app.CmdDeleteTimesheet),
			huh.NewOption("Projects", app.CmdProjects),
			huh.NewOption("Payments", app.CmdPayments),
			huh.NewOption("Reports", app.CmdReports),
			huh.NewOption("Settings", app.CmdSettings),
			huh.NewOption("Log out", app.CmdLogout),
			huh.NewOption("Quit", app.CmdQuit),
		)
	}

	var cmd app.Command
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[app.Command]().
			Title("What next?").
			Options(options...).
			Value(&cmd),
	))
	if err := form.Run(); err != nil {
		return app.CmdQuit, err
	}
	return cmd, nil
}

func (t *Terminal) LoginForm(prefillEmail string) (auth.LoginDTO, bool) {
	dto := auth.LoginDTO{Email: prefillEmail}
	if dto.Email == "" {
		dto.Email = t.drafts.loginEmail
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Email").Value(&dto.Email).Validate(requiredEmail),
		huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).
			Value(&dto.Password).Validate(required("password")),
	))
	if err := form.Run(); err != nil {
		return auth.LoginDTO{}, false
	}

	t.drafts.loginEmail = dto.Email
	return dto, true
}

func (t *Terminal) RegisterForm() (auth.RegisterDTO, bool) {
	dto := auth.RegisterDTO{Role: "Employee"}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Name").Value(&dto.Name).Validate(required("name")),
		huh.NewInput().Title("Email").Value(&dto.Email).Validate(requiredEmail),
		huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).
			Value(&dto.Password).Validate(required("password")),
		huh.NewSelect[string]().Title("Role").
			Options(
				huh.NewOption("Employee", "Employee"),
				huh.NewOption("Admin", "Admin"),
			).
			Value(&dto.Role),
	))
	if err := form.Run(); err != nil {
		return auth.RegisterDTO{}, false
	}
	return dto, true
}

func (t *Terminal) TimesheetForm(prefill *timesheet.Timesheet) (timesheet.EntryDTO, bool) {
	title := "Add Timesheet"
	date := time.Now().Format("2006-01-02")
	hours := ""
	details := ""
	var id int64

	if prefill != nil {
		title = "Edit Timesheet"
		id = prefill.ID
		date = prefill.Date.Display()
		hours = strconv.FormatFloat(prefill.HoursWorked, 'f', -1, 64)
		details = prefill.TaskDetails
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Date (YYYY-MM-DD)").Value(&date).Validate(validDate),
		huh.NewInput().Title("Hours worked").Value(&hours).Validate(validHours),
		huh.NewInput().Title("Task details").Value(&details).Validate(required("task details")),
	).Title(title))
	if err := form.Run(); err != nil {
		return timesheet.EntryDTO{}, false
	}

	parsedHours, _ := strconv.ParseFloat(hours, 64)
	return timesheet.EntryDTO{
		ID:          id,
		Date:        date,
		HoursWorked: parsedHours,
		TaskDetails: details,
	}, true
}

func (t *Terminal) PickTimesheet(entries []timesheet.Timesheet) (timesheet.Timesheet, bool) {
	options := make([]huh.Option[int], 0, len(entries))
	for i, entry := range entries {
		label := fmt.Sprintf("%s — %s (%.1fh)", entry.Date.Display(), truncate(entry.TaskDetails, 30), entry.HoursWorked)
		options = append(options, huh.NewOption(label, i))
	}

	var picked int
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().Title("Which timesheet?").Options(options...).Value(&picked),
	))
	if err := form.Run(); err != nil {
		return timesheet.Timesheet{}, false
	}
	return entries[picked], true
}

func (t *Terminal) PickEmployee(employees []employee.Employee) (employee.Employee, bool) {
	options := make([]huh.Option[int], 0, len(employees))
	for i, emp := range employees {
		options = append(options, huh.NewOption(fmt.Sprintf("%s <%s>", emp.Name, emp.Email), i))
	}

	var picked int
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().Title("Which employee?").Options(options...).Value(&picked),
	))
	if err := form.Run(); err != nil {
		return employee.Employee{}, false
	}
	return employees[picked], true
}

func (t *Terminal) ConfirmDialog(message string) bool {
	var confirmed bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(message).Affirmative("Delete").Negative("Cancel").Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		return false
	}
	return confirmed
}

// ----------------- VALIDATORS -----------------

func required(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func requiredEmail(s string) error {
	if s == "" {
		return fmt.Errorf("email is required")
	}
	for _, r := range s {
		if r == '@' {
			return nil
		}
	}
	return fmt.Errorf("email must be a valid address")
}

func validDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD")
	}
	return nil
}

func validHours(s string) error {
	hours, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("hours must be a number")
	}
	if hours <= 0 || hours > 24 {
		return fmt.Errorf("hours must be between 0 and 24")
	}
	return nil
}
