package app

// Command is one user intent from the terminal surface. The UI offers only
// the commands valid for the current login state and role; dispatch still
// ignores anything that slipped through.
type Command int

const (
	CmdNone Command = iota
	CmdLogin
	CmdRegister
	CmdOverview
	CmdTeam
	CmdProjects
	CmdPayments
	CmdReports
	CmdSettings
	CmdAddTimesheet
	CmdEditTimesheet
	CmdDeleteTimesheet
	CmdDeleteEmployee
	CmdLogout
	CmdQuit
)

func (c Command) String() string {
	switch c {
	case CmdLogin:
		return "login"
	case CmdRegister:
		return "register"
	case CmdOverview:
		return "overview"
	case CmdTeam:
		return "team"
	case CmdProjects:
		return "projects"
	case CmdPayments:
		return "payments"
	case CmdReports:
		return "reports"
	case CmdSettings:
		return "settings"
	case CmdAddTimesheet:
		return "add-timesheet"
	case CmdEditTimesheet:
		return "edit-timesheet"
	case CmdDeleteTimesheet:
		return "delete-timesheet"
	case CmdDeleteEmployee:
		return "delete-employee"
	case CmdLogout:
		return "logout"
	case CmdQuit:
		return "quit"
	default:
		return "none"
	}
}
