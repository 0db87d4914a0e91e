package view

// ViewID is the closed set of panels. Exactly one is current at any time and
// only the Router reassigns it.
type ViewID int

const (
	Login ViewID = iota
	Register
	Overview
	Team
	Projects
	Payments
	Reports
	Settings
)

func (v ViewID) String() string {
	switch v {
	case Login:
		return "login"
	case Register:
		return "register"
	case Overview:
		return "overview"
	case Team:
		return "team"
	case Projects:
		return "projects"
	case Payments:
		return "payments"
	case Reports:
		return "reports"
	case Settings:
		return "settings"
	default:
		return "unknown"
	}
}

// DefaultTitle is shown for views that have no navigation label.
const DefaultTitle = "Dashboard"

type NavItem struct {
	View   ViewID
	Label  string
	Active bool
}

// navEntries is the sidebar, in display order. Login and Register are not
// navigation destinations.
var navEntries = []struct {
	view  ViewID
	label string
}{
	{Overview, "Overview"},
	{Team, "Team"},
	{Projects, "Projects"},
	{Payments, "Payments"},
	{Reports, "Reports"},
	{Settings, "Settings"},
}

// Label returns the navigation label for v, if it has one.
func Label(v ViewID) (string, bool) {
	for _, entry := range navEntries {
		if entry.view == v {
			return entry.label, true
		}
	}
	return "", false
}

// Frame is everything the presenter needs to draw one view's chrome: the
// panel identity, its title, and the navigation with the active item marked.
type Frame struct {
	View  ViewID
	Title string
	Nav   []NavItem
}

// FrameFor builds the frame for v. The title falls back to DefaultTitle when
// v has no navigation label; the nav marks at most one item active.
func FrameFor(v ViewID) Frame {
	title := DefaultTitle
	if label, ok := Label(v); ok {
		title = label
	}

	nav := make([]NavItem, 0, len(navEntries))
	for _, entry := range navEntries {
		nav = append(nav, NavItem{
			View:   entry.view,
			Label:  entry.label,
			Active: entry.view == v,
		})
	}

	return Frame{View: v, Title: title, Nav: nav}
}
