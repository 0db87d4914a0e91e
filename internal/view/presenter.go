package view

// Presenter is the UI toolkit boundary. The orchestration core never depends
// on how frames, panels, or forms are actually drawn.
type Presenter interface {
	// ShowFrame draws the chrome for one view: panel, title, navigation.
	ShowFrame(frame Frame)
	// Render fills the current panel with view-specific data.
	Render(v ViewID, data any)
	// SetLoggedIn flips the surface between the logged-in and login-only
	// visual modes.
	SetLoggedIn(loggedIn bool)
	// ResetForms returns every form to its pristine state.
	ResetForms()
}

// Notifier shows a transient, auto-dismissing notice.
type Notifier interface {
	Notify(message string, isError bool)
}

// Dialog blocks on a yes/no confirmation.
type Dialog interface {
	ConfirmDialog(message string) bool
}
