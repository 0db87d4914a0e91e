package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Rohit242003/timesheet-dashboard/internal"
	"github.com/Rohit242003/timesheet-dashboard/internal/api"
	"github.com/Rohit242003/timesheet-dashboard/internal/auth"
	"github.com/Rohit242003/timesheet-dashboard/internal/confirm"
	"github.com/Rohit242003/timesheet-dashboard/internal/employee"
	"github.com/Rohit242003/timesheet-dashboard/internal/session"
	"github.com/Rohit242003/timesheet-dashboard/internal/timesheet"
	"github.com/Rohit242003/timesheet-dashboard/internal/view"
	"github.com/Rohit242003/timesheet-dashboard/pkg/logger"
)

// UI is the full terminal surface: the presenter/notifier/dialog trio the
// core depends on, plus the input prompts only the app loop uses.
type UI interface {
	view.Presenter
	view.Notifier
	view.Dialog

	NextCommand(loggedIn bool, role session.Role) (Command, error)
	LoginForm(prefillEmail string) (auth.LoginDTO, bool)
	RegisterForm() (auth.RegisterDTO, bool)
	TimesheetForm(prefill *timesheet.Timesheet) (timesheet.EntryDTO, bool)
	PickTimesheet(entries []timesheet.Timesheet) (timesheet.Timesheet, bool)
	PickEmployee(employees []employee.Employee) (employee.Employee, bool)
}

// storeTokens adapts the credential store to the gateway's token source.
type storeTokens struct {
	store session.Store
}

func (s storeTokens) Token() string {
	cred, err := s.store.Get()
	if err != nil {
		return ""
	}
	return cred.Token
}

// App owns the dependency graph and the single-actor event loop. All state
// transitions happen on this loop; only network I/O suspends it.
type App struct {
	store       session.Store
	gateway     *api.Gateway
	router      *view.Router
	confirms    *confirm.Manager
	interceptor *session.Interceptor
	boot        *session.Bootstrapper
	auth        *auth.Service
	employees   *employee.Service
	timesheets  *timesheet.Service
	overview    *timesheet.Loader
	editor      *timesheet.Editor
	team        *employee.Loader
	ui          UI
	log         *slog.Logger

	prefillEmail string
}

func New(cfg *internal.Config, store session.Store, ui UI, log *slog.Logger) *App {
	gateway := api.NewGateway(cfg.API, storeTokens{store: store}, log)
	router := view.NewRouter(ui)

	interceptor := session.NewInterceptor(store, router, ui, ui, log)
	gateway.Subscribe(interceptor.Observe)

	employees := employee.NewService(gateway)
	timesheets := timesheet.NewService(gateway)
	confirms := confirm.NewManager()

	overview := timesheet.NewLoader(timesheets, store, router, ui, ui, log)
	editor := timesheet.NewEditor(timesheets, store, overview, ui, log)
	team := employee.NewLoader(employees, router, ui, ui, log)
	boot := session.NewBootstrapper(store, router, ui, employees, overview.Load, team.Load, log)

	return &App{
		store:       store,
		gateway:     gateway,
		router:      router,
		confirms:    confirms,
		interceptor: interceptor,
		boot:        boot,
		auth:        auth.NewService(gateway, store, log),
		employees:   employees,
		timesheets:  timesheets,
		overview:    overview,
		editor:      editor,
		team:        team,
		ui:          ui,
		log:         log,
	}
}

// Run bootstraps the session and processes commands until quit or context
// cancellation.
func (a *App) Run(ctx context.Context) error {
	a.boot.Bootstrap(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		cred, err := a.store.Get()
		if err != nil {
			a.log.Warn("failed to read credential store", "error", err)
		}

		cmd, err := a.ui.NextCommand(cred.Present(), cred.Role)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		if cmd == CmdQuit {
			return nil
		}

		// Every log line under this dispatch carries the command and the
		// acting user, the way request-scoped fields ride the context.
		cmdCtx := logger.With(ctx, "command", cmd.String(), "user_id", cred.UserID)
		a.dispatch(cmdCtx, cmd)
	}
}

func (a *App) dispatch(ctx context.Context, cmd Command) {
	switch cmd {
	case CmdLogin:
		a.handleLogin(ctx)
	case CmdRegister:
		a.handleRegister(ctx)
	case CmdOverview:
		a.overview.Load(ctx)
	case CmdTeam:
		a.team.Load(ctx)
	case CmdProjects:
		a.router.Show(view.Projects)
	case CmdPayments:
		a.router.Show(view.Payments)
	case CmdReports:
		a.router.Show(view.Reports)
	case CmdSettings:
		a.router.Show(view.Settings)
	case CmdAddTimesheet:
		a.handleAddTimesheet(ctx)
	case CmdEditTimesheet:
		a.handleEditTimesheet(ctx)
	case CmdDeleteTimesheet:
		a.handleDeleteTimesheet(ctx)
	case CmdDeleteEmployee:
		a.handleDeleteEmployee(ctx)
	case CmdLogout:
		a.handleLogout(ctx)
	}
}

func (a *App) handleLogin(ctx context.Context) {
	dto, ok := a.ui.LoginForm(a.prefillEmail)
	if !ok {
		return
	}

	cred, err := a.auth.Login(ctx, dto)
	if err != nil {
		a.surface(err)
		return
	}

	a.prefillEmail = ""
	a.interceptor.Arm()
	a.ui.Notify("Login successful!", false)
	logger.From(ctx).Info("logged in", "user_id", cred.UserID, "role", cred.Role)
	a.boot.Bootstrap(ctx)
}

func (a *App) handleRegister(ctx context.Context) {
	dto, ok := a.ui.RegisterForm()
	if !ok {
		return
	}

	if err := a.auth.Register(ctx, dto); err != nil {
		a.surface(err)
		return
	}

	a.prefillEmail = dto.Email
	a.ui.Notify("Registration successful! Please login.", false)
	a.router.Show(view.Login)
}

func (a *App) handleLogout(ctx context.Context) {
	if err := a.auth.Logout(); err != nil {
		a.log.Error("failed to clear credential store on logout", "error", err)
	}
	a.ui.Notify("You have been logged out.", false)
	a.boot.Bootstrap(ctx)
}

func (a *App) handleAddTimesheet(ctx context.Context) {
	dto, ok := a.ui.TimesheetForm(nil)
	if !ok {
		return
	}
	_ = a.editor.Save(ctx, dto)
}

func (a *App) handleEditTimesheet(ctx context.Context) {
	entries, err := a.editor.Entries(ctx)
	if err != nil || len(entries) == 0 {
		return
	}

	entry, ok := a.ui.PickTimesheet(entries)
	if !ok {
		return
	}

	dto, ok := a.ui.TimesheetForm(&entry)
	if !ok {
		return
	}
	dto.ID = entry.ID
	_ = a.editor.Save(ctx, dto)
}

func (a *App) handleDeleteTimesheet(ctx context.Context) {
	entries, err := a.editor.Entries(ctx)
	if err != nil || len(entries) == 0 {
		return
	}

	entry, ok := a.ui.PickTimesheet(entries)
	if !ok {
		return
	}
	a.confirmFlow(a.editor.StageDelete(ctx, entry.ID))
}

func (a *App) handleDeleteEmployee(ctx context.Context) {
	employees, err := a.employees.List(ctx)
	if err != nil {
		a.surface(err)
		return
	}
	if len(employees) == 0 {
		return
	}

	emp, ok := a.ui.PickEmployee(employees)
	if !ok {
		return
	}
	a.confirmFlow(a.team.StageDelete(ctx, emp))
}

// confirmFlow runs one pass of the confirmation protocol: stage, ask, then
// execute or discard. The slot is cleared on both paths.
func (a *App) confirmFlow(action confirm.Action) {
	a.confirms.Stage(action)
	if a.ui.ConfirmDialog(action.Message) {
		a.confirms.Confirm()
	} else {
		a.confirms.Cancel()
	}
}

func (a *App) surface(err error) {
	if internal.IsAuthRejected(err) {
		return
	}
	if appErr, ok := internal.IsAppError(err); ok {
		a.ui.Notify(appErr.Message, true)
		return
	}
	a.ui.Notify(err.Error(), true)
}
