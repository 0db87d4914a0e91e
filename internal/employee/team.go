package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Rohit242003/timesheet-dashboard/internal"
	"github.com/Rohit242003/timesheet-dashboard/internal/confirm"
	"github.com/Rohit242003/timesheet-dashboard/internal/view"
)

// Lister is the service surface the loader needs.
type Lister interface {
	List(ctx context.Context) ([]Employee, error)
	Delete(ctx context.Context, id int64) error
}

// Loader fetches the employee collection and renders the team view.
type Loader struct {
	service  Lister
	router   *view.Router
	ui       view.Presenter
	notifier view.Notifier
	log      *slog.Logger
}

func NewLoader(service Lister, router *view.Router, ui view.Presenter, notifier view.Notifier, log *slog.Logger) *Loader {
	return &Loader{
		service:  service,
		router:   router,
		ui:       ui,
		notifier: notifier,
		log:      log,
	}
}

func (l *Loader) Load(ctx context.Context) {
	l.router.Show(view.Team)

	employees, err := l.service.List(ctx)
	if err != nil {
		l.surface(err)
		return
	}

	// The user may have navigated away while the request was in flight.
	if l.router.Current() != view.Team {
		return
	}
	l.ui.Render(view.Team, TeamData{Employees: employees})
}

// StageDelete builds the confirmable delete action for emp. The returned
// action performs the remote delete and reloads the team view only when the
// confirmation protocol executes it.
func (l *Loader) StageDelete(ctx context.Context, emp Employee) confirm.Action {
	message := fmt.Sprintf("Delete employee %q?", emp.Name)
	target := confirm.Target{Kind: confirm.KindEmployee, ID: emp.ID}

	return confirm.NewAction(message, target, func() {
		if err := l.service.Delete(ctx, emp.ID); err != nil {
			l.surface(err)
			return
		}
		l.notifier.Notify("Employee deleted.", false)
		l.Load(ctx)
	})
}

func (l *Loader) surface(err error) {
	// 401s are handled globally by the session interceptor.
	if internal.IsAuthRejected(err) {
		return
	}
	if appErr, ok := internal.IsAppError(err); ok {
		l.notifier.Notify(appErr.Message, true)
		return
	}
	l.notifier.Notify(err.Error(), true)
}
