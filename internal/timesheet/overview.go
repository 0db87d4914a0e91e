package timesheet

import (
	"context"
	"log/slog"
	"sort"

	"github.com/Rohit242003/timesheet-dashboard/internal"
	"github.com/Rohit242003/timesheet-dashboard/internal/session"
	"github.com/Rohit242003/timesheet-dashboard/internal/view"
)

// recentLimit caps the summary table at the most recent entries.
const recentLimit = 5

// OverviewData is what the presenter receives for the overview view: the
// summary table plus the two chart datasets derived from the full fetch.
type OverviewData struct {
	Recent         []Timesheet
	HoursByDay     []ChartPoint
	HoursByProject []ChartPoint
}

// Lister is the service surface the loader needs.
type Lister interface {
	ListForEmployee(ctx context.Context, employeeID int64) ([]Timesheet, error)
}

// Loader fetches the signed-in employee's timesheets and renders the
// overview. Derived data is always recomputed from the fresh fetch; nothing
// is patched locally.
type Loader struct {
	service  Lister
	store    session.Store
	router   *view.Router
	ui       view.Presenter
	notifier view.Notifier
	log      *slog.Logger
}

func NewLoader(service Lister, store session.Store, router *view.Router, ui view.Presenter, notifier view.Notifier, log *slog.Logger) *Loader {
	return &Loader{
		service:  service,
		store:    store,
		router:   router,
		ui:       ui,
		notifier: notifier,
		log:      log,
	}
}

func (l *Loader) Load(ctx context.Context) {
	cred, err := l.store.Get()
	if err != nil || !cred.Present() {
		l.log.Warn("overview load without a credential, skipping")
		return
	}

	l.router.Show(view.Overview)

	entries, err := l.service.ListForEmployee(ctx, cred.UserID)
	if err != nil {
		l.surface(err)
		return
	}

	// The user may have navigated away while the request was in flight.
	if l.router.Current() != view.Overview {
		return
	}

	l.ui.Render(view.Overview, OverviewData{
		Recent:         Recent(entries),
		HoursByDay:     HoursByDay(entries),
		HoursByProject: HoursByProject(entries),
	})
}

// Recent returns the entries sorted by date descending, capped at the
// summary table size. The input slice is not modified.
func Recent(entries []Timesheet) []Timesheet {
	sorted := make([]Timesheet, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[j].Date.Before(sorted[i].Date.Time)
	})

	if len(sorted) > recentLimit {
		sorted = sorted[:recentLimit]
	}
	return sorted
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
