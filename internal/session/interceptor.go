package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/Rohit242003/timesheet-dashboard/internal/api"
	"github.com/Rohit242003/timesheet-dashboard/internal/view"
)

// Navigator is the slice of the view router the session layer needs.
type Navigator interface {
	Show(v view.ViewID)
}

// DefaultNoticeTTL matches the auto-dismiss window of transient notices.
const DefaultNoticeTTL = 5 * time.Second

// Interceptor observes every gateway outcome and handles authentication
// rejection globally: feature code never carries a 401 branch. A burst of
// concurrently failing calls resets the session once and shows one notice.
type Interceptor struct {
	store     Store
	nav       Navigator
	ui        view.Presenter
	notifier  view.Notifier
	noticeTTL time.Duration
	now       func() time.Time
	log       *slog.Logger

	mu          sync.Mutex
	lastHandled time.Time
}

func NewInterceptor(store Store, nav Navigator, ui view.Presenter, notifier view.Notifier, log *slog.Logger) *Interceptor {
	return &Interceptor{
		store:     store,
		nav:       nav,
		ui:        ui,
		notifier:  notifier,
		noticeTTL: DefaultNoticeTTL,
		now:       time.Now,
		log:       log,
	}
}

// Observe is the gateway observer. Non-401 outcomes are left to the caller's
// local handler.
func (i *Interceptor) Observe(out api.Outcome) {
	if !out.IsAuthRejected() {
		return
	}

	i.mu.Lock()
	if !i.lastHandled.IsZero() && i.now().Sub(i.lastHandled) < i.noticeTTL {
		i.mu.Unlock()
		return
	}
	i.lastHandled = i.now()
	i.mu.Unlock()

	i.log.Info("credential rejected by remote, resetting session")

	if err := i.store.Clear(); err != nil {
		i.log.Error("failed to clear credential store", "error", err)
	}
	i.ui.SetLoggedIn(false)
	i.nav.Show(view.Login)
	i.ui.ResetForms()
	i.notifier.Notify("Your session has expired. Please log in again.", true)
}

// Arm lifts the suppression window. Called after a fresh credential is
// stored so a later rejection is reported even inside the old window.
func (i *Interceptor) Arm() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.lastHandled = time.Time{}
}
