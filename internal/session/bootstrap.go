package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/Rohit242003/timesheet-dashboard/internal"
	"github.com/Rohit242003/timesheet-dashboard/internal/view"
)

// ProfileSource fetches an employee's display name. Implemented by the
// employee service; kept narrow so bootstrap stays testable.
type ProfileSource interface {
	ProfileName(ctx context.Context, id int64) (string, error)
}

// Loader triggers one view's fetch-and-render cycle.
type Loader func(ctx context.Context)

// Bootstrapper decides the initial view purely from the stored credential
// and role.
type Bootstrapper struct {
	store        Store
	nav          Navigator
	ui           view.Presenter
	profiles     ProfileSource
	loadOverview Loader
	loadTeam     Loader
	now          func() time.Time
	log          *slog.Logger
}

func NewBootstrapper(
	store Store,
	nav Navigator,
	ui view.Presenter,
	profiles ProfileSource,
	loadOverview Loader,
	loadTeam Loader,
	log *slog.Logger,
) *Bootstrapper {
	return &Bootstrapper{
		store:        store,
		nav:          nav,
		ui:           ui,
		profiles:     profiles,
		loadOverview: loadOverview,
		loadTeam:     loadTeam,
		now:          time.Now,
		log:          log,
	}
}

func (b *Bootstrapper) Bootstrap(ctx context.Context) {
	b.run(ctx, true)
}

func (b *Bootstrapper) run(ctx context.Context, retry bool) {
	cred, err := b.store.Get()
	if err != nil {
		b.log.Warn("failed to read credential store, treating as logged out", "error", err)
		cred = Credential{}
	}

	if cred.Token == "" {
		b.showLoggedOut()
		return
	}

	// Guard against tampered persisted state. Store.Get folds partial rows
	// already; this covers store implementations that do not.
	if cred.UserID == 0 {
		if err := b.store.Clear(); err != nil {
			b.log.Error("failed to clear tampered credential", "error", err)
		}
		if retry {
			b.run(ctx, false)
			return
		}
		b.showLoggedOut()
		return
	}

	if tokenExpired(cred.Token, b.now()) {
		b.log.Info("stored token already expired, clearing")
		if err := b.store.Clear(); err != nil {
			b.log.Error("failed to clear expired credential", "error", err)
		}
		b.showLoggedOut()
		return
	}

	if cred.Role == RoleAdmin {
		name, err := b.profiles.ProfileName(ctx, cred.UserID)
		if err != nil {
			// A 401 has already been handled by the interceptor. Anything
			// else aborts the bootstrap without taking down the client.
			if !internal.IsAuthRejected(err) {
				b.log.Error("failed to fetch admin profile on startup, session may be invalid", "error", err)
			}
			return
		}
		cred.DisplayName = name
		if err := b.store.Set(cred); err != nil {
			b.log.Warn("failed to persist refreshed display name", "error", err)
		}
		b.ui.SetLoggedIn(true)
		b.loadTeam(ctx)
		return
	}

	b.ui.SetLoggedIn(true)
	b.loadOverview(ctx)
}

func (b *Bootstrapper) showLoggedOut() {
	b.ui.SetLoggedIn(false)
	b.nav.Show(view.Login)
}
