package timesheet

import (
	"context"
	"log/slog"
	"time"

	"github.com/Rohit242003/timesheet-dashboard/internal"
	"github.com/Rohit242003/timesheet-dashboard/internal/confirm"
	"github.com/Rohit242003/timesheet-dashboard/internal/session"
	"github.com/Rohit242003/timesheet-dashboard/internal/view"
)

// Saver is the service surface the editor needs.
type Saver interface {
	ListForEmployee(ctx context.Context, employeeID int64) ([]Timesheet, error)
	Save(ctx context.Context, entry Timesheet) (bool, error)
	Delete(ctx context.Context, id int64) error
}

// Editor handles timesheet create, update, and delete. Every success routes
// back through the overview loader so the charts resynchronize from the
// authoritative remote state.
type Editor struct {
	service  Saver
	store    session.Store
	loader   *Loader
	notifier view.Notifier
	log      *slog.Logger
}

func NewEditor(service Saver, store session.Store, loader *Loader, notifier view.Notifier, log *slog.Logger) *Editor {
	return &Editor{
		service:  service,
		store:    store,
		loader:   loader,
		notifier: notifier,
		log:      log,
	}
}

// Entries re-fetches the signed-in employee's timesheets. Edit pre-fill goes
// through here: the client keeps no cache to pre-fill from.
func (e *Editor) Entries(ctx context.Context) ([]Timesheet, error) {
	cred, err := e.store.Get()
	if err != nil || !cred.Present() {
		return nil, internal.NewValidationError("not logged in")
	}

	entries, err := e.service.ListForEmployee(ctx, cred.UserID)
	if err != nil {
		e.surface(err)
		return nil, err
	}
	return entries, nil
}

// Save validates the form, submits it, and reloads the overview on success.
func (e *Editor) Save(ctx context.Context, dto EntryDTO) error {
	if err := dto.Validate(); err != nil {
		e.notifier.Notify(err.Error(), true)
		return err
	}

	cred, err := e.store.Get()
	if err != nil || !cred.Present() {
		return internal.NewValidationError("not logged in")
	}

	date, err := time.Parse(dateLayout, dto.Date)
	if err != nil {
		return ValidationError{Msg: "date must be YYYY-MM-DD"}
	}

	entry := Timesheet{
		ID:          dto.ID,
		EmployeeID:  cred.UserID,
		Date:        Date{date},
		HoursWorked: dto.HoursWorked,
		TaskDetails: dto.TaskDetails,
	}

	updated, err := e.service.Save(ctx, entry)
	if err != nil {
		e.surface(err)
		return err
	}

	if updated {
		e.notifier.Notify("Timesheet updated.", false)
	} else {
		e.notifier.Notify("Timesheet added.", false)
	}
	e.loader.Load(ctx)
	return nil
}

// StageDelete builds the confirmable delete action for the entry.
func (e *Editor) StageDelete(ctx context.Context, id int64) confirm.Action {
	target := confirm.Target{Kind: confirm.KindTimesheet, ID: id}

	return confirm.NewAction("Delete this timesheet entry?", target, func() {
		if err := e.service.Delete(ctx, id); err != nil {
			e.surface(err)
			return
		}
		e.notifier.Notify("Timesheet deleted.", false)
		e.loader.Load(ctx)
	})
}

func (e *Editor) surface(err error) {
	if internal.IsAuthRejected(err) {
		return
	}
	if appErr, ok := internal.IsAppError(err); ok {
		e.notifier.Notify(appErr.Message, true)
		return
	}
	e.notifier.Notify(err.Error(), true)
}
