package timesheet

import (
	"context"
	"net/http"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/Rohit242003/timesheet-dashboard/internal/api"
	"github.com/Rohit242003/timesheet-dashboard/internal/session"
	"github.com/Rohit242003/timesheet-dashboard/internal/view"
)

// navigatingLister routes to another view while the fetch is in flight.
type navigatingLister struct {
	router  *view.Router
	to      view.ViewID
	entries []Timesheet
}

func (l *navigatingLister) ListForEmployee(ctx context.Context, employeeID int64) ([]Timesheet, error) {
	l.router.Show(l.to)
	return l.entries, nil
}

var _ = ginkgo.Describe("Overview Loader", func() {
	var (
		gateway   *mockGateway
		store     *mockStore
		presenter *mockPresenter
		notifier  *mockNotifier
		router    *view.Router
		loader    *Loader
	)

	ginkgo.BeforeEach(func() {
		gateway = newMockGateway()
		store = &mockStore{cred: session.Credential{
			Token:       "t1",
			Role:        session.RoleEmployee,
			UserID:      7,
			DisplayName: "Bob",
		}}
		presenter = &mockPresenter{}
		notifier = &mockNotifier{}
		router = view.NewRouter(presenter)
		loader = NewLoader(NewService(gateway), store, router, presenter, notifier, testLogger())
	})

	ginkgo.It("should show the overview before fetching, then render the derived data", func() {
		gateway.on(http.MethodGet, "/Timesheet/employee/7", api.Outcome{
			Status: http.StatusOK,
			Body: []byte(`[
				{"id":1,"employeeId":7,"date":"2026-08-03","hoursWorked":8,"taskDetails":"Apollo build"},
				{"id":2,"employeeId":7,"date":"2026-08-04","hoursWorked":3,"taskDetails":"Hermes review"}
			]`),
		})

		loader.Load(context.Background())

		gomega.Expect(router.Current()).To(gomega.Equal(view.Overview))
		gomega.Expect(presenter.rendered).To(gomega.HaveLen(1))

		data, ok := presenter.rendered[0].(OverviewData)
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(data.Recent).To(gomega.HaveLen(2))
		gomega.Expect(data.Recent[0].TaskDetails).To(gomega.Equal("Hermes review"))
		gomega.Expect(data.HoursByDay).To(gomega.HaveLen(2))
		gomega.Expect(data.HoursByProject).To(gomega.Equal([]ChartPoint{
			{Label: "Apollo", Hours: 8},
			{Label: "Hermes", Hours: 3},
		}))
	})

	ginkgo.It("should skip the fetch entirely without a credential", func() {
		store.cred = session.Credential{}

		loader.Load(context.Background())

		gomega.Expect(gateway.calls).To(gomega.BeEmpty())
		gomega.Expect(presenter.rendered).To(gomega.BeEmpty())
	})

	ginkgo.It("should drop the response when the user navigated away mid-fetch", func() {
		lister := &navigatingLister{
			router:  router,
			to:      view.Settings,
			entries: []Timesheet{{ID: 1, EmployeeID: 7, HoursWorked: 8, TaskDetails: "Apollo build"}},
		}
		loader = NewLoader(lister, store, router, presenter, notifier, testLogger())

		loader.Load(context.Background())

		gomega.Expect(router.Current()).To(gomega.Equal(view.Settings))
		gomega.Expect(presenter.rendered).To(gomega.BeEmpty())
	})

	ginkgo.It("should surface a remote failure as an error notice", func() {
		gateway.on(http.MethodGet, "/Timesheet/employee/7", api.Outcome{
			Status: http.StatusInternalServerError,
			Body:   []byte(`{"title":"backend down"}`),
		})

		loader.Load(context.Background())

		gomega.Expect(notifier.notices).To(gomega.ConsistOf("backend down"))
		gomega.Expect(notifier.errors).To(gomega.ConsistOf(true))
		gomega.Expect(presenter.rendered).To(gomega.BeEmpty())
	})

	ginkgo.It("should stay quiet on a rejected session", func() {
		gateway.on(http.MethodGet, "/Timesheet/employee/7", api.Outcome{Status: http.StatusUnauthorized})

		loader.Load(context.Background())

		gomega.Expect(notifier.notices).To(gomega.BeEmpty())
	})
})
