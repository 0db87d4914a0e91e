package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/Rohit242003/timesheet-dashboard/internal/api"
	"github.com/Rohit242003/timesheet-dashboard/internal/view"
)

var _ = ginkgo.Describe("Interceptor", func() {
	var (
		store       *mockStore
		presenter   *mockPresenter
		notifier    *mockNotifier
		router      *view.Router
		interceptor *Interceptor
	)

	rejected := api.Outcome{Status: http.StatusUnauthorized}

	ginkgo.BeforeEach(func() {
		store = &mockStore{cred: Credential{Token: "t1", Role: RoleAdmin, UserID: 3, DisplayName: "Alice"}}
		presenter = &mockPresenter{}
		notifier = &mockNotifier{}
		router = view.NewRouter(presenter)
		router.Show(view.Team)
		interceptor = NewInterceptor(store, router, presenter, notifier, testLogger())
	})

	ginkgo.Context("when a call is rejected with 401", func() {
		ginkgo.It("should reset the session and route to login", func() {
			interceptor.Observe(rejected)

			cred, _ := store.Get()
			gomega.Expect(cred.Present()).To(gomega.BeFalse())
			gomega.Expect(router.Current()).To(gomega.Equal(view.Login))
			loggedIn, ok := presenter.lastLoggedIn()
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(loggedIn).To(gomega.BeFalse())
			gomega.Expect(presenter.resets).To(gomega.Equal(1))
			gomega.Expect(notifier.notices).To(gomega.ConsistOf("Your session has expired. Please log in again."))
		})

		ginkgo.It("should handle a burst of concurrent rejections exactly once", func() {
			var wg sync.WaitGroup
			for i := 0; i < 25; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					interceptor.Observe(rejected)
				}()
			}
			wg.Wait()

			gomega.Expect(notifier.count()).To(gomega.Equal(1))
			gomega.Expect(store.clears()).To(gomega.Equal(1))
		})

		ginkgo.It("should suppress repeats while the notice is still visible", func() {
			interceptor.Observe(rejected)
			interceptor.Observe(rejected)

			gomega.Expect(notifier.count()).To(gomega.Equal(1))
		})

		ginkgo.It("should report again after the notice window has passed", func() {
			base := time.Now()
			interceptor.now = func() time.Time { return base }
			interceptor.Observe(rejected)

			interceptor.now = func() time.Time { return base.Add(DefaultNoticeTTL + time.Second) }
			interceptor.Observe(rejected)

			gomega.Expect(notifier.count()).To(gomega.Equal(2))
		})

		ginkgo.It("should report again after being re-armed by a fresh login", func() {
			interceptor.Observe(rejected)
			interceptor.Arm()
			interceptor.Observe(rejected)

			gomega.Expect(notifier.count()).To(gomega.Equal(2))
		})
	})

	ginkgo.Context("when a call fails for any other reason", func() {
		ginkgo.It("should leave handling to the caller", func() {
			interceptor.Observe(api.Outcome{Status: http.StatusBadRequest})
			interceptor.Observe(api.Outcome{Status: http.StatusInternalServerError})

			gomega.Expect(notifier.count()).To(gomega.Equal(0))
			gomega.Expect(store.clears()).To(gomega.Equal(0))
			gomega.Expect(router.Current()).To(gomega.Equal(view.Team))
		})
	})
})
