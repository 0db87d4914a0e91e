package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/Rohit242003/timesheet-dashboard/internal"
	"github.com/Rohit242003/timesheet-dashboard/internal/view"
)

func signedToken(expiresAt time.Time) string {
	claims := jwt.MapClaims{"sub": "7", "exp": expiresAt.Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	gomega.Expect(err).ToNot(gomega.HaveOccurred())
	return token
}

var _ = ginkgo.Describe("Bootstrapper", func() {
	var (
		store         *mockStore
		presenter     *mockPresenter
		router        *view.Router
		profiles      *mockProfiles
		boot          *Bootstrapper
		overviewLoads int
		teamLoads     int
	)

	ginkgo.BeforeEach(func() {
		store = &mockStore{}
		presenter = &mockPresenter{}
		router = view.NewRouter(presenter)
		profiles = &mockProfiles{name: "Alice"}
		overviewLoads = 0
		teamLoads = 0

		boot = NewBootstrapper(
			store,
			router,
			presenter,
			profiles,
			func(ctx context.Context) { overviewLoads++ },
			func(ctx context.Context) { teamLoads++ },
			testLogger(),
		)
	})

	ginkgo.Context("with an empty credential store", func() {
		ginkgo.It("should route to login in logged-out mode", func() {
			boot.Bootstrap(context.Background())

			gomega.Expect(router.Current()).To(gomega.Equal(view.Login))
			loggedIn, ok := presenter.lastLoggedIn()
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(loggedIn).To(gomega.BeFalse())
			gomega.Expect(overviewLoads).To(gomega.BeZero())
			gomega.Expect(teamLoads).To(gomega.BeZero())
		})
	})

	ginkgo.Context("with an employee credential", func() {
		ginkgo.BeforeEach(func() {
			store.cred = Credential{
				Token:       signedToken(time.Now().Add(time.Hour)),
				Role:        RoleEmployee,
				UserID:      7,
				DisplayName: "Bob",
			}
		})

		ginkgo.It("should enter logged-in mode and load the overview", func() {
			boot.Bootstrap(context.Background())

			loggedIn, _ := presenter.lastLoggedIn()
			gomega.Expect(loggedIn).To(gomega.BeTrue())
			gomega.Expect(overviewLoads).To(gomega.Equal(1))
			gomega.Expect(teamLoads).To(gomega.BeZero())
		})
	})

	ginkgo.Context("with an admin credential", func() {
		ginkgo.BeforeEach(func() {
			store.cred = Credential{
				Token:       signedToken(time.Now().Add(time.Hour)),
				Role:        RoleAdmin,
				UserID:      3,
				DisplayName: "stale name",
			}
		})

		ginkgo.It("should refresh the display name before loading the team view", func() {
			boot.Bootstrap(context.Background())

			cred, _ := store.Get()
			gomega.Expect(cred.DisplayName).To(gomega.Equal("Alice"))
			gomega.Expect(teamLoads).To(gomega.Equal(1))
			gomega.Expect(overviewLoads).To(gomega.BeZero())
		})

		ginkgo.It("should abort quietly when the profile fetch fails", func() {
			profiles.err = internal.NewRemoteError("upstream hiccup", 500)

			boot.Bootstrap(context.Background())

			gomega.Expect(teamLoads).To(gomega.BeZero())
			loggedIn, ok := presenter.lastLoggedIn()
			gomega.Expect(loggedIn && ok).To(gomega.BeFalse())
		})

		ginkgo.It("should leave a rejected credential to the interceptor", func() {
			profiles.err = internal.NewAuthRejectedError()

			boot.Bootstrap(context.Background())

			gomega.Expect(teamLoads).To(gomega.BeZero())
			gomega.Expect(overviewLoads).To(gomega.BeZero())
		})
	})

	ginkgo.Context("with a tampered credential missing the user id", func() {
		ginkgo.BeforeEach(func() {
			store.cred = Credential{Token: signedToken(time.Now().Add(time.Hour)), Role: RoleEmployee}
		})

		ginkgo.It("should clear the store and restart once, landing on login", func() {
			boot.Bootstrap(context.Background())

			gomega.Expect(store.clears()).To(gomega.Equal(1))
			gomega.Expect(router.Current()).To(gomega.Equal(view.Login))
			loggedIn, _ := presenter.lastLoggedIn()
			gomega.Expect(loggedIn).To(gomega.BeFalse())
		})
	})

	ginkgo.Context("with an already-expired token", func() {
		ginkgo.BeforeEach(func() {
			store.cred = Credential{
				Token:       signedToken(time.Now().Add(-time.Hour)),
				Role:        RoleEmployee,
				UserID:      7,
				DisplayName: "Bob",
			}
		})

		ginkgo.It("should clear the credential and route to login without a network call", func() {
			boot.Bootstrap(context.Background())

			gomega.Expect(store.clears()).To(gomega.Equal(1))
			gomega.Expect(router.Current()).To(gomega.Equal(view.Login))
			gomega.Expect(overviewLoads).To(gomega.BeZero())
		})
	})
})

var _ = ginkgo.Describe("tokenExpired", func() {
	now := time.Now()

	ginkgo.It("should report an expired token", func() {
		gomega.Expect(tokenExpired(signedToken(now.Add(-time.Minute)), now)).To(gomega.BeTrue())
	})

	ginkgo.It("should pass a live token", func() {
		gomega.Expect(tokenExpired(signedToken(now.Add(time.Minute)), now)).To(gomega.BeFalse())
	})

	ginkgo.It("should give an unparseable token the benefit of the doubt", func() {
		gomega.Expect(tokenExpired("not-a-jwt", now)).To(gomega.BeFalse())
	})
})
