package employee

import (
	"context"
	"net/http"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/Rohit242003/timesheet-dashboard/internal"
	"github.com/Rohit242003/timesheet-dashboard/internal/api"
)

var _ = ginkgo.Describe("Service", func() {
	var (
		gateway *mockGateway
		service *Service
	)

	ginkgo.BeforeEach(func() {
		gateway = newMockGateway()
		service = NewService(gateway)
	})

	ginkgo.Describe("List", func() {
		ginkgo.It("should decode the employee collection", func() {
			gateway.on(http.MethodGet, "/Employee", api.Outcome{
				Status: http.StatusOK,
				Body:   []byte(`[{"id":3,"name":"Alice","email":"alice@example.com","role":"Admin"}]`),
			})

			employees, err := service.List(context.Background())

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(employees).To(gomega.HaveLen(1))
			gomega.Expect(employees[0].Name).To(gomega.Equal("Alice"))
		})

		ginkgo.It("should fall back to a generic message when the failure body is opaque", func() {
			gateway.on(http.MethodGet, "/Employee", api.Outcome{Status: http.StatusInternalServerError})

			_, err := service.List(context.Background())

			gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("Failed to load team members.")))
		})
	})

	ginkgo.Describe("ProfileName", func() {
		ginkgo.It("should resolve the employee's display name", func() {
			gateway.on(http.MethodGet, "/Employee/3", api.Outcome{
				Status: http.StatusOK,
				Body:   []byte(`{"id":3,"name":"Alice","email":"alice@example.com","role":"Admin"}`),
			})

			name, err := service.ProfileName(context.Background(), 3)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(name).To(gomega.Equal("Alice"))
		})

		ginkgo.It("should propagate a session rejection untouched", func() {
			gateway.on(http.MethodGet, "/Employee/3", api.Outcome{Status: http.StatusUnauthorized})

			_, err := service.ProfileName(context.Background(), 3)

			gomega.Expect(internal.IsAuthRejected(err)).To(gomega.BeTrue())
		})
	})

	ginkgo.Describe("Delete", func() {
		ginkgo.It("should DELETE the per-record endpoint", func() {
			gomega.Expect(service.Delete(context.Background(), 3)).To(gomega.Succeed())

			gomega.Expect(gateway.calls[0].Method).To(gomega.Equal(http.MethodDelete))
			gomega.Expect(gateway.calls[0].Path).To(gomega.Equal("/Employee/3"))
		})
	})
})
