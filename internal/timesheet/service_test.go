package timesheet

import (
	"context"
	"net/http"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

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

	ginkgo.Describe("Save", func() {
		ginkgo.It("should PUT to the per-record endpoint when the id is set", func() {
			entry := Timesheet{ID: 42, EmployeeID: 7, Date: Date{time.Now()}, HoursWorked: 6, TaskDetails: "Apollo sync"}

			updated, err := service.Save(context.Background(), entry)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(updated).To(gomega.BeTrue())
			gomega.Expect(gateway.calls).To(gomega.HaveLen(1))
			gomega.Expect(gateway.calls[0].Method).To(gomega.Equal(http.MethodPut))
			gomega.Expect(gateway.calls[0].Path).To(gomega.Equal("/Timesheet/42"))
		})

		ginkgo.It("should POST to the collection endpoint when the id is absent", func() {
			entry := Timesheet{EmployeeID: 7, Date: Date{time.Now()}, HoursWorked: 6, TaskDetails: "Apollo sync"}

			updated, err := service.Save(context.Background(), entry)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(updated).To(gomega.BeFalse())
			gomega.Expect(gateway.calls[0].Method).To(gomega.Equal(http.MethodPost))
			gomega.Expect(gateway.calls[0].Path).To(gomega.Equal("/Timesheet"))
		})

		ginkgo.It("should surface the remote validation message", func() {
			gateway.on(http.MethodPost, "/Timesheet", api.Outcome{
				Status: http.StatusBadRequest,
				Body:   []byte(`{"errors":{"hoursWorked":["must be positive"]}}`),
			})

			_, err := service.Save(context.Background(), Timesheet{HoursWorked: -1})

			gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("must be positive")))
		})
	})

	ginkgo.Describe("ListForEmployee", func() {
		ginkgo.It("should decode a collection response", func() {
			gateway.on(http.MethodGet, "/Timesheet/employee/7", api.Outcome{
				Status: http.StatusOK,
				Body:   []byte(`[{"id":1,"employeeId":7,"date":"2026-08-03","hoursWorked":8,"taskDetails":"Apollo sync"}]`),
			})

			entries, err := service.ListForEmployee(context.Background(), 7)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(entries).To(gomega.HaveLen(1))
			gomega.Expect(entries[0].TaskDetails).To(gomega.Equal("Apollo sync"))
		})

		ginkgo.It("should tolerate a single-object response", func() {
			gateway.on(http.MethodGet, "/Timesheet/employee/7", api.Outcome{
				Status: http.StatusOK,
				Body:   []byte(`{"id":1,"employeeId":7,"date":"2026-08-03T00:00:00","hoursWorked":8,"taskDetails":"Apollo sync"}`),
			})

			entries, err := service.ListForEmployee(context.Background(), 7)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(entries).To(gomega.HaveLen(1))
			gomega.Expect(entries[0].Date.Display()).To(gomega.Equal("2026-08-03"))
		})
	})

	ginkgo.Describe("Delete", func() {
		ginkgo.It("should DELETE the per-record endpoint", func() {
			gomega.Expect(service.Delete(context.Background(), 9)).To(gomega.Succeed())

			gomega.Expect(gateway.calls[0].Method).To(gomega.Equal(http.MethodDelete))
			gomega.Expect(gateway.calls[0].Path).To(gomega.Equal("/Timesheet/9"))
		})
	})
})
