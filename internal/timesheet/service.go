package timesheet

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Rohit242003/timesheet-dashboard/internal/api"
)

// Gateway is the slice of the API gateway this service consumes.
type Gateway interface {
	Call(ctx context.Context, method, path string, body any, opts ...api.CallOption) api.Outcome
}

type Service struct {
	gateway Gateway
}

func NewService(gateway Gateway) *Service {
	return &Service{gateway: gateway}
}

// ListForEmployee fetches one employee's timesheets. The remote endpoint
// replies with a single object instead of an array when exactly one record
// exists, so decoding is tolerant of both.
func (s *Service) ListForEmployee(ctx context.Context, employeeID int64) ([]Timesheet, error) {
	out := s.gateway.Call(ctx, http.MethodGet, fmt.Sprintf("/Timesheet/employee/%d", employeeID), nil)
	if err := api.AsError(out, "Failed to load overview data."); err != nil {
		return nil, err
	}

	var entries []Timesheet
	if err := out.Decode(&entries); err == nil {
		return entries, nil
	}

	var single Timesheet
	if err := out.Decode(&single); err != nil {
		return nil, fmt.Errorf("failed to decode timesheets: %w", err)
	}
	return []Timesheet{single}, nil
}

// Save submits the record: nonzero id updates in place, zero id creates.
// Returns whether an existing record was updated.
func (s *Service) Save(ctx context.Context, entry Timesheet) (bool, error) {
	method := http.MethodPost
	path := "/Timesheet"
	if entry.ID != 0 {
		method = http.MethodPut
		path = fmt.Sprintf("/Timesheet/%d", entry.ID)
	}

	out := s.gateway.Call(ctx, method, path, entry)
	if err := api.AsError(out, "Failed to save timesheet."); err != nil {
		return false, err
	}
	return entry.ID != 0, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	out := s.gateway.Call(ctx, http.MethodDelete, fmt.Sprintf("/Timesheet/%d", id), nil)
	return api.AsError(out, "Failed to delete timesheet.")
}
