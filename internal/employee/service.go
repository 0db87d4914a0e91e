package employee

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

func (s *Service) List(ctx context.Context) ([]Employee, error) {
	out := s.gateway.Call(ctx, http.MethodGet, "/Employee", nil)
	if err := api.AsError(out, "Failed to load team members."); err != nil {
		return nil, err
	}

	var employees []Employee
	if err := out.Decode(&employees); err != nil {
		return nil, fmt.Errorf("failed to decode employee list: %w", err)
	}
	return employees, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Employee, error) {
	out := s.gateway.Call(ctx, http.MethodGet, fmt.Sprintf("/Employee/%d", id), nil)
	if err := api.AsError(out, "Failed to load employee."); err != nil {
		return nil, err
	}

	var emp Employee
	if err := out.Decode(&emp); err != nil {
		return nil, fmt.Errorf("failed to decode employee: %w", err)
	}
	return &emp, nil
}

// ProfileName satisfies the session bootstrapper's profile lookup.
func (s *Service) ProfileName(ctx context.Context, id int64) (string, error) {
	emp, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return emp.Name, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	out := s.gateway.Call(ctx, http.MethodDelete, fmt.Sprintf("/Employee/%d", id), nil)
	return api.AsError(out, "Failed to delete employee.")
}
