package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Rohit242003/timesheet-dashboard/internal"
	"github.com/Rohit242003/timesheet-dashboard/internal/api"
	"github.com/Rohit242003/timesheet-dashboard/internal/session"
)

// Gateway is the slice of the API gateway this service consumes.
type Gateway interface {
	Call(ctx context.Context, method, path string, body any, opts ...api.CallOption) api.Outcome
}

type Service struct {
	gateway Gateway
	store   session.Store
	log     *slog.Logger
}

func NewService(gateway Gateway, store session.Store, log *slog.Logger) *Service {
	return &Service{
		gateway: gateway,
		store:   store,
		log:     log,
	}
}

type loginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	ID    int64  `json:"id"`
}

// Login authenticates and commits the complete credential in one step. The
// display name is fetched before anything touches the store, so consumers
// never see a partial credential.
func (s *Service) Login(ctx context.Context, dto LoginDTO) (session.Credential, error) {
	if err := dto.Validate(); err != nil {
		return session.Credential{}, err
	}

	out := s.gateway.Call(ctx, http.MethodPost, "/Auth/login", dto)
	if err := api.AsError(out, "Invalid email or password."); err != nil {
		return session.Credential{}, err
	}

	var resp loginResponse
	if err := out.Decode(&resp); err != nil {
		return session.Credential{}, internal.NewTransportError("malformed login response", err)
	}

	cred := session.Credential{
		Token:       resp.Token,
		Role:        session.Role(resp.Role),
		UserID:      resp.ID,
		DisplayName: s.fetchName(ctx, resp.Token, resp.ID),
	}

	if err := s.store.Set(cred); err != nil {
		return session.Credential{}, fmt.Errorf("failed to persist credential: %w", err)
	}
	return cred, nil
}

// fetchName resolves the display name for the just-issued token. A failure
// here must not fail the login, so it degrades to a generic name.
func (s *Service) fetchName(ctx context.Context, token string, id int64) string {
	out := s.gateway.Call(ctx, http.MethodGet, fmt.Sprintf("/Employee/%d", id), nil, api.WithBearer(token))
	if !out.IsSuccess() {
		s.log.Warn("failed to fetch profile name at login", "user_id", id, "status", out.Status)
		return "User"
	}

	var profile struct {
		Name string `json:"name"`
	}
	if err := out.Decode(&profile); err != nil || profile.Name == "" {
		return "User"
	}
	return profile.Name
}

// Register creates the account. The caller routes back to login on success;
// no credential is issued here.
func (s *Service) Register(ctx context.Context, dto RegisterDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	out := s.gateway.Call(ctx, http.MethodPost, "/Auth/register", dto)
	return api.AsError(out, "Registration failed.")
}

func (s *Service) Logout() error {
	return s.store.Clear()
}
