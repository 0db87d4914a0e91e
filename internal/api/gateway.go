package api

import (
	"context"
	"log/slog"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/Rohit242003/timesheet-dashboard/internal"
)

// TokenSource supplies the current bearer token, or "" when logged out.
type TokenSource interface {
	Token() string
}

// Observer sees every outcome before the caller's own handler runs.
type Observer func(Outcome)

// CallSpec carries per-call overrides. Options mutate it so that test doubles
// can inspect what a caller asked for.
type CallSpec struct {
	BearerToken string
}

type CallOption func(*CallSpec)

// WithBearer overrides the token source for one call. Used during login,
// where the credential is not committed to the store yet.
func WithBearer(token string) CallOption {
	return func(s *CallSpec) {
		s.BearerToken = token
	}
}

// Gateway is the single chokepoint for all remote calls.
type Gateway struct {
	client *resty.Client
	tokens TokenSource
	log    *slog.Logger

	mu        sync.RWMutex
	observers []Observer
}

func NewGateway(cfg internal.APIConfig, tokens TokenSource, log *slog.Logger) *Gateway {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Gateway{
		client: client,
		tokens: tokens,
		log:    log,
	}
}

// Subscribe registers an observer for every future outcome.
func (g *Gateway) Subscribe(fn Observer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.observers = append(g.observers, fn)
}

// Call performs one request and classifies the result. An absent token means
// the Authorization header is omitted; rejecting that is the server's job.
func (g *Gateway) Call(ctx context.Context, method, path string, body any, opts ...CallOption) Outcome {
	spec := CallSpec{}
	for _, opt := range opts {
		opt(&spec)
	}

	token := spec.BearerToken
	if token == "" && g.tokens != nil {
		token = g.tokens.Token()
	}

	requestID := uuid.NewString()
	req := g.client.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID)
	if token != "" {
		req.SetAuthToken(token)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)

	var out Outcome
	if err != nil {
		g.log.Warn("api call failed", "method", method, "path", path, "request_id", requestID, "error", err)
		out = Outcome{Err: err}
	} else {
		g.log.Debug("api call completed",
			"method", method,
			"path", path,
			"request_id", requestID,
			"status", resp.StatusCode())
		out = Outcome{Status: resp.StatusCode(), Body: resp.Body()}
	}

	g.dispatch(out)
	return out
}

func (g *Gateway) dispatch(out Outcome) {
	g.mu.RLock()
	observers := make([]Observer, len(g.observers))
	copy(observers, g.observers)
	g.mu.RUnlock()

	for _, fn := range observers {
		fn(out)
	}
}
