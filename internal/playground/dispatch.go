package playground

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Mohsinsiddi/w3play/internal/logging"
)

// DefaultAPIURL is the calldata API base used when nothing is configured.
const DefaultAPIURL = "http://localhost:8000"

// Dispatcher sends playground requests either to the calldata API or, in
// demo mode, to the local simulator.
type Dispatcher struct {
	client  *http.Client
	baseURL string
	demo    bool
	logger  *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(d *Dispatcher) { d.client = c }
}

// WithLogger sets the logger used for dispatch diagnostics. nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewDispatcher creates a dispatcher. When demo is true no network calls are made.
func NewDispatcher(baseURL string, demo bool, opts ...Option) *Dispatcher {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	d := &Dispatcher{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		demo:    demo,
		logger:  logging.Nop(),
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Demo reports whether responses are simulated.
func (d *Dispatcher) Demo() bool { return d.demo }

// BaseURL returns the API origin requests are sent to.
func (d *Dispatcher) BaseURL() string { return d.baseURL }

// Send performs req and returns the decoded response. Failures never escape:
// they come back as {"error": true, "message": ...}.
func (d *Dispatcher) Send(ctx context.Context, req Request) any {
	var (
		v   any
		err error
	)
	if d.demo {
		v, err = Simulate(req)
	} else {
		v, err = d.call(ctx, req)
	}
	if err != nil {
		d.logger.Debug("dispatch failed", "endpoint", req.Endpoint, "error", err)
		return ErrorResult(err)
	}
	return v
}

// Dispatch builds the request for name from form values and sends it.
// An unknown name yields UnknownEndpointResult.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, values map[string]string) any {
	req, err := Build(name, values)
	if errors.Is(err, ErrUnknownEndpoint) {
		return UnknownEndpointResult()
	}
	if err != nil {
		return ErrorResult(err)
	}
	return d.Send(ctx, req)
}

// ErrorResult wraps a dispatch failure in the shape shown to the user.
func ErrorResult(err error) map[string]any {
	return map[string]any{"error": true, "message": err.Error()}
}

func (d *Dispatcher) call(ctx context.Context, req Request) (any, error) {
	body, err := req.JSON()
	if err != nil {
		return nil, fmt.Errorf("encoding body: %w", err)
	}

	var rdr io.Reader
	if req.Method == http.MethodPost && body != nil {
		rdr = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, d.baseURL+req.Path, rdr)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	d.logger.Debug("dispatching", "method", req.Method, "url", httpReq.URL.String())

	resp, err := d.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decoding response (HTTP %d): %w", resp.StatusCode, err)
	}
	return v, nil
}

// Render formats a response the way the playground displays it.
func Render(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		data, _ = json.MarshalIndent(ErrorResult(err), "", "  ")
	}
	return string(data)
}
