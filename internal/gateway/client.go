// Package gateway is the sole network boundary of the client. Every server
// interaction passes through Client, which attaches the bearer token fresh
// per request and applies the global unauthorized policy: any 401 response
// terminates the session, regardless of which caller issued the request.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/buildflow/client/internal/core/domain"
	"github.com/buildflow/client/internal/core/ports"
	"github.com/buildflow/client/internal/metrics"
)

const defaultTimeout = 15 * time.Second

// Options configures a Client.
type Options struct {
	// BaseURL is the API origin, e.g. "http://localhost:8000". Fixed for
	// the lifetime of the client.
	BaseURL string
	// Store supplies the bearer token, read fresh on every request.
	Store ports.CredentialStore
	// Timeout bounds each call end-to-end. Zero selects the default.
	Timeout time.Duration
	// HTTPClient overrides the underlying transport, mainly for tests.
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Client talks to the BuildFlow REST API.
type Client struct {
	baseURL string
	http    *http.Client
	store   ports.CredentialStore
	log     zerolog.Logger

	// onUnauthorized runs whenever an authenticated call comes back 401.
	// Deduplication of the resulting session reset is the handler's job.
	onUnauthorized func()
}

var _ ports.AuthAPI = (*Client)(nil)

// New creates a Client. The unauthorized handler starts as a no-op; wire it
// with SetUnauthorizedHandler once the session store exists.
func New(opts Options) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:        strings.TrimRight(opts.BaseURL, "/"),
		http:           hc,
		store:          opts.Store,
		log:            opts.Logger,
		onUnauthorized: func() {},
	}
}

// SetUnauthorizedHandler installs the global 401 policy. Called once during
// wiring; not safe to swap while requests are in flight.
func (c *Client) SetUnauthorizedHandler(fn func()) {
	if fn != nil {
		c.onUnauthorized = fn
	}
}

// request describes one API call for the send helper.
type request struct {
	group  string // metrics/log label: endpoint family
	method string
	path   string
	query  url.Values
	body   any // JSON-encoded when non-nil
	out    any // decoded from a 2xx response when non-nil

	// bearer overrides the stored token when non-nil. An empty override
	// sends the request anonymously.
	bearer *string

	// skipUnauthorized exempts the call from the global 401 policy.
	// Only the login endpoint uses it: a rejected login is an
	// authentication failure, not an expired session.
	skipUnauthorized bool
}

func (c *Client) send(ctx context.Context, r request) error {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.attachBearer(req, r.bearer)

	return c.roundTrip(req, r)
}

// attachBearer sets the Authorization header from the override or, absent
// one, from durable storage as it stands right now.
func (c *Client) attachBearer(req *http.Request, override *string) {
	token := ""
	if override != nil {
		token = *override
	} else if c.store != nil {
		token = c.store.Token()
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// roundTrip executes the request and applies the shared response policy.
func (c *Client) roundTrip(req *http.Request, r request) error {
	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.RequestDuration.WithLabelValues(r.group).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(r.group, "transport_error").Inc()
		c.log.Warn().Err(err).Str("group", r.group).Str("path", r.path).Msg("transport failure")
		return &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	metrics.RequestsTotal.WithLabelValues(r.group, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode == http.StatusUnauthorized && !r.skipUnauthorized {
		metrics.SessionExpiredTotal.Inc()
		c.onUnauthorized()
		return &domain.APIError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.APIError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	if r.out != nil {
		if err := json.NewDecoder(resp.Body).Decode(r.out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// errorMessage extracts the structured message from an error envelope.
// Both the FastAPI shape ({"detail": ...}) and the plain shape
// ({"error": ...}) occur in the wild.
func errorMessage(body io.Reader) string {
	var envelope struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&envelope); err == nil {
		if envelope.Detail != "" {
			return envelope.Detail
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}
	return "request failed"
}

func (c *Client) get(ctx context.Context, group, path string, query url.Values, out any) error {
	return c.send(ctx, request{group: group, method: http.MethodGet, path: path, query: query, out: out})
}

func (c *Client) post(ctx context.Context, group, path string, body, out any) error {
	return c.send(ctx, request{group: group, method: http.MethodPost, path: path, body: body, out: out})
}

func (c *Client) put(ctx context.Context, group, path string, body, out any) error {
	return c.send(ctx, request{group: group, method: http.MethodPut, path: path, body: body, out: out})
}

func (c *Client) delete(ctx context.Context, group, path string) error {
	return c.send(ctx, request{group: group, method: http.MethodDelete, path: path})
}
