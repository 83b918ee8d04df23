// Package api is the typed client for the MDD REST backend. It owns error
// normalization and the authorizing transport; resource methods are thin
// pass-throughs with no business logic on top of the wire types.
package api

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
	"sync/atomic"
	"time"

	"github.com/mdd-app/mdd-go/internal/domain"
	"github.com/mdd-app/mdd-go/internal/session"
)

const defaultTimeout = 10 * time.Second

// Config assembles a Client. Session and BaseURL are required.
type Config struct {
	// BaseURL is the API root, e.g. http://localhost:8082/api.
	BaseURL string
	// Timeout bounds each request end to end. Zero means the default.
	Timeout time.Duration
	// Session is the process-wide session store.
	Session *session.Store
	Logger  *slog.Logger
	// Transport overrides the underlying round tripper, mainly for tests.
	// The authorizing transport is layered on top of it either way.
	Transport http.RoundTripper
}

// Client calls the MDD backend. All requests flow through the authorizing
// transport; see transport.go for the bearer and 401 behaviour.
type Client struct {
	baseURL    string
	http       *http.Client
	session    *session.Store
	logger     *slog.Logger
	loggingOut atomic.Bool
}

// NewClient validates cfg and builds a client.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("api base url is required")
	}
	if cfg.Session == nil {
		return nil, errors.New("session store is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout:   timeout,
			Transport: newAuthTransport(cfg.Transport, cfg.Session, logger),
		},
		session: cfg.Session,
		logger:  logger,
	}, nil
}

// Session exposes the store the client mutates, for guards and views.
func (c *Client) Session() *session.Store { return c.session }

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// send executes req and decodes a JSON response into out when out is non-nil.
// Failures come back as *Error: status 0 when no response was received,
// otherwise the backend's status with its error envelope when parseable.
func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Status: 0, Message: msgServerUnreachable, cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Status: resp.StatusCode, Message: "read response body", cause: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &Error{Status: resp.StatusCode}
		var envelope domain.ErrorResponse
		if jerr := json.Unmarshal(raw, &envelope); jerr == nil {
			apiErr.Code = envelope.Error
			apiErr.Message = envelope.Message
		}
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Status: resp.StatusCode, Message: "decode response body", cause: err}
	}
	return nil
}

// sendText is send for endpoints that answer with a plain-text body.
func (c *Client) sendText(req *http.Request) (string, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return "", &Error{Status: 0, Message: msgServerUnreachable, cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Status: resp.StatusCode, Message: "read response body", cause: err}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &Error{Status: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
	}
	return strings.TrimSpace(string(raw)), nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	return c.send(req, out)
}
