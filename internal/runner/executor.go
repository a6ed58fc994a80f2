package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"patr/pkg/logging"
)

// DefaultTimeout bounds every request, including reading the body.
const DefaultTimeout = 10 * time.Second

// RequestExecutor sends the request for a single test.
type RequestExecutor interface {
	Execute(ctx context.Context, d RequestDescriptor, path string) RequestOutcome
}

// Executor is the net/http backed RequestExecutor. It sends exactly one GET
// per call, never follows redirects and never retries.
type Executor struct {
	client *http.Client
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithHTTPClient uses a copy of client for requests. The copy never follows
// redirects, whatever client's CheckRedirect says, and gets DefaultTimeout
// when client has none.
func WithHTTPClient(client *http.Client) ExecutorOption {
	return func(e *Executor) {
		c := *client
		if c.Timeout == 0 {
			c.Timeout = DefaultTimeout
		}
		e.client = &c
	}
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) ExecutorOption {
	return func(e *Executor) {
		e.client.Timeout = d
	}
}

// NewExecutor creates an Executor with DefaultTimeout.
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{
		client: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.client.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return e
}

// Execute sends GET d.URL+path with d's headers and query parameters.
// Failures never escape as errors; they are folded into the outcome.
func (e *Executor) Execute(ctx context.Context, d RequestDescriptor, path string) RequestOutcome {
	target, err := buildURL(d, path)
	if err != nil {
		return RequestOutcome{TransportFailed: true, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return RequestOutcome{TransportFailed: true, Err: fmt.Errorf("building request: %w", err)}
	}
	for k, v := range d.Headers {
		if strings.EqualFold(k, "Host") {
			req.Host = v
			continue
		}
		req.Header.Set(k, v)
	}

	logging.Debug("Executor", "GET %s", target)

	resp, err := e.client.Do(req)
	if err != nil {
		logging.Debug("Executor", "GET %s failed: %v", target, err)
		return RequestOutcome{TransportFailed: true, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return RequestOutcome{
			StatusCode:      resp.StatusCode,
			TransportFailed: true,
			Err:             fmt.Errorf("reading response body: %w", err),
		}
	}

	logging.Debug("Executor", "GET %s -> %d (%d bytes)", target, resp.StatusCode, len(body))
	return RequestOutcome{StatusCode: resp.StatusCode, Body: body}
}

// buildURL joins base URL and path verbatim and merges the descriptor's query
// parameters into any query the path already carries; descriptor values win.
// Pairs from the path are kept byte for byte, so values url.ParseQuery would
// reject (e.g. containing ';') still reach the server.
func buildURL(d RequestDescriptor, path string) (string, error) {
	if d.URL == "" {
		return "", errors.New("empty base url")
	}

	u, err := url.Parse(d.URL + path)
	if err != nil {
		return "", fmt.Errorf("invalid url: %w", err)
	}
	if len(d.Query) == 0 {
		return u.String(), nil
	}

	var pairs []string
	if u.RawQuery != "" {
		for _, pair := range strings.Split(u.RawQuery, "&") {
			if _, overridden := d.Query[queryKey(pair)]; overridden {
				continue
			}
			pairs = append(pairs, pair)
		}
	}

	q := url.Values{}
	for k, v := range d.Query {
		q.Set(k, v)
	}
	pairs = append(pairs, q.Encode())

	u.RawQuery = strings.Join(pairs, "&")
	return u.String(), nil
}

// queryKey returns the decoded key of a raw "key=value" query pair.
func queryKey(pair string) string {
	key, _, _ := strings.Cut(pair, "=")
	if unescaped, err := url.QueryUnescape(key); err == nil {
		return unescaped
	}
	return key
}
