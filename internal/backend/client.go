// Package backend talks to the commerce backend that owns accounts, the
// catalog, carts and orders.
package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"storefront-gateway/internal/config"
	"storefront-gateway/internal/metrics"

	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/oauth2"
)

// MaxResponseBytes caps how much of a backend response is buffered.
const MaxResponseBytes = 10 << 20

var (
	ErrUnavailable      = errors.New("backend unavailable")
	ErrResponseTooLarge = errors.New("backend response too large")
)

type Request struct {
	Method string
	// Path is already escaped and relative to the backend base URL.
	Path        string
	Query       url.Values
	Body        []byte
	ContentType string
	BearerToken string
}

type Client struct {
	baseURL *url.URL
	headers map[string]string
	timeout time.Duration
	base    http.RoundTripper
}

func NewClient(cfg config.BackendConfig) (*Client, error) {
	baseURL, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid backend base url: %w", err)
	}

	return &Client{
		baseURL: baseURL,
		headers: cfg.Headers,
		timeout: cfg.Timeout,
		base:    http.DefaultTransport,
	}, nil
}

// httpClient returns a client that attaches token as a bearer credential.
func (c *Client) httpClient(token string) *http.Client {
	transport := c.base
	if token != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
			Base:   c.base,
		}
	}

	return &http.Client{
		Timeout:   c.timeout,
		Transport: transport,
	}
}

func (c *Client) url(path string, query url.Values) string {
	unescaped, err := url.PathUnescape(path)
	if err != nil {
		unescaped = path
	}

	u := *c.baseURL
	u.Path = c.baseURL.Path + unescaped
	u.RawPath = c.baseURL.EscapedPath() + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// Do sends req and buffers the response. Transport failures wrap
// ErrUnavailable; any HTTP status is returned as a Response.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.url(req.Path, req.Query), body)
	if err != nil {
		return nil, fmt.Errorf("failed to build backend request: %w", err)
	}

	for k, v := range c.headers {
		httpReq.Header.Set(k, v)
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil && req.ContentType != "" {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		httpReq.Header.Set("X-Request-ID", reqID)
	}

	start := time.Now()
	resp, err := c.httpClient(req.BearerToken).Do(httpReq)
	if err != nil {
		metrics.BackendRequestErrors.WithLabelValues(method).Inc()
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes+1))
	if err != nil {
		metrics.BackendRequestErrors.WithLabelValues(method).Inc()
		return nil, fmt.Errorf("%w: reading body: %w", ErrUnavailable, err)
	}
	if len(data) > MaxResponseBytes {
		return nil, ErrResponseTooLarge
	}

	metrics.BackendRequestDuration.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	return &Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        data,
	}, nil
}
