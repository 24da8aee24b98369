package backend

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"storefront-gateway/internal/config"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(config.BackendConfig{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
		Headers: map[string]string{"ngrok-skip-browser-warning": "true"},
	})
	require.NoError(t, err)
	return client
}

func TestClient_Do_AttachesBearerAndHeaders(t *testing.T) {
	var got *http.Request
	var gotBody string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":42}`))
	})

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-123")
	resp, err := client.Do(ctx, Request{
		Method:      http.MethodPost,
		Path:        "/api/cart/items",
		Body:        []byte(`{"productId":1,"quantity":2}`),
		ContentType: "application/json",
		BearerToken: "abc123.def456",
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, resp.OK())
	assert.True(t, resp.IsJSON())
	assert.JSONEq(t, `{"id":42}`, string(resp.Body))

	require.NotNil(t, got)
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/api/cart/items", got.URL.Path)
	assert.Equal(t, "Bearer abc123.def456", got.Header.Get("Authorization"))
	assert.Equal(t, "true", got.Header.Get("ngrok-skip-browser-warning"))
	assert.Equal(t, "req-123", got.Header.Get("X-Request-ID"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, `{"productId":1,"quantity":2}`, gotBody)
}

func TestClient_Do_NoTokenNoAuthorization(t *testing.T) {
	var got *http.Request
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.WriteHeader(http.StatusOK)
	})

	_, err := client.Do(context.Background(), Request{
		Path:  "/api/products",
		Query: url.Values{"page": {"0"}, "size": {"12"}},
	})
	require.NoError(t, err)

	assert.Empty(t, got.Header.Get("Authorization"))
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "0", got.URL.Query().Get("page"))
	assert.Equal(t, "12", got.URL.Query().Get("size"))
}

func TestClient_Do_PreservesEscapedPath(t *testing.T) {
	var rawPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rawPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusOK)
	})

	_, err := client.Do(context.Background(), Request{Path: "/api/orders/by-code/" + url.PathEscape("ORD 1/2")})
	require.NoError(t, err)

	assert.Equal(t, "/api/orders/by-code/ORD%201%2F2", rawPath)
}

func TestClient_Do_NonSuccessIsNotAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"Insufficient stock"}`))
	})

	resp, err := client.Do(context.Background(), Request{Method: http.MethodPost, Path: "/api/orders/checkout"})
	require.NoError(t, err)

	assert.False(t, resp.OK())
	assert.Equal(t, "Insufficient stock", resp.ErrorMessage())
}

func TestClient_Do_Unavailable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client, err := NewClient(config.BackendConfig{BaseURL: baseURL, Timeout: time.Second})
	require.NoError(t, err)

	_, err = client.Do(context.Background(), Request{Path: "/api/me"})
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestClient_Do_ResponseTooLarge(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(w, strings.NewReader(strings.Repeat("x", MaxResponseBytes+1)))
	})

	_, err := client.Do(context.Background(), Request{Path: "/api/products"})
	assert.ErrorIs(t, err, ErrResponseTooLarge)
}

func TestClient_Do_HonoursContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Do(ctx, Request{Path: "/api/products"})
	assert.ErrorIs(t, err, ErrUnavailable)
}
