package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/config"
	"storefront-gateway/internal/data"
	"storefront-gateway/internal/middlewares"
	"storefront-gateway/internal/mocks"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"
)

// TestContext holds everything needed for testing
type TestContext struct {
	AppContext     *middlewares.AppContext
	Request        *http.Request
	Response       *httptest.ResponseRecorder
	MockController *gomock.Controller
	MockCache      *mocks.MockCacheProvider
	MockSession    *mocks.MockSessionProvider
	MockRedirects  *mocks.MockRedirectProvider
	MockBackend    *mocks.MockBackendProvider
	LogHandler     *LogCapture
}

// TestConfig returns a config with every default applied, as LoadConfig
// would produce without a file.
func TestConfig() *config.Config {
	return &config.Config{
		Server:     config.DefaultServerConfig,
		Log:        config.DefaultLogConfig,
		CORS:       config.DefaultCORSConfig,
		Backend:    config.DefaultBackendConfig,
		AuthCookie: config.DefaultAuthCookieConfig,
		Sessions:   config.DefaultSessionConfig,
		Cache:      config.DefaultCacheConfig,
		RateLimit:  config.DefaultRateLimitConfig,
	}
}

// NewTestContextWithURL creates a complete test setup with sensible defaults
func NewTestContextWithURL(t *testing.T, method, url string) *TestContext {
	return NewTestContextWithBody(t, method, url, nil, "")
}

// NewTestContextWithBody is NewTestContextWithURL with a request body.
func NewTestContextWithBody(t *testing.T, method, url string, body []byte, contentType string) *TestContext {
	logHandler := NewLogCapture()
	logger := slog.New(logHandler)

	ctrl := gomock.NewController(t)

	mockCache := mocks.NewMockCacheProvider(ctrl)
	mockSession := mocks.NewMockSessionProvider(ctrl)
	mockRedirects := mocks.NewMockRedirectProvider(ctrl)
	mockBackend := mocks.NewMockBackendProvider(ctrl)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req := httptest.NewRequest(method, url, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, chi.NewRouteContext()))
	rr := httptest.NewRecorder()

	appCtx := &middlewares.AppContext{
		Context:   req.Context(),
		Config:    TestConfig(),
		Logger:    logger,
		Sessions:  mockSession,
		Redirects: mockRedirects,
		Backend:   mockBackend,
		Cache:     mockCache,
		Request:   req,
		Response:  rr,
	}

	return &TestContext{
		AppContext:     appCtx,
		Request:        req,
		Response:       rr,
		MockController: ctrl,
		MockCache:      mockCache,
		MockSession:    mockSession,
		MockRedirects:  mockRedirects,
		MockBackend:    mockBackend,
		LogHandler:     logHandler,
	}
}

// Finish should be called at the end of tests to clean up mocks
func (tc *TestContext) Finish() {
	if tc.MockController != nil {
		tc.MockController.Finish()
	}
}

func (tc *TestContext) AssertLogContains(t *testing.T, level slog.Level, message string) {
	t.Helper()
	if !tc.LogHandler.Logged(level, message) {
		t.Errorf("Expected to find log entry with level %v containing message: %s", level, message)
	}
}

// CallHandler executes a handler with the test context
func (tc *TestContext) CallHandler(handler middlewares.AppHandler) {
	handler(tc.AppContext)
}

// AssertStatus checks the HTTP status code
func (tc *TestContext) AssertStatus(t *testing.T, expectedStatus int) {
	t.Helper()
	if tc.Response.Code != expectedStatus {
		t.Errorf("Expected status %d, got %d (body: %s)", expectedStatus, tc.Response.Code, tc.Response.Body.String())
	}
}

// AssertContentType checks the content type header
func (tc *TestContext) AssertContentType(t *testing.T, expectedType string) {
	t.Helper()
	if ct := tc.Response.Header().Get("Content-Type"); ct != expectedType {
		t.Errorf("Expected content type %s, got %s", expectedType, ct)
	}
}

// GetJSONResponse parses the response body as JSON
func (tc *TestContext) GetJSONResponse(t *testing.T) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(tc.Response.Body.Bytes(), &response); err != nil {
		t.Fatalf("Could not parse JSON response: %v", err)
	}
	return response
}

// GetJSONResponseArray parses the response body as a JSON array
func (tc *TestContext) GetJSONResponseArray(t *testing.T) []interface{} {
	t.Helper()
	var response []interface{}
	if err := json.Unmarshal(tc.Response.Body.Bytes(), &response); err != nil {
		t.Fatalf("Could not parse JSON array response: %v", err)
	}
	return response
}

// AssertJSONField checks a specific field in a JSON response
func (tc *TestContext) AssertJSONField(t *testing.T, field string, expected any) {
	t.Helper()
	response := tc.GetJSONResponse(t)
	if actual, ok := response[field]; !ok || actual != expected {
		t.Errorf("Expected %s to be %v, got %v", field, expected, response[field])
	}
}

// AssertJSONString checks a specific string field in a JSON response
func (tc *TestContext) AssertJSONString(t *testing.T, field string, expected string) {
	t.Helper()
	response := tc.GetJSONResponse(t)
	actual, exists := response[field]

	if !exists {
		t.Errorf("Field %s not found in response", field)
		return
	}

	actualString, ok := actual.(string)
	if !ok {
		t.Errorf("Expected %s to be a string, got %T", field, actual)
		return
	}

	if actualString != expected {
		t.Errorf("Expected %s to be %q, got %q", field, expected, actualString)
	}
}

// AssertMessage checks the {"message": ...} error body.
func (tc *TestContext) AssertMessage(t *testing.T, expected string) {
	t.Helper()
	tc.AssertJSONString(t, "message", expected)
}

// Assertion helpers for common patterns
func (tc *TestContext) AssertJSONArrayLength(t *testing.T, expected int) {
	t.Helper()
	response := tc.GetJSONResponseArray(t)
	if len(response) != expected {
		t.Errorf("Expected JSON array length %d, got %d", expected, len(response))
	}
}

// WithConfig allows you to override the default config for specific tests
func (tc *TestContext) WithConfig(cfg *config.Config) *TestContext {
	tc.AppContext.Config = cfg
	return tc
}

// WithCache allows you to override the cache with a different mock or implementation
func (tc *TestContext) WithCache(cache data.CacheProvider) *TestContext {
	tc.AppContext.Cache = cache
	return tc
}

// WithBearerToken simulates a request that already passed RequireSession.
func (tc *TestContext) WithBearerToken(token string) *TestContext {
	tc.AppContext.BearerToken = token
	return tc
}

// WithURLParam sets a chi route parameter on the request.
func (tc *TestContext) WithURLParam(key, value string) *TestContext {
	chi.RouteContext(tc.Request.Context()).URLParams.Add(key, value)
	return tc
}

// Helper to add query parameters to the request
func (tc *TestContext) WithQueryParam(key, value string) *TestContext {
	q := tc.Request.URL.Query()
	q.Add(key, value)
	tc.Request.URL.RawQuery = q.Encode()
	return tc
}

// Helper to add headers
func (tc *TestContext) WithHeader(key, value string) *TestContext {
	tc.Request.Header.Set(key, value)
	return tc
}

// WithRequest allows you to set a custom request (useful for tests that don't use URL constructor)
func (tc *TestContext) WithRequest(req *http.Request) *TestContext {
	if chi.RouteContext(req.Context()) == nil {
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, chi.NewRouteContext()))
	}
	tc.Request = req
	tc.AppContext.Request = req
	tc.AppContext.Context = req.Context()
	return tc
}

// ExpectBackend sets up an expectation for a backend call and answers it.
func (tc *TestContext) ExpectBackend(req backend.Request, resp *backend.Response, err error) *gomock.Call {
	return tc.MockBackend.EXPECT().Do(gomock.Any(), req).Return(resp, err)
}

// ExpectCacheGet sets up an expectation for cache.Get()
func (tc *TestContext) ExpectCacheGet(key string, returnData data.CachedResponse, found bool) *gomock.Call {
	return tc.MockCache.EXPECT().Get(gomock.Any(), key).Return(returnData, found)
}

// ExpectCacheSet sets up an expectation for cache.Set()
func (tc *TestContext) ExpectCacheSet(key string) *gomock.Call {
	return tc.MockCache.EXPECT().Set(gomock.Any(), key, gomock.Any(), tc.AppContext.Config.Cache.CatalogTTL)
}

// JSONResponse builds a backend response with a JSON body.
func JSONResponse(status int, body string) *backend.Response {
	return &backend.Response{
		StatusCode:  status,
		ContentType: "application/json",
		Body:        []byte(body),
	}
}
