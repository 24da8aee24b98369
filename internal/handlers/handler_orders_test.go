package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/testutil"
)

func TestGETOrdersHandler(t *testing.T) {
	tests := []struct {
		name           string
		resp           *backend.Response
		expectedStatus int
		expectedLength int
	}{
		{
			name:           "bare array",
			resp:           testutil.JSONResponse(http.StatusOK, `[{"id":1},{"id":2}]`),
			expectedStatus: http.StatusOK,
			expectedLength: 2,
		},
		{
			name:           "page object",
			resp:           testutil.JSONResponse(http.StatusOK, `{"content":[{"id":1}],"totalElements":1}`),
			expectedStatus: http.StatusOK,
			expectedLength: 1,
		},
		{
			name:           "unexpected object",
			resp:           testutil.JSONResponse(http.StatusOK, `{"orders":"nope"}`),
			expectedStatus: http.StatusOK,
			expectedLength: 0,
		},
		{
			name:           "empty body",
			resp:           &backend.Response{StatusCode: http.StatusOK},
			expectedStatus: http.StatusOK,
			expectedLength: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/orders")
			defer tc.Finish()
			tc.WithBearerToken("token")

			tc.ExpectBackend(backend.Request{
				Method:      http.MethodGet,
				Path:        "/api/orders",
				BearerToken: "token",
			}, tt.resp, nil)

			tc.CallHandler(GETOrdersHandler)

			tc.AssertStatus(t, tt.expectedStatus)
			tc.AssertJSONArrayLength(t, tt.expectedLength)
		})
	}
}

func TestGETOrdersHandler_HTMLGuard(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/orders")
	defer tc.Finish()

	tc.ExpectBackend(backend.Request{Method: http.MethodGet, Path: "/api/orders"},
		&backend.Response{StatusCode: http.StatusOK, ContentType: "text/html; charset=utf-8", Body: []byte("<html>ngrok</html>")}, nil)

	tc.CallHandler(GETOrdersHandler)

	tc.AssertStatus(t, http.StatusBadGateway)
	tc.AssertMessage(t, "Unexpected response from backend (200)")
}

func TestGETAdminOrdersHandler_Query(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/admin/orders?status=PENDING&page=2")
	defer tc.Finish()
	tc.WithBearerToken("admin-token")

	tc.ExpectBackend(backend.Request{
		Method:      http.MethodGet,
		Path:        "/api/admin/orders",
		Query:       url.Values{"page": {"2"}, "size": {"10"}, "status": {"PENDING"}},
		BearerToken: "admin-token",
	}, testutil.JSONResponse(http.StatusOK, `{"content":[{"id":5}]}`), nil)

	tc.CallHandler(GETAdminOrdersHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONArrayLength(t, 1)
}
