package handlers

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"testing"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestForwardAndPurge_PurgesOnSuccess(t *testing.T) {
	body := `{"name":"Mugs"}`
	tc := testutil.NewTestContextWithBody(t, http.MethodPut, "/api/admin/categories/2", []byte(body), "application/json")
	defer tc.Finish()
	tc.WithBearerToken("admin-token")

	gomock.InOrder(
		tc.ExpectBackend(backend.Request{
			Method:      http.MethodPut,
			Path:        "/api/admin/categories/2",
			Body:        []byte(body),
			ContentType: "application/json",
			BearerToken: "admin-token",
		}, testutil.JSONResponse(http.StatusOK, `{"id":2,"name":"Mugs"}`), nil),
		tc.MockCache.EXPECT().Purge(gomock.Any()),
	)

	tc.CallHandler(ForwardAndPurge)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONString(t, "name", "Mugs")
}

func TestForwardAndPurge_KeepsCacheOnFailure(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodDelete, "/api/admin/products/9")
	defer tc.Finish()
	tc.WithBearerToken("admin-token")

	tc.ExpectBackend(backend.Request{
		Method:      http.MethodDelete,
		Path:        "/api/admin/products/9",
		BearerToken: "admin-token",
	}, testutil.JSONResponse(http.StatusConflict, `{"message":"Product has orders"}`), nil)

	tc.CallHandler(ForwardAndPurge)

	tc.AssertStatus(t, http.StatusConflict)
	tc.AssertMessage(t, "Product has orders")
}

func multipartBody(t *testing.T, field, filename string, content []byte) ([]byte, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes(), w.FormDataContentType()
}

func TestPOSTImageUploadHandler_ReencodesFile(t *testing.T) {
	content := []byte("\x89PNG fake image")
	body, contentType := multipartBody(t, "file", "mug.png", content)

	tc := testutil.NewTestContextWithBody(t, http.MethodPost, "/api/admin/products/5/image", body, contentType)
	defer tc.Finish()
	tc.WithBearerToken("admin-token")

	tc.MockBackend.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, req backend.Request) (*backend.Response, error) {
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "/api/admin/products/5/image", req.Path)
			assert.Equal(t, "admin-token", req.BearerToken)

			mediaType, params, err := mime.ParseMediaType(req.ContentType)
			require.NoError(t, err)
			assert.Equal(t, "multipart/form-data", mediaType)

			reader := multipart.NewReader(bytes.NewReader(req.Body), params["boundary"])
			part, err := reader.NextPart()
			require.NoError(t, err)
			assert.Equal(t, "file", part.FormName())
			assert.Equal(t, "mug.png", part.FileName())
			got, err := io.ReadAll(part)
			require.NoError(t, err)
			assert.Equal(t, content, got)

			return testutil.JSONResponse(http.StatusOK, `{"imageUrl":"/img/5.png"}`), nil
		})
	tc.MockCache.EXPECT().Purge(gomock.Any())

	tc.CallHandler(POSTImageUploadHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONString(t, "imageUrl", "/img/5.png")
}

func TestPOSTImageUploadHandler_RequiresFile(t *testing.T) {
	body, contentType := multipartBody(t, "image", "mug.png", []byte("x"))

	tc := testutil.NewTestContextWithBody(t, http.MethodPost, "/api/admin/categories/5/image", body, contentType)
	defer tc.Finish()

	tc.CallHandler(POSTImageUploadHandler)

	tc.AssertStatus(t, http.StatusBadRequest)
	tc.AssertMessage(t, "file is required")
}

func TestPOSTImageUploadHandler_NotMultipart(t *testing.T) {
	tc := testutil.NewTestContextWithBody(t, http.MethodPost, "/api/admin/categories/5/image", []byte(`{}`), "application/json")
	defer tc.Finish()

	tc.CallHandler(POSTImageUploadHandler)

	tc.AssertStatus(t, http.StatusBadRequest)
	tc.AssertMessage(t, "file is required")
}

func TestGETAdminCatalogListHandler_Paging(t *testing.T) {
	tests := []struct {
		name          string
		url           string
		expectedQuery url.Values
	}{
		{
			name:          "defaults",
			url:           "/api/admin/products",
			expectedQuery: url.Values{"page": {"0"}, "size": {"10"}},
		},
		{
			name:          "client paging",
			url:           "/api/admin/products?page=3&size=5",
			expectedQuery: url.Values{"page": {"3"}, "size": {"5"}},
		},
		{
			name:          "categories",
			url:           "/api/admin/categories?page=1",
			expectedQuery: url.Values{"page": {"1"}, "size": {"10"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := testutil.NewTestContextWithURL(t, http.MethodGet, tt.url)
			defer tc.Finish()
			tc.WithBearerToken("admin-token")

			tc.MockBackend.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ any, req backend.Request) (*backend.Response, error) {
					assert.Equal(t, tc.Request.URL.Path, req.Path)
					assert.Equal(t, tt.expectedQuery, req.Query)
					assert.Equal(t, "admin-token", req.BearerToken)
					return testutil.JSONResponse(http.StatusOK, `{"content":[],"totalElements":0}`), nil
				})

			tc.CallHandler(GETAdminCatalogListHandler)

			tc.AssertStatus(t, http.StatusOK)
			assert.JSONEq(t, `{"content":[],"totalElements":0}`, tc.Response.Body.String())
		})
	}
}
