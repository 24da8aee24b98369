package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-gateway/internal/middlewares"
	"storefront-gateway/internal/models"
	"storefront-gateway/internal/session"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRoleGate(t *testing.T) {
	tests := []struct {
		name             string
		path             string
		role             models.Role
		sessionErr       error
		expectedStatus   int
		expectedLocation string
		expectRedirect   bool
		expectClear      bool
	}{
		{
			name:           "admin reaches dashboard",
			path:           "/admin",
			role:           models.RoleAdmin,
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "admin reaches nested dashboard page",
			path:           "/admin/orders",
			role:           models.RoleAdmin,
			expectedStatus: http.StatusNoContent,
		},
		{
			name:             "user bounced to storefront",
			path:             "/admin/orders",
			role:             models.RoleUser,
			expectedStatus:   http.StatusTemporaryRedirect,
			expectedLocation: "/",
		},
		{
			name:             "anonymous visitor bounced and remembered",
			path:             "/admin/products?page=2",
			sessionErr:       session.ErrMissing,
			expectedStatus:   http.StatusTemporaryRedirect,
			expectedLocation: "/?page=2",
			expectRedirect:   true,
		},
		{
			name:             "forged admin role without a valid session",
			path:             "/admin",
			role:             models.RoleAdmin,
			sessionErr:       session.ErrInvalid,
			expectedStatus:   http.StatusTemporaryRedirect,
			expectedLocation: "/",
			expectRedirect:   true,
			expectClear:      true,
		},
		{
			name:             "admin on storefront root goes to dashboard",
			path:             "/",
			role:             models.RoleAdmin,
			expectedStatus:   http.StatusTemporaryRedirect,
			expectedLocation: "/admin",
		},
		{
			name:           "user stays on storefront root",
			path:           "/",
			role:           models.RoleUser,
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "anonymous stays on storefront root",
			path:           "/",
			sessionErr:     session.ErrMissing,
			expectedStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.sessions.EXPECT().Profile(gomock.Any()).Return(models.Profile{Role: tt.role})
			h.sessions.EXPECT().BearerToken(gomock.Any()).Return("token", tt.sessionErr)
			if tt.expectRedirect {
				h.redirects.EXPECT().SetRedirectAfterLogin(gomock.Any(), tt.path)
			}
			if tt.expectClear {
				h.sessions.EXPECT().Clear(gomock.Any())
			}

			rec, _ := h.serve(httptest.NewRequest(http.MethodGet, tt.path, nil), middlewares.RoleGate)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedLocation != "" {
				assert.Equal(t, tt.expectedLocation, rec.Header().Get("Location"))
			}
		})
	}
}

func TestRoleGate_IgnoresOtherPaths(t *testing.T) {
	h := newHarness(t)

	for _, path := range []string{"/products/12", "/cart", "/administrator", "/assets/app.js"} {
		rec, _ := h.serve(httptest.NewRequest(http.MethodGet, path, nil), middlewares.RoleGate)
		assert.Equal(t, http.StatusNoContent, rec.Code, "path %s", path)
	}
}
