package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"storefront-gateway/internal/session"
)

func isAdminPath(path string) bool {
	return path == "/admin" || strings.HasPrefix(path, "/admin/")
}

func redirectTarget(r *http.Request, path string) string {
	if r.URL.RawQuery == "" {
		return path
	}
	return path + "?" + r.URL.RawQuery
}

// RoleGate guards page navigation. Admin pages need an ADMIN role cookie and
// a session that unseals; everyone else is sent to the storefront. Admins
// landing on the storefront root are sent to the dashboard.
func RoleGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if path != "/" && !isAdminPath(path) {
			next.ServeHTTP(w, r)
			return
		}

		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		profile := appCtx.Sessions.Profile(r)
		_, err := appCtx.Sessions.BearerToken(r)
		isAdmin := err == nil && profile.IsAdmin()

		if isAdminPath(path) {
			if isAdmin {
				next.ServeHTTP(w, r)
				return
			}

			if err != nil {
				if errors.Is(err, session.ErrInvalid) {
					appCtx.Sessions.Clear(w)
				}
				appCtx.Redirects.SetRedirectAfterLogin(r.Context(), r.URL.RequestURI())
			}

			appCtx.Logger.Debug("redirecting away from admin page", "path", path, "role", profile.Role)
			http.Redirect(w, r, redirectTarget(r, "/"), http.StatusTemporaryRedirect)
			return
		}

		if isAdmin {
			http.Redirect(w, r, redirectTarget(r, "/admin"), http.StatusTemporaryRedirect)
			return
		}

		next.ServeHTTP(w, r)
	})
}
