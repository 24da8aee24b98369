package middlewares

import (
	"errors"
	"net/http"

	"storefront-gateway/internal/metrics"
	"storefront-gateway/internal/models"
	"storefront-gateway/internal/session"
)

// reasonFor maps a BearerToken failure onto a session reason. Errors that
// are not *session.Error count as invalid.
func reasonFor(err error) session.Reason {
	var sessionErr *session.Error
	if errors.As(err, &sessionErr) {
		return sessionErr.Reason
	}

	return session.ReasonInvalid
}

// RequireSession rejects requests whose session cookie is missing or does not
// unseal, and makes the bearer token available on the AppContext.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		appCtx.Request, appCtx.Response = r, w

		token, err := appCtx.Sessions.BearerToken(r)
		if err != nil {
			reason := reasonFor(err)
			metrics.SessionRejections.WithLabelValues(reason.String()).Inc()
			appCtx.Logger.Debug("rejecting request without a usable session", "reason", reason.String(), "path", r.URL.Path)
			appCtx.SetJSONError(http.StatusUnauthorized, reason.Message())
			return
		}

		appCtx.BearerToken = token
		next.ServeHTTP(w, r)
	})
}

// RequireRole must run after RequireSession.
func RequireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			appCtx := GetAppContext(r)
			if appCtx == nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			appCtx.Request, appCtx.Response = r, w

			if appCtx.Sessions.Profile(r).Role != role {
				appCtx.Logger.Debug("role check failed", "required", role, "path", r.URL.Path)
				appCtx.SetJSONError(http.StatusForbidden, http.StatusText(http.StatusForbidden))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
