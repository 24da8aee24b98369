package middlewares

import (
	"context"
	"net/http"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/models"
)

//go:generate mockgen -source=providers.go -destination=../mocks/providers.go -package=mocks

// SessionProvider owns the sealed session cookie and the profile cookies
// written next to it.
type SessionProvider interface {
	Establish(w http.ResponseWriter, token string, profile models.Profile) error
	Clear(w http.ResponseWriter)
	BearerToken(r *http.Request) (string, error)
	Profile(r *http.Request) models.Profile
	UpdateProfile(w http.ResponseWriter, token, name, email string)
}

type RedirectProvider interface {
	SetRedirectAfterLogin(ctx context.Context, path string)
	PopRedirectAfterLogin(ctx context.Context) string
	LoadAndSave(next http.Handler) http.Handler
}

type BackendProvider interface {
	Do(ctx context.Context, req backend.Request) (*backend.Response, error)
}
