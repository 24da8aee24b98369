package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"storefront-gateway/internal/config"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/redis/go-redis/v9"
)

// RedirectStore remembers, per browser, the page a visitor was bounced from
// so the login response can send them back there.
type RedirectStore struct {
	*scs.SessionManager
	logger *slog.Logger
}

// NewRedirectStore builds the navigation session. client is required when
// sessions.store is redis and ignored otherwise.
func NewRedirectStore(logger *slog.Logger, cfg *config.Config, client *redis.Client) (*RedirectStore, error) {
	sessionManager := scs.New()

	switch cfg.Sessions.Store {
	case "memory":
		sessionManager.Store = memstore.New()
	case "redis":
		if client == nil {
			return nil, fmt.Errorf("redis session store requires a redis client")
		}
		sessionManager.Store = goredisstore.New(client)
	default:
		return nil, fmt.Errorf("unsupported session store: %s", cfg.Sessions.Store)
	}

	sessionManager.Lifetime = cfg.Sessions.Lifetime

	sessionManager.Cookie.Name = cfg.Sessions.Name
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	sessionManager.Cookie.Secure = cfg.IsProduction()
	sessionManager.Cookie.Path = "/"

	return &RedirectStore{SessionManager: sessionManager, logger: logger}, nil
}

func (s *RedirectStore) LoadAndSave(next http.Handler) http.Handler {
	return s.SessionManager.LoadAndSave(next)
}

// SetRedirectAfterLogin records path if it is a local absolute path.
func (s *RedirectStore) SetRedirectAfterLogin(ctx context.Context, path string) {
	if !isLocalPath(path) {
		s.logger.Debug("ignoring non-local redirect target", "path", path)
		return
	}

	s.Put(ctx, string(SessionKeyRedirectAfterLogin), path)
}

// PopRedirectAfterLogin returns and forgets the recorded path, or "" when
// there is none.
func (s *RedirectStore) PopRedirectAfterLogin(ctx context.Context) string {
	return s.PopString(ctx, string(SessionKeyRedirectAfterLogin))
}

func isLocalPath(path string) bool {
	if !strings.HasPrefix(path, "/") {
		return false
	}

	return !strings.HasPrefix(path, "//") && !strings.HasPrefix(path, "/\\")
}
