package middlewares

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"storefront-gateway/internal/config"
	"storefront-gateway/internal/data"

	"github.com/go-chi/chi/v5/middleware"
)

type AppContext struct {
	context.Context
	Config    *config.Config
	Logger    *slog.Logger
	Sessions  SessionProvider
	Redirects RedirectProvider
	Backend   BackendProvider
	Cache     data.CacheProvider

	Request  *http.Request
	Response http.ResponseWriter

	// BearerToken is set by RequireSession once the session cookie unseals.
	BearerToken string
}

type contextKey string

const appContextKey contextKey = "appContext"

func AppContextMiddleware(baseCtx *AppContext) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := baseCtx.Logger
			if reqID := middleware.GetReqID(r.Context()); reqID != "" {
				logger = logger.With("request_id", reqID)
			}

			requestCtx := &AppContext{
				Context:   r.Context(),
				Config:    baseCtx.Config,
				Logger:    logger,
				Sessions:  baseCtx.Sessions,
				Redirects: baseCtx.Redirects,
				Backend:   baseCtx.Backend,
				Cache:     baseCtx.Cache,
				Request:   r,
				Response:  w,
			}

			ctx := context.WithValue(r.Context(), appContextKey, requestCtx)
			requestCtx.Context = ctx
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type AppHandler func(*AppContext)

// Handler converts an AppHandler to an http.Handler
func (ctx *AppContext) Handler(h AppHandler) http.Handler {
	return ctx.HandlerFunc(h)
}

// HandlerFunc converts AppHandler to a http.HandlerFunc
func (ctx *AppContext) HandlerFunc(h AppHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		// Middleware between AppContextMiddleware and the handler may have
		// replaced the request (chi route params) or wrapped the writer.
		appCtx.Request = r
		appCtx.Response = w

		h(appCtx)
	}
}

func (ctx *AppContext) Redirect(url string, status int) {
	http.Redirect(ctx.Response, ctx.Request, url, status)
}

func NewAppContext(ctx context.Context, cfg *config.Config, logger *slog.Logger, sessions SessionProvider, redirects RedirectProvider, backend BackendProvider, cache data.CacheProvider) *AppContext {
	return &AppContext{
		Context:   ctx,
		Config:    cfg,
		Logger:    logger,
		Sessions:  sessions,
		Redirects: redirects,
		Backend:   backend,
		Cache:     cache,
	}
}

func GetAppContext(r *http.Request) *AppContext {
	if ctx, ok := r.Context().Value(appContextKey).(*AppContext); ok {
		return ctx
	}

	return nil
}

func GetLogger(r *http.Request) *slog.Logger {
	if appCtx := GetAppContext(r); appCtx != nil {
		return appCtx.Logger
	}

	return nil
}

func GetConfig(r *http.Request) *config.Config {
	if appCtx := GetAppContext(r); appCtx != nil {
		return appCtx.Config
	}

	return nil
}

func (ctx *AppContext) WriteJSON(status int, data interface{}) {
	ctx.Response.Header().Set("Content-Type", "application/json")
	ctx.Response.WriteHeader(status)
	if err := json.NewEncoder(ctx.Response).Encode(data); err != nil {
		ctx.Logger.Error("failed to marshal json", "error", err)
	}
}

// WriteRawJSON writes an already encoded JSON body.
func (ctx *AppContext) WriteRawJSON(status int, body []byte) {
	ctx.Response.Header().Set("Content-Type", "application/json")
	ctx.Response.WriteHeader(status)
	if _, err := ctx.Response.Write(body); err != nil {
		ctx.Logger.Error("failed to write response", "error", err)
	}
}

func (ctx *AppContext) WriteText(status int, text string) {
	ctx.Response.WriteHeader(status)
	if _, err := ctx.Response.Write([]byte(text)); err != nil {
		ctx.Logger.Error("failed to write response", "error", err)
	}
}

// SetJSONError writes {"message": message}, the error shape the storefront
// client reads.
func (ctx *AppContext) SetJSONError(status int, message string) {
	ctx.WriteJSON(status, map[string]string{
		"message": message,
	})
}

func (ctx *AppContext) SetJSONStatus(status int, message string) {
	ctx.WriteJSON(status, map[string]string{
		"status": message,
	})
}
