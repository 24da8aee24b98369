package server

import (
	"net/http"
	"time"

	"storefront-gateway/internal/handlers"
	"storefront-gateway/internal/middlewares"
	"storefront-gateway/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func setupRouter(ctx *middlewares.AppContext, limiter *middlewares.RateLimiter) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middlewares.ClientIPMiddleware(ctx.Config.Server.TrustProxyHeaders))
	r.Use(middleware.Recoverer)
	r.Use(middlewares.MetricsMiddleware)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(ctx.Redirects.LoadAndSave)

	r.Use(middlewares.AppContextMiddleware(ctx))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   ctx.Config.CORS.AllowedOrigins,
		AllowedMethods:   ctx.Config.CORS.AllowedMethods,
		AllowedHeaders:   ctx.Config.CORS.AllowedHeaders,
		ExposedHeaders:   ctx.Config.CORS.ExposedHeaders,
		AllowCredentials: ctx.Config.CORS.AllowCredentials,
		MaxAge:           ctx.Config.CORS.MaxAgeSeconds,
	}))

	r.Use(middleware.Compress(5))

	r.Route("/api", func(r chi.Router) {
		r.NotFound(ctx.HandlerFunc(apiNotFound))

		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(limiter.Middleware)
				r.Post("/login", ctx.HandlerFunc(handlers.POSTLoginHandler))
				r.Post("/register", ctx.HandlerFunc(handlers.POSTRegisterHandler))
			})
			r.Post("/logout", ctx.HandlerFunc(handlers.POSTLogoutHandler))
			r.Get("/session", ctx.HandlerFunc(handlers.GETSessionHandler))
		})

		r.Get("/products", ctx.HandlerFunc(handlers.GETProductsHandler))
		r.Get("/products/{id}", ctx.HandlerFunc(handlers.GETCatalogItemHandler))
		r.Get("/categories", ctx.HandlerFunc(handlers.GETCategoriesHandler))
		r.Get("/categories/{id}", ctx.HandlerFunc(handlers.GETCatalogItemHandler))

		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireSession)

			r.Get("/me", ctx.HandlerFunc(handlers.Forward))
			r.Put("/me", ctx.HandlerFunc(handlers.PUTMeHandler))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", ctx.HandlerFunc(handlers.Forward))
				r.Delete("/", ctx.HandlerFunc(handlers.Forward))
				r.Post("/items", ctx.HandlerFunc(handlers.Forward))
				r.Patch("/items/{cartItemId}", ctx.HandlerFunc(handlers.Forward))
				r.Delete("/items/{cartItemId}", ctx.HandlerFunc(handlers.Forward))
			})

			r.Route("/addresses", func(r chi.Router) {
				r.Get("/", ctx.HandlerFunc(handlers.Forward))
				r.Post("/", ctx.HandlerFunc(handlers.Forward))
				r.Put("/{addressId}", ctx.HandlerFunc(handlers.Forward))
				r.Delete("/{addressId}", ctx.HandlerFunc(handlers.Forward))
				r.Post("/{addressId}/default", ctx.HandlerFunc(handlers.Forward))
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", ctx.HandlerFunc(handlers.GETOrdersHandler))
				r.Post("/checkout", ctx.HandlerFunc(handlers.Forward))
				r.Get("/by-code/{orderCode}", ctx.HandlerFunc(handlers.Forward))
				r.Get("/{orderId}", ctx.HandlerFunc(handlers.Forward))
				r.Post("/{orderId}/confirm-received", ctx.HandlerFunc(handlers.Forward))
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(middlewares.RequireRole(models.RoleAdmin))

				r.Get("/summary", ctx.HandlerFunc(handlers.Forward))
				r.Get("/users", ctx.HandlerFunc(handlers.Forward))

				r.Route("/orders", func(r chi.Router) {
					r.Get("/", ctx.HandlerFunc(handlers.GETAdminOrdersHandler))
					r.Get("/{orderId}", ctx.HandlerFunc(handlers.Forward))
					for _, action := range []string{"approve", "reject", "deliver", "delivered"} {
						r.Post("/{orderId}/"+action, ctx.HandlerFunc(handlers.Forward))
					}
				})

				for _, resource := range []string{"/products", "/categories"} {
					r.Route(resource, func(r chi.Router) {
						r.Get("/", ctx.HandlerFunc(handlers.GETAdminCatalogListHandler))
						r.Post("/", ctx.HandlerFunc(handlers.ForwardAndPurge))
						r.Get("/{id}", ctx.HandlerFunc(handlers.Forward))
						r.Put("/{id}", ctx.HandlerFunc(handlers.ForwardAndPurge))
						r.Delete("/{id}", ctx.HandlerFunc(handlers.ForwardAndPurge))
						r.Post("/{id}/image", ctx.HandlerFunc(handlers.POSTImageUploadHandler))
					})
				}
			})
		})

		r.Route("/v1", func(r chi.Router) {
			r.Get("/health", ctx.HandlerFunc(handlers.HandlerHealth))
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(middlewares.RoleGate)
		r.Get("/*", newSPAHandler(ctx.Config.Server.StaticDir).ServeHTTP)
	})

	return r
}

func apiNotFound(ctx *middlewares.AppContext) {
	ctx.SetJSONError(http.StatusNotFound, http.StatusText(http.StatusNotFound))
}

func setupDebugRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/debug", middleware.Profiler())

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
