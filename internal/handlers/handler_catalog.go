package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/data"
	"storefront-gateway/internal/middlewares"
)

const cacheStatusHeader = "X-Cache"

func GETProductsHandler(ctx *middlewares.AppContext) {
	serveCatalog(ctx, pageQuery(ctx.Request, "0", "12", "q", "categoryId"))
}

func GETCategoriesHandler(ctx *middlewares.AppContext) {
	serveCatalog(ctx, pageQuery(ctx.Request, "0", "50"))
}

// GETCatalogItemHandler serves a single product or category.
func GETCatalogItemHandler(ctx *middlewares.AppContext) {
	serveCatalog(ctx, nil)
}

func catalogKey(path string, query url.Values) string {
	key := strings.TrimPrefix(path, "/api/")
	if len(query) > 0 {
		key += "?" + query.Encode()
	}
	return key
}

// serveCatalog answers public catalog reads from the cache, filling it from
// the backend on a miss. Only 200 responses are cached.
func serveCatalog(ctx *middlewares.AppContext, query url.Values) {
	req := upstream(ctx)
	req.BearerToken = ""
	req.Query = query

	key := catalogKey(req.Path, query)
	if entry, ok := ctx.Cache.Get(ctx.Context, key); ok {
		ctx.Response.Header().Set(cacheStatusHeader, "HIT")
		relay(ctx, &backend.Response{
			StatusCode:  entry.StatusCode,
			ContentType: entry.ContentType,
			Body:        entry.Body,
		})
		return
	}

	resp := forward(ctx, req)
	if resp == nil {
		return
	}

	if resp.StatusCode == http.StatusOK {
		ctx.Cache.Set(ctx.Context, key, data.CachedResponse{
			StatusCode:  resp.StatusCode,
			ContentType: resp.ContentType,
			Body:        resp.Body,
		}, ctx.Config.Cache.CatalogTTL)
	}

	ctx.Response.Header().Set(cacheStatusHeader, "MISS")
	relay(ctx, resp)
}
