package handlers

import (
	"net/http"
	"net/url"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/middlewares"
)

func GETOrdersHandler(ctx *middlewares.AppContext) {
	listOrders(ctx, nil)
}

func GETAdminOrdersHandler(ctx *middlewares.AppContext) {
	listOrders(ctx, pageQuery(ctx.Request, "0", "10", "status"))
}

// listOrders always answers with a JSON array, unwrapping a page object when
// the backend returns one.
func listOrders(ctx *middlewares.AppContext, query url.Values) {
	req := upstream(ctx)
	req.Method = http.MethodGet
	req.Query = query

	resp := forward(ctx, req)
	if resp == nil {
		return
	}

	ctx.WriteJSON(resp.StatusCode, backend.ExtractOrders(resp.JSON()))
}
