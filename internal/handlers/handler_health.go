package handlers

import (
	"net/http"

	"storefront-gateway/internal/middlewares"
)

func HandlerHealth(ctx *middlewares.AppContext) {
	ctx.SetJSONStatus(http.StatusOK, "OK")
}
