package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/middlewares"
)

// forward sends req to the backend and translates every failure into a JSON
// error response. The returned response is only non-nil for a 2xx answer;
// otherwise a response has already been written.
func forward(ctx *middlewares.AppContext, req backend.Request) *backend.Response {
	resp, err := ctx.Backend.Do(ctx.Context, req)
	if err != nil {
		ctx.Logger.Error("backend request failed", "method", req.Method, "path", req.Path, "error", err)
		ctx.SetJSONError(http.StatusBadGateway, "Backend unavailable")
		return nil
	}

	if resp.LooksLikeHTML() {
		ctx.Logger.Warn("backend answered with markup", "method", req.Method, "path", req.Path, "status", resp.StatusCode)
		ctx.SetJSONError(http.StatusBadGateway, fmt.Sprintf("Unexpected response from backend (%d)", resp.StatusCode))
		return nil
	}

	if !resp.OK() {
		ctx.Logger.Debug("backend rejected request", "method", req.Method, "path", req.Path, "status", resp.StatusCode)
		ctx.SetJSONError(resp.StatusCode, resp.ErrorMessage())
		return nil
	}

	return resp
}

// relay writes a successful backend response to the client unchanged.
func relay(ctx *middlewares.AppContext, resp *backend.Response) {
	switch {
	case resp.StatusCode == http.StatusNoContent:
		ctx.Response.WriteHeader(http.StatusNoContent)
	case len(bytes.TrimSpace(resp.Body)) == 0:
		ctx.WriteRawJSON(resp.StatusCode, []byte("null"))
	case resp.IsJSON() || json.Valid(resp.Body):
		ctx.WriteRawJSON(resp.StatusCode, resp.Body)
	default:
		if resp.ContentType != "" {
			ctx.Response.Header().Set("Content-Type", resp.ContentType)
		}
		ctx.WriteText(resp.StatusCode, string(resp.Body))
	}
}

// Forward proxies the request to the same path on the backend, carrying the
// body and the session's bearer token.
func Forward(ctx *middlewares.AppContext) {
	req := upstream(ctx)
	if !readBody(ctx, &req) {
		return
	}

	resp := forward(ctx, req)
	if resp == nil {
		return
	}

	relay(ctx, resp)
}
