package handlers

import (
	"storefront-gateway/internal/middlewares"
)

// PUTMeHandler forwards a profile update and refreshes the name and email
// cookies from the backend's answer.
func PUTMeHandler(ctx *middlewares.AppContext) {
	req := upstream(ctx)
	if !readBody(ctx, &req) {
		return
	}

	resp := forward(ctx, req)
	if resp == nil {
		return
	}

	if obj, ok := resp.JSON().(map[string]any); ok {
		name, _ := obj["name"].(string)
		email, _ := obj["email"].(string)
		ctx.Sessions.UpdateProfile(ctx.Response, ctx.BearerToken, name, email)
	}

	relay(ctx, resp)
}
