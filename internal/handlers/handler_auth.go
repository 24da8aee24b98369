package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/metrics"
	"storefront-gateway/internal/middlewares"
	"storefront-gateway/internal/models"
)

func POSTLoginHandler(ctx *middlewares.AppContext) {
	var credentials LoginRequest
	if err := json.NewDecoder(http.MaxBytesReader(ctx.Response, ctx.Request.Body, maxRequestBytes)).Decode(&credentials); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "Invalid request body")
		return
	}

	body, err := json.Marshal(credentials)
	if err != nil {
		ctx.Logger.Error("failed to encode login request", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	resp := forward(ctx, backend.Request{
		Method:      http.MethodPost,
		Path:        "/api/auth/login",
		Body:        body,
		ContentType: "application/json",
	})
	if resp == nil {
		return
	}

	var result models.LoginResult
	if err := json.Unmarshal(resp.Body, &result); err != nil || result.Token == "" {
		ctx.Logger.Error("backend login response carried no token", "status", resp.StatusCode, "error", err)
		ctx.SetJSONError(http.StatusBadGateway, fmt.Sprintf("Unexpected response from backend (%d)", resp.StatusCode))
		return
	}

	if err := ctx.Sessions.Establish(ctx.Response, result.Token, result.Profile()); err != nil {
		ctx.Logger.Error("Failed to establish session", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to establish session")
		return
	}
	metrics.SessionsEstablished.Inc()

	ctx.Logger.Info("User logged in",
		"user_id", result.UserID,
		"username", result.Username,
		"email", RedactEmail(result.Email),
		"role", result.Role,
	)

	ctx.WriteJSON(http.StatusOK, LoginResponse{
		UserID:   result.UserID,
		Name:     result.Name,
		Username: result.Username,
		Email:    result.Email,
		Role:     result.Role,
		Redirect: ctx.Redirects.PopRedirectAfterLogin(ctx.Context),
	})
}

func POSTRegisterHandler(ctx *middlewares.AppContext) {
	req := upstream(ctx)
	req.BearerToken = ""
	if !readBody(ctx, &req) {
		return
	}

	resp := forward(ctx, req)
	if resp == nil {
		return
	}

	ctx.Logger.Info("Account registered")
	relay(ctx, resp)
}

func POSTLogoutHandler(ctx *middlewares.AppContext) {
	ctx.Sessions.Clear(ctx.Response)
	ctx.Logger.Debug("Session cookies cleared")
	ctx.WriteJSON(http.StatusOK, LogoutResponse{OK: true})
}

// GETSessionHandler reports the profile cookies. It never unseals the
// session, so it answers for anonymous visitors too.
func GETSessionHandler(ctx *middlewares.AppContext) {
	profile := ctx.Sessions.Profile(ctx.Request)

	role := string(profile.Role)
	ctx.WriteJSON(http.StatusOK, SessionResponse{
		Role:  nonEmpty(role),
		Name:  nonEmpty(profile.Name),
		Email: nonEmpty(profile.Email),
	})
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
