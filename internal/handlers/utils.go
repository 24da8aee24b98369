package handlers

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/middlewares"
)

// maxRequestBytes caps request bodies forwarded to the backend.
const maxRequestBytes = 10 << 20

// RedactEmail is used to redact emails (mostly for logs)
func RedactEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return ""
	}

	localRunes := []rune(parts[0])
	domain := parts[1]

	if len(localRunes) <= 2 {
		return strings.Repeat("*", len(localRunes)) + "@" + domain
	}

	first := string(localRunes[0])
	last := string(localRunes[len(localRunes)-1])
	middle := strings.Repeat("*", len(localRunes)-2)

	return first + middle + last + "@" + domain
}

// upstream builds a backend request mirroring the incoming method, path and
// query string.
func upstream(ctx *middlewares.AppContext) backend.Request {
	req := backend.Request{
		Method:      ctx.Request.Method,
		Path:        ctx.Request.URL.EscapedPath(),
		BearerToken: ctx.BearerToken,
	}
	if query := ctx.Request.URL.Query(); len(query) > 0 {
		req.Query = query
	}
	return req
}

// readBody copies the request body onto req. It writes the error response
// and returns false when the body cannot be read.
func readBody(ctx *middlewares.AppContext, req *backend.Request) bool {
	if ctx.Request.Body == nil {
		return true
	}

	body, err := io.ReadAll(http.MaxBytesReader(ctx.Response, ctx.Request.Body, maxRequestBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			ctx.SetJSONError(http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		ctx.Logger.Warn("failed to read request body", "error", err)
		ctx.SetJSONError(http.StatusBadRequest, "Invalid request body")
		return false
	}

	if len(body) == 0 {
		return true
	}

	req.Body = body
	req.ContentType = ctx.Request.Header.Get("Content-Type")
	if req.ContentType == "" {
		req.ContentType = "application/json"
	}

	return true
}

// pageQuery copies page and size from the request, falling back to the
// given defaults, plus any optional filters that are not blank.
func pageQuery(r *http.Request, page, size string, filters ...string) url.Values {
	in := r.URL.Query()
	out := url.Values{}

	out.Set("page", valueOr(in, "page", page))
	out.Set("size", valueOr(in, "size", size))
	for _, name := range filters {
		if v := in.Get(name); strings.TrimSpace(v) != "" {
			out.Set(name, v)
		}
	}

	return out
}

func valueOr(values url.Values, key, fallback string) string {
	if values.Has(key) {
		return values.Get(key)
	}
	return fallback
}
