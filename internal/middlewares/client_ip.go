package middlewares

import (
	"context"
	"net"
	"net/http"
	"strings"
)

const clientIPKey contextKey = "clientIP"

// ClientIPMiddleware resolves the client address and stores it in the request
// context. Proxy headers are only consulted when trustProxyHeaders is set.
func ClientIPMiddleware(trustProxyHeaders bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := remoteIP(r)
			if trustProxyHeaders {
				if forwarded := forwardedIP(r); forwarded != "" {
					clientIP = forwarded
				}
			}

			if clientIP != "" {
				_, port, err := net.SplitHostPort(r.RemoteAddr)
				if err == nil && port != "" {
					r.RemoteAddr = net.JoinHostPort(clientIP, port)
				} else {
					r.RemoteAddr = net.JoinHostPort(clientIP, "0")
				}
			}

			ctx := context.WithValue(r.Context(), clientIPKey, clientIP)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClientIP returns the address resolved by ClientIPMiddleware, falling back
// to the connection address.
func ClientIP(r *http.Request) string {
	if ip, ok := r.Context().Value(clientIPKey).(string); ok && ip != "" {
		return ip
	}

	return remoteIP(r)
}

func forwardedIP(r *http.Request) string {
	if ip := r.Header.Get("True-Client-IP"); ip != "" {
		if parsed := net.ParseIP(strings.TrimSpace(ip)); parsed != nil {
			return parsed.String()
		}
	}

	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		if parsed := net.ParseIP(strings.TrimSpace(ip)); parsed != nil {
			return parsed.String()
		}
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ip, _, _ := strings.Cut(xff, ",")
		if parsed := net.ParseIP(strings.TrimSpace(ip)); parsed != nil {
			return parsed.String()
		}
	}

	return ""
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		if parsed := net.ParseIP(r.RemoteAddr); parsed != nil {
			return parsed.String()
		}
		return ""
	}

	if parsed := net.ParseIP(host); parsed != nil {
		return parsed.String()
	}

	return ""
}
