package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenLifetime reports how long a JWT bearer token has left before its exp
// claim. The signature is not checked; the backend does that on every call.
// Opaque tokens and tokens without exp report false.
func tokenLifetime(token string, now time.Time) (time.Duration, bool) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return 0, false
	}

	if claims.ExpiresAt == nil {
		return 0, false
	}

	return claims.ExpiresAt.Sub(now), true
}
