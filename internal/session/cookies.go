// Package session keeps the sealed bearer token and the plaintext profile
// cookies in step with each other.
package session

import (
	"net/http"
	"net/url"
	"time"

	"storefront-gateway/internal/config"
	"storefront-gateway/internal/models"
	"storefront-gateway/internal/sealer"
)

type CookieManager struct {
	config *config.Config
	sealer *sealer.Sealer
	now    func() time.Time
}

func NewCookieManager(cfg *config.Config, s *sealer.Sealer) *CookieManager {
	return &CookieManager{
		config: cfg,
		sealer: s,
		now:    time.Now,
	}
}

// cookie builds a cookie from the current configuration. maxAge follows
// http.Cookie semantics, so -1 expires the cookie immediately.
func (m *CookieManager) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.config.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}
}

func (m *CookieManager) set(w http.ResponseWriter, name, value string, maxAge int) {
	http.SetCookie(w, m.cookie(name, value, maxAge))
}

// maxAge is the configured lifetime, shortened so the cookies expire no
// later than the bearer token itself. An already expired token gets the
// one second minimum.
func (m *CookieManager) maxAge(token string) int {
	maxAge := m.config.AuthCookie.MaxAgeSeconds

	remaining, ok := tokenLifetime(token, m.now())
	if !ok {
		return maxAge
	}

	if seconds := int(remaining / time.Second); seconds < maxAge {
		return max(seconds, 1)
	}
	return maxAge
}

// Establish seals token and writes it together with the profile cookies.
// Nothing is written when sealing fails.
func (m *CookieManager) Establish(w http.ResponseWriter, token string, profile models.Profile) error {
	sealed, err := m.sealer.Seal(token)
	if err != nil {
		return err
	}

	names := m.config.AuthCookie
	maxAge := m.maxAge(token)
	m.set(w, names.Name, sealed, maxAge)
	m.set(w, names.RoleCookieName, url.PathEscape(string(profile.Role)), maxAge)
	m.set(w, names.NameCookieName, url.PathEscape(profile.Name), maxAge)
	m.set(w, names.EmailCookieName, url.PathEscape(profile.Email), maxAge)

	return nil
}

// Clear expires the session and profile cookies.
func (m *CookieManager) Clear(w http.ResponseWriter) {
	names := m.config.AuthCookie
	for _, name := range []string{names.Name, names.RoleCookieName, names.NameCookieName, names.EmailCookieName} {
		http.SetCookie(w, m.cookie(name, "", -1))
	}
}

// BearerToken recovers the token sealed in the session cookie. Failures are
// *Error values carrying ReasonMissing or ReasonInvalid.
func (m *CookieManager) BearerToken(r *http.Request) (string, error) {
	c, err := r.Cookie(m.config.AuthCookie.Name)
	if err != nil || c.Value == "" {
		return "", ErrMissing
	}

	token, err := m.sealer.Unseal(c.Value)
	if err != nil {
		return "", ErrInvalid
	}

	return token, nil
}

func (m *CookieManager) Profile(r *http.Request) models.Profile {
	names := m.config.AuthCookie
	return models.Profile{
		Role:  models.Role(readCookie(r, names.RoleCookieName)),
		Name:  readCookie(r, names.NameCookieName),
		Email: readCookie(r, names.EmailCookieName),
	}
}

// UpdateProfile rewrites the name and email cookies with the same lifetime
// Establish gave the session holding token. Empty values are left untouched.
func (m *CookieManager) UpdateProfile(w http.ResponseWriter, token, name, email string) {
	names := m.config.AuthCookie
	maxAge := m.maxAge(token)
	if name != "" {
		m.set(w, names.NameCookieName, url.PathEscape(name), maxAge)
	}
	if email != "" {
		m.set(w, names.EmailCookieName, url.PathEscape(email), maxAge)
	}
}

func readCookie(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}

	value, err := url.PathUnescape(c.Value)
	if err != nil {
		return c.Value
	}

	return value
}
