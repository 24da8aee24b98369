package config

import (
	"time"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	Backend    BackendConfig    `yaml:"backend"`
	AuthCookie AuthCookieConfig `yaml:"auth_cookie"`
	Sessions   SessionConfig    `yaml:"sessions"`
	Cache      CacheConfig      `yaml:"cache"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Redis      *RedisConfig     `yaml:"redis"`
}

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

type ServerConfig struct {
	Port              int                `yaml:"port"`
	Environment       string             `yaml:"environment"`
	StaticDir         string             `yaml:"static_dir"`
	TrustProxyHeaders bool               `yaml:"trust_proxy_headers"`
	Debug             *ServerDebugConfig `yaml:"debug"`
}

var DefaultServerConfig = ServerConfig{
	Port:        3000,
	Environment: EnvironmentDevelopment,
	StaticDir:   "web/dist",
}

type ServerDebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
}

var DefaultDebugConfig = ServerDebugConfig{
	Enabled: false,
	Host:    "localhost",
	Port:    5123,
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var DefaultLogConfig = LogConfig{
	Level:  "info",
	Format: "text",
}

type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	ExposedHeaders   []string `yaml:"exposed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAgeSeconds    int      `yaml:"max_age_seconds"`
}

var DefaultCORSConfig = CORSConfig{
	AllowedOrigins: []string{"http://localhost:3000"},
	AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
	AllowedHeaders: []string{"*"},
	MaxAgeSeconds:  300,
}

// BackendConfig points at the commerce backend that every /api route forwards to.
type BackendConfig struct {
	BaseURL string            `yaml:"base_url"`
	Timeout time.Duration     `yaml:"timeout"`
	Headers map[string]string `yaml:"headers"`
}

var DefaultBackendConfig = BackendConfig{
	BaseURL: "http://localhost:8081",
	Timeout: 15 * time.Second,
	Headers: map[string]string{
		"ngrok-skip-browser-warning": "true",
	},
}

type AuthCookieConfig struct {
	Secret                string `yaml:"secret"`
	MaxAgeSeconds         int    `yaml:"max_age_seconds"`
	Name                  string `yaml:"name"`
	RoleCookieName        string `yaml:"role_cookie_name"`
	NameCookieName        string `yaml:"name_cookie_name"`
	EmailCookieName       string `yaml:"email_cookie_name"`
	RequireExactKeyLength bool   `yaml:"require_exact_key_length"`
}

// DevelopmentSecret is accepted outside production only.
const DevelopmentSecret = "dev-only-change-me"

var DefaultAuthCookieConfig = AuthCookieConfig{
	Secret:          DevelopmentSecret,
	MaxAgeSeconds:   86400,
	Name:            "oop_lec_auth",
	RoleCookieName:  "oop_lec_role",
	NameCookieName:  "oop_lec_name",
	EmailCookieName: "oop_lec_email",
}

// SessionConfig configures the server-side navigation session (redirect after login).
type SessionConfig struct {
	Store    string        `yaml:"store"`
	Name     string        `yaml:"name"`
	Lifetime time.Duration `yaml:"lifetime"`
}

var DefaultSessionConfig = SessionConfig{
	Store:    "memory",
	Name:     "storefront_nav",
	Lifetime: 30 * time.Minute,
}

type CacheConfig struct {
	Type       string        `yaml:"type"` //  "memory" or "redis"
	CatalogTTL time.Duration `yaml:"catalog_ttl"`
}

var DefaultCacheConfig = CacheConfig{
	Type:       "memory",
	CatalogTTL: 30 * time.Second,
}

type RateLimitConfig struct {
	LoginPerMinute int           `yaml:"login_per_minute"`
	LoginBurst     int           `yaml:"login_burst"`
	IdleTimeout    time.Duration `yaml:"idle_timeout"`
}

var DefaultRateLimitConfig = RateLimitConfig{
	LoginPerMinute: 10,
	LoginBurst:     5,
	IdleTimeout:    10 * time.Minute,
}

type RedisConfig struct {
	Address      string               `yaml:"address"`
	Username     string               `yaml:"username"`
	Password     string               `yaml:"password"`
	Sentinel     *RedisSentinelConfig `yaml:"sentinel"`
	SessionIndex int                  `yaml:"session_index"`
	CacheIndex   int                  `yaml:"cache_index"`
}

var DefaultRedisConfig = RedisConfig{
	SessionIndex: 0,
	CacheIndex:   1,
}

type RedisSentinelConfig struct {
	MasterName        string   `yaml:"master_name"`
	SentinelAddresses []string `yaml:"addresses"`
	SentinelPassword  string   `yaml:"password"`
	SentinelUsername  string   `yaml:"username"`
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvironmentProduction
}
