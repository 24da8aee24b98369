package config

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads the optional YAML file at configPath, applies environment
// overrides and validates the result. An empty path configures the gateway
// from defaults and the environment alone.
func LoadConfig(configPath string) (*Config, error) {
	var config Config

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := applyEnvironmentOverrides(&config); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

var (
	EnvAuthCookieSecret        = "AUTH_COOKIE_SECRET"
	EnvAuthCookieMaxAgeSeconds = "AUTH_COOKIE_MAX_AGE_SECONDS"
	EnvBackendBaseURL          = "API_BASE_URL"
	EnvEnvironment             = "STOREFRONT_ENVIRONMENT"
	EnvPort                    = "STOREFRONT_PORT"
	EnvRedisPassword           = "STOREFRONT_REDIS_PASSWORD"
	EnvRedisUsername           = "STOREFRONT_REDIS_USERNAME"
)

func applyEnvironmentOverrides(config *Config) error {
	if secret := os.Getenv(EnvAuthCookieSecret); secret != "" {
		config.AuthCookie.Secret = secret
	}

	if maxAge := os.Getenv(EnvAuthCookieMaxAgeSeconds); maxAge != "" {
		seconds, err := strconv.Atoi(maxAge)
		if err != nil {
			return fmt.Errorf("%s must be an integer number of seconds: %w", EnvAuthCookieMaxAgeSeconds, err)
		}
		config.AuthCookie.MaxAgeSeconds = seconds
	}

	if baseURL := os.Getenv(EnvBackendBaseURL); baseURL != "" {
		config.Backend.BaseURL = baseURL
	}

	if environment := os.Getenv(EnvEnvironment); environment != "" {
		config.Server.Environment = environment
	}

	if portStr := os.Getenv(EnvPort); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			config.Server.Port = port
		}
	}

	if redisPassword := os.Getenv(EnvRedisPassword); redisPassword != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Password = redisPassword
	}

	if redisUsername := os.Getenv(EnvRedisUsername); redisUsername != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Username = redisUsername
	}

	return nil
}

func validateConfig(config *Config) error {
	err := config.validateServerConfig()
	if err != nil {
		return err
	}

	err = config.validateLogConfig()
	if err != nil {
		return err
	}

	err = config.validateCORSConfig()
	if err != nil {
		return err
	}

	err = config.validateBackendConfig()
	if err != nil {
		return err
	}

	err = config.validateAuthCookieConfig()
	if err != nil {
		return err
	}

	err = config.validateSessionConfig()
	if err != nil {
		return err
	}

	err = config.validateCacheConfig()
	if err != nil {
		return err
	}

	err = config.validateRateLimitConfig()
	if err != nil {
		return err
	}

	if config.Cache.Type == "redis" || config.Sessions.Store == "redis" {
		err = config.validateRedisConfig()
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) validateServerConfig() error {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerConfig.Port
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	switch c.Server.Environment {
	case "":
		c.Server.Environment = DefaultServerConfig.Environment
	case EnvironmentDevelopment, EnvironmentProduction:
	default:
		return fmt.Errorf("invalid server.environment: %s, options are 'development' or 'production'", c.Server.Environment)
	}

	if c.Server.StaticDir == "" {
		c.Server.StaticDir = DefaultServerConfig.StaticDir
	}

	if c.Server.Debug != nil && c.Server.Debug.Enabled {
		if c.Server.Debug.Host == "" {
			c.Server.Debug.Host = DefaultDebugConfig.Host
		}
		if c.Server.Debug.Port <= 0 || c.Server.Debug.Port >= 65535 {
			c.Server.Debug.Port = DefaultDebugConfig.Port
		}
	}

	return nil
}

func (c *Config) validateLogConfig() error {
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogConfig.Format
	} else {
		switch c.Log.Format {
		case "text", "json":
		default:
			return fmt.Errorf("invalid log format: %s, options are text or json", c.Log.Format)
		}
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogConfig.Level
	} else {
		switch c.Log.Level {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("invalid log level: %s, options are debug, info, warn, error", c.Log.Level)
		}
	}

	return nil
}

func (c *Config) validateCORSConfig() error {
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = DefaultCORSConfig.AllowedOrigins
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = DefaultCORSConfig.AllowedMethods
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = DefaultCORSConfig.AllowedHeaders
	}
	if c.CORS.MaxAgeSeconds == 0 {
		c.CORS.MaxAgeSeconds = DefaultCORSConfig.MaxAgeSeconds
	}

	return nil
}

func (c *Config) validateBackendConfig() error {
	if c.Backend.BaseURL == "" {
		c.Backend.BaseURL = DefaultBackendConfig.BaseURL
	}

	if err := validateURL(c.Backend.BaseURL, "backend.base_url"); err != nil {
		return err
	}

	if c.Backend.Timeout <= 0 {
		c.Backend.Timeout = DefaultBackendConfig.Timeout
	}

	if c.Backend.Headers == nil {
		c.Backend.Headers = make(map[string]string, len(DefaultBackendConfig.Headers))
		for k, v := range DefaultBackendConfig.Headers {
			c.Backend.Headers[k] = v
		}
	}

	return nil
}

func (c *Config) validateAuthCookieConfig() error {
	if c.AuthCookie.Secret == "" {
		if c.IsProduction() {
			return fmt.Errorf("auth_cookie.secret (or %s) is required in production", EnvAuthCookieSecret)
		}
		c.AuthCookie.Secret = DefaultAuthCookieConfig.Secret
	}

	if c.IsProduction() && c.AuthCookie.Secret == DevelopmentSecret {
		return fmt.Errorf("auth_cookie.secret must not be the development default in production")
	}

	if c.AuthCookie.RequireExactKeyLength && len(c.AuthCookie.Secret) != 32 {
		return fmt.Errorf("auth_cookie.secret must be exactly 32 bytes when require_exact_key_length is set, got %d", len(c.AuthCookie.Secret))
	}

	if c.AuthCookie.MaxAgeSeconds == 0 {
		c.AuthCookie.MaxAgeSeconds = DefaultAuthCookieConfig.MaxAgeSeconds
	} else if c.AuthCookie.MaxAgeSeconds < 0 {
		return fmt.Errorf("auth_cookie.max_age_seconds must be positive, got %d", c.AuthCookie.MaxAgeSeconds)
	}

	if c.AuthCookie.Name == "" {
		c.AuthCookie.Name = DefaultAuthCookieConfig.Name
	}
	if c.AuthCookie.RoleCookieName == "" {
		c.AuthCookie.RoleCookieName = DefaultAuthCookieConfig.RoleCookieName
	}
	if c.AuthCookie.NameCookieName == "" {
		c.AuthCookie.NameCookieName = DefaultAuthCookieConfig.NameCookieName
	}
	if c.AuthCookie.EmailCookieName == "" {
		c.AuthCookie.EmailCookieName = DefaultAuthCookieConfig.EmailCookieName
	}

	names := map[string]bool{}
	for _, name := range []string{c.AuthCookie.Name, c.AuthCookie.RoleCookieName, c.AuthCookie.NameCookieName, c.AuthCookie.EmailCookieName} {
		if names[name] {
			return fmt.Errorf("auth_cookie cookie names must be unique, %q is used twice", name)
		}
		names[name] = true
	}

	return nil
}

func (c *Config) validateSessionConfig() error {
	if c.Sessions.Store == "" {
		c.Sessions.Store = DefaultSessionConfig.Store
	} else {
		switch c.Sessions.Store {
		case "memory", "redis":
		default:
			return fmt.Errorf("invalid session store: %s, options are 'memory' or 'redis'", c.Sessions.Store)
		}
	}

	if c.Sessions.Name == "" {
		c.Sessions.Name = DefaultSessionConfig.Name
	}

	if c.Sessions.Name == c.AuthCookie.Name {
		return fmt.Errorf("sessions.name must differ from auth_cookie.name")
	}

	if c.Sessions.Lifetime == 0 {
		c.Sessions.Lifetime = DefaultSessionConfig.Lifetime
	}

	return nil
}

func (c *Config) validateCacheConfig() error {
	if c.Cache.Type == "" {
		c.Cache.Type = DefaultCacheConfig.Type
	}

	switch c.Cache.Type {
	case "memory":
		break
	case "redis":
		if c.Redis == nil {
			return fmt.Errorf("redis configuration must be enabled to use redis for the catalog cache")
		}
	default:
		return fmt.Errorf("invalid cache type: %s, must be 'memory' or 'redis'", c.Cache.Type)
	}

	if c.Cache.CatalogTTL == 0 {
		c.Cache.CatalogTTL = DefaultCacheConfig.CatalogTTL
	} else if c.Cache.CatalogTTL < 0 {
		return fmt.Errorf("cache.catalog_ttl must be positive")
	}

	return nil
}

func (c *Config) validateRateLimitConfig() error {
	if c.RateLimit.LoginPerMinute == 0 {
		c.RateLimit.LoginPerMinute = DefaultRateLimitConfig.LoginPerMinute
	} else if c.RateLimit.LoginPerMinute < 0 {
		return fmt.Errorf("rate_limit.login_per_minute must be positive")
	}

	if c.RateLimit.LoginBurst <= 0 {
		c.RateLimit.LoginBurst = DefaultRateLimitConfig.LoginBurst
	}

	if c.RateLimit.IdleTimeout <= 0 {
		c.RateLimit.IdleTimeout = DefaultRateLimitConfig.IdleTimeout
	}

	return nil
}

func (c *Config) validateRedisConfig() error {
	if c.Redis == nil {
		return fmt.Errorf("redis config is nil")
	}

	if c.Redis.Sentinel == nil {
		if c.Redis.Address == "" {
			return fmt.Errorf("redis address is required")
		}

		if _, _, err := net.SplitHostPort(c.Redis.Address); err != nil {
			return fmt.Errorf("invalid redis address format (expected host:port): %w", err)
		}
	}

	// Apply default indices if not set
	if c.Redis.SessionIndex == 0 && c.Redis.CacheIndex == 0 {
		c.Redis.SessionIndex = DefaultRedisConfig.SessionIndex
		c.Redis.CacheIndex = DefaultRedisConfig.CacheIndex
	}

	if c.Redis.SessionIndex < 0 {
		return fmt.Errorf("redis session_index must be non-negative, got %d", c.Redis.SessionIndex)
	}

	if c.Redis.CacheIndex < 0 {
		return fmt.Errorf("redis cache_index must be non-negative, got %d", c.Redis.CacheIndex)
	}

	if c.Redis.SessionIndex == c.Redis.CacheIndex {
		return fmt.Errorf("redis session_index and cache_index should be different to avoid data collision (both are %d)", c.Redis.SessionIndex)
	}

	const maxRedisDB = 15
	if c.Redis.SessionIndex > maxRedisDB {
		return fmt.Errorf("redis session_index %d exceeds typical maximum of %d", c.Redis.SessionIndex, maxRedisDB)
	}

	if c.Redis.CacheIndex > maxRedisDB {
		return fmt.Errorf("redis cache_index %d exceeds typical maximum of %d", c.Redis.CacheIndex, maxRedisDB)
	}

	if c.Redis.Sentinel != nil {
		if c.Redis.Sentinel.MasterName == "" {
			return fmt.Errorf("sentinel master_name is required")
		}
		if len(c.Redis.Sentinel.SentinelAddresses) == 0 {
			return fmt.Errorf("at least one sentinel address is required")
		}
	}
	return nil
}
