package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-gateway/internal/auth"
	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/config"
	"storefront-gateway/internal/data"
	"storefront-gateway/internal/jobs"
	"storefront-gateway/internal/metrics"
	"storefront-gateway/internal/middlewares"
	"storefront-gateway/internal/sealer"
	"storefront-gateway/internal/session"
	"storefront-gateway/internal/version"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/extra/redisprometheus/v9"
	"github.com/redis/go-redis/v9"
)

const (
	shutdownTimeout  = 30 * time.Second
	cacheStatsPeriod = 30 * time.Second
)

type Server struct {
	cfg          *config.Config
	logger       *slog.Logger
	appCtx       *middlewares.AppContext
	httpServer   *http.Server
	debugServer  *http.Server
	jobManager   *jobs.JobManager
	redisClients []*redis.Client
	instanceID   string
	cancel       context.CancelFunc
}

func New(cfg *config.Config) (*Server, error) {
	logger := setupLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())

	s, err := newServer(ctx, cfg, logger)
	if err != nil {
		cancel()
		return nil, err
	}
	s.cancel = cancel

	return s, nil
}

func newServer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Server, error) {
	var sealerOpts []sealer.Option
	if cfg.AuthCookie.RequireExactKeyLength {
		sealerOpts = append(sealerOpts, sealer.WithExactKeyLength())
	}

	tokenSealer, err := sealer.New(cfg.AuthCookie.Secret, sealerOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create session sealer: %w", err)
	}
	sessions := session.NewCookieManager(cfg, tokenSealer)

	var redisClients []*redis.Client

	var sessionClient *redis.Client
	if cfg.Sessions.Store == "redis" {
		sessionClient, err = connectRedis(ctx, cfg, logger, cfg.Redis.SessionIndex, "sessions")
		if err != nil {
			return nil, err
		}
		redisClients = append(redisClients, sessionClient)
	}

	var cacheClient data.RedisCacheClient
	if cfg.Cache.Type == "redis" {
		client, err := connectRedis(ctx, cfg, logger, cfg.Redis.CacheIndex, "cache")
		if err != nil {
			closeRedis(logger, redisClients)
			return nil, err
		}
		redisClients = append(redisClients, client)
		cacheClient = client
	}

	redirects, err := auth.NewRedirectStore(logger, cfg, sessionClient)
	if err != nil {
		closeRedis(logger, redisClients)
		return nil, fmt.Errorf("failed to create redirect store: %w", err)
	}

	backendClient, err := backend.NewClient(cfg.Backend)
	if err != nil {
		closeRedis(logger, redisClients)
		return nil, err
	}

	cache := data.NewCacheProvider(cfg, logger, cacheClient)

	appCtx := middlewares.NewAppContext(ctx, cfg, logger, sessions, redirects, backendClient, cache)

	limiter := middlewares.NewRateLimiter(cfg.RateLimit.LoginPerMinute, cfg.RateLimit.LoginBurst)

	jobManager := jobs.NewJobManager(logger)
	jobManager.Register(jobs.NewLimiterPruneJob(limiter, cfg.RateLimit.IdleTimeout, cfg.RateLimit.IdleTimeout/2, logger))
	jobManager.Register(jobs.NewCacheStatsJob(cache, cfg.Cache.Type, cacheStatsPeriod, logger))

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           setupRouter(appCtx, limiter),
		ReadHeaderTimeout: 10 * time.Second,
	}

	var debugServer *http.Server
	if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
		if err := prometheus.Register(version.Collector()); err != nil {
			logger.Debug("failed to register build info collector: already registered", "error", err)
		}
		debugServer = &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Server.Debug.Host, cfg.Server.Debug.Port),
			Handler:           setupDebugRouter(),
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	return &Server{
		cfg:          cfg,
		logger:       logger,
		appCtx:       appCtx,
		httpServer:   httpServer,
		debugServer:  debugServer,
		jobManager:   jobManager,
		redisClients: redisClients,
		instanceID:   instanceID(),
	}, nil
}

// connectRedis opens a client on db and exports its pool stats under
// subsystem.
func connectRedis(ctx context.Context, cfg *config.Config, logger *slog.Logger, db int, subsystem string) (*redis.Client, error) {
	client, err := data.NewRedisClient(ctx, logger, cfg.Redis, db)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis for %s: %w", subsystem, err)
	}

	collector := redisprometheus.NewCollector(metrics.Namespace, subsystem, client)
	if err := prometheus.Register(collector); err != nil {
		logger.Debug("failed to register redis collector: already registered", "subsystem", subsystem, "error", err)
	}

	return client, nil
}

func closeRedis(logger *slog.Logger, clients []*redis.Client) {
	for _, client := range clients {
		if err := client.Close(); err != nil {
			logger.Warn("failed to close redis client", "error", err)
		}
	}
}

func instanceID() string {
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return uuid.New().String()
}

func (s *Server) Start() error {
	s.jobManager.Start(s.appCtx)

	go func() {
		s.logger.Info("Server Started",
			"port", s.cfg.Server.Port,
			"instance", s.instanceID,
			"version", version.GetFullVersion(),
			"environment", s.cfg.Server.Environment)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server failed to start", "error", err)
			s.cancel()
		}
	}()

	if s.debugServer != nil {
		go func() {
			s.logger.Info("Metrics server starting", "address", s.debugServer.Addr)
			if err := s.debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("Metrics server failed to start", "error", err)
				s.cancel()
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		s.logger.Info("Shutdown signal received")
	case <-s.appCtx.Done():
		s.logger.Info("Context canceled")
	}

	return s.Shutdown()
}

// Shutdown stops jobs first, then the servers, then closes redis.
func (s *Server) Shutdown() error {
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	s.logger.Info("Shutting Down Server")

	s.jobManager.Shutdown(shutdownCtx)

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
		return err
	}

	if s.debugServer != nil {
		if err := s.debugServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Debug server forced to shutdown", "error", err)
		}
	}

	closeRedis(s.logger, s.redisClients)
	if s.cancel != nil {
		s.cancel()
	}

	s.logger.Info("Server Exited")
	return nil
}
