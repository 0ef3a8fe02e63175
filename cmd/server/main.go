package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"release-management-service/internal/adapters/primary/http/handlers"
	"release-management-service/internal/adapters/primary/http/middleware"
	"release-management-service/internal/adapters/secondary/kube"
	"release-management-service/internal/adapters/secondary/memory"
	"release-management-service/internal/adapters/secondary/nmtapi"
	"release-management-service/internal/adapters/secondary/postgres"
	"release-management-service/internal/config"
	output "release-management-service/internal/core/ports/output"
	"release-management-service/internal/core/services"
	"release-management-service/internal/poller"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

const sessionPurgeInterval = 10 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Database pool (optional, sessions only)
	var pool *pgxpool.Pool
	if cfg.Database.Enabled {
		pool, err = newPool(ctx, cfg.Database)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		defer pool.Close()
		log.Info("database connection established")
	}

	// ============================================================================
	// Hexagonal Architecture Wiring
	// ============================================================================

	// Secondary Adapters (Output Ports)
	backend := nmtapi.NewClient(&cfg.Backend)

	var sessions output.SessionRepository
	switch {
	case !cfg.Auth.Enabled:
		log.Info("dashboard sessions disabled, forwarding caller tokens to the backend")
	case pool != nil:
		sessions = postgres.NewSessionRepository(pool)
	default:
		sessions = memory.NewSessionRepository()
		log.Info("database disabled, keeping sessions in memory")
	}

	// Cluster probe (Optional - based on config)
	var cluster output.ClusterClient
	if cfg.Kubernetes.Enabled {
		client, err := kube.NewClusterClient(&cfg.Kubernetes)
		if err != nil {
			log.Warnf("cluster client init failed (continuing without workload status): %v", err)
		} else {
			cluster = client
			log.Info("cluster client initialized")
		}
	} else {
		log.Info("cluster integration disabled")
	}

	p, err := poller.New(cfg.Poll.Interval)
	if err != nil {
		log.Fatalf("poller: %v", err)
	}

	// Core Services (Application Layer)
	authSvc := services.NewAuthService(backend, sessions, cfg.Auth.SessionTTL)
	langPairSvc := services.NewLanguagePairService(backend)
	versionSvc := services.NewModelVersionService(backend, backend, backend, backend, backend)
	testsetSvc := services.NewTestsetService(backend)
	resultSvc := services.NewTrainingResultService(backend)
	noteSvc := services.NewReleaseNoteService(backend)
	evalSvc := services.NewEvaluationService(backend, p)
	sqeSvc := services.NewSQEService(backend)
	dashboardSvc := services.NewDashboardService(backend, cluster)

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(authSvc, langPairSvc, versionSvc, testsetSvc, resultSvc, noteSvc, evalSvc, sqeSvc, dashboardSvc)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	authMW := middleware.ForwardToken()
	if !authSvc.Stateless() {
		authMW = middleware.Auth(authSvc)
	}
	api := router.Group("/api/v1")
	h.RegisterRoutes(api, authMW)

	router.GET("/healthz", func(c *gin.Context) {
		if pool != nil {
			if err := pool.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if !authSvc.Stateless() {
		go purgeSessions(ctx, authSvc)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("starting server on %s (backend %s)", addr, cfg.Backend.URL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	<-ctx.Done()
	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Open SSE watches end with the request contexts.
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("server forced shutdown: %v", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}

func newPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// purgeSessions drops expired sessions until ctx is cancelled.
func purgeSessions(ctx context.Context, auth *services.AuthService) {
	ticker := time.NewTicker(sessionPurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := auth.PurgeExpired(ctx)
			if err != nil {
				log.WithError(err).Warn("purge expired sessions")
				continue
			}
			if n > 0 {
				log.WithField("count", n).Info("expired sessions purged")
			}
		}
	}
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
