package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/reactivedemo/demo/backend/go-services/internal/app"
	"github.com/reactivedemo/demo/backend/go-services/internal/config"
	"github.com/reactivedemo/demo/backend/go-services/internal/database"
	"github.com/reactivedemo/demo/backend/go-services/internal/project/service"
	"github.com/reactivedemo/demo/backend/go-services/pkg/logger"
	"github.com/reactivedemo/demo/backend/go-services/pkg/metrics"
	"github.com/redis/go-redis/v9"
)

var startTime = time.Now()

func main() {
	// LOG_LEVEL: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v rate_limit=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.RateLimit.Enabled)

	if cfg.Server.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		addr := cfg.Redis.Host + ":" + cfg.Redis.Port
		redisClient, err = database.ConnectRedis(ctx, addr, cfg.Redis.Password, cfg.Redis.DB, 5*time.Second)
		if err != nil {
			logger.Warnf("failed to connect to Redis (%s): %v", addr, err)
		} else {
			defer redisClient.Close()
			logger.Infof("connected to Redis: %s", addr)
		}
	}

	var projects service.Service
	storage := app.StorageMemory
	if cfg.MongoDB.URI != "" {
		client, err := database.ConnectMongoRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, 5, time.Second)
		if err != nil {
			logger.Fatalf("could not connect to MongoDB: %v", err)
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		projects = service.NewMongoService(client.Database(cfg.MongoDB.Database).Collection(cfg.MongoDB.Collection))
		storage = app.StorageMongo
		logger.Infof("projects stored in MongoDB %s.%s", cfg.MongoDB.Database, cfg.MongoDB.Collection)
	} else {
		logger.Warnf("MONGODB_URI not set; projects are kept in memory")
		projects = service.NewMemoryService()
	}

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r := app.NewRouter(cfg, app.Deps{
		Projects:  projects,
		Storage:   storage,
		Redis:     redisClient,
		Gatherer:  prometheus.DefaultGatherer,
		StartedAt: startTime,
	})

	// No WriteTimeout: /api/projects/stream stays open for as long as it emits.
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
	}
	go func() {
		logger.Infof("starting %s on %s", cfg.App.Name, cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown: %v", err)
	}
}
