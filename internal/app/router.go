package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/reactivedemo/demo/backend/go-services/handlers"
	"github.com/reactivedemo/demo/backend/go-services/internal/actuator"
	"github.com/reactivedemo/demo/backend/go-services/internal/config"
	projecthandler "github.com/reactivedemo/demo/backend/go-services/internal/project/handler"
	"github.com/reactivedemo/demo/backend/go-services/internal/project/service"
	"github.com/reactivedemo/demo/backend/go-services/pkg/middleware"
	"github.com/redis/go-redis/v9"
)

// Storage names the project backend in the health report.
const (
	StorageMemory = "memory"
	StorageMongo  = "mongo"
)

// Deps are the runtime collaborators the router is built from. Redis is optional.
// An empty Storage is reported as StorageMemory.
type Deps struct {
	Projects  service.Service
	Storage   string
	Redis     *redis.Client
	Gatherer  prometheus.Gatherer
	StartedAt time.Time
}

// NewRouter wires middleware and every route of the service.
func NewRouter(cfg *config.Config, deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(), middleware.HTTPMetrics(), middleware.CORS())

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && deps.Redis != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(deps.Redis, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	handlers.RegisterHello(r)
	handlers.RegisterWordCountRoutes(r)
	handlers.RegisterSwagger(r)
	projecthandler.RegisterProjectRoutes(r, deps.Projects, cfg.Stream.Delay)

	storage := deps.Storage
	if storage == "" {
		storage = StorageMemory
	}
	indicators := []actuator.Indicator{
		actuator.CustomIndicator(),
		actuator.PingIndicator(storage, deps.Projects.Ping),
	}
	if deps.Redis != nil {
		indicators = append(indicators, actuator.RedisIndicator(deps.Redis))
	}
	startedAt := deps.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now()
	}
	app := actuator.AppInfo{Name: cfg.App.Name, Description: cfg.App.Description, Version: cfg.App.Version}
	actuator.Register(r, app, startedAt, cfg.Server.HealthTimeout, indicators...)

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	return r
}
