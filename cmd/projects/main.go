// Command projects runs only the /api/projects resource. It falls back to an
// in-memory store when MongoDB is not configured or unreachable.
package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/reactivedemo/demo/backend/go-services/internal/config"
	"github.com/reactivedemo/demo/backend/go-services/internal/database"
	"github.com/reactivedemo/demo/backend/go-services/internal/project/handler"
	"github.com/reactivedemo/demo/backend/go-services/internal/project/service"
	"github.com/reactivedemo/demo/backend/go-services/pkg/logger"
	"github.com/reactivedemo/demo/backend/go-services/pkg/middleware"
)

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger())

	var svc service.Service
	if cfg.MongoDB.URI != "" {
		client, err := database.ConnectMongo(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if err != nil {
			logger.Warnf("cannot connect to MongoDB (%v); using memory-backed repo", err)
			svc = service.NewMemoryService()
		} else {
			svc = service.NewMongoService(client.Database(cfg.MongoDB.Database).Collection(cfg.MongoDB.Collection))
		}
	} else {
		svc = service.NewMemoryService()
	}

	handler.RegisterProjectRoutes(r, svc, cfg.Stream.Delay)

	addr := cfg.Server.Host + ":" + cfg.Server.ProjectsPort
	logger.Infof("projects service listening on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
