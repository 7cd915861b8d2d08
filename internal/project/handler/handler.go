package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reactivedemo/demo/backend/go-services/internal/project"
	"github.com/reactivedemo/demo/backend/go-services/internal/project/service"
	"github.com/reactivedemo/demo/backend/go-services/pkg/logger"
)

// DefaultStreamDelay is the pause between items on /api/projects/stream.
const DefaultStreamDelay = time.Second

// RegisterProjectRoutes mounts the /api/projects resource. streamDelay <= 0
// falls back to DefaultStreamDelay.
func RegisterProjectRoutes(r *gin.Engine, svc service.Service, streamDelay time.Duration) {
	if streamDelay <= 0 {
		streamDelay = DefaultStreamDelay
	}

	r.GET("/api/projects", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	})

	r.GET("/api/projects/stream", func(c *gin.Context) {
		streamProjects(c, svc, streamDelay)
	})

	r.POST("/api/projects", func(c *gin.Context) {
		var in project.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, []string{err.Error()})
			return
		}
		p, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, p)
	})

	r.GET("/api/projects/:id", func(c *gin.Context) {
		p, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	})

	r.PUT("/api/projects/:id", func(c *gin.Context) {
		var in project.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, []string{err.Error()})
			return
		}
		p, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	})

	r.DELETE("/api/projects/:id", func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
}

// streamProjects writes one project per flush: newline-delimited JSON by
// default, server-sent events when the client asks for text/event-stream.
func streamProjects(c *gin.Context, svc service.Service, delay time.Duration) {
	ctx := c.Request.Context()
	sse := strings.Contains(c.GetHeader("Accept"), "text/event-stream")
	if sse {
		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
	} else {
		c.Header("Content-Type", "application/x-ndjson")
	}

	enc := json.NewEncoder(c.Writer)
	wrote := false
	for p, err := range svc.Stream(ctx, delay) {
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				logger.Debugf("projects stream: client went away after %v", err)
				return
			}
			if !wrote {
				writeError(c, err)
				return
			}
			logger.Errorf("projects stream aborted: %v", err)
			return
		}
		if !wrote {
			c.Status(http.StatusOK)
			wrote = true
		}
		if sse {
			c.SSEvent("project", p)
		} else if err := enc.Encode(p); err != nil {
			logger.Warnf("projects stream write: %v", err)
			return
		}
		c.Writer.Flush()
	}
	if !wrote {
		c.Status(http.StatusOK)
		c.Writer.WriteHeaderNow()
	}
}

func writeError(c *gin.Context, err error) {
	var verr *project.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, verr.Messages())
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		logger.Errorf("projects: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
