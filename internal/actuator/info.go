package actuator

import (
	"net/http"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
)

// AppInfo holds the static entries of /actuator/info.
type AppInfo struct {
	Name        string
	Description string
	Version     string
}

// Info builds the static plus computed key/value document.
func Info(app AppInfo, startedAt time.Time) map[string]any {
	out := map[string]any{
		"app": map[string]any{
			"name":        app.Name,
			"description": app.Description,
			"version":     app.Version,
		},
		"runtime": map[string]any{
			"go":        runtime.Version(),
			"startedAt": startedAt.UTC().Format(time.RFC3339),
			"uptime":    time.Since(startedAt).Round(time.Second).String(),
		},
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		build := map[string]any{"module": bi.Main.Path}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision", "vcs.time", "vcs.modified":
				build[s.Key] = s.Value
			}
		}
		out["build"] = build
	}
	return out
}

func InfoHandler(app AppInfo, startedAt time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Info(app, startedAt))
	}
}

// Register mounts /actuator/health and /actuator/info.
func Register(r *gin.Engine, app AppInfo, startedAt time.Time, timeout time.Duration, indicators ...Indicator) {
	r.GET("/actuator/health", HealthHandler(timeout, indicators...))
	r.GET("/actuator/info", InfoHandler(app, startedAt))
}
