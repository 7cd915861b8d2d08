package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/reactivedemo/demo/backend/go-services/internal/config"
	"github.com/reactivedemo/demo/backend/go-services/internal/project/service"
	"github.com/reactivedemo/demo/backend/go-services/pkg/metrics"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		App:    config.AppConfig{Name: "demo-service", Version: "test"},
		Server: config.ServerConfig{HealthTimeout: time.Second},
		Stream: config.StreamConfig{Delay: time.Millisecond},
	}
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRouterSurface(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	metrics.RegisterCollectors(reg)

	r := NewRouter(testConfig(), Deps{Projects: service.NewMemoryService(), Gatherer: reg})

	require.Equal(t, "Hello", serve(r, http.MethodGet, "/hello", "").Body.String())
	require.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/word-count/v1?limit=1", "").Code)

	w := serve(r, http.MethodPost, "/api/projects", `{"name":"demo"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotEmpty(t, w.Header().Get("X-Request-Id"))

	require.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/projects/stream", "").Code)

	w = serve(r, http.MethodGet, "/actuator/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	var health struct {
		Status     string                     `json:"status"`
		Components map[string]json.RawMessage `json:"components"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	require.Equal(t, "UP", health.Status)
	require.Contains(t, health.Components, "custom")
	require.Contains(t, health.Components, StorageMemory)
	require.NotContains(t, health.Components, StorageMongo)

	w = serve(r, http.MethodGet, "/actuator/info", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "demo-service")

	w = serve(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "demo_http_requests_total")
	require.Contains(t, w.Body.String(), "demo_project_operations_total")
}

func TestRouterRedisRateLimitAndHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})

	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{Enabled: true, UseRedis: true, RPS: 0, Burst: 2, WindowSeconds: 60}
	r := NewRouter(cfg, Deps{Projects: service.NewMemoryService(), Redis: client, Gatherer: prometheus.NewRegistry()})

	w := serve(r, http.MethodGet, "/actuator/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"redis"`)

	require.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/hello", "").Code)
	require.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodGet, "/hello", "").Code)
}

func TestRouterHealthNamesConfiguredStorage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(testConfig(), Deps{Projects: service.NewMemoryService(), Storage: StorageMongo, Gatherer: prometheus.NewRegistry()})

	w := serve(r, http.MethodGet, "/actuator/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	var health struct {
		Components map[string]json.RawMessage `json:"components"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	require.Contains(t, health.Components, StorageMongo)
	require.NotContains(t, health.Components, StorageMemory)
}
