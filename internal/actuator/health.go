package actuator

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	StatusUp   = "UP"
	StatusDown = "DOWN"
)

// Health is the result of a single indicator.
type Health struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

// Up returns an UP result with optional details.
func Up(details map[string]any) Health { return Health{Status: StatusUp, Details: details} }

// Down returns a DOWN result carrying err as the "error" detail.
func Down(err error) Health {
	return Health{Status: StatusDown, Details: map[string]any{"error": err.Error()}}
}

// Indicator contributes one named component to /actuator/health.
type Indicator interface {
	Name() string
	Check(ctx context.Context) Health
}

// IndicatorFunc adapts a function to Indicator.
type IndicatorFunc struct {
	ID string
	Fn func(ctx context.Context) Health
}

func (f IndicatorFunc) Name() string { return f.ID }

func (f IndicatorFunc) Check(ctx context.Context) Health { return f.Fn(ctx) }

// CustomIndicator always reports UP.
func CustomIndicator() Indicator {
	return IndicatorFunc{ID: "custom", Fn: func(context.Context) Health {
		return Up(map[string]any{"Service": "Good!"})
	}}
}

// PingIndicator reports UP when ping succeeds.
func PingIndicator(name string, ping func(ctx context.Context) error) Indicator {
	return IndicatorFunc{ID: name, Fn: func(ctx context.Context) Health {
		if err := ping(ctx); err != nil {
			return Down(err)
		}
		return Up(nil)
	}}
}

// RedisIndicator checks a go-redis client with PING.
func RedisIndicator(client *redis.Client) Indicator {
	return PingIndicator("redis", func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
}

// Report is the aggregated health document.
type Report struct {
	Status     string            `json:"status"`
	Components map[string]Health `json:"components,omitempty"`
}

// Aggregate runs every indicator concurrently, each bounded by timeout. The
// report is UP only when every component is UP.
func Aggregate(ctx context.Context, timeout time.Duration, indicators ...Indicator) Report {
	rep := Report{Status: StatusUp, Components: make(map[string]Health, len(indicators))}
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, ind := range indicators {
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(gctx, timeout)
			defer cancel()
			h := ind.Check(cctx)
			if h.Status == StatusUp && cctx.Err() != nil {
				h = Down(fmt.Errorf("check timed out: %w", cctx.Err()))
			}
			mu.Lock()
			rep.Components[ind.Name()] = h
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	for _, h := range rep.Components {
		if h.Status != StatusUp {
			rep.Status = StatusDown
		}
	}
	return rep
}

// HealthHandler serves the aggregated report: 200 when UP, 503 otherwise.
func HealthHandler(timeout time.Duration, indicators ...Indicator) gin.HandlerFunc {
	return func(c *gin.Context) {
		rep := Aggregate(c.Request.Context(), timeout, indicators...)
		code := http.StatusOK
		if rep.Status != StatusUp {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, rep)
	}
}
