package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reactivedemo/demo/backend/go-services/pkg/logger"
	"github.com/reactivedemo/demo/backend/go-services/pkg/metrics"
	"github.com/redis/go-redis/v9"
)

// RedisRateLimitMiddleware provides a coarse fixed-window limiter shared by
// every replica. Each window gets one INCR counter per client key, allowed up
// to floor(rps*windowSeconds)+burst requests.
func RedisRateLimitMiddleware(client *redis.Client, rps float64, burst int, window time.Duration) gin.HandlerFunc {
	if client == nil {
		return RateLimitMiddleware(rps, burst)
	}
	windowSeconds := int(window.Seconds())
	if windowSeconds <= 0 {
		windowSeconds = 1
	}
	allowedPerWindow := int64(rps*float64(windowSeconds)) + int64(burst)
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		bucket := time.Now().Unix() / int64(windowSeconds)
		redisKey := fmt.Sprintf("rl:%s:%d", ClientIPKey(c), bucket)

		cnt, err := client.Incr(ctx, redisKey).Result()
		if err != nil {
			logger.Errorf("rate limit: redis: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Rate limit check failed"})
			return
		}
		if cnt == 1 {
			_ = client.Expire(ctx, redisKey, time.Duration(windowSeconds+1)*time.Second).Err()
		}
		if cnt > allowedPerWindow {
			c.Header("Retry-After", strconv.Itoa(windowSeconds))
			metrics.RateLimitRejected.WithLabelValues("redis").Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			return
		}
		metrics.RateLimitAllowed.WithLabelValues("redis").Inc()
		c.Next()
	}
}
