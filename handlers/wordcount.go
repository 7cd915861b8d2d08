package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/reactivedemo/demo/backend/go-services/internal/wordcount"
	"github.com/reactivedemo/demo/backend/go-services/pkg/metrics"
)

// DefaultWordCountLimit is used when the limit query parameter is absent.
const DefaultWordCountLimit = 2

// RegisterWordCountRoutes registers GET /word-count/v1, /v2 and /v3. Each
// ranks wordcount.Story with its own strategy; all return the same entries.
func RegisterWordCountRoutes(r *gin.Engine) {
	for _, s := range wordcount.Strategies {
		r.GET("/word-count/"+string(s), WordCount(s))
	}
}

// WordCount returns a handler ranking the story with strategy s.
func WordCount(s wordcount.Strategy) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := DefaultWordCountLimit
		if raw, ok := c.GetQuery("limit"); ok {
			n, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
				return
			}
			limit = n
		}

		ranked, err := wordcount.Rank(wordcount.Story, limit, s)
		if err != nil {
			if errors.Is(err, wordcount.ErrInvalidLimit) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		metrics.WordCountRequests.WithLabelValues(string(s)).Inc()
		c.JSON(http.StatusOK, ranked)
	}
}
