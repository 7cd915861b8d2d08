package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterHello registers GET /hello, a plain-text greeting.
func RegisterHello(r *gin.Engine) {
	r.GET("/hello", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello")
	})
}
