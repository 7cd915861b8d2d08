package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestSwaggerEndpoints(t *testing.T) {
	g := gin.New()
	RegisterSwagger(g)

	req := httptest.NewRequest("GET", "/swagger/index.html", nil)
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)
	require.Contains(t, w.Body.String(), "swagger-ui")

	req2 := httptest.NewRequest("GET", "/swagger/doc.json", nil)
	w2 := httptest.NewRecorder()
	g.ServeHTTP(w2, req2)
	require.Equal(t, 200, w2.Code)
	require.Contains(t, w2.Body.String(), "openapi")
	require.True(t, json.Valid(w2.Body.Bytes()), "doc.json must be valid JSON")
	for _, path := range []string{"/api/projects", "/api/projects/stream", "/api/projects/{id}", "/word-count/v1", "/actuator/health"} {
		require.Contains(t, w2.Body.String(), `"`+path+`"`)
	}
}
