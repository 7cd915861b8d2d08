package handler

import (
	"bufio"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reactivedemo/demo/backend/go-services/internal/project"
	"github.com/reactivedemo/demo/backend/go-services/internal/project/service"
	"github.com/stretchr/testify/require"
)

func newEngine(delay time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	RegisterProjectRoutes(g, service.NewMemoryService(), delay)
	return g
}

func do(g *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	g.ServeHTTP(w, req)
	return w
}

func TestProjectHandler_CRUD(t *testing.T) {
	g := newEngine(time.Millisecond)

	// create
	w := do(g, http.MethodPost, "/api/projects", `{"name":"demo","description":"first","id":"ignored","createdAt":"1999-01-01T00:00:00Z"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created project.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	require.NotEqual(t, "ignored", created.ID)
	require.Greater(t, created.CreatedAt.Year(), 1999)

	// get
	w = do(g, http.MethodGet, "/api/projects/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	// list
	w = do(g, http.MethodGet, "/api/projects", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []project.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)

	// update
	w = do(g, http.MethodPut, "/api/projects/"+created.ID, `{"name":"renamed","description":"second"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated project.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, created.ID, updated.ID)
	require.True(t, created.CreatedAt.Equal(updated.CreatedAt))
	require.Equal(t, "renamed", updated.Name)

	// delete twice
	w = do(g, http.MethodDelete, "/api/projects/"+created.ID, "")
	require.Equal(t, http.StatusNoContent, w.Code)
	w = do(g, http.MethodDelete, "/api/projects/"+created.ID, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectHandler_EmptyListIsArray(t *testing.T) {
	g := newEngine(time.Millisecond)
	w := do(g, http.MethodGet, "/api/projects", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())
}

func TestProjectHandler_ValidationMessages(t *testing.T) {
	g := newEngine(time.Millisecond)
	w := do(g, http.MethodPost, "/api/projects", `{"name":""}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var msgs []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msgs))
	require.Contains(t, msgs, "project.name must not be blank")
	require.Contains(t, msgs, "project.name length must be between 1 and 30")

	w = do(g, http.MethodPost, "/api/projects", `{"name":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectHandler_NotFound(t *testing.T) {
	g := newEngine(time.Millisecond)

	w := do(g, http.MethodGet, "/api/projects/missing", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = do(g, http.MethodPut, "/api/projects/missing", `{"name":"ghost"}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = do(g, http.MethodPut, "/api/projects/missing", `{"name":""}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = do(g, http.MethodGet, "/api/projects", "")
	require.JSONEq(t, `[]`, w.Body.String(), "update of a missing id must not create it")
}

func TestProjectHandler_StreamNDJSON(t *testing.T) {
	const delay = 25 * time.Millisecond
	g := newEngine(delay)
	for _, n := range []string{"a", "b", "c"} {
		require.Equal(t, http.StatusCreated, do(g, http.MethodPost, "/api/projects", `{"name":"`+n+`"}`).Code)
	}

	start := time.Now()
	w := do(g, http.MethodGet, "/api/projects/stream", "")
	elapsed := time.Since(start)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/x-ndjson", w.Header().Get("Content-Type"))
	require.GreaterOrEqual(t, elapsed, 3*delay)
	require.True(t, w.Flushed)

	var names []string
	sc := bufio.NewScanner(strings.NewReader(w.Body.String()))
	for sc.Scan() {
		var p project.Project
		require.NoError(t, json.Unmarshal(sc.Bytes(), &p))
		names = append(names, p.Name)
	}
	require.Equal(t, []string{"a", "b", "c"}, names)
}

func TestProjectHandler_StreamSSE(t *testing.T) {
	g := newEngine(time.Millisecond)
	require.Equal(t, http.StatusCreated, do(g, http.MethodPost, "/api/projects", `{"name":"a"}`).Code)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/projects/stream", nil)
	req.Header.Set("Accept", "text/event-stream")
	g.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "event:project")
	require.Contains(t, w.Body.String(), `"name":"a"`)
}

func TestProjectHandler_StreamEmpty(t *testing.T) {
	g := newEngine(time.Millisecond)
	w := do(g, http.MethodGet, "/api/projects/stream", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, w.Body.String())
}
