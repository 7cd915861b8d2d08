package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the service.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>demo-service — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// OpenAPI document for the projects resource, word-count and actuator endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "demo-service", "version": "v0.1.0" },
  "components": {
    "schemas": {
      "Project": {"type":"object","properties":{"id":{"type":"string","readOnly":true},"name":{"type":"string","minLength":1,"maxLength":30},"description":{"type":"string","maxLength":100},"createdAt":{"type":"string","format":"date-time","readOnly":true}},"required":["name"]},
      "WordCount": {"type":"object","properties":{"word":{"type":"string"},"count":{"type":"integer"}}}
    }
  },
  "paths": {
    "/hello": { "get": { "summary": "Greeting", "responses": { "200": { "description": "Hello" } } } },
    "/word-count/v1": { "get": { "summary": "Top-N words (grouped by count)", "parameters": [{"name":"limit","in":"query","schema":{"type":"integer","default":2,"minimum":0}}], "responses": { "200": { "description": "ranked words" }, "400": { "description": "invalid limit" } } } },
    "/word-count/v2": { "get": { "summary": "Top-N words (priority queue)", "parameters": [{"name":"limit","in":"query","schema":{"type":"integer","default":2,"minimum":0}}], "responses": { "200": { "description": "ranked words" }, "400": { "description": "invalid limit" } } } },
    "/word-count/v3": { "get": { "summary": "Top-N words (iterator pipeline)", "parameters": [{"name":"limit","in":"query","schema":{"type":"integer","default":2,"minimum":0}}], "responses": { "200": { "description": "ranked words" }, "400": { "description": "invalid limit" } } } },
    "/api/projects": {
      "get": { "summary": "List projects", "responses": { "200": { "description": "all projects" } } },
      "post": { "summary": "Create project", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/Project"}}}}, "responses": { "201": { "description": "created" }, "400": { "description": "list of validation messages" } } }
    },
    "/api/projects/stream": { "get": { "summary": "Stream projects one per second (ndjson or text/event-stream)", "responses": { "200": { "description": "incremental projects" } } } },
    "/api/projects/{id}": {
      "get": { "summary": "Get project", "responses": { "200": { "description": "project" }, "404": { "description": "not found" } } },
      "put": { "summary": "Update name and description", "responses": { "200": { "description": "updated" }, "400": { "description": "list of validation messages" }, "404": { "description": "not found" } } },
      "delete": { "summary": "Delete project", "responses": { "204": { "description": "deleted" }, "404": { "description": "not found" } } }
    },
    "/actuator/health": { "get": { "summary": "Aggregated health", "responses": { "200": { "description": "UP" }, "503": { "description": "DOWN" } } } },
    "/actuator/info": { "get": { "summary": "Application info", "responses": { "200": { "description": "info" } } } }
  }
}`
