package http

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kgsde/graphdb-relay/pkg/adapters/graphdb"
)

// QueryRequest represents a SPARQL query relay request. Format is accepted
// for wire compatibility but never varies the response shape.
type QueryRequest struct {
	Sparql     string `json:"sparql" binding:"required"`
	Format     string `json:"format"`
	Endpoint   string `json:"endpoint"`
	Repository string `json:"repository"`
	Username   string `json:"username"`
	Password   string `json:"password"`
}

// ConnectionRequest represents a connection test request
type ConnectionRequest struct {
	Endpoint   string `json:"endpoint" binding:"required"`
	Repository string `json:"repository" binding:"required"`
	Username   string `json:"username"`
	Password   string `json:"password"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// handleRoot serves the frontend page, or a JSON landing body when no
// static asset is bundled
func (s *Server) handleRoot(c *gin.Context) {
	index := filepath.Join(s.staticDir, "index.html")
	if fileExists(index) {
		c.File(index)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "GraphDB Query Frontend API",
		"docs":    "/docs",
	})
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}

// handleQuery relays a SPARQL query to the store
func (s *Server) handleQuery(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Error("invalid request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}

	results, err := s.relay.ExecuteQuery(c.Request.Context(), req.Sparql, graphdb.QueryOptions{
		Endpoint:   req.Endpoint,
		Repository: req.Repository,
		Username:   req.Username,
		Password:   req.Password,
	})
	if err != nil {
		s.writeRelayError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"results": results,
	})
}

// handleTestConnection probes a store with a fixed test query. Relay
// outcomes always answer HTTP 200 so the frontend can render a failed
// test; only a malformed body is an HTTP error.
func (s *Server) handleTestConnection(c *gin.Context) {
	var req ConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Error("invalid request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}

	result, err := s.relay.TestConnection(c.Request.Context(), graphdb.QueryOptions{
		Endpoint:   req.Endpoint,
		Repository: req.Repository,
		Username:   req.Username,
		Password:   req.Password,
	})
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Connection successful",
		"test_result": result,
	})
}

// handleListRepositories lists the repositories of a store
func (s *Server) handleListRepositories(c *gin.Context) {
	endpoint := c.Query("endpoint")

	repositories, err := s.relay.ListRepositories(c.Request.Context(), endpoint)
	if err != nil {
		s.writeRelayError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"repositories": repositories,
	})
}

// writeRelayError maps the relay error taxonomy onto HTTP statuses: a
// RemoteQueryError mirrors the upstream status, everything else is a 500.
func (s *Server) writeRelayError(c *gin.Context, err error) {
	var remoteErr *graphdb.RemoteQueryError
	if errors.As(err, &remoteErr) {
		c.JSON(remoteErr.StatusCode, ErrorResponse{Detail: remoteErr.Error()})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
