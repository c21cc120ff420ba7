// Package server is the development backend implementing the TrackMaster REST contract.
package server

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/trackmaster/trackmaster/internal/database"
)

// Server provides HTTP handlers for the sprint board backend.
type Server struct {
	engine *gin.Engine
	repo   *database.Repository
	logger *slog.Logger
}

// New constructs the HTTP server with routes and middleware configured.
// accessLog receives one line per request; pass io.Discard to silence it.
func New(repo *database.Repository, logger *slog.Logger, accessLog io.Writer) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if accessLog == nil {
		accessLog = gin.DefaultWriter
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.LoggerWithWriter(accessLog, "/healthz"))

	srv := &Server{
		engine: router,
		repo:   repo,
		logger: logger,
	}

	srv.registerRoutes()
	return srv
}

// Engine exposes the underlying Gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// ServeHTTP lets the server be mounted directly, e.g. in httptest
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

// registerRoutes wires all API handlers together.
func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", s.handleHealth)

	s.engine.GET("/sprints", s.handleListSprints)
	s.engine.GET("/groups/details", s.handleGroupDetails)

	tasks := s.engine.Group("/tasks")
	{
		tasks.GET("", s.handleListTasks)
		tasks.POST("", s.handleCreateTask)
		tasks.PUT(":id", s.handleUpdateTask)
		tasks.DELETE(":id", s.handleDeleteTask)
		tasks.PUT(":id/review", s.handleReviewTask)
	}
}

// handleHealth provides a basic readiness endpoint.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseID converts a path parameter to int with error handling.
func parseID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid identifier"})
		return 0, false
	}
	return id, true
}

// queryID reads a required positive integer query parameter.
func queryID(c *gin.Context, name string) (int, bool) {
	raw, ok := c.GetQuery(name)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " is required"})
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// respondError logs the error and returns a JSON payload.
// Repository errors are mapped onto their HTTP status.
func (s *Server) respondError(c *gin.Context, status int, err error) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, database.ErrTaskLocked):
		status = http.StatusConflict
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
	} else {
		s.logger.Debug("request rejected", slog.String("path", c.FullPath()), slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// respondSuccess writes the payload, or only the status when there is none.
func respondSuccess(c *gin.Context, status int, payload any) {
	if payload == nil {
		c.Status(status)
		return
	}
	c.JSON(status, payload)
}
