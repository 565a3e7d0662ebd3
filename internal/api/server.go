// Package api assembles the HTTP server around the engine service.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecotrack/ecotrack-backend/internal/api/handlers"
	"github.com/ecotrack/ecotrack-backend/internal/api/middleware"
	"github.com/ecotrack/ecotrack-backend/internal/application/service"
)

// Config holds API server configuration.
type Config struct {
	Port           int
	AllowedOrigins []string
}

// DefaultConfig returns sensible defaults for the API server.
func DefaultConfig() Config {
	return Config{
		Port:           8080,
		AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
	}
}

// Server is the HTTP API server.
type Server struct {
	config     Config
	router     *gin.Engine
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates a new API server around the engine.
func NewServer(cfg Config, engine *service.Engine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsCfg.AllowedOrigins = cfg.AllowedOrigins
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logging(logger))
	router.Use(middleware.CORS(corsCfg))

	s := &Server{
		config: cfg,
		router: router,
		logger: logger,
	}

	s.setupRoutes(engine)
	return s
}

// setupRoutes configures all API routes.
func (s *Server) setupRoutes(engine *service.Engine) {
	s.router.GET("/health", handlers.Health)

	api := s.router.Group("/api")

	txHandler := handlers.NewTransactionsHandler(engine)
	api.POST("/transactions/calculate-carbon", txHandler.CalculateCarbon)
	api.POST("/users/:id/transactions/import", txHandler.Import)

	usersHandler := handlers.NewUsersHandler(engine)
	api.GET("/users/:id/footprint", usersHandler.Footprint)
	api.GET("/users/:id/eco-points", usersHandler.EcoPoints)
	api.GET("/users/:id/garden", usersHandler.Garden)
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting API server", "addr", addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down API server")

	if s.httpServer == nil {
		return nil
	}

	return s.httpServer.Shutdown(ctx)
}

// Router returns the gin engine for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}
