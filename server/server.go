// Package server exposes the casino engine over HTTP. Handlers stay thin:
// they bind the request, call the matching service operation and translate
// domain errors into status codes. All rules live in the domain layer.
package server

import (
	"context"
	"net/http"
	"time"

	"casino/domain/interfaces"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Server wraps the HTTP surface of the casino engine
type Server struct {
	casinoService interfaces.CasinoService
	userService   interfaces.UserService
	httpServer    *http.Server
}

// New creates a server with its routes registered
func New(addr string, casinoService interfaces.CasinoService, userService interfaces.UserService) *Server {
	s := &Server{
		casinoService: casinoService,
		userService:   userService,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	s.registerRoutes(router)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) registerRoutes(router *gin.Engine) {
	router.GET("/healthz", s.handleHealth)

	api := router.Group("/api")
	{
		api.POST("/casino/:game", s.handlePlayGame)

		api.POST("/users", s.handleCreateUser)
		api.GET("/users/:id", s.handleGetUser)
		api.GET("/users/:id/profile", s.handleGetProfile)
		api.GET("/users/:id/limits", s.handleGetDailyLimit)
		api.GET("/users/:id/history", s.handleGetHistory)
	}
}

// Start begins serving HTTP requests and blocks until the server stops
func (s *Server) Start() error {
	log.WithFields(log.Fields{
		"addr": s.httpServer.Addr,
	}).Info("Starting HTTP server")

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	log.Info("Shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
