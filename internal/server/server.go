package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kabarettimpro/theater-api/internal/config"
	"github.com/kabarettimpro/theater-api/internal/handlers"
	"github.com/kabarettimpro/theater-api/internal/logger"
	"github.com/kabarettimpro/theater-api/internal/middleware/requestlog"
	"github.com/kabarettimpro/theater-api/internal/storage/mongodb"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	config     *config.Config
	store      *mongodb.Container // nil when the store connection failed at startup
}

// New creates a new server instance. A nil store is tolerated: content
// endpoints then report the database as unavailable while the diagnostic
// endpoint keeps answering 200.
func New(cfg *config.Config, store *mongodb.Container) *Server {
	return &Server{
		config: cfg,
		store:  store,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	router := s.setupRouter()

	s.httpServer = &http.Server{
		Addr:    ":" + s.config.Server.Port,
		Handler: router,

		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Get().Info("Starting HTTP server", "port", s.config.Server.Port)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	logger.Get().Info("Shutting down HTTP server...")

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}

	return nil
}

// Router builds the configured router. Exposed for handler-level tests.
func (s *Server) Router() *gin.Engine {
	return s.setupRouter()
}

// setupRouter configures the HTTP router with middleware and routes
func (s *Server) setupRouter() *gin.Engine {
	if s.config.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestlog.New())

	// Fully open CORS. Credentials cannot be combined with a wildcard
	// Access-Control-Allow-Origin header, so every origin is echoed back.
	corsConfig := cors.Config{
		AllowMethods:     strings.Split(s.config.CORS.AllowMethods, ","),
		AllowHeaders:     strings.Split(s.config.CORS.AllowHeaders, ","),
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		MaxAge: 12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	var infos mongodb.InfoRepository
	var owners mongodb.OwnerRepository
	var events mongodb.EventRepository
	var lister handlers.CollectionLister
	if s.store != nil {
		infos = s.store.Infos()
		owners = s.store.Owners()
		events = s.store.Events()
		lister = s.store
	}

	contentHandler := handlers.NewContentHandler(infos, owners, events)
	diagnosticHandler := handlers.NewDiagnosticHandler(lister)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Vienna Theatre API running",
		})
	})

	router.GET("/test", diagnosticHandler.Status)

	api := router.Group("/api")
	{
		api.GET("/info", contentHandler.GetInfo)
		api.GET("/owners", contentHandler.GetOwners)
		api.GET("/events", contentHandler.GetEvents)
	}

	return router
}
