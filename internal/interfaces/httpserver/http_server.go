package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/loorthu/vexa/internal/config"
	"github.com/loorthu/vexa/internal/domain/dna"
	middleware "github.com/loorthu/vexa/internal/interfaces/httpserver/middlewares"
	v1 "github.com/loorthu/vexa/internal/interfaces/httpserver/routes/v1"
)

type HTTPServer struct {
	engine      *gin.Engine
	v1Route     *v1.V1Route
	integration *dna.Integration
	config      *config.Config
	logger      zerolog.Logger
}

func NewHTTPServer(
	v1Route *v1.V1Route,
	integration *dna.Integration,
	cfg *config.Config,
	logger zerolog.Logger,
) *HTTPServer {
	if config.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	server := HTTPServer{
		engine:      gin.New(),
		v1Route:     v1Route,
		integration: integration,
		config:      cfg,
		logger:      logger,
	}
	server.engine.Use(gin.Recovery())
	server.engine.Use(middleware.RequestID())
	server.engine.Use(middleware.TracingMiddleware(cfg.ServiceName))
	server.engine.Use(middleware.LoggingMiddleware(logger))
	server.engine.Use(middleware.MetricsMiddleware())
	server.engine.Use(middleware.CORSMiddleware())

	server.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Ready even in degraded mode: the gateway serves fallbacks when the
	// DNA backend never bound. The flag is advisory for operators.
	server.engine.GET("/readyz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready", "dna_backend": server.integration.Available()})
	})

	return &server
}

func (httpServer *HTTPServer) Run() error {
	root := httpServer.engine.Group("/")
	httpServer.v1Route.RegisterRouter(root)

	if err := httpServer.engine.Run(fmt.Sprintf(":%d", httpServer.config.HTTPPort)); err != nil {
		return err
	}
	return nil
}
