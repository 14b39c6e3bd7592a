package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Topethedop/stock-dashboard/internal/api/handlers"
	"github.com/Topethedop/stock-dashboard/internal/api/middleware"
	"github.com/Topethedop/stock-dashboard/internal/api/response"
	"github.com/Topethedop/stock-dashboard/internal/api/web"
	"github.com/Topethedop/stock-dashboard/internal/pkg/config"
	"github.com/Topethedop/stock-dashboard/internal/pkg/logger"
)

// Router holds all dependencies for API routing
type Router struct {
	engine           *gin.Engine
	config           *config.Config
	healthHandler    *handlers.HealthHandler
	dashboardHandler *handlers.DashboardHandler
}

// NewRouter creates a new API router with all dependencies
func NewRouter(cfg *config.Config, service handlers.DashboardService, version string) (*Router, error) {
	gin.SetMode(cfg.Server.Mode)

	engine := gin.New()

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	engine.SetHTMLTemplate(tmpl)

	router := &Router{
		engine:           engine,
		config:           cfg,
		healthHandler:    handlers.NewHealthHandler(version),
		dashboardHandler: handlers.NewDashboardHandler(service),
	}

	router.setupMiddlewares()
	router.setupRoutes()

	return router, nil
}

// setupMiddlewares configures all global middlewares
func (r *Router) setupMiddlewares() {
	// Recovery must be first
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())

	var accessPath string
	if r.config.Logging.FileEnabled {
		accessPath = r.config.Logging.FilePath
	}
	accessLogger := logger.NewAccessLogger(
		accessPath,
		r.config.Logging.RotationSize,
		r.config.Logging.RetentionDays,
	)
	r.engine.Use(middleware.Logging(middleware.LoggingConfig{
		AccessLogger: &accessLogger,
		SkipPaths:    []string{"/health"},
		SlowRequest:  2 * time.Second,
	}))

	r.engine.Use(middleware.CORS(middleware.DefaultCORSConfig(r.config.Server.AllowedOrigins)))
}

// setupRoutes configures all routes
func (r *Router) setupRoutes() {
	r.engine.GET("/health", r.healthHandler.Health)
	r.engine.GET("/", r.dashboardHandler.Index)

	api := r.engine.Group("/api")
	{
		api.GET("/stocks", r.dashboardHandler.Stocks)
		api.POST("/add_ticker", r.dashboardHandler.AddTicker)
	}

	r.engine.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Route not found")
	})
}

// Engine returns the underlying Gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
