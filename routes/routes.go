package routes

import (
	"github.com/crystalpine/devops-lab/config"
	"github.com/crystalpine/devops-lab/controllers"
	"github.com/crystalpine/devops-lab/middleware"
	"github.com/crystalpine/devops-lab/web"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with middleware and all routes
func NewRouter(cfg config.Config, health *controllers.HealthController) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.RequestID())

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:   []string{middleware.RequestIDHeader},
	}))

	SetupRoutes(router, cfg, health)
	return router
}

// SetupRoutes registers the status routes and the root page
func SetupRoutes(router *gin.Engine, cfg config.Config, health *controllers.HealthController) {
	// Payloads are built per request
	api := router.Group("", middleware.NoStore())
	{
		api.GET("/healthz", health.Healthz)
		api.GET("/version", health.Version)
		api.GET("/status", health.Status)
	}

	// Root: dashboard or JSON greeting
	switch cfg.RootMode {
	case config.RootModeJSON:
		router.GET("/", health.Greeting)
	default:
		router.SetHTMLTemplate(web.Templates())
		router.GET("/", health.Dashboard)
	}
}
