package controllers

import (
	"log"
	"net/http"

	"github.com/crystalpine/devops-lab/dto"
	"github.com/crystalpine/devops-lab/middleware"
	"github.com/crystalpine/devops-lab/services"
	"github.com/crystalpine/devops-lab/web"
	"github.com/gin-gonic/gin"
)

const (
	dashboardTitle    = "CrystalPine DevOps Lab"
	dashboardSubtitle = "Self-hosted CI/CD demo on AlwaysFree server"
	greetingMessage   = "CrystalPine DevOps Lab API"
)

// HealthController serves the liveness, version, status and root routes
type HealthController struct {
	appName  string
	versions *services.VersionService
	statuses *services.StatusService
}

// NewHealthController creates a new health controller
func NewHealthController(appName string, versions *services.VersionService, statuses *services.StatusService) *HealthController {
	return &HealthController{
		appName:  appName,
		versions: versions,
		statuses: statuses,
	}
}

// Healthz is the liveness probe
func (h *HealthController) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: dto.StatusOK})
}

// Version returns the build metadata
func (h *HealthController) Version(c *gin.Context) {
	c.JSON(http.StatusOK, h.versions.GetVersion())
}

// Status returns the aggregated status
func (h *HealthController) Status(c *gin.Context) {
	status, err := h.statuses.GetStatus(c.Request.Context())
	if err != nil {
		log.Printf("❌ [%s] status failed: %v", middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to get status: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, status)
}

// Dashboard renders the HTML page that polls /status
func (h *HealthController) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, web.DashboardTemplate, web.DashboardData{
		Title:    dashboardTitle,
		Subtitle: dashboardSubtitle,
	})
}

// Greeting is the JSON alternative to the dashboard
func (h *HealthController) Greeting(c *gin.Context) {
	c.JSON(http.StatusOK, dto.GreetingResponse{
		Message: greetingMessage,
		Service: h.appName,
	})
}
