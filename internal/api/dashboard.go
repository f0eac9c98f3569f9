package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chefboard/backend/internal/middleware"
	"github.com/chefboard/backend/internal/service"
)

// DashboardHandler handles dashboard-related requests
type DashboardHandler struct {
	dashboardService service.IDashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService service.IDashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// RegisterRoutes registers the dashboard routes
func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("", h.GetDashboard)
		dashboard.GET("/stats", h.GetStats)
		dashboard.GET("/chefs", h.GetFeaturedChefs)
		dashboard.GET("/popular", h.GetPopularRecipes)
	}
}

// GetDashboard returns the complete dashboard for the current user
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	vm, err := h.dashboardService.GetDashboard(c.Request.Context(), userID, time.Now())
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, vm)
}

// GetStats returns dashboard statistics for the current user
func (h *DashboardHandler) GetStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stats, err := h.dashboardService.GetStats(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetFeaturedChefs returns the top-ranked chefs
func (h *DashboardHandler) GetFeaturedChefs(c *gin.Context) {
	chefs, err := h.dashboardService.GetFeaturedChefs(c.Request.Context())
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load featured chefs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"chefs": chefs})
}

// GetPopularRecipes returns the best-rated recipes from the feed
func (h *DashboardHandler) GetPopularRecipes(c *gin.Context) {
	recipes, err := h.dashboardService.GetPopularRecipes(c.Request.Context())
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load popular recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// currentUserID pulls the authenticated user id set by the auth
// middleware, writing a 401 response when it is absent.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
	}
	return userID, ok
}
