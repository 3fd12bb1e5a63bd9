package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reignofvision/agency-api/internal/platform/config"
)

// SiteHandler serves site-wide presentation settings. The page layer
// reads these once per render instead of carrying ambient global state.
type SiteHandler struct {
	cfg config.SiteConfig
}

// NewSiteHandler creates a new site settings handler.
func NewSiteHandler(cfg config.SiteConfig) *SiteHandler {
	return &SiteHandler{cfg: cfg}
}

// SiteResponse is the HTTP representation of site settings.
type SiteResponse struct {
	Theme string `json:"theme"`
}

// GetSite handles GET /api/site.
func (h *SiteHandler) GetSite(c *gin.Context) {
	c.JSON(http.StatusOK, SiteResponse{
		Theme: h.cfg.Theme,
	})
}

// RegisterSiteRoutes registers site settings routes on the given router group.
func (h *SiteHandler) RegisterSiteRoutes(rg *gin.RouterGroup) {
	rg.GET("/site", h.GetSite)
}
