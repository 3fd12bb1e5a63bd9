package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reignofvision/agency-api/internal/platform/config"
)

func TestSiteHandler_GetSite(t *testing.T) {
	handler := NewSiteHandler(config.SiteConfig{Theme: "dark"})

	engine := gin.New()
	handler.RegisterSiteRoutes(engine.Group("/api"))

	w := getJSON(t, engine, "/api/site")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"theme":"dark"}`, w.Body.String())
}
