package apihttp

import (
	"net/http"

	"galaxia/internal/catalog"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type platformRequest struct {
	Name              string          `json:"name" binding:"required"`
	Type              string          `json:"type" binding:"required"`
	DefaultFeePercent decimal.Decimal `json:"defaultFeePercent"`
	Active            *bool           `json:"active"`
}

func (r *Router) listPlatforms(c *gin.Context) {
	platforms, err := r.Catalog.ListPlatforms(c.Request.Context(), tenantID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, platforms)
}

func (r *Router) createPlatform(c *gin.Context) {
	var req platformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "corpo da requisição inválido"})
		return
	}
	platform, err := r.Catalog.CreatePlatform(c.Request.Context(), tenantID(c), catalog.PlatformInput{
		Name:              req.Name,
		Type:              req.Type,
		DefaultFeePercent: req.DefaultFeePercent,
		Active:            req.Active,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, platform)
}
