package apihttp

import (
	"net/http"

	"galaxia/internal/catalog"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type productRequest struct {
	Name          string          `json:"name" binding:"required"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	EstimatedCost decimal.Decimal `json:"estimatedCost"`
	Active        *bool           `json:"active"`
}

type productPatchRequest struct {
	Name          *string          `json:"name"`
	SalePrice     *decimal.Decimal `json:"salePrice"`
	EstimatedCost *decimal.Decimal `json:"estimatedCost"`
	Active        *bool            `json:"active"`
}

func (r *Router) listProducts(c *gin.Context) {
	products, err := r.Catalog.ListProducts(c.Request.Context(), tenantID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (r *Router) createProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "corpo da requisição inválido"})
		return
	}
	product, err := r.Catalog.CreateProduct(c.Request.Context(), tenantID(c), catalog.ProductInput{
		Name:          req.Name,
		SalePrice:     req.SalePrice,
		EstimatedCost: req.EstimatedCost,
		Active:        req.Active,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (r *Router) getProduct(c *gin.Context) {
	product, err := r.Catalog.GetProduct(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (r *Router) updateProduct(c *gin.Context) {
	var req productPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "corpo da requisição inválido"})
		return
	}
	product, err := r.Catalog.UpdateProduct(c.Request.Context(), tenantID(c), c.Param("id"), catalog.ProductUpdate{
		Name:          req.Name,
		SalePrice:     req.SalePrice,
		EstimatedCost: req.EstimatedCost,
		Active:        req.Active,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (r *Router) deleteProduct(c *gin.Context) {
	deactivated, err := r.Catalog.DeleteProduct(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if deactivated {
		c.JSON(http.StatusOK, gin.H{
			"deleted":     false,
			"deactivated": true,
			"message":     "Produto tem pedidos vinculados e foi desativado",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true, "deactivated": false})
}

type previewPriceRequest struct {
	EstimatedCost decimal.Decimal  `json:"estimatedCost"`
	FeePercent    *decimal.Decimal `json:"feePercent"`
	TargetMargin  *decimal.Decimal `json:"targetMargin"`
}

// previewPrice answers "quanto cobrar?" before the product is saved.
// Fee and target margin fall back to the assistant settings.
func (r *Router) previewPrice(c *gin.Context) {
	var req previewPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "corpo da requisição inválido"})
		return
	}
	if req.EstimatedCost.Sign() <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "custo estimado deve ser maior que zero"})
		return
	}
	settings := r.Settings.Snapshot()
	fee := settings.DefaultFeePercent
	if req.FeePercent != nil {
		fee = *req.FeePercent
	}
	margin := settings.TargetMarginPercent
	if req.TargetMargin != nil {
		margin = *req.TargetMargin
	}
	suggested := r.Catalog.PreviewPrice(req.EstimatedCost, fee, margin)
	c.JSON(http.StatusOK, gin.H{
		"suggestedPrice": suggested,
		"feePercent":     fee,
		"targetMargin":   margin,
	})
}
