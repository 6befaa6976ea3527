package apihttp

import (
	"errors"
	"net/http"

	"galaxia/internal/catalog"
	"galaxia/internal/config/loader"
	"galaxia/internal/insights"
	"galaxia/internal/logger"
	"galaxia/internal/orders"
	"galaxia/internal/reports"
	"galaxia/internal/store"
	"galaxia/internal/tenant"

	"github.com/gin-gonic/gin"
)

// Router mounts the API surface on a gin group.
type Router struct {
	Catalog     *catalog.Service
	Orders      *orders.Service
	Insights    *insights.Service
	Reports     *reports.Service
	Store       store.Store
	Resolver    *tenant.Resolver
	Settings    *loader.AssistantLoader
	SeedFixture string
}

// Register wires every route. Setup endpoints stay outside the tenant
// middleware so a fresh install can bootstrap itself.
func (r *Router) Register(group *gin.RouterGroup) {
	group.GET("/setup", r.setupStatus)
	group.POST("/setup", r.runSetup)

	scoped := group.Group("", tenantMiddleware(r.Resolver))
	{
		scoped.GET("/products", r.listProducts)
		scoped.POST("/products", r.createProduct)
		scoped.POST("/products/preview-price", r.previewPrice)
		scoped.GET("/products/:id", r.getProduct)
		scoped.PUT("/products/:id", r.updateProduct)
		scoped.DELETE("/products/:id", r.deleteProduct)

		scoped.GET("/platforms", r.listPlatforms)
		scoped.POST("/platforms", r.createPlatform)

		scoped.GET("/orders", r.listOrders)
		scoped.POST("/orders", r.createOrder)
		scoped.GET("/orders/:id", r.getOrder)
		scoped.PUT("/orders/:id", r.updateOrder)
		scoped.DELETE("/orders/:id", r.deleteOrder)
		scoped.POST("/orders/:id/replicate", r.replicateOrder)

		scoped.GET("/assistant/insights", r.getInsights)
		scoped.GET("/assistant/insights/history", r.insightsHistory)
		scoped.GET("/reports/summary", r.reportsSummary)
	}
}

func tenantID(c *gin.Context) string {
	id, _ := tenant.IDFromContext(c.Request.Context())
	return id
}

// respondError maps domain errors onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, catalog.ErrInvalidInput),
		errors.Is(err, orders.ErrInvalidInput),
		errors.Is(err, orders.ErrProductUnavailable):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, tenant.ErrNoTenant):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		logger.Errorf("%s %s falhou: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erro interno"})
	}
}
