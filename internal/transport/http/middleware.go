package apihttp

import (
	"net/http"
	"time"

	"galaxia/internal/logger"
	"galaxia/internal/tenant"

	"github.com/gin-gonic/gin"
)

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Infof("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start).Round(time.Millisecond))
	}
}

// tenantMiddleware resolve o tenant ativo e instala o ID no contexto da requisição.
func tenantMiddleware(resolver *tenant.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := resolver.Resolve(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "nenhum estabelecimento configurado. Execute o setup inicial."})
			return
		}
		c.Request = c.Request.WithContext(tenant.WithID(c.Request.Context(), id))
		c.Next()
	}
}
