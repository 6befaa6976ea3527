package apihttp

import (
	"net/http"

	"galaxia/internal/seed"

	"github.com/gin-gonic/gin"
)

func (r *Router) setupStatus(c *gin.Context) {
	status, err := seed.Status(c.Request.Context(), r.Store)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// runSetup seeds the database with the demo fixture. Safe to call
// twice; an already configured install is reported as such.
func (r *Router) runSetup(c *gin.Context) {
	stats, already, err := seed.Run(c.Request.Context(), r.Store, r.SeedFixture)
	if err != nil {
		respondError(c, err)
		return
	}
	if already {
		c.JSON(http.StatusOK, gin.H{
			"seeded":  false,
			"message": "Sistema já configurado",
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"seeded":    true,
		"message":   "Configuração inicial concluída",
		"tenant":    stats.Tenant,
		"platforms": stats.Platforms,
		"products":  stats.Products,
	})
}
