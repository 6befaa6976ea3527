package apihttp

import (
	"net/http"
	"strconv"
	"time"

	"galaxia/internal/reports"

	"github.com/gin-gonic/gin"
)

func (r *Router) getInsights(c *gin.Context) {
	result, err := r.Insights.Generate(c.Request.Context(), tenantID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (r *Router) insightsHistory(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit deve estar entre 1 e 100"})
			return
		}
		limit = parsed
	}
	history, err := r.Insights.History(c.Request.Context(), tenantID(c), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// reportsSummary aggregates orders for the dashboard. Accepts optional
// from/to (AAAA-MM-DD) and status query parameters.
func (r *Router) reportsSummary(c *gin.Context) {
	var query reports.Query
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from inválido, use AAAA-MM-DD"})
			return
		}
		query.From = &parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to inválido, use AAAA-MM-DD"})
			return
		}
		query.To = &parsed
	}
	query.Status = c.Query("status")

	result, err := r.Reports.Summarize(c.Request.Context(), tenantID(c), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
