package apihttp

import (
	"net/http"
	"time"

	"galaxia/internal/orders"

	"github.com/gin-gonic/gin"
)

type orderItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int64  `json:"quantity" binding:"required,min=1"`
}

type orderRequest struct {
	PlatformID    string             `json:"platformId" binding:"required"`
	PaymentMethod string             `json:"paymentMethod" binding:"required"`
	Items         []orderItemRequest `json:"items" binding:"required"`
	Channel       string             `json:"channel"`
	CustomerName  string             `json:"customerName"`
	Notes         string             `json:"notes"`
}

type orderPatchRequest struct {
	Status        *string `json:"status"`
	PaymentMethod *string `json:"paymentMethod"`
	CustomerName  *string `json:"customerName"`
	Notes         *string `json:"notes"`
}

func (r *Router) listOrders(c *gin.Context) {
	var day *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "data inválida, use AAAA-MM-DD"})
			return
		}
		day = &parsed
	}
	result, err := r.Orders.List(c.Request.Context(), tenantID(c), day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (r *Router) createOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "corpo da requisição inválido"})
		return
	}
	items := make([]orders.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, orders.ItemInput{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	order, err := r.Orders.Create(c.Request.Context(), tenantID(c), orders.CreateInput{
		PlatformID:    req.PlatformID,
		PaymentMethod: req.PaymentMethod,
		Items:         items,
		Channel:       req.Channel,
		CustomerName:  req.CustomerName,
		Notes:         req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (r *Router) getOrder(c *gin.Context) {
	order, err := r.Orders.Get(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (r *Router) updateOrder(c *gin.Context) {
	var req orderPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "corpo da requisição inválido"})
		return
	}
	order, err := r.Orders.Update(c.Request.Context(), tenantID(c), c.Param("id"), orders.UpdateInput{
		Status:        req.Status,
		PaymentMethod: req.PaymentMethod,
		CustomerName:  req.CustomerName,
		Notes:         req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (r *Router) deleteOrder(c *gin.Context) {
	result, err := r.Orders.Delete(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"canceled": result.Canceled, "message": result.Message})
}

// replicateOrder re-issues a past order at today's prices.
func (r *Router) replicateOrder(c *gin.Context) {
	order, err := r.Orders.Replicate(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}
