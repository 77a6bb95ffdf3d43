package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sweetshop-api/dto"
	"github.com/sweetshop-api/services"
)

var orderService = services.NewOrderService()

// ListOrders returns orders with nested items and sweets.
// Admin sees every order, regular users only their own.
func ListOrders(c *gin.Context) {
	userID, isAdmin, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	orders, err := orderService.ListOrders(userID, isAdmin)
	if err != nil {
		respondError(c, err, "Failed to fetch orders")
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GetOrder returns a single order with its items. Owner or admin.
func GetOrder(c *gin.Context) {
	userID, isAdmin, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	order, err := orderService.GetOrderDetail(c.Param("id"), userID, isAdmin)
	if err != nil {
		respondError(c, err, "Failed to fetch order")
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

// CreateOrder places a new order for the authenticated user. The
// user_id on the order always comes from the session, never the payload.
func CreateOrder(c *gin.Context) {
	userID, _, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	order, err := orderService.PlaceOrder(userID, req)
	if err != nil {
		respondError(c, err, "Failed to create order")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": order})
}

// UpdateOrder changes an order's status. Admin or the owning user.
func UpdateOrder(c *gin.Context) {
	userID, isAdmin, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	order, err := orderService.UpdateStatus(c.Param("id"), userID, isAdmin, req.Status)
	if err != nil {
		respondError(c, err, "Failed to update order")
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}
