package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"apparel-backend/models"
	"apparel-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orders store.OrderStore
	carts  store.CartStore
}

func NewOrderHandler(orders store.OrderStore, carts store.CartStore) *OrderHandler {
	return &OrderHandler{orders: orders, carts: carts}
}

// CreateOrder snapshots the submitted items and total verbatim; prices
// and totals are not recomputed against the product records. The cart
// clear is a second independent write with no compensation if it fails.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	user := currentUser(c)

	var input models.OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	order := models.Order{
		ID:              uuid.NewString(),
		UserID:          user.ID,
		Items:           input.Items,
		TotalAmount:     input.TotalAmount,
		ShippingAddress: input.ShippingAddress,
		Status:          "pending",
		PaymentStatus:   "pending",
		CreatedAt:       time.Now().UTC(),
	}
	if err := h.orders.Insert(c.Request.Context(), &order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order: " + err.Error()})
		return
	}

	if err := h.carts.Clear(c.Request.Context(), user.ID); err != nil {
		log.Printf("order %s created but cart clear failed for user %s: %v", order.ID, user.ID, err)
	}

	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	user := currentUser(c)

	orders, err := h.orders.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) ListAllOrders(c *gin.Context) {
	orders, err := h.orders.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus sets status (required) and payment_status (optional)
// from query parameters. Any value is accepted; there is no transition
// validation.
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing status parameter"})
		return
	}
	paymentStatus := c.Query("payment_status")

	err := h.orders.UpdateStatus(c.Request.Context(), c.Param("id"), status, paymentStatus)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
}
