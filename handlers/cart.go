package handlers

import (
	"errors"
	"net/http"
	"time"

	"apparel-backend/models"
	"apparel-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	carts store.CartStore
}

func NewCartHandler(carts store.CartStore) *CartHandler {
	return &CartHandler{carts: carts}
}

// GetCart returns the caller's cart, creating an empty one on first
// access.
func (h *CartHandler) GetCart(c *gin.Context) {
	user := currentUser(c)

	cart, err := h.carts.FindByUser(c.Request.Context(), user.ID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart: " + err.Error()})
			return
		}
		newCart := models.Cart{
			ID:        uuid.NewString(),
			UserID:    user.ID,
			Items:     []models.CartItem{},
			UpdatedAt: time.Now().UTC(),
		}
		if err := h.carts.Insert(c.Request.Context(), &newCart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cart: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, newCart)
		return
	}

	c.JSON(http.StatusOK, cart)
}

// AddToCart appends the submitted line. Matching product+size+color
// lines are not merged; duplicates stay as separate entries.
func (h *CartHandler) AddToCart(c *gin.Context) {
	user := currentUser(c)

	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	_, err := h.carts.FindByUser(c.Request.Context(), user.ID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart: " + err.Error()})
			return
		}
		newCart := models.Cart{
			ID:        uuid.NewString(),
			UserID:    user.ID,
			Items:     []models.CartItem{item},
			UpdatedAt: time.Now().UTC(),
		}
		if err := h.carts.Insert(c.Request.Context(), &newCart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cart: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item added to cart"})
		return
	}

	if err := h.carts.AddItem(c.Request.Context(), user.ID, item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item added to cart"})
}

// UpdateCart replaces the whole items list.
func (h *CartHandler) UpdateCart(c *gin.Context) {
	user := currentUser(c)

	var input models.CartUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if err := h.carts.ReplaceItems(c.Request.Context(), user.ID, input.Items); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
}

func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	user := currentUser(c)

	if err := h.carts.RemoveItem(c.Request.Context(), user.ID, c.Param("productId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	user := currentUser(c)

	if err := h.carts.Clear(c.Request.Context(), user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
