package handlers

import (
	"errors"
	"net/http"

	"apparel-backend/models"
	"apparel-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WishlistHandler struct {
	wishlists store.WishlistStore
}

func NewWishlistHandler(wishlists store.WishlistStore) *WishlistHandler {
	return &WishlistHandler{wishlists: wishlists}
}

func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	user := currentUser(c)

	wishlist, err := h.wishlists.FindByUser(c.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, models.Wishlist{UserID: user.ID, ProductIDs: []string{}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load wishlist: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, wishlist)
}

func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	user := currentUser(c)

	var input models.WishlistAddInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	err := h.wishlists.AddProduct(c.Request.Context(), uuid.NewString(), user.ID, input.ProductID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to wishlist: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product added to wishlist"})
}

func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	user := currentUser(c)

	err := h.wishlists.RemoveProduct(c.Request.Context(), user.ID, c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from wishlist: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product removed from wishlist"})
}
