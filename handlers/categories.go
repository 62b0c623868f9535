package handlers

import (
	"net/http"

	"apparel-backend/models"
	"apparel-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CategoryHandler struct {
	categories store.CategoryStore
}

func NewCategoryHandler(categories store.CategoryStore) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory takes name and type as query parameters.
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	name := c.Query("name")
	categoryType := c.Query("type")
	if name == "" || categoryType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing name or type parameter"})
		return
	}

	category := models.Category{
		ID:   uuid.NewString(),
		Name: name,
		Type: categoryType,
	}
	if err := h.categories.Insert(c.Request.Context(), &category); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, category)
}
