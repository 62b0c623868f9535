package handlers

import (
	"bytes"
	"errors"
	"image"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"apparel-backend/models"
	"apparel-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// UploadImage accepts a multipart `file`, verifies it decodes as an
// image, persists the raw bytes under the upload directory and appends
// the metadata to the product's image list.
func (h *ProductHandler) UploadImage(c *gin.Context) {
	productID := c.Param("id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}
	defer f.Close()

	contents, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(contents))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image file"})
		return
	}

	dir := filepath.Join(h.uploadDir, "products")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare upload directory"})
		return
	}

	filename := uuid.NewString() + "_" + filepath.Base(fileHeader.Filename)
	if err := os.WriteFile(filepath.Join(dir, filename), contents, 0o644); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
		return
	}

	meta := models.ImageMetadata{
		URL:      "/uploads/products/" + filename,
		Filename: filename,
		Size:     int64(len(contents)),
		Width:    cfg.Width,
		Height:   cfg.Height,
	}

	if err := h.products.PushImage(c.Request.Context(), productID, meta); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to attach image: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, meta)
}
