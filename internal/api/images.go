package api

import (
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chefboard/backend/internal/models"
	"github.com/chefboard/backend/internal/service"
)

const (
	// maxImageUploadBytes caps recipe image uploads.
	maxImageUploadBytes = 5 << 20

	// imageURLExpiry bounds presigned image URL lifetime.
	imageURLExpiry = 15 * time.Minute
)

// ImageHandler stores recipe images and issues access URLs for them
type ImageHandler struct {
	db    *gorm.DB
	media service.ImageStore
}

// NewImageHandler creates a new ImageHandler
func NewImageHandler(db *gorm.DB, media service.ImageStore) *ImageHandler {
	return &ImageHandler{db: db, media: media}
}

// RegisterRoutes registers the recipe image routes
func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.POST("/:id/image", h.UploadRecipeImage)
		recipes.GET("/:id/image-url", h.GetRecipeImageURL)
	}
}

// UploadRecipeImage stores a new image for a recipe the caller owns
// and records its object key on the recipe.
func (h *ImageHandler) UploadRecipeImage(c *gin.Context) {
	if h.media == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage is not configured"})
		return
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var recipe models.Recipe
	if err := h.db.First(&recipe, "id = ?", recipeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	if recipe.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the recipe owner can change its image"})
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageUploadBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}
	if len(data) > maxImageUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image exceeds the size limit"})
		return
	}

	key := fmt.Sprintf("recipes/%s/%s%s", recipeID, uuid.NewString(), path.Ext(header.Filename))
	imageURL, err := h.media.UploadImage(c.Request.Context(), data, key, header.Header.Get("Content-Type"))
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}

	if err := h.db.Model(&recipe).Update("image_key", key).Error; err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recipe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"image_url": imageURL,
		"key":       key,
	})
}

// GetRecipeImageURL returns a short-lived URL for a recipe's image.
func (h *ImageHandler) GetRecipeImageURL(c *gin.Context) {
	if h.media == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage is not configured"})
		return
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var recipe models.Recipe
	if err := h.db.First(&recipe, "id = ?", recipeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	if recipe.ImageKey == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe has no image"})
		return
	}

	// Legacy rows hold absolute URLs; those need no presigning.
	if strings.HasPrefix(recipe.ImageKey, "http://") || strings.HasPrefix(recipe.ImageKey, "https://") {
		c.JSON(http.StatusOK, gin.H{"image_url": recipe.ImageKey})
		return
	}

	imageURL, err := h.media.PresignedImageURL(c.Request.Context(), recipe.ImageKey, imageURLExpiry)
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign image URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"image_url":  imageURL,
		"expires_in": int(imageURLExpiry.Seconds()),
	})
}
