package gallery

import (
	"net/http"
	"strconv"

	"wedding-site/internal/domain/gallery"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Handler struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewHandler(db *gorm.DB, log zerolog.Logger) *Handler {
	return &Handler{db: db, log: log.With().Str("component", "gallery").Logger()}
}

// GET /api/gallery
//
// Admin view: every image including hidden ones. The public page gets its
// gallery through the assembled site payload instead.
func (h *Handler) List(c *gin.Context) {
	var images []gallery.Image
	if err := h.db.Order("display_order ASC, id ASC").Find(&images).Error; err != nil {
		h.log.Error().Err(err).Msg("listing gallery")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gallery"})
		return
	}
	c.JSON(http.StatusOK, images)
}

type createRequest struct {
	ImageURL     string `json:"image_url" binding:"required"`
	ImageAlt     string `json:"image_alt" binding:"omitempty,max=200"`
	Category     string `json:"category" binding:"omitempty,max=50"`
	DisplayOrder int    `json:"display_order"`
}

// POST /api/gallery
func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image URL is required"})
		return
	}

	img := gallery.Image{
		URL:          req.ImageURL,
		Alt:          req.ImageAlt,
		Category:     req.Category,
		DisplayOrder: req.DisplayOrder,
		IsVisible:    true,
	}
	if err := h.db.Create(&img).Error; err != nil {
		h.log.Error().Err(err).Msg("creating gallery image")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add image"})
		return
	}
	c.JSON(http.StatusOK, img)
}

// DELETE /api/gallery?id=
//
// Removes the database row only; the file under the upload directory is kept
// because other rows or section content may still reference it.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID is required"})
		return
	}

	result := h.db.Delete(&gallery.Image{}, id)
	if result.Error != nil {
		h.log.Error().Err(result.Error).Int("id", id).Msg("deleting gallery image")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
