package faq

import (
	"net/http"
	"strconv"

	"wedding-site/internal/domain/faq"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Handler struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewHandler(db *gorm.DB, log zerolog.Logger) *Handler {
	return &Handler{db: db, log: log.With().Str("component", "faq").Logger()}
}

// GET /api/faq
//
// Public: visible items only.
func (h *Handler) List(c *gin.Context) {
	var items []faq.Item
	if err := h.db.Where("is_visible = ?", true).
		Order("display_order ASC, id ASC").Find(&items).Error; err != nil {
		h.log.Error().Err(err).Msg("listing faq")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch FAQ"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /api/faq/all
//
// Admin: hidden items included.
func (h *Handler) ListAll(c *gin.Context) {
	var items []faq.Item
	if err := h.db.Order("display_order ASC, id ASC").Find(&items).Error; err != nil {
		h.log.Error().Err(err).Msg("listing faq")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch FAQ"})
		return
	}
	c.JSON(http.StatusOK, items)
}

type itemRequest struct {
	ID           uint   `json:"id"`
	Question     string `json:"question" binding:"required,max=500"`
	Answer       string `json:"answer" binding:"required,max=2000"`
	DisplayOrder int    `json:"display_order"`
	IsVisible    *bool  `json:"is_visible"`
}

// POST /api/faq
//
// Creates a new item, or updates an existing one when an id is supplied.
func (h *Handler) Upsert(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Question and answer are required"})
		return
	}

	visible := true
	if req.IsVisible != nil {
		visible = *req.IsVisible
	}

	if req.ID != 0 {
		var existing faq.Item
		if err := h.db.First(&existing, req.ID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "FAQ item not found"})
			return
		}
	}

	item := faq.Item{
		ID:           req.ID,
		Question:     req.Question,
		Answer:       req.Answer,
		DisplayOrder: req.DisplayOrder,
		IsVisible:    visible,
	}
	if err := h.db.Save(&item).Error; err != nil {
		h.log.Error().Err(err).Msg("saving faq item")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save FAQ item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DELETE /api/faq/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	result := h.db.Delete(&faq.Item{}, id)
	if result.Error != nil {
		h.log.Error().Err(result.Error).Int("id", id).Msg("deleting faq item")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete FAQ item"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "FAQ item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
