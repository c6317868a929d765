package sections

import (
	"errors"
	"net/http"

	"wedding-site/internal/domain/section"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Handler struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewHandler(db *gorm.DB, log zerolog.Logger) *Handler {
	return &Handler{db: db, log: log.With().Str("component", "sections").Logger()}
}

// GET /api/sections
func (h *Handler) List(c *gin.Context) {
	var sections []section.Section
	if err := h.db.Order("display_order ASC").Find(&sections).Error; err != nil {
		h.log.Error().Err(err).Msg("listing sections")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sections"})
		return
	}
	c.JSON(http.StatusOK, sections)
}

// GET /api/sections/:key
func (h *Handler) Get(c *gin.Context) {
	key := c.Param("key")

	var s section.Section
	if err := h.db.First(&s, "section_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
			return
		}
		h.log.Error().Err(err).Str("key", key).Msg("loading section")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch section"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// GET /api/sections/:key/schema
func (h *Handler) GetSchema(c *gin.Context) {
	schema, ok := section.SchemaFor(c.Param("key"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}
	c.JSON(http.StatusOK, schema)
}

// PUT /api/sections
//
// Body carries the section id plus either action=toggle with is_visible, or
// the full editable field set. The section key itself is never updated.
func (h *Handler) Update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Section id is required"})
		return
	}

	var s section.Section
	if err := h.db.First(&s, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
			return
		}
		h.log.Error().Err(err).Uint("id", req.ID).Msg("loading section")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update section"})
		return
	}

	if req.Action == "toggle" {
		if req.IsVisible == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "is_visible is required for toggle"})
			return
		}
		h.applyUpdates(c, &s, map[string]interface{}{"is_visible": *req.IsVisible})
		return
	}

	updates, ok := h.collectUpdates(c, s.Key, &req)
	if !ok {
		return
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}
	h.applyUpdates(c, &s, updates)
}

// PUT /api/sections/:key
func (h *Handler) UpdateByKey(c *gin.Context) {
	key := c.Param("key")

	var s section.Section
	if err := h.db.First(&s, "section_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
			return
		}
		h.log.Error().Err(err).Str("key", key).Msg("loading section")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update section"})
		return
	}

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updates, ok := h.collectUpdates(c, s.Key, &req)
	if !ok {
		return
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}
	h.applyUpdates(c, &s, updates)
}

// collectUpdates builds the column map from the optional request fields,
// validating content against the section's schema. A false return means an
// error response was already written.
func (h *Handler) collectUpdates(c *gin.Context, key string, req *updateRequest) (map[string]interface{}, bool) {
	updates := map[string]interface{}{}
	if req.SectionTitle != nil {
		updates["section_title"] = *req.SectionTitle
	}
	if req.IsVisible != nil {
		updates["is_visible"] = *req.IsVisible
	}
	if req.DisplayOrder != nil {
		updates["display_order"] = *req.DisplayOrder
	}
	if len(req.ContentJSON) > 0 {
		if err := section.ValidateContent(key, req.ContentJSON); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, false
		}
		updates["content_json"] = []byte(req.ContentJSON)
	}
	return updates, true
}

func (h *Handler) applyUpdates(c *gin.Context, s *section.Section, updates map[string]interface{}) {
	if err := h.db.Model(s).Updates(updates).Error; err != nil {
		h.log.Error().Err(err).Str("key", s.Key).Msg("updating section")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update section"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
