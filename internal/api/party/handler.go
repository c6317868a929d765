package party

import (
	"net/http"
	"strconv"

	"wedding-site/internal/domain/party"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Handler struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewHandler(db *gorm.DB, log zerolog.Logger) *Handler {
	return &Handler{db: db, log: log.With().Str("component", "party").Logger()}
}

// GET /api/wedding-party
//
// Public: only visible members, in display order.
func (h *Handler) List(c *gin.Context) {
	var members []party.Member
	if err := h.db.Where("is_visible = ?", true).
		Order("display_order ASC, id ASC").Find(&members).Error; err != nil {
		h.log.Error().Err(err).Msg("listing wedding party")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wedding party"})
		return
	}
	c.JSON(http.StatusOK, members)
}

type memberPayload struct {
	ID           uint   `json:"id"`
	Name         string `json:"name" binding:"required,max=100"`
	Role         string `json:"role" binding:"required,max=100"`
	Category     string `json:"category" binding:"required"`
	PhotoURL     string `json:"photo_url" binding:"omitempty,max=500"`
	Description  string `json:"description" binding:"omitempty,max=500"`
	DisplayOrder int    `json:"display_order"`
	IsVisible    *bool  `json:"is_visible"`
}

type saveRequest struct {
	Members []memberPayload `json:"members" binding:"required,dive"`
}

// PUT /api/wedding-party
//
// Bulk save: the request body is the complete desired roster. Members with a
// known id are updated in place, members without one are created, and rows
// absent from the payload are deleted. The whole reconciliation runs in one
// transaction so a failed save leaves the roster untouched.
func (h *Handler) Save(c *gin.Context) {
	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Members array is required"})
		return
	}
	for _, m := range req.Members {
		if !party.ValidCategory(m.Category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category must be 'nasi' or 'martori'"})
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		keep := make([]uint, 0, len(req.Members))
		for _, m := range req.Members {
			visible := true
			if m.IsVisible != nil {
				visible = *m.IsVisible
			}
			row := party.Member{
				ID:           m.ID,
				Name:         m.Name,
				Role:         m.Role,
				Category:     m.Category,
				PhotoURL:     m.PhotoURL,
				Description:  m.Description,
				DisplayOrder: m.DisplayOrder,
				IsVisible:    visible,
			}
			if err := tx.Save(&row).Error; err != nil {
				return err
			}
			keep = append(keep, row.ID)
		}
		if len(keep) == 0 {
			return tx.Where("1 = 1").Delete(&party.Member{}).Error
		}
		return tx.Where("id NOT IN ?", keep).Delete(&party.Member{}).Error
	})
	if err != nil {
		h.log.Error().Err(err).Msg("saving wedding party")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save wedding party"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DELETE /api/wedding-party/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member id"})
		return
	}

	result := h.db.Delete(&party.Member{}, id)
	if result.Error != nil {
		h.log.Error().Err(result.Error).Int("id", id).Msg("deleting party member")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete member"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
