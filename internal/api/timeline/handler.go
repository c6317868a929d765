package timeline

import (
	"net/http"
	"strconv"

	"wedding-site/internal/domain/timeline"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Handler struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewHandler(db *gorm.DB, log zerolog.Logger) *Handler {
	return &Handler{db: db, log: log.With().Str("component", "timeline").Logger()}
}

// GET /api/timeline
//
// Public: visible events in display order.
func (h *Handler) List(c *gin.Context) {
	var events []timeline.Event
	if err := h.db.Where("is_visible = ?", true).
		Order("display_order ASC, id ASC").Find(&events).Error; err != nil {
		h.log.Error().Err(err).Msg("listing timeline")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch timeline"})
		return
	}
	c.JSON(http.StatusOK, events)
}

type eventPayload struct {
	ID           uint   `json:"id"`
	EventTitle   string `json:"event_title" binding:"required,max=200"`
	EventDate    string `json:"event_date" binding:"required,max=100"`
	Description  string `json:"event_description" binding:"omitempty,max=1000"`
	ImageURL     string `json:"event_image_url" binding:"omitempty,max=500"`
	DisplayOrder int    `json:"display_order"`
	IsVisible    *bool  `json:"is_visible"`
}

type saveRequest struct {
	Events []eventPayload `json:"events" binding:"required,dive"`
}

// PUT /api/timeline
//
// Bulk save with the same reconciliation semantics as the wedding-party
// endpoint: payload rows are upserted, everything else is deleted, all inside
// one transaction.
func (h *Handler) Save(c *gin.Context) {
	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Events array is required"})
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		keep := make([]uint, 0, len(req.Events))
		for _, e := range req.Events {
			visible := true
			if e.IsVisible != nil {
				visible = *e.IsVisible
			}
			row := timeline.Event{
				ID:           e.ID,
				Title:        e.EventTitle,
				Date:         e.EventDate,
				Description:  e.Description,
				ImageURL:     e.ImageURL,
				DisplayOrder: e.DisplayOrder,
				IsVisible:    visible,
			}
			if err := tx.Save(&row).Error; err != nil {
				return err
			}
			keep = append(keep, row.ID)
		}
		if len(keep) == 0 {
			return tx.Where("1 = 1").Delete(&timeline.Event{}).Error
		}
		return tx.Where("id NOT IN ?", keep).Delete(&timeline.Event{}).Error
	})
	if err != nil {
		h.log.Error().Err(err).Msg("saving timeline")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save timeline"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DELETE /api/timeline/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return
	}

	result := h.db.Delete(&timeline.Event{}, id)
	if result.Error != nil {
		h.log.Error().Err(result.Error).Int("id", id).Msg("deleting timeline event")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
