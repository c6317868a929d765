package dashboard

import (
	"net/http"

	"wedding-site/internal/domain/faq"
	"wedding-site/internal/domain/gallery"
	"wedding-site/internal/domain/party"
	"wedding-site/internal/domain/rsvp"
	"wedding-site/internal/domain/section"
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
	return &Handler{db: db, log: log.With().Str("component", "dashboard").Logger()}
}

// GET /api/dashboard
//
// One-shot admin overview: entity counts, the RSVP aggregate and the five
// most recent responses.
func (h *Handler) Overview(c *gin.Context) {
	counts := gin.H{}
	for name, model := range map[string]interface{}{
		"sections":        &section.Section{},
		"gallery_images":  &gallery.Image{},
		"wedding_party":   &party.Member{},
		"timeline_events": &timeline.Event{},
		"faq_items":       &faq.Item{},
	} {
		var n int64
		if err := h.db.Model(model).Count(&n).Error; err != nil {
			h.log.Error().Err(err).Str("entity", name).Msg("counting rows")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
		counts[name] = n
	}

	stats, err := rsvp.Aggregate(h.db)
	if err != nil {
		h.log.Error().Err(err).Msg("aggregating rsvp stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	var recent []rsvp.Response
	if err := h.db.Order("submitted_at DESC").Limit(5).Find(&recent).Error; err != nil {
		h.log.Error().Err(err).Msg("loading recent rsvps")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"counts":       counts,
		"rsvp_stats":   stats,
		"recent_rsvps": recent,
	})
}
