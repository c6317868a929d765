package design

import (
	"net/http"

	"wedding-site/internal/domain/design"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Handler struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewHandler(db *gorm.DB, log zerolog.Logger) *Handler {
	return &Handler{db: db, log: log.With().Str("component", "design").Logger()}
}

// GET /api/design
func (h *Handler) List(c *gin.Context) {
	var settings []design.Setting
	if err := h.db.Order("setting_category ASC, setting_key ASC").Find(&settings).Error; err != nil {
		h.log.Error().Err(err).Msg("listing design settings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch design settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

type saveRequest struct {
	Settings []struct {
		Key      string `json:"setting_key" binding:"required"`
		Value    string `json:"setting_value" binding:"required"`
		Category string `json:"setting_category"`
	} `json:"settings" binding:"required,min=1,dive"`
}

// PUT /api/design
//
// Upserts by key, so the admin UI can save a partial token set without
// clobbering the rest. Unknown keys create new rows.
func (h *Handler) Save(c *gin.Context) {
	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Settings array is required"})
		return
	}

	rows := make([]design.Setting, 0, len(req.Settings))
	for _, s := range req.Settings {
		rows = append(rows, design.Setting{Key: s.Key, Value: s.Value, Category: s.Category})
	}

	err := h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value", "setting_category", "updated_at"}),
	}).Create(&rows).Error
	if err != nil {
		h.log.Error().Err(err).Msg("saving design settings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save design settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "updated": len(rows)})
}
