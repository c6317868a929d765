package rsvp

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"wedding-site/internal/domain/rsvp"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Handler struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewHandler(db *gorm.DB, log zerolog.Logger) *Handler {
	return &Handler{db: db, log: log.With().Str("component", "rsvp").Logger()}
}

// POST /api/rsvp
//
// Public. The same email may submit any number of times; each submission is
// a new row and rows are never updated afterwards.
func (h *Handler) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := fieldErrors(err); fields != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data", "fields": fields})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data"})
		return
	}

	response := rsvp.Response{
		GuestName:           req.GuestName,
		Email:               req.Email,
		Phone:               req.Phone,
		NumberOfGuests:      req.NumberOfGuests,
		AttendanceStatus:    rsvp.Status(req.AttendanceStatus),
		MealPreference:      req.MealPreference,
		DietaryRestrictions: req.DietaryRestrictions,
		SongRequests:        req.SongRequests,
		Message:             req.Message,
		PlusOneName:         req.PlusOneName,
		IPAddress:           c.ClientIP(),
	}

	if err := h.db.Create(&response).Error; err != nil {
		h.log.Error().Err(err).Msg("storing rsvp")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit RSVP"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": response.ID})
}

// GET /api/rsvp
//
// Admin listing; ?action=stats returns the aggregate, ?action=export streams
// the full table as CSV.
func (h *Handler) List(c *gin.Context) {
	switch c.Query("action") {
	case "stats":
		stats, err := rsvp.Aggregate(h.db)
		if err != nil {
			h.log.Error().Err(err).Msg("aggregating rsvp stats")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}
		c.JSON(http.StatusOK, stats)
	case "export":
		h.export(c)
	default:
		var responses []rsvp.Response
		if err := h.db.Order("submitted_at DESC").Find(&responses).Error; err != nil {
			h.log.Error().Err(err).Msg("listing rsvps")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch RSVPs"})
			return
		}
		c.JSON(http.StatusOK, responses)
	}
}

// DELETE /api/rsvp?id=
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID is required"})
		return
	}

	result := h.db.Delete(&rsvp.Response{}, id)
	if result.Error != nil {
		h.log.Error().Err(result.Error).Int("id", id).Msg("deleting rsvp")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete RSVP"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "RSVP not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) export(c *gin.Context) {
	var responses []rsvp.Response
	if err := h.db.Order("submitted_at DESC").Find(&responses).Error; err != nil {
		h.log.Error().Err(err).Msg("exporting rsvps")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export RSVPs"})
		return
	}

	filename := fmt.Sprintf("rsvp-responses-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{
		"id", "guest_name", "email", "phone", "number_of_guests",
		"attendance_status", "meal_preference", "dietary_restrictions",
		"song_requests", "message", "plus_one_name", "submitted_at", "ip_address",
	})
	for _, r := range responses {
		_ = w.Write([]string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.GuestName,
			r.Email,
			r.Phone,
			strconv.Itoa(r.NumberOfGuests),
			string(r.AttendanceStatus),
			r.MealPreference,
			r.DietaryRestrictions,
			r.SongRequests,
			r.Message,
			r.PlusOneName,
			r.SubmittedAt.Format(time.RFC3339),
			r.IPAddress,
		})
	}
	w.Flush()
}
