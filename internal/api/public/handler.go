package public

import (
	"net/http"

	"wedding-site/internal/domain/design"
	"wedding-site/internal/domain/faq"
	"wedding-site/internal/domain/gallery"
	"wedding-site/internal/domain/party"
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
	return &Handler{db: db, log: log.With().Str("component", "site").Logger()}
}

// sectionView is a section plus whatever collection data its renderer needs,
// so the public page loads in a single request.
type sectionView struct {
	section.Section
	Data gin.H `json:"data,omitempty"`
}

// GET /api/site
//
// Assembles the whole public payload: design tokens grouped by category and
// the visible sections in display order, each carrying its side-loaded
// collection. Sections whose stored content no longer passes their schema
// are dropped from the page rather than breaking it.
func (h *Handler) Site(c *gin.Context) {
	tokens, err := h.designTokens()
	if err != nil {
		h.log.Error().Err(err).Msg("loading design tokens")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load site"})
		return
	}

	var sections []section.Section
	if err := h.db.Where("is_visible = ?", true).
		Order("display_order ASC").Find(&sections).Error; err != nil {
		h.log.Error().Err(err).Msg("loading sections")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load site"})
		return
	}

	views := make([]sectionView, 0, len(sections))
	for _, s := range sections {
		if _, known := section.SchemaFor(s.Key); !known {
			h.log.Warn().Str("key", s.Key).Msg("skipping section with unknown key")
			continue
		}
		if len(s.Content) > 0 {
			if err := section.ValidateContent(s.Key, s.Content); err != nil {
				h.log.Warn().Err(err).Str("key", s.Key).Msg("skipping section with invalid content")
				continue
			}
		}

		view := sectionView{Section: s}
		if data, err := h.sideLoad(s.Key); err != nil {
			h.log.Error().Err(err).Str("key", s.Key).Msg("loading section data")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load site"})
			return
		} else if data != nil {
			view.Data = data
		}
		views = append(views, view)
	}

	c.JSON(http.StatusOK, gin.H{
		"design":   tokens,
		"sections": views,
	})
}

func (h *Handler) designTokens() (map[string]map[string]string, error) {
	var settings []design.Setting
	if err := h.db.Find(&settings).Error; err != nil {
		return nil, err
	}
	grouped := map[string]map[string]string{}
	for _, s := range settings {
		cat := s.Category
		if cat == "" {
			cat = "misc"
		}
		if grouped[cat] == nil {
			grouped[cat] = map[string]string{}
		}
		grouped[cat][s.Key] = s.Value
	}
	return grouped, nil
}

// sideLoad fetches the collection backing a section, for the keys that have
// one. Content-only sections return nil.
func (h *Handler) sideLoad(key string) (gin.H, error) {
	switch key {
	case "our_story":
		var events []timeline.Event
		err := h.db.Where("is_visible = ?", true).
			Order("display_order ASC, id ASC").Find(&events).Error
		if err != nil {
			return nil, err
		}
		return gin.H{"events": events}, nil
	case "wedding_party":
		var members []party.Member
		err := h.db.Where("is_visible = ?", true).
			Order("display_order ASC, id ASC").Find(&members).Error
		if err != nil {
			return nil, err
		}
		grouped := gin.H{party.CategoryNasi: []party.Member{}, party.CategoryMartori: []party.Member{}}
		for _, m := range members {
			if list, ok := grouped[m.Category].([]party.Member); ok {
				grouped[m.Category] = append(list, m)
			}
		}
		return grouped, nil
	case "gallery":
		var images []gallery.Image
		err := h.db.Where("is_visible = ?", true).
			Order("display_order ASC, id ASC").Find(&images).Error
		if err != nil {
			return nil, err
		}
		return gin.H{"images": images}, nil
	case "faq":
		var items []faq.Item
		err := h.db.Where("is_visible = ?", true).
			Order("display_order ASC, id ASC").Find(&items).Error
		if err != nil {
			return nil, err
		}
		return gin.H{"items": items}, nil
	default:
		return nil, nil
	}
}
