package timeline

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"wedding-site/database"
	"wedding-site/internal/domain/timeline"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"), "Admin123!")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	h := NewHandler(db, zerolog.Nop())
	router := gin.New()
	router.GET("/api/timeline", h.List)
	router.PUT("/api/timeline", h.Save)
	router.DELETE("/api/timeline/:id", h.Delete)
	return router, db
}

func TestListReturnsSeededEventsInOrder(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/timeline", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var events []timeline.Event
	if err := json.Unmarshal(w.Body.Bytes(), &events); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 seeded events, got %d", len(events))
	}
	if events[0].Title != "First Meeting" {
		t.Errorf("events out of order, got %q first", events[0].Title)
	}
}

func TestSaveReconcilesEvents(t *testing.T) {
	router, db := newTestRouter(t)

	var seeded []timeline.Event
	if err := db.Order("display_order ASC").Find(&seeded).Error; err != nil {
		t.Fatalf("loading seeded events: %v", err)
	}
	keptID := seeded[0].ID

	body := fmt.Sprintf(`{"events": [
		{"id": %d, "event_title": "How We Met", "event_date": "2020-07-15", "display_order": 1},
		{"event_title": "Moving In", "event_date": "2022-03-01", "display_order": 2}
	]}`, keptID)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/timeline", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var events []timeline.Event
	if err := db.Order("display_order ASC").Find(&events).Error; err != nil {
		t.Fatalf("loading events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events after reconciliation, got %d", len(events))
	}
	if events[0].ID != keptID || events[0].Title != "How We Met" {
		t.Errorf("surviving event should keep id %d and be renamed, got %+v", keptID, events[0])
	}
}

func TestSaveRejectsMissingTitle(t *testing.T) {
	router, db := newTestRouter(t)

	body := `{"events": [{"event_date": "2020-07-15"}]}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/timeline", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var count int64
	db.Model(&timeline.Event{}).Count(&count)
	if count != 3 {
		t.Errorf("rejected save must leave seeded events untouched, found %d", count)
	}
}

func TestDeleteEvent(t *testing.T) {
	router, db := newTestRouter(t)

	var e timeline.Event
	if err := db.First(&e).Error; err != nil {
		t.Fatalf("loading seeded event: %v", err)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", fmt.Sprintf("/api/timeline/%d", e.ID), nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	missing := httptest.NewRecorder()
	req, _ = http.NewRequest("DELETE", "/api/timeline/9999", nil)
	router.ServeHTTP(missing, req)
	if missing.Code != http.StatusNotFound {
		t.Errorf("deleting a missing event: expected 404, got %d", missing.Code)
	}
}
