package sections

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"wedding-site/database"
	"wedding-site/internal/domain/section"

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
	router.GET("/api/sections", h.List)
	router.GET("/api/sections/:key", h.Get)
	router.GET("/api/sections/:key/schema", h.GetSchema)
	router.PUT("/api/sections", h.Update)
	router.PUT("/api/sections/:key", h.UpdateByKey)
	return router, db
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, nil)
	} else {
		req, _ = http.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)
	return w
}

func TestListReturnsSeededSectionsInOrder(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, "GET", "/api/sections", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var sections []section.Section
	if err := json.Unmarshal(w.Body.Bytes(), &sections); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(sections) != 13 {
		t.Fatalf("expected 13 seeded sections, got %d", len(sections))
	}
	for i := 1; i < len(sections); i++ {
		if sections[i].DisplayOrder < sections[i-1].DisplayOrder {
			t.Fatalf("sections out of display order at index %d", i)
		}
	}
	if sections[0].Key != "hero" {
		t.Errorf("expected hero first, got %q", sections[0].Key)
	}
}

func TestGetByKey(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, "GET", "/api/sections/ceremony", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var s section.Section
	if err := json.Unmarshal(w.Body.Bytes(), &s); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if s.Key != "ceremony" {
		t.Errorf("expected ceremony, got %q", s.Key)
	}

	if w := do(router, "GET", "/api/sections/no_such_section", ""); w.Code != http.StatusNotFound {
		t.Errorf("unknown key: expected 404, got %d", w.Code)
	}
}

func TestGetSchema(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, "GET", "/api/sections/hero/schema", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var schema section.Schema
	if err := json.Unmarshal(w.Body.Bytes(), &schema); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if schema.Key != "hero" || len(schema.Fields) == 0 {
		t.Errorf("unexpected schema: %+v", schema)
	}

	if w := do(router, "GET", "/api/sections/no_such_section/schema", ""); w.Code != http.StatusNotFound {
		t.Errorf("unknown key: expected 404, got %d", w.Code)
	}
}

func sectionByKey(t *testing.T, db *gorm.DB, key string) section.Section {
	t.Helper()
	var s section.Section
	if err := db.First(&s, "section_key = ?", key).Error; err != nil {
		t.Fatalf("loading section %q: %v", key, err)
	}
	return s
}

func TestToggleVisibility(t *testing.T) {
	router, db := newTestRouter(t)
	hero := sectionByKey(t, db, "hero")

	body := fmt.Sprintf(`{"id": %d, "action": "toggle", "is_visible": false}`, hero.ID)
	if w := do(router, "PUT", "/api/sections", body); w.Code != http.StatusOK {
		t.Fatalf("toggle off: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	after := sectionByKey(t, db, "hero")
	if after.IsVisible {
		t.Error("section should be hidden after toggle")
	}
	if after.DisplayOrder != hero.DisplayOrder || string(after.Content) != string(hero.Content) {
		t.Error("toggle must not touch order or content")
	}

	body = fmt.Sprintf(`{"id": %d, "action": "toggle", "is_visible": true}`, hero.ID)
	if w := do(router, "PUT", "/api/sections", body); w.Code != http.StatusOK {
		t.Fatalf("toggle on: expected 200, got %d", w.Code)
	}
	if !sectionByKey(t, db, "hero").IsVisible {
		t.Error("section should be visible again")
	}
}

func TestUpdateRejectsSchemaInvalidContent(t *testing.T) {
	router, db := newTestRouter(t)
	hero := sectionByKey(t, db, "hero")

	// brideName missing, weddingDate the wrong type.
	body := fmt.Sprintf(`{"id": %d, "content_json": {"groomName": "Ion", "weddingDate": 20260615}}`, hero.ID)
	w := do(router, "PUT", "/api/sections", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	after := sectionByKey(t, db, "hero")
	if string(after.Content) != string(hero.Content) {
		t.Error("rejected update must not change stored content")
	}
}

func TestUpdateByKeyPartial(t *testing.T) {
	router, db := newTestRouter(t)

	body := `{"section_title": "Our Big Day", "content_json": {"brideName": "Ana", "groomName": "Dan", "weddingDate": "2026-09-01"}}`
	w := do(router, "PUT", "/api/sections/hero", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	after := sectionByKey(t, db, "hero")
	if after.Title != "Our Big Day" {
		t.Errorf("title not updated: %q", after.Title)
	}
	var content map[string]any
	if err := json.Unmarshal(after.Content, &content); err != nil {
		t.Fatalf("stored content is not valid JSON: %v", err)
	}
	if content["brideName"] != "Ana" {
		t.Errorf("content not updated: %v", content)
	}
}

func TestUpdateRequiresID(t *testing.T) {
	router, _ := newTestRouter(t)

	if w := do(router, "PUT", "/api/sections", `{"section_title": "x"}`); w.Code != http.StatusBadRequest {
		t.Errorf("missing id: expected 400, got %d", w.Code)
	}
	if w := do(router, "PUT", "/api/sections", `{"id": 9999, "section_title": "x"}`); w.Code != http.StatusNotFound {
		t.Errorf("unknown id: expected 404, got %d", w.Code)
	}
}
