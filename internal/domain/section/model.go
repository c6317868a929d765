package section

import (
	"encoding/json"
	"time"
)

// Section is one block of the public page. The key identifies the block and
// is immutable after seeding; DisplayOrder defines the render sequence among
// visible sections. Content holds the section-specific fields as JSON and is
// validated against the schema registry on save and on render.
type Section struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Key          string          `gorm:"column:section_key;not null;uniqueIndex" json:"section_key"`
	Title        string          `gorm:"column:section_title;not null" json:"section_title"`
	IsVisible    bool            `gorm:"not null;default:true;index:idx_sections_visible" json:"is_visible"`
	DisplayOrder int             `gorm:"not null;index:idx_sections_visible" json:"display_order"`
	Content      json.RawMessage `gorm:"column:content_json;type:text" json:"content_json"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
