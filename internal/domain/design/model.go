package design

import "time"

const (
	CategoryColors     = "colors"
	CategoryTypography = "typography"
	CategoryImages     = "images"
)

// Setting is a site-wide visual token. The value is an opaque string whose
// meaning (hex color, font family, image path) follows from the category.
type Setting struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Key      string `gorm:"column:setting_key;not null;uniqueIndex" json:"setting_key"`
	Value    string `gorm:"column:setting_value;not null" json:"setting_value"`
	Category string `gorm:"column:setting_category" json:"setting_category"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string { return "design_settings" }
