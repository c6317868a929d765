package timeline

// Event is one milestone of the couple's story, rendered in date order on
// the public page.
type Event struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Title        string `gorm:"column:event_title;not null" json:"event_title"`
	Date         string `gorm:"column:event_date;not null" json:"event_date"`
	Description  string `gorm:"column:event_description" json:"event_description"`
	ImageURL     string `gorm:"column:event_image_url" json:"event_image_url"`
	DisplayOrder int    `json:"display_order"`
	IsVisible    bool   `gorm:"not null;default:true" json:"is_visible"`
}

func (Event) TableName() string { return "timeline_events" }
