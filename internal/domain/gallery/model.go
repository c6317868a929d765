package gallery

import "time"

type Image struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	URL          string `gorm:"column:image_url;not null" json:"image_url"`
	Alt          string `gorm:"column:image_alt" json:"image_alt"`
	Category     string `json:"category,omitempty"`
	DisplayOrder int    `gorm:"index:idx_gallery_order" json:"display_order"`
	IsVisible    bool   `gorm:"not null;default:true;index:idx_gallery_order" json:"is_visible"`

	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (Image) TableName() string { return "gallery_images" }
