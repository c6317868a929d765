package faq

import "time"

type Item struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Question     string `gorm:"not null" json:"question"`
	Answer       string `gorm:"not null" json:"answer"`
	DisplayOrder int    `json:"display_order"`
	IsVisible    bool   `gorm:"not null;default:true" json:"is_visible"`

	CreatedAt time.Time `json:"created_at"`
}

func (Item) TableName() string { return "faq_items" }
