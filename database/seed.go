package database

import (
	"encoding/json"

	"wedding-site/internal/domain/admin"
	"wedding-site/internal/domain/design"
	"wedding-site/internal/domain/faq"
	"wedding-site/internal/domain/section"
	"wedding-site/internal/domain/timeline"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// seed fills empty tables with default content so a fresh database serves a
// complete page before the admin touches anything. Each table is seeded
// independently and only when it has no rows.
func seed(db *gorm.DB, adminDefaultPassword string) error {
	if err := seedAdmin(db, adminDefaultPassword); err != nil {
		return err
	}
	if err := seedDesignSettings(db); err != nil {
		return err
	}
	if err := seedSections(db); err != nil {
		return err
	}
	if err := seedTimeline(db); err != nil {
		return err
	}
	return seedFAQ(db)
}

func seedAdmin(db *gorm.DB, password string) error {
	var count int64
	if err := db.Model(&admin.Credential{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Create(&admin.Credential{PasswordHash: string(hash)}).Error
}

func seedDesignSettings(db *gorm.DB) error {
	var count int64
	if err := db.Model(&design.Setting{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []design.Setting{
		{Key: "primary_color", Value: "#D4A5A5", Category: design.CategoryColors},
		{Key: "secondary_color", Value: "#B8860B", Category: design.CategoryColors},
		{Key: "accent_color", Value: "#FFF8F0", Category: design.CategoryColors},
		{Key: "text_color", Value: "#2C2C2C", Category: design.CategoryColors},
		{Key: "heading_font", Value: "Playfair Display", Category: design.CategoryTypography},
		{Key: "body_font", Value: "Montserrat", Category: design.CategoryTypography},
		{Key: "script_font", Value: "Great Vibes", Category: design.CategoryTypography},
		{Key: "hero_image", Value: "/images/hero-default.jpg", Category: design.CategoryImages},
	}
	return db.Create(&defaults).Error
}

func seedSections(db *gorm.DB) error {
	var count int64
	if err := db.Model(&section.Section{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []section.Section{
		{Key: "hero", Title: "Hero", DisplayOrder: 1, IsVisible: true, Content: json.RawMessage(`{
			"brideName": "Maria",
			"groomName": "Ion",
			"weddingDate": "2026-06-15",
			"location": "Chisinau, Moldova",
			"backgroundImage": "/images/hero-bg.jpg"
		}`)},
		{Key: "couple_intro", Title: "Couple Introduction", DisplayOrder: 2, IsVisible: true, Content: json.RawMessage(`{
			"bridePhoto": "/images/bride.jpg",
			"groomPhoto": "/images/groom.jpg",
			"brideBio": "A wonderful person, full of life and love.",
			"groomBio": "A wonderful man, full of humor and care."
		}`)},
		{Key: "our_story", Title: "Our Story", DisplayOrder: 3, IsVisible: true, Content: json.RawMessage(`{
			"heading": "Our Love Story",
			"description": "A love story that began on a summer day..."
		}`)},
		{Key: "ceremony", Title: "Ceremony Details", DisplayOrder: 4, IsVisible: true, Content: json.RawMessage(`{
			"date": "2026-06-15",
			"time": "14:00",
			"venue": "St. Nicholas Church",
			"address": "Stefan cel Mare 123, Chisinau",
			"dressCode": "Formal / Cocktail",
			"parking": "Parking available behind the venue"
		}`)},
		{Key: "reception", Title: "Reception Details", DisplayOrder: 5, IsVisible: true, Content: json.RawMessage(`{
			"time": "18:00",
			"venue": "Restaurant Nobil",
			"address": "Alexandru cel Bun 45, Chisinau",
			"specialInstructions": "The reception opens with a cocktail hour"
		}`)},
		{Key: "schedule", Title: "Wedding Schedule", DisplayOrder: 6, IsVisible: true, Content: json.RawMessage(`{
			"events": [
				{"time": "14:00", "title": "Ceremony", "description": "St. Nicholas Church"},
				{"time": "16:00", "title": "Photo Session", "description": "Central Park"},
				{"time": "18:00", "title": "Cocktail", "description": "Restaurant Nobil"},
				{"time": "19:30", "title": "Dinner", "description": "Festive menu"},
				{"time": "21:00", "title": "Dancing", "description": "Live DJ"}
			]
		}`)},
		{Key: "wedding_party", Title: "Wedding Party", DisplayOrder: 7, IsVisible: true, Content: json.RawMessage(`{
			"nasiHeading": "Our Godparents",
			"martoriHeading": "Our Witnesses"
		}`)},
		{Key: "gallery", Title: "Photo Gallery", DisplayOrder: 8, IsVisible: true, Content: json.RawMessage(`{
			"heading": "Our Moments",
			"description": "Memories from our engagement"
		}`)},
		{Key: "accommodations", Title: "Accommodations", DisplayOrder: 9, IsVisible: true, Content: json.RawMessage(`{
			"heading": "Where to Stay",
			"hotels": [
				{"name": "Hotel Radisson Blu", "distance": "2 km from the venue", "link": "https://example.com", "priceRange": "$$$"}
			]
		}`)},
		{Key: "registry", Title: "Registry", DisplayOrder: 10, IsVisible: true, Content: json.RawMessage(`{
			"heading": "Gifts",
			"message": "Your presence is the greatest gift! If you would like to offer something, we appreciate contributions toward our honeymoon.",
			"registryLinks": []
		}`)},
		{Key: "rsvp", Title: "RSVP", DisplayOrder: 11, IsVisible: true, Content: json.RawMessage(`{
			"heading": "Confirm Your Attendance",
			"description": "Please confirm your attendance by May 1, 2026",
			"deadline": "2026-05-01"
		}`)},
		{Key: "faq", Title: "FAQ", DisplayOrder: 12, IsVisible: true, Content: json.RawMessage(`{
			"heading": "Frequently Asked Questions"
		}`)},
		{Key: "footer", Title: "Footer", DisplayOrder: 13, IsVisible: true, Content: json.RawMessage(`{
			"thankYouMessage": "Thank you for your love and support!",
			"hashtag": "#MariaAndIon2026",
			"contactEmail": "contact@wedding.example"
		}`)},
	}
	return db.Create(&defaults).Error
}

func seedTimeline(db *gorm.DB) error {
	var count int64
	if err := db.Model(&timeline.Event{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []timeline.Event{
		{Title: "First Meeting", Date: "2020-07-15", Description: "We met for the first time in a downtown cafe.", DisplayOrder: 1, IsVisible: true},
		{Title: "First Vacation", Date: "2021-08-20", Description: "Our first vacation together at the seaside.", DisplayOrder: 2, IsVisible: true},
		{Title: "The Engagement", Date: "2024-12-25", Description: "The most beautiful Christmas of our lives!", DisplayOrder: 3, IsVisible: true},
	}
	return db.Create(&defaults).Error
}

func seedFAQ(db *gorm.DB) error {
	var count int64
	if err := db.Model(&faq.Item{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []faq.Item{
		{Question: "Are children welcome?", Answer: "Yes, children are welcome at our wedding! Please let us know in the RSVP form how many children will attend.", DisplayOrder: 1, IsVisible: true},
		{Question: "What is the dress code?", Answer: "The dress code is formal/cocktail. Please avoid white, which is reserved for the bride.", DisplayOrder: 2, IsVisible: true},
		{Question: "Can I bring a plus one?", Answer: "If your invitation includes a +1, you may bring a companion. Please add their name in the RSVP form.", DisplayOrder: 3, IsVisible: true},
		{Question: "What about dietary restrictions?", Answer: "Please tell us about any dietary restrictions or allergies in the RSVP form and we will arrange suitable options.", DisplayOrder: 4, IsVisible: true},
	}
	return db.Create(&defaults).Error
}
