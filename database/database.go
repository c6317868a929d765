package database

import (
	"fmt"
	"os"
	"path/filepath"

	"wedding-site/internal/domain/admin"
	"wedding-site/internal/domain/design"
	"wedding-site/internal/domain/faq"
	"wedding-site/internal/domain/gallery"
	"wedding-site/internal/domain/party"
	"wedding-site/internal/domain/rsvp"
	"wedding-site/internal/domain/section"
	"wedding-site/internal/domain/timeline"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open creates or opens the site database file, migrates the schema and
// seeds default content on first boot. The returned handle is safe for
// concurrent use; callers hand it to the api handlers at construction.
func Open(path string, adminDefaultPassword string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path+"?_journal_mode=WAL&_busy_timeout=5000"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(
		&admin.Credential{},
		&section.Section{},
		&design.Setting{},
		&rsvp.Response{},
		&gallery.Image{},
		&party.Member{},
		&timeline.Event{},
		&faq.Item{},
	); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	if err := seed(db, adminDefaultPassword); err != nil {
		return nil, fmt.Errorf("seed database: %w", err)
	}

	return db, nil
}
