package database

import (
	"fmt"
	"log/slog"
	"time"

	"portfolio-cms/internal/domain/blog"
	"portfolio-cms/internal/domain/contact"
	"portfolio-cms/internal/domain/media"
	"portfolio-cms/internal/domain/site"
	"portfolio-cms/internal/domain/taxonomy"
	"portfolio-cms/internal/domain/works"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config returns the gorm settings shared by every dialect: UTC timestamps
// and driver errors translated to gorm's sentinel errors.
func Config() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		Logger:         logger.Default.LogMode(logger.Warn),
	}
}

// Connect opens the PostgreSQL database at dsn and migrates it.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), Config())
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	slog.Info("database connected and migrated")
	return db, nil
}

// Migrate creates or updates every table. Parent tables are listed before
// the tables holding foreign keys to them.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		// media
		&media.Image{},

		// categories
		&taxonomy.Category{},
		&taxonomy.CategoryTranslation{},

		// artworks
		&works.Artwork{},
		&works.ArtworkTranslation{},
		&works.ArtworkCategory{},

		// blog
		&blog.Post{},
		&blog.PostTranslation{},
		&blog.PostCategory{},
		&blog.Settings{},

		// site
		&site.Content{},
		&site.ContentTranslation{},
		&site.Achievement{},
		&site.AchievementTranslation{},

		// contact
		&contact.Info{},
		&contact.InfoTranslation{},
		&contact.SocialMedia{},
		&contact.FAQ{},
		&contact.FAQTranslation{},
		&contact.Submission{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
