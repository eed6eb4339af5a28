package blog

import (
	"portfolio-cms/internal/domain/core"

	"gorm.io/gorm"
)

// Settings holds the blog-wide configuration. Exactly one row may exist.
type Settings struct {
	core.Model
	core.Singleton

	SiteName      string `gorm:"size:100;not null" json:"site_name"`
	PostsPerPage  int    `gorm:"not null" json:"posts_per_page"`
	AllowComments bool   `gorm:"not null" json:"allow_comments"`
}

func (Settings) TableName() string { return "blog_settings" }

// DefaultSettings is served while no settings row exists.
func DefaultSettings() Settings {
	return Settings{SiteName: DefaultAuthor, PostsPerPage: 10, AllowComments: false}
}

func (s *Settings) BeforeCreate(tx *gorm.DB) error {
	if err := core.GuardCreate(tx, &Settings{}); err != nil {
		return err
	}
	return s.Model.BeforeCreate(tx)
}

func (s *Settings) BeforeDelete(tx *gorm.DB) error {
	return core.ErrSingletonUndeletable
}
