package site

import (
	"time"

	"portfolio-cms/internal/domain/core"
	"portfolio-cms/internal/domain/i18n"
)

// Achievement is one entry of the master's awards timeline.
type Achievement struct {
	core.Model
	Year     *int `json:"year"`
	Order    int  `gorm:"column:sort_order;not null;default:0" json:"order"`
	IsActive bool `gorm:"not null" json:"is_active"`

	Translations []AchievementTranslation `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}

// AchievementOrder lists the timeline in manual order, newest year first
// among equals.
const AchievementOrder = "sort_order ASC, year DESC"

func (a Achievement) Variants() i18n.Variants { return i18n.Collect(a.Translations) }

type AchievementTranslation struct {
	AchievementID string `gorm:"type:uuid;primaryKey"`
	Lang          string `gorm:"size:10;primaryKey"`
	Title         string `gorm:"size:200;not null"`
	Description   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t AchievementTranslation) Language() string { return t.Lang }

func (t AchievementTranslation) Fields() map[string]string {
	return map[string]string{"title": t.Title, "description": t.Description}
}
