package site

import (
	"time"

	"portfolio-cms/internal/domain/core"
	"portfolio-cms/internal/domain/i18n"
	"portfolio-cms/internal/domain/media"
)

type Section string

const (
	SectionHero   Section = "hero"
	SectionMaster Section = "master"
	SectionFooter Section = "footer"
)

func (s Section) Valid() bool {
	switch s {
	case SectionHero, SectionMaster, SectionFooter:
		return true
	}
	return false
}

// Display is the admin label of the section.
func (s Section) Display() string {
	switch s {
	case SectionHero:
		return "首頁主視覺"
	case SectionMaster:
		return "大師介紹"
	case SectionFooter:
		return "頁尾"
	}
	return string(s)
}

// Content is the editable copy of one homepage section.
type Content struct {
	core.Model
	Section  Section `gorm:"type:varchar(20);not null;uniqueIndex" json:"section"`
	IsActive bool    `gorm:"not null" json:"is_active"`

	HeroImageID   *string      `gorm:"type:uuid" json:"-"`
	HeroImage     *media.Image `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
	MasterImageID *string      `gorm:"type:uuid" json:"-"`
	MasterImage   *media.Image `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Translations []ContentTranslation `gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE;" json:"-"`
}

func (Content) TableName() string { return "site_contents" }

func (c Content) Variants() i18n.Variants { return i18n.Collect(c.Translations) }

type ContentTranslation struct {
	ContentID string `gorm:"type:uuid;primaryKey"`
	Lang      string `gorm:"size:10;primaryKey"`

	HeroTitle       string `gorm:"size:200"`
	HeroSubtitle    string `gorm:"size:200"`
	HeroDescription string
	HeroCTAText     string `gorm:"column:hero_cta_text;size:50"`

	MasterTitle             string `gorm:"size:200"`
	MasterSubtitle          string `gorm:"size:200"`
	MasterDescription       string
	MasterDescription2      string `gorm:"column:master_description2"`
	MasterAchievementsTitle string `gorm:"size:100"`
	MasterTechniqueTitle    string `gorm:"size:100"`
	MasterTechniqueDesc     string

	FooterDescription string
	CopyrightText     string `gorm:"size:200"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ContentTranslation) TableName() string { return "site_content_translations" }

func (t ContentTranslation) Language() string { return t.Lang }

func (t ContentTranslation) Fields() map[string]string {
	return map[string]string{
		"hero_title":                t.HeroTitle,
		"hero_subtitle":             t.HeroSubtitle,
		"hero_description":          t.HeroDescription,
		"hero_cta_text":             t.HeroCTAText,
		"master_title":              t.MasterTitle,
		"master_subtitle":           t.MasterSubtitle,
		"master_description":        t.MasterDescription,
		"master_description2":       t.MasterDescription2,
		"master_achievements_title": t.MasterAchievementsTitle,
		"master_technique_title":    t.MasterTechniqueTitle,
		"master_technique_desc":     t.MasterTechniqueDesc,
		"footer_description":        t.FooterDescription,
		"copyright_text":            t.CopyrightText,
	}
}

// ContentFields lists the localized fields of a section in response order.
var ContentFields = []string{
	"hero_title", "hero_subtitle", "hero_description", "hero_cta_text",
	"master_title", "master_subtitle", "master_description", "master_description2",
	"master_achievements_title", "master_technique_title", "master_technique_desc",
	"footer_description", "copyright_text",
}
