package contact

import (
	"time"

	"portfolio-cms/internal/domain/core"
	"portfolio-cms/internal/domain/i18n"

	"gorm.io/gorm"
)

const DefaultCompanyName = "慧繡雅集"

// Info is the studio's contact card. Exactly one row may exist.
type Info struct {
	core.Model
	core.Singleton

	Phone         string   `gorm:"size:20" json:"phone"`
	Email         string   `json:"email"`
	Address       string   `json:"address"`
	BusinessHours string   `json:"business_hours"`
	Latitude      *float64 `gorm:"type:decimal(10,7)" json:"latitude"`
	Longitude     *float64 `gorm:"type:decimal(10,7)" json:"longitude"`

	Translations []InfoTranslation `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}

func (Info) TableName() string { return "contact_info" }

func (i Info) Variants() i18n.Variants { return i18n.Collect(i.Translations) }

func (i *Info) BeforeCreate(tx *gorm.DB) error {
	if err := core.GuardCreate(tx, &Info{}); err != nil {
		return err
	}
	return i.Model.BeforeCreate(tx)
}

func (i *Info) BeforeDelete(tx *gorm.DB) error {
	return core.ErrSingletonUndeletable
}

type InfoTranslation struct {
	InfoID      string `gorm:"type:uuid;primaryKey"`
	Lang        string `gorm:"size:10;primaryKey"`
	CompanyName string `gorm:"size:100;not null"`
	Description string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (InfoTranslation) TableName() string { return "contact_info_translations" }

func (t InfoTranslation) Language() string { return t.Lang }

func (t InfoTranslation) Fields() map[string]string {
	return map[string]string{"company_name": t.CompanyName, "description": t.Description}
}
