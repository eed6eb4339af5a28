package contact

import (
	"time"

	"portfolio-cms/internal/domain/core"
	"portfolio-cms/internal/domain/i18n"
)

const PopularFAQLimit = 5

type FAQ struct {
	core.Model
	IsActive bool `gorm:"not null" json:"is_active"`
	Order    int  `gorm:"column:sort_order;not null;default:0" json:"order"`

	Translations []FAQTranslation `gorm:"foreignKey:FAQID;constraint:OnDelete:CASCADE;" json:"-"`
}

func (FAQ) TableName() string { return "faqs" }

const FAQOrder = "sort_order ASC, created_at ASC"

func (f FAQ) Variants() i18n.Variants { return i18n.Collect(f.Translations) }

type FAQTranslation struct {
	FAQID    string `gorm:"column:faq_id;type:uuid;primaryKey"`
	Lang     string `gorm:"size:10;primaryKey"`
	Question string `gorm:"size:300;not null"`
	Answer   string `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (FAQTranslation) TableName() string { return "faq_translations" }

func (t FAQTranslation) Language() string { return t.Lang }

func (t FAQTranslation) Fields() map[string]string {
	return map[string]string{"question": t.Question, "answer": t.Answer}
}
