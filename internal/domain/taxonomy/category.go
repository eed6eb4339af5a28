package taxonomy

import (
	"time"

	"portfolio-cms/internal/domain/core"
	"portfolio-cms/internal/domain/i18n"

	"gorm.io/gorm"
)

// Type partitions the shared category table. Every query over categories
// filters on it; slugs are only unique within one type.
type Type string

const (
	TypeArtwork Type = "artwork"
	TypeBlog    Type = "blog"
)

// Display is the admin label of the type.
func (t Type) Display() string {
	switch t {
	case TypeArtwork:
		return "作品分類"
	case TypeBlog:
		return "文章分類"
	}
	return string(t)
}

type Category struct {
	core.Model
	Slug         string `gorm:"size:100;not null;uniqueIndex:idx_categories_slug_type,priority:1" json:"slug"`
	CategoryType Type   `gorm:"type:varchar(20);not null;default:'artwork';uniqueIndex:idx_categories_slug_type,priority:2;index" json:"category_type"`
	Order        int    `gorm:"column:sort_order;not null;default:0" json:"order"`
	IsActive     bool   `gorm:"not null;index" json:"is_active"`

	Translations []CategoryTranslation `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}

type CategoryTranslation struct {
	CategoryID  string `gorm:"type:uuid;primaryKey"`
	Lang        string `gorm:"size:10;primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Description string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t CategoryTranslation) Language() string { return t.Lang }

func (t CategoryTranslation) Fields() map[string]string {
	return map[string]string{"name": t.Name, "description": t.Description}
}

func (c Category) Variants() i18n.Variants { return i18n.Collect(c.Translations) }

// DefaultOrder is the category list order.
const DefaultOrder = "category_type ASC, sort_order ASC, created_at ASC"

// Active scopes a query to active categories of type t.
func Active(db *gorm.DB, t Type) *gorm.DB {
	return db.Model(&Category{}).Where("category_type = ? AND is_active = ?", t, true)
}

// LinkedContent returns a subquery selecting contentColumn from joinTable for
// content linked to the active category (slug, t). Callers use it as
// `id IN (?)`. Slug alone is never enough: the same slug may exist under the
// other type.
func LinkedContent(db *gorm.DB, joinTable, contentColumn, slug string, t Type) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true}).
		Table(joinTable+" AS l").
		Select("l."+contentColumn).
		Joins("JOIN categories c ON c.id = l.category_id").
		Where("c.slug = ? AND c.category_type = ? AND c.is_active = ?", slug, t, true)
}
