package blog

import (
	"fmt"
	"time"

	"portfolio-cms/internal/domain/core"
	"portfolio-cms/internal/domain/i18n"
	"portfolio-cms/internal/domain/media"
	"portfolio-cms/internal/domain/taxonomy"

	"gorm.io/gorm"
)

const (
	DefaultAuthor     = "慧繡雅集"
	FeaturedLimit     = 5
	LatestLimit       = 10
	PopularLimit      = 10
	RelatedLimit      = 5
	CategoryJoinTable = "post_categories"
)

// DefaultOrder is the public post list order.
const DefaultOrder = "is_featured DESC, published_at DESC, created_at DESC"

type Post struct {
	core.Model
	core.Publishable

	Slug        string     `gorm:"size:200;not null;uniqueIndex" json:"slug"`
	PublishedAt *time.Time `gorm:"index" json:"published_at"`

	FeaturedImageID *string      `gorm:"type:uuid" json:"-"`
	FeaturedImage   *media.Image `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	AuthorName string `gorm:"size:100;not null" json:"author_name"`
	ViewCount  int    `gorm:"not null;default:0" json:"view_count"`

	Translations  []PostTranslation `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	CategoryLinks []PostCategory    `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}

// BeforeSave stamps the publish time the first time a post is saved as
// published, and fills the default author.
func (p *Post) BeforeSave(tx *gorm.DB) error {
	if p.IsPublished && p.PublishedAt == nil {
		now := tx.NowFunc()
		p.PublishedAt = &now
	}
	if p.AuthorName == "" {
		p.AuthorName = DefaultAuthor
	}
	return nil
}

func (p Post) Variants() i18n.Variants { return i18n.Collect(p.Translations) }

func (p Post) CategoryIDs() []string {
	ids := make([]string, 0, len(p.CategoryLinks))
	for _, l := range p.CategoryLinks {
		ids = append(ids, l.CategoryID)
	}
	return ids
}

func (p Post) ActiveCategories() []taxonomy.Category {
	out := make([]taxonomy.Category, 0, len(p.CategoryLinks))
	for _, l := range p.CategoryLinks {
		if l.Category != nil && l.Category.IsActive {
			out = append(out, *l.Category)
		}
	}
	return out
}

// PostCategory links one post to one blog-type category.
type PostCategory struct {
	PostID     string             `gorm:"type:uuid;primaryKey"`
	CategoryID string             `gorm:"type:uuid;primaryKey;index"`
	Category   *taxonomy.Category `gorm:"constraint:OnDelete:CASCADE;"`
}

type PostTranslation struct {
	PostID          string `gorm:"type:uuid;primaryKey"`
	Lang            string `gorm:"size:10;primaryKey"`
	Title           string `gorm:"size:200;not null"`
	Content         string `gorm:"not null"`
	Excerpt         string
	MetaDescription string `gorm:"size:160"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t PostTranslation) Language() string { return t.Lang }

func (t PostTranslation) Fields() map[string]string {
	return map[string]string{
		"title":            t.Title,
		"content":          t.Content,
		"excerpt":          t.Excerpt,
		"meta_description": t.MetaDescription,
	}
}

var TranslatedFields = []string{"title", "content", "excerpt", "meta_description"}

// IncrementViews adds one to the view count of post id in a single UPDATE.
// No other column changes and updated_at is left alone.
func IncrementViews(db *gorm.DB, id string) error {
	err := db.Model(&Post{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
	if err != nil {
		return fmt.Errorf("increment views of %s: %w", id, err)
	}
	return nil
}
