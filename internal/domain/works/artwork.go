package works

import (
	"portfolio-cms/internal/domain/core"
	"portfolio-cms/internal/domain/i18n"
	"portfolio-cms/internal/domain/media"
	"portfolio-cms/internal/domain/taxonomy"
)

const (
	FeaturedLimit     = 6
	LatestLimit       = 10
	RelatedLimit      = 6
	DetailRelated     = 5
	ByYearYears       = 10
	ByYearPerYear     = 5
	CategoryJoinTable = "artwork_categories"
)

type Artwork struct {
	core.Model
	core.Publishable

	MainImageID *string      `gorm:"type:uuid" json:"-"`
	MainImage   *media.Image `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
	ThumbnailID *string      `gorm:"type:uuid" json:"-"`
	Thumbnail   *media.Image `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Medium      string `gorm:"size:100" json:"medium"`
	Dimensions  string `gorm:"size:100" json:"dimensions"`
	YearCreated *int   `gorm:"index" json:"year_created"`

	Translations  []ArtworkTranslation `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	CategoryLinks []ArtworkCategory    `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}

func (a Artwork) Variants() i18n.Variants { return i18n.Collect(a.Translations) }

// ThumbnailOrMain falls back to the main image when no thumbnail was set.
func (a Artwork) ThumbnailOrMain() *media.Image {
	if a.Thumbnail != nil {
		return a.Thumbnail
	}
	return a.MainImage
}

// CategoryIDs lists the ids of every linked category.
func (a Artwork) CategoryIDs() []string {
	ids := make([]string, 0, len(a.CategoryLinks))
	for _, l := range a.CategoryLinks {
		ids = append(ids, l.CategoryID)
	}
	return ids
}

// ActiveCategories returns the loaded, active linked categories.
func (a Artwork) ActiveCategories() []taxonomy.Category {
	out := make([]taxonomy.Category, 0, len(a.CategoryLinks))
	for _, l := range a.CategoryLinks {
		if l.Category != nil && l.Category.IsActive {
			out = append(out, *l.Category)
		}
	}
	return out
}

// ArtworkCategory links one artwork to one artwork-type category. The
// composite key keeps each pair unique; deleting either side removes it.
type ArtworkCategory struct {
	ArtworkID  string             `gorm:"type:uuid;primaryKey"`
	CategoryID string             `gorm:"type:uuid;primaryKey;index"`
	Category   *taxonomy.Category `gorm:"constraint:OnDelete:CASCADE;"`
}
