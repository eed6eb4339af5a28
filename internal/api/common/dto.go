package common

import (
	"time"

	"portfolio-cms/internal/api/rest"
	"portfolio-cms/internal/domain/taxonomy"

	"github.com/gin-gonic/gin"
)

// CategorySimple is the compact category embedded in content responses.
type CategorySimple struct {
	ID           string        `json:"id"`
	Slug         string        `json:"slug"`
	Name         string        `json:"name"`
	CategoryType taxonomy.Type `json:"category_type"`
}

type CategoryDTO struct {
	ID                  string            `json:"id"`
	Slug                string            `json:"slug"`
	CategoryType        taxonomy.Type     `json:"category_type"`
	CategoryTypeDisplay string            `json:"category_type_display"`
	Order               int               `json:"order"`
	IsActive            bool              `json:"is_active"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
	Translations        map[string]string `json:"translations"`
}

type SiteContentDTO struct {
	ID             string            `json:"id"`
	Section        string            `json:"section"`
	SectionDisplay string            `json:"section_display"`
	IsActive       bool              `json:"is_active"`
	HeroImageURL   *string           `json:"hero_image_url"`
	MasterImageURL *string           `json:"master_image_url"`
	Translations   map[string]string `json:"translations"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

type AchievementDTO struct {
	ID           string            `json:"id"`
	Year         *int              `json:"year"`
	Order        int               `json:"order"`
	IsActive     bool              `json:"is_active"`
	Translations map[string]string `json:"translations"`
}

// ToCategorySimple resolves cats in the request language.
func ToCategorySimple(c *gin.Context, cats []taxonomy.Category) []CategorySimple {
	lang := rest.Lang(c)
	out := make([]CategorySimple, 0, len(cats))
	for _, cat := range cats {
		out = append(out, CategorySimple{
			ID:           cat.ID,
			Slug:         cat.Slug,
			Name:         cat.Variants().Resolve("name", lang),
			CategoryType: cat.CategoryType,
		})
	}
	return out
}

func toCategoryDTO(c *gin.Context, cat taxonomy.Category) CategoryDTO {
	return CategoryDTO{
		ID:                  cat.ID,
		Slug:                cat.Slug,
		CategoryType:        cat.CategoryType,
		CategoryTypeDisplay: cat.CategoryType.Display(),
		Order:               cat.Order,
		IsActive:            cat.IsActive,
		CreatedAt:           cat.CreatedAt,
		UpdatedAt:           cat.UpdatedAt,
		Translations:        cat.Variants().ResolveAll(rest.Lang(c), "name", "description"),
	}
}
