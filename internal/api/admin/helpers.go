package admin

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"portfolio-cms/internal/api/rest"
	"portfolio-cms/internal/domain/core"
	"portfolio-cms/internal/domain/taxonomy"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var langCode = regexp.MustCompile(`^[a-z]{2,3}(-[a-z0-9]{2,4})?$`)

// normalizeLangs lowercases the language keys of a translations payload and
// rejects anything that is not a language code.
func normalizeLangs[T any](in map[string]T) (map[string]T, error) {
	out := make(map[string]T, len(in))
	for k, v := range in {
		lang := strings.ToLower(strings.TrimSpace(k))
		if !langCode.MatchString(lang) {
			return nil, rest.Invalid("translations", fmt.Sprintf("%q is not a valid language code.", k))
		}
		out[lang] = v
	}
	return out, nil
}

func requireTranslations[T any](in map[string]T) error {
	if len(in) == 0 {
		return rest.Invalid("translations", "This field is required.")
	}
	return nil
}

// upsertTranslations writes rows, replacing any existing variant with the
// same (owner, language) key.
func upsertTranslations[T any](tx *gorm.DB, ownerColumn string, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: ownerColumn}, {Name: "lang"}},
		UpdateAll: true,
	}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("upsert translations: %w", err)
	}
	return nil
}

// replaceCategoryLinks points the owner at exactly the categories named by
// slugs, all of which must be of type t. A nil slugs leaves links alone.
func replaceCategoryLinks[L any](tx *gorm.DB, ownerColumn, ownerID string, t taxonomy.Type, slugs []string, link func(categoryID string) L) error {
	if slugs == nil {
		return nil
	}

	var cats []taxonomy.Category
	if len(slugs) > 0 {
		if err := tx.Where("slug IN ?", slugs).Find(&cats).Error; err != nil {
			return fmt.Errorf("load categories: %w", err)
		}
	}
	byType := map[taxonomy.Type]map[string]string{}
	for _, cat := range cats {
		if byType[cat.CategoryType] == nil {
			byType[cat.CategoryType] = map[string]string{}
		}
		byType[cat.CategoryType][cat.Slug] = cat.ID
	}

	seen := map[string]bool{}
	links := make([]L, 0, len(slugs))
	for _, slug := range slugs {
		id, ok := byType[t][slug]
		if !ok {
			for other := range byType {
				if _, found := byType[other][slug]; found {
					return fmt.Errorf("category %q is a %s category: %w", slug, other, core.ErrCategoryType)
				}
			}
			return rest.Invalid("categories", fmt.Sprintf("Unknown category %q.", slug))
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		links = append(links, link(id))
	}

	var zero L
	if err := tx.Where(ownerColumn+" = ?", ownerID).Delete(&zero).Error; err != nil {
		return fmt.Errorf("clear category links: %w", err)
	}
	if len(links) == 0 {
		return nil
	}
	if err := tx.Create(&links).Error; err != nil {
		return fmt.Errorf("create category links: %w", err)
	}
	return nil
}

// deleteByID removes the row of model with the :id parameter.
func (h *Handler) deleteByID(c *gin.Context, model any) error {
	id := c.Param("id")
	if !rest.ValidID(id) {
		return core.ErrNotFound
	}
	res := h.db.Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return core.ErrNotFound
	}
	return nil
}

// loadByID fetches the row with the :id parameter into dst.
func loadByID(tx *gorm.DB, c *gin.Context, dst any) error {
	id := c.Param("id")
	if !rest.ValidID(id) {
		return core.ErrNotFound
	}
	err := tx.First(dst, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return core.ErrNotFound
	}
	return err
}

func boolOr(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func intOr(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
