package admin

import (
	"net/http"
	"strings"

	"portfolio-cms/internal/api/rest"
	"portfolio-cms/internal/domain/taxonomy"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryTranslationInput struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

type CategoryRequest struct {
	Slug         string                              `json:"slug" binding:"required,max=100"`
	CategoryType taxonomy.Type                       `json:"category_type" binding:"omitempty,oneof=artwork blog"`
	Order        *int                                `json:"order"`
	IsActive     *bool                               `json:"is_active"`
	Translations map[string]CategoryTranslationInput `json:"translations" binding:"dive"`
}

func categoryTranslations(id string, in map[string]CategoryTranslationInput) []taxonomy.CategoryTranslation {
	rows := make([]taxonomy.CategoryTranslation, 0, len(in))
	for lang, t := range in {
		rows = append(rows, taxonomy.CategoryTranslation{
			CategoryID: id, Lang: lang, Name: t.Name, Description: t.Description,
		})
	}
	return rows
}

// ------------------------------
// POST /categories/
// ------------------------------
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if !rest.BindJSON(c, &req) {
		return
	}
	langs, err := normalizeLangs(req.Translations)
	if err == nil {
		err = requireTranslations(langs)
	}
	if err != nil {
		rest.Fail(c, err)
		return
	}

	cat := taxonomy.Category{
		Slug:         strings.TrimSpace(req.Slug),
		CategoryType: req.CategoryType,
		Order:        intOr(req.Order, 0),
		IsActive:     boolOr(req.IsActive, true),
	}
	if cat.CategoryType == "" {
		cat.CategoryType = taxonomy.TypeArtwork
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&cat).Error; err != nil {
			return err
		}
		return upsertTranslations(tx, "category_id", categoryTranslations(cat.ID, langs))
	})
	if err != nil {
		rest.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, createdResponse{ID: cat.ID})
}

// ------------------------------
// PUT /categories/:id/
// ------------------------------
func (h *Handler) UpdateCategory(c *gin.Context) {
	var req CategoryRequest
	if !rest.BindJSON(c, &req) {
		return
	}
	langs, err := normalizeLangs(req.Translations)
	if err != nil {
		rest.Fail(c, err)
		return
	}

	var cat taxonomy.Category
	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := loadByID(tx, c, &cat); err != nil {
			return err
		}
		cat.Slug = strings.TrimSpace(req.Slug)
		if req.CategoryType != "" {
			cat.CategoryType = req.CategoryType
		}
		cat.Order = intOr(req.Order, cat.Order)
		cat.IsActive = boolOr(req.IsActive, cat.IsActive)
		if err := tx.Save(&cat).Error; err != nil {
			return err
		}
		return upsertTranslations(tx, "category_id", categoryTranslations(cat.ID, langs))
	})
	if err != nil {
		rest.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, createdResponse{ID: cat.ID})
}

// ------------------------------
// DELETE /categories/:id/
// ------------------------------
func (h *Handler) DeleteCategory(c *gin.Context) {
	if err := h.deleteByID(c, &taxonomy.Category{}); err != nil {
		rest.Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
