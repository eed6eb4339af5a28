package admin

import (
	"net/http"

	"portfolio-cms/internal/api/rest"
	"portfolio-cms/internal/domain/media"
	"portfolio-cms/internal/domain/taxonomy"
	"portfolio-cms/internal/domain/works"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ArtworkTranslationInput struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	Technique   string `json:"technique" binding:"max=200"`
}

type ArtworkRequest struct {
	MainImage    *media.Input                       `json:"main_image"`
	Thumbnail    *media.Input                       `json:"thumbnail"`
	Medium       *string                            `json:"medium" binding:"omitempty,max=100"`
	Dimensions   *string                            `json:"dimensions" binding:"omitempty,max=100"`
	YearCreated  *int                               `json:"year_created" binding:"omitempty,min=1,max=9999"`
	IsPublished  *bool                              `json:"is_published"`
	IsFeatured   *bool                              `json:"is_featured"`
	Order        *int                               `json:"order"`
	Categories   []string                           `json:"categories"`
	Translations map[string]ArtworkTranslationInput `json:"translations" binding:"dive"`
}

func (req ArtworkRequest) apply(a *works.Artwork) {
	if req.Medium != nil {
		a.Medium = *req.Medium
	}
	if req.Dimensions != nil {
		a.Dimensions = *req.Dimensions
	}
	if req.YearCreated != nil {
		a.YearCreated = req.YearCreated
	}
	a.IsPublished = boolOr(req.IsPublished, a.IsPublished)
	a.IsFeatured = boolOr(req.IsFeatured, a.IsFeatured)
	a.Order = intOr(req.Order, a.Order)
}

func artworkTranslations(id string, in map[string]ArtworkTranslationInput) []works.ArtworkTranslation {
	rows := make([]works.ArtworkTranslation, 0, len(in))
	for lang, t := range in {
		rows = append(rows, works.ArtworkTranslation{
			ArtworkID: id, Lang: lang, Title: t.Title, Description: t.Description, Technique: t.Technique,
		})
	}
	return rows
}

// saveArtwork writes a and everything hanging off it in one transaction.
func (h *Handler) saveArtwork(a *works.Artwork, req ArtworkRequest, langs map[string]ArtworkTranslationInput, load func(tx *gorm.DB) error) error {
	return h.db.Transaction(func(tx *gorm.DB) error {
		if load != nil {
			if err := load(tx); err != nil {
				return err
			}
		}
		req.apply(a)

		var err error
		if a.MainImageID, err = media.Save(tx, a.MainImageID, req.MainImage); err != nil {
			return err
		}
		if a.ThumbnailID, err = media.Save(tx, a.ThumbnailID, req.Thumbnail); err != nil {
			return err
		}
		if err := tx.Omit("MainImage", "Thumbnail", "Translations", "CategoryLinks").Save(a).Error; err != nil {
			return err
		}
		if err := upsertTranslations(tx, "artwork_id", artworkTranslations(a.ID, langs)); err != nil {
			return err
		}
		return replaceCategoryLinks(tx, "artwork_id", a.ID, taxonomy.TypeArtwork, req.Categories,
			func(categoryID string) works.ArtworkCategory {
				return works.ArtworkCategory{ArtworkID: a.ID, CategoryID: categoryID}
			})
	})
}

// ------------------------------
// POST /artworks/
// ------------------------------
func (h *Handler) CreateArtwork(c *gin.Context) {
	var req ArtworkRequest
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

	a := works.Artwork{}
	a.IsPublished = true
	if err := h.saveArtwork(&a, req, langs, nil); err != nil {
		rest.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, createdResponse{ID: a.ID})
}

// ------------------------------
// PUT /artworks/:id/
// ------------------------------
func (h *Handler) UpdateArtwork(c *gin.Context) {
	var req ArtworkRequest
	if !rest.BindJSON(c, &req) {
		return
	}
	langs, err := normalizeLangs(req.Translations)
	if err != nil {
		rest.Fail(c, err)
		return
	}

	var a works.Artwork
	err = h.saveArtwork(&a, req, langs, func(tx *gorm.DB) error { return loadByID(tx, c, &a) })
	if err != nil {
		rest.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, createdResponse{ID: a.ID})
}

// ------------------------------
// DELETE /artworks/:id/
// ------------------------------
func (h *Handler) DeleteArtwork(c *gin.Context) {
	if err := h.deleteByID(c, &works.Artwork{}); err != nil {
		rest.Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
