package artworks

import (
	"time"

	"portfolio-cms/internal/api/common"
	"portfolio-cms/internal/api/rest"
	"portfolio-cms/internal/domain/works"

	"github.com/gin-gonic/gin"
)

// ArtworkListDTO is the compact artwork used by paginated lists.
type ArtworkListDTO struct {
	ID           string            `json:"id"`
	ThumbnailURL *string           `json:"thumbnail_url"`
	YearCreated  *int              `json:"year_created"`
	IsFeatured   bool              `json:"is_featured"`
	Translations map[string]string `json:"translations"`
}

type ArtworkDTO struct {
	ID           string                  `json:"id"`
	MainImageURL *string                 `json:"main_image_url"`
	ThumbnailURL *string                 `json:"thumbnail_url"`
	Medium       string                  `json:"medium"`
	Dimensions   string                  `json:"dimensions"`
	YearCreated  *int                    `json:"year_created"`
	IsFeatured   bool                    `json:"is_featured"`
	IsPublished  bool                    `json:"is_published"`
	Order        int                     `json:"order"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
	Categories   []common.CategorySimple `json:"categories"`
	Translations map[string]string       `json:"translations"`
}

type ArtworkDetailDTO struct {
	ArtworkDTO
	RelatedArtworks []ArtworkListDTO `json:"related_artworks"`
}

type YearGroupDTO struct {
	Year     int          `json:"year"`
	Artworks []ArtworkDTO `json:"artworks"`
}

func (h *Handler) toListDTO(c *gin.Context, a works.Artwork) ArtworkListDTO {
	return ArtworkListDTO{
		ID:           a.ID,
		ThumbnailURL: h.opts.MediaURL(c, a.ThumbnailOrMain()),
		YearCreated:  a.YearCreated,
		IsFeatured:   a.IsFeatured,
		Translations: a.Variants().ResolveAll(rest.Lang(c), works.TranslatedFields...),
	}
}

func (h *Handler) toListDTOs(c *gin.Context, list []works.Artwork) []ArtworkListDTO {
	out := make([]ArtworkListDTO, 0, len(list))
	for _, a := range list {
		out = append(out, h.toListDTO(c, a))
	}
	return out
}

func (h *Handler) toDTO(c *gin.Context, a works.Artwork) ArtworkDTO {
	return ArtworkDTO{
		ID:           a.ID,
		MainImageURL: h.opts.MediaURL(c, a.MainImage),
		ThumbnailURL: h.opts.MediaURL(c, a.ThumbnailOrMain()),
		Medium:       a.Medium,
		Dimensions:   a.Dimensions,
		YearCreated:  a.YearCreated,
		IsFeatured:   a.IsFeatured,
		IsPublished:  a.IsPublished,
		Order:        a.Order,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
		Categories:   common.ToCategorySimple(c, a.ActiveCategories()),
		Translations: a.Variants().ResolveAll(rest.Lang(c), works.TranslatedFields...),
	}
}

func (h *Handler) toDTOs(c *gin.Context, list []works.Artwork) []ArtworkDTO {
	out := make([]ArtworkDTO, 0, len(list))
	for _, a := range list {
		out = append(out, h.toDTO(c, a))
	}
	return out
}
