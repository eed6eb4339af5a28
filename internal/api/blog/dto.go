package blog

import (
	"time"

	"portfolio-cms/internal/api/common"
	"portfolio-cms/internal/api/rest"
	"portfolio-cms/internal/domain/blog"

	"github.com/gin-gonic/gin"
)

type PostListDTO struct {
	ID               string            `json:"id"`
	Slug             string            `json:"slug"`
	FeaturedImageURL *string           `json:"featured_image_url"`
	AuthorName       string            `json:"author_name"`
	IsFeatured       bool              `json:"is_featured"`
	PublishedAt      *time.Time        `json:"published_at"`
	ViewCount        int               `json:"view_count"`
	ReadingTime      int               `json:"reading_time"`
	Translations     map[string]string `json:"translations"`
}

type PostDTO struct {
	ID               string                  `json:"id"`
	Slug             string                  `json:"slug"`
	FeaturedImageURL *string                 `json:"featured_image_url"`
	AuthorName       string                  `json:"author_name"`
	IsFeatured       bool                    `json:"is_featured"`
	IsPublished      bool                    `json:"is_published"`
	PublishedAt      *time.Time              `json:"published_at"`
	ViewCount        int                     `json:"view_count"`
	ReadingTime      int                     `json:"reading_time"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
	Categories       []common.CategorySimple `json:"categories"`
	Translations     map[string]string       `json:"translations"`
}

type PostDetailDTO struct {
	PostDTO
	RelatedPosts []PostListDTO `json:"related_posts"`
}

type SettingsDTO struct {
	SiteName      string `json:"site_name"`
	PostsPerPage  int    `json:"posts_per_page"`
	AllowComments bool   `json:"allow_comments"`
}

func toSettingsDTO(s blog.Settings) SettingsDTO {
	return SettingsDTO{SiteName: s.SiteName, PostsPerPage: s.PostsPerPage, AllowComments: s.AllowComments}
}

func (h *Handler) toListDTO(c *gin.Context, p blog.Post) PostListDTO {
	tr := p.Variants().ResolveAll(rest.Lang(c), blog.TranslatedFields...)
	return PostListDTO{
		ID:               p.ID,
		Slug:             p.Slug,
		FeaturedImageURL: h.opts.MediaURL(c, p.FeaturedImage),
		AuthorName:       p.AuthorName,
		IsFeatured:       p.IsFeatured,
		PublishedAt:      p.PublishedAt,
		ViewCount:        p.ViewCount,
		ReadingTime:      blog.ReadingTime(tr["content"]),
		Translations:     tr,
	}
}

func (h *Handler) toListDTOs(c *gin.Context, list []blog.Post) []PostListDTO {
	out := make([]PostListDTO, 0, len(list))
	for _, p := range list {
		out = append(out, h.toListDTO(c, p))
	}
	return out
}

func (h *Handler) toDTO(c *gin.Context, p blog.Post) PostDTO {
	tr := p.Variants().ResolveAll(rest.Lang(c), blog.TranslatedFields...)
	return PostDTO{
		ID:               p.ID,
		Slug:             p.Slug,
		FeaturedImageURL: h.opts.MediaURL(c, p.FeaturedImage),
		AuthorName:       p.AuthorName,
		IsFeatured:       p.IsFeatured,
		IsPublished:      p.IsPublished,
		PublishedAt:      p.PublishedAt,
		ViewCount:        p.ViewCount,
		ReadingTime:      blog.ReadingTime(tr["content"]),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
		Categories:       common.ToCategorySimple(c, p.ActiveCategories()),
		Translations:     tr,
	}
}

func (h *Handler) toDTOs(c *gin.Context, list []blog.Post) []PostDTO {
	out := make([]PostDTO, 0, len(list))
	for _, p := range list {
		out = append(out, h.toDTO(c, p))
	}
	return out
}
