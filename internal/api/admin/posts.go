package admin

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"portfolio-cms/internal/api/rest"
	"portfolio-cms/internal/domain/blog"
	"portfolio-cms/internal/domain/core"
	"portfolio-cms/internal/domain/i18n"
	"portfolio-cms/internal/domain/media"
	"portfolio-cms/internal/domain/taxonomy"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const postSlugFallback = "post"

type PostTranslationInput struct {
	Title           string `json:"title" binding:"required,max=200"`
	Content         string `json:"content" binding:"required"`
	Excerpt         string `json:"excerpt"`
	MetaDescription string `json:"meta_description" binding:"max=160"`
}

type PostRequest struct {
	Slug          *string                         `json:"slug" binding:"omitempty,max=200"`
	FeaturedImage *media.Input                    `json:"featured_image"`
	AuthorName    *string                         `json:"author_name" binding:"omitempty,max=100"`
	PublishedAt   *time.Time                      `json:"published_at"`
	IsPublished   *bool                           `json:"is_published"`
	IsFeatured    *bool                           `json:"is_featured"`
	Order         *int                            `json:"order"`
	Categories    []string                        `json:"categories"`
	Translations  map[string]PostTranslationInput `json:"translations" binding:"dive"`
}

func (req PostRequest) apply(p *blog.Post) {
	if req.AuthorName != nil {
		p.AuthorName = strings.TrimSpace(*req.AuthorName)
	}
	if req.PublishedAt != nil {
		t := req.PublishedAt.UTC()
		p.PublishedAt = &t
	}
	p.IsPublished = boolOr(req.IsPublished, p.IsPublished)
	p.IsFeatured = boolOr(req.IsFeatured, p.IsFeatured)
	p.Order = intOr(req.Order, p.Order)
}

// postTranslations converts the payload, deriving a missing excerpt from
// the content.
func postTranslations(id string, in map[string]PostTranslationInput) []blog.PostTranslation {
	rows := make([]blog.PostTranslation, 0, len(in))
	for lang, t := range in {
		excerpt := strings.TrimSpace(t.Excerpt)
		if excerpt == "" {
			excerpt = blog.DeriveExcerpt(t.Content)
		}
		rows = append(rows, blog.PostTranslation{
			PostID:          id,
			Lang:            lang,
			Title:           t.Title,
			Content:         t.Content,
			Excerpt:         excerpt,
			MetaDescription: t.MetaDescription,
		})
	}
	return rows
}

// slugSource picks the title the slug is derived from, preferring the
// languages the fallback chain prefers.
func slugSource(in map[string]PostTranslationInput) string {
	for _, lang := range []string{i18n.Default, i18n.LangEN} {
		if t, ok := in[lang]; ok {
			return t.Title
		}
	}
	langs := make([]string, 0, len(in))
	for lang := range in {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	if len(langs) == 0 {
		return ""
	}
	return in[langs[0]].Title
}

// assignSlug sets p.Slug from an explicit value, or derives one when p has
// none yet. Explicit slugs must be free; derived ones get a suffix.
func assignSlug(tx *gorm.DB, p *blog.Post, explicit *string, langs map[string]PostTranslationInput) error {
	if explicit != nil && strings.TrimSpace(*explicit) != "" {
		slug := core.MakeSlug(*explicit, "")
		if slug == "" {
			return rest.Invalid("slug", "Enter a valid slug consisting of letters, numbers, underscores or hyphens.")
		}
		free, err := core.UniqueSlug(tx, &blog.Post{}, slug, p.ID)
		if err != nil {
			return err
		}
		if free != slug {
			return rest.Invalid("slug", "post with this slug already exists.")
		}
		p.Slug = slug
		return nil
	}
	if p.Slug != "" {
		return nil
	}
	slug, err := core.UniqueSlug(tx, &blog.Post{}, core.MakeSlug(slugSource(langs), postSlugFallback), p.ID)
	if err != nil {
		return err
	}
	p.Slug = slug
	return nil
}

func (h *Handler) savePost(p *blog.Post, req PostRequest, langs map[string]PostTranslationInput, load func(tx *gorm.DB) error) error {
	return h.db.Transaction(func(tx *gorm.DB) error {
		if load != nil {
			if err := load(tx); err != nil {
				return err
			}
		}
		req.apply(p)
		if err := assignSlug(tx, p, req.Slug, langs); err != nil {
			return err
		}

		var err error
		if p.FeaturedImageID, err = media.Save(tx, p.FeaturedImageID, req.FeaturedImage); err != nil {
			return err
		}
		if err := tx.Omit("FeaturedImage", "Translations", "CategoryLinks", "ViewCount").Save(p).Error; err != nil {
			return err
		}
		if err := upsertTranslations(tx, "post_id", postTranslations(p.ID, langs)); err != nil {
			return err
		}
		return replaceCategoryLinks(tx, "post_id", p.ID, taxonomy.TypeBlog, req.Categories,
			func(categoryID string) blog.PostCategory {
				return blog.PostCategory{PostID: p.ID, CategoryID: categoryID}
			})
	})
}

// ------------------------------
// POST /posts/
// ------------------------------
func (h *Handler) CreatePost(c *gin.Context) {
	var req PostRequest
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

	p := blog.Post{}
	p.IsPublished = true
	if err := h.savePost(&p, req, langs, nil); err != nil {
		rest.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, postSavedResponse{ID: p.ID, Slug: p.Slug})
}

// ------------------------------
// PUT /posts/:id/
// ------------------------------
func (h *Handler) UpdatePost(c *gin.Context) {
	var req PostRequest
	if !rest.BindJSON(c, &req) {
		return
	}
	langs, err := normalizeLangs(req.Translations)
	if err != nil {
		rest.Fail(c, err)
		return
	}

	var p blog.Post
	err = h.savePost(&p, req, langs, func(tx *gorm.DB) error { return loadByID(tx, c, &p) })
	if err != nil {
		rest.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, postSavedResponse{ID: p.ID, Slug: p.Slug})
}

// ------------------------------
// DELETE /posts/:id/
// ------------------------------
func (h *Handler) DeletePost(c *gin.Context) {
	if err := h.deleteByID(c, &blog.Post{}); err != nil {
		rest.Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type postSavedResponse struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
}
