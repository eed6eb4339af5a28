package common

import (
	"errors"
	"fmt"
	"net/http"

	"portfolio-cms/internal/api/rest"
	"portfolio-cms/internal/domain/site"
	"portfolio-cms/internal/domain/taxonomy"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	db   *gorm.DB
	opts rest.Options
}

func NewHandler(db *gorm.DB, opts rest.Options) *Handler {
	return &Handler{db: db, opts: opts}
}

// Register mounts the category, site content and achievement routes under rg.
func (h *Handler) Register(rg *gin.RouterGroup) {
	cats := rg.Group("/categories")
	cats.GET("/", h.ListCategories)
	cats.GET("/artwork_categories/", h.typedCategories(taxonomy.TypeArtwork))
	cats.GET("/blog_categories/", h.typedCategories(taxonomy.TypeBlog))
	cats.GET("/:id/", h.GetCategory)

	rg.GET("/site-content/", h.ListSiteContent)
	rg.GET("/site-content/:section/", h.GetSiteContent)

	rg.GET("/achievements/", h.ListAchievements)
}

var categoryOrdering = map[string]string{
	"order":      "sort_order",
	"created_at": "created_at",
}

func activeCategories(db *gorm.DB) *gorm.DB {
	return db.Model(&taxonomy.Category{}).Where("categories.is_active = ?", true)
}

func withTranslations(db *gorm.DB) *gorm.DB { return db.Preload("Translations") }

// GET /categories/
func (h *Handler) ListCategories(c *gin.Context) {
	q := activeCategories(h.db)
	for _, key := range []string{"type", "category_type"} {
		if t := c.Query(key); t != "" {
			q = q.Where("category_type = ?", t)
		}
	}
	if s := c.Query("search"); s != "" {
		like := rest.Like(s)
		q = q.Where("(LOWER(categories.slug) LIKE ? OR categories.id IN (?))", like,
			h.db.Session(&gorm.Session{NewDB: true}).Model(&taxonomy.CategoryTranslation{}).Select("category_id").
				Where("LOWER(name) LIKE ?", like))
	}
	q = q.Order(rest.Ordering(c, categoryOrdering, taxonomy.DefaultOrder))

	list, page, count, err := rest.Paginate[taxonomy.Category](c, q, h.opts.Size(), withTranslations)
	if err != nil {
		rest.Fail(c, err)
		return
	}
	out := make([]CategoryDTO, 0, len(list))
	for _, cat := range list {
		out = append(out, toCategoryDTO(c, cat))
	}
	c.JSON(http.StatusOK, rest.NewPage(c, page, count, out))
}

// typedCategories lists every active category of type t, unpaginated.
func (h *Handler) typedCategories(t taxonomy.Type) gin.HandlerFunc {
	return func(c *gin.Context) {
		var list []taxonomy.Category
		if err := taxonomy.Active(h.db, t).Scopes(withTranslations).Order(taxonomy.DefaultOrder).Find(&list).Error; err != nil {
			rest.Fail(c, fmt.Errorf("load %s categories: %w", t, err))
			return
		}
		out := make([]CategoryDTO, 0, len(list))
		for _, cat := range list {
			out = append(out, toCategoryDTO(c, cat))
		}
		c.JSON(http.StatusOK, out)
	}
}

// GET /categories/:id/
func (h *Handler) GetCategory(c *gin.Context) {
	id := c.Param("id")
	if !rest.ValidID(id) {
		rest.NotFound(c)
		return
	}
	var cat taxonomy.Category
	if err := activeCategories(h.db).Scopes(withTranslations).First(&cat, "categories.id = ?", id).Error; err != nil {
		rest.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toCategoryDTO(c, cat))
}

func siteContentQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&site.Content{}).
		Where("is_active = ?", true).
		Preload("Translations").
		Preload("HeroImage").
		Preload("MasterImage")
}

// GET /site-content/
func (h *Handler) ListSiteContent(c *gin.Context) {
	var list []site.Content
	if err := siteContentQuery(h.db).Order("section ASC").Find(&list).Error; err != nil {
		rest.Fail(c, fmt.Errorf("load site content: %w", err))
		return
	}
	out := make([]SiteContentDTO, 0, len(list))
	for _, sc := range list {
		out = append(out, h.toSiteContentDTO(c, sc))
	}
	c.JSON(http.StatusOK, out)
}

// GET /site-content/:section/
func (h *Handler) GetSiteContent(c *gin.Context) {
	section := site.Section(c.Param("section"))
	if !section.Valid() {
		rest.Detail(c, http.StatusNotFound, fmt.Sprintf("Section %q does not exist.", section))
		return
	}

	var sc site.Content
	err := siteContentQuery(h.db).First(&sc, "section = ?", section).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rest.Detail(c, http.StatusNotFound, fmt.Sprintf("Section %q is not available.", section))
		return
	}
	if err != nil {
		rest.Fail(c, fmt.Errorf("load site content %s: %w", section, err))
		return
	}
	c.JSON(http.StatusOK, h.toSiteContentDTO(c, sc))
}

func (h *Handler) toSiteContentDTO(c *gin.Context, sc site.Content) SiteContentDTO {
	return SiteContentDTO{
		ID:             sc.ID,
		Section:        string(sc.Section),
		SectionDisplay: sc.Section.Display(),
		IsActive:       sc.IsActive,
		HeroImageURL:   h.opts.MediaURL(c, sc.HeroImage),
		MasterImageURL: h.opts.MediaURL(c, sc.MasterImage),
		Translations:   sc.Variants().ResolveAll(rest.Lang(c), site.ContentFields...),
		CreatedAt:      sc.CreatedAt,
		UpdatedAt:      sc.UpdatedAt,
	}
}

// GET /achievements/
func (h *Handler) ListAchievements(c *gin.Context) {
	q := h.db.Model(&site.Achievement{}).Where("is_active = ?", true).Order(site.AchievementOrder)

	list, page, count, err := rest.Paginate[site.Achievement](c, q, h.opts.Size(), withTranslations)
	if err != nil {
		rest.Fail(c, err)
		return
	}
	lang := rest.Lang(c)
	out := make([]AchievementDTO, 0, len(list))
	for _, a := range list {
		out = append(out, AchievementDTO{
			ID:           a.ID,
			Year:         a.Year,
			Order:        a.Order,
			IsActive:     a.IsActive,
			Translations: a.Variants().ResolveAll(lang, "title", "description"),
		})
	}
	c.JSON(http.StatusOK, rest.NewPage(c, page, count, out))
}
