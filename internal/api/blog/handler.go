package blog

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"portfolio-cms/internal/api/rest"
	"portfolio-cms/internal/domain/blog"
	"portfolio-cms/internal/domain/core"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	db   *gorm.DB
	opts rest.Options
	now  func() time.Time
}

func NewHandler(db *gorm.DB, opts rest.Options) *Handler {
	return &Handler{db: db, opts: opts, now: func() time.Time { return time.Now().UTC() }}
}

// Register mounts the post and settings routes under rg.
func (h *Handler) Register(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	posts.GET("/", h.List)
	posts.GET("/featured/", h.Featured)
	posts.GET("/latest/", h.Latest)
	posts.GET("/popular/", h.Popular)
	posts.GET("/archive/", h.Archive)
	posts.GET("/:id/", h.Get)
	posts.GET("/:id/related/", h.Related)

	rg.GET("/settings/current/", h.CurrentSettings)
}

// GET /posts/
func (h *Handler) List(c *gin.Context) {
	q := filtered(c, h.db, h.now()).Order(rest.Ordering(c, orderingFields, blog.DefaultOrder))

	list, page, count, err := rest.Paginate[blog.Post](c, q, h.opts.Size(), withRelations)
	if err != nil {
		rest.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rest.NewPage(c, page, count, h.toListDTOs(c, list)))
}

// GET /posts/:id/ accepts the post id or its slug. Every successful fetch
// counts as one view.
func (h *Handler) Get(c *gin.Context) {
	now := h.now()
	p, err := h.load(c, now)
	if err != nil {
		rest.Fail(c, err)
		return
	}

	if err := blog.IncrementViews(h.db, p.ID); err != nil {
		rest.Fail(c, err)
		return
	}
	p.ViewCount++

	var related []blog.Post
	if len(p.CategoryLinks) > 0 {
		err = relatedTo(h.db, visible(h.db, now), p).
			Scopes(withRelations).
			Order(blog.DefaultOrder).
			Limit(blog.RelatedLimit).
			Find(&related).Error
		if err != nil {
			rest.Fail(c, fmt.Errorf("load related posts: %w", err))
			return
		}
	}

	c.JSON(http.StatusOK, PostDetailDTO{
		PostDTO:      h.toDTO(c, p),
		RelatedPosts: h.toListDTOs(c, related),
	})
}

// GET /posts/featured/
func (h *Handler) Featured(c *gin.Context) {
	h.derived(c, "featured", func(q *gorm.DB) *gorm.DB {
		return q.Where("posts.is_featured = ?", true).Order(blog.DefaultOrder).Limit(blog.FeaturedLimit)
	})
}

// GET /posts/latest/
func (h *Handler) Latest(c *gin.Context) {
	h.derived(c, "latest", func(q *gorm.DB) *gorm.DB {
		return q.Order("published_at DESC").Limit(blog.LatestLimit)
	})
}

// GET /posts/popular/
func (h *Handler) Popular(c *gin.Context) {
	h.derived(c, "popular", func(q *gorm.DB) *gorm.DB {
		return q.Order("view_count DESC").Order("published_at DESC").Limit(blog.PopularLimit)
	})
}

func (h *Handler) derived(c *gin.Context, name string, shape func(*gorm.DB) *gorm.DB) {
	var list []blog.Post
	if err := shape(scoped(c, h.db, h.now())).Scopes(withRelations).Find(&list).Error; err != nil {
		rest.Fail(c, fmt.Errorf("load %s posts: %w", name, err))
		return
	}
	c.JSON(http.StatusOK, h.toDTOs(c, list))
}

// GET /posts/archive/
func (h *Handler) Archive(c *gin.Context) {
	var published []time.Time
	if err := scoped(c, h.db, h.now()).Pluck("published_at", &published).Error; err != nil {
		rest.Fail(c, fmt.Errorf("load archive: %w", err))
		return
	}
	c.JSON(http.StatusOK, blog.BuildArchive(published))
}

// GET /posts/:id/related/
func (h *Handler) Related(c *gin.Context) {
	now := h.now()
	p, err := h.load(c, now)
	if err != nil {
		rest.Fail(c, err)
		return
	}

	list := []blog.Post{}
	if len(p.CategoryLinks) > 0 {
		err = relatedTo(h.db, scoped(c, h.db, now), p).
			Scopes(withRelations).
			Order(blog.DefaultOrder).
			Limit(blog.RelatedLimit).
			Find(&list).Error
		if err != nil {
			rest.Fail(c, fmt.Errorf("load related posts: %w", err))
			return
		}
	}
	c.JSON(http.StatusOK, h.toDTOs(c, list))
}

// GET /settings/current/
func (h *Handler) CurrentSettings(c *gin.Context) {
	var s blog.Settings
	err := h.db.Order("created_at ASC").First(&s).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusOK, toSettingsDTO(blog.DefaultSettings()))
	case err != nil:
		rest.Fail(c, fmt.Errorf("load blog settings: %w", err))
	default:
		c.JSON(http.StatusOK, toSettingsDTO(s))
	}
}

// load fetches the visible post named by the :id parameter, which may be
// either the post id or its slug.
func (h *Handler) load(c *gin.Context, now time.Time) (blog.Post, error) {
	key := c.Param("id")
	q := visible(h.db, now).Scopes(withRelations)
	if rest.ValidID(key) {
		q = q.Where("posts.id = ?", key)
	} else {
		q = q.Where("posts.slug = ?", key)
	}

	var p blog.Post
	err := q.First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return p, core.ErrNotFound
	}
	return p, err
}
