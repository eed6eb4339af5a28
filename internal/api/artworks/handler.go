package artworks

import (
	"errors"
	"fmt"
	"net/http"

	"portfolio-cms/internal/api/rest"
	"portfolio-cms/internal/domain/core"
	"portfolio-cms/internal/domain/works"

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

// Register mounts the artwork routes under rg.
func (h *Handler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/artworks")
	g.GET("/", h.List)
	g.GET("/featured/", h.Featured)
	g.GET("/latest/", h.Latest)
	g.GET("/by_year/", h.ByYear)
	g.GET("/:id/", h.Get)
	g.GET("/:id/related/", h.Related)
}

// GET /artworks/
func (h *Handler) List(c *gin.Context) {
	q := filtered(c, h.db).Order(rest.Ordering(c, orderingFields, core.DefaultOrder))

	list, page, count, err := rest.Paginate[works.Artwork](c, q, h.opts.Size(), withRelations)
	if err != nil {
		rest.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rest.NewPage(c, page, count, h.toListDTOs(c, list)))
}

// GET /artworks/:id/
func (h *Handler) Get(c *gin.Context) {
	a, err := h.load(c)
	if err != nil {
		rest.Fail(c, err)
		return
	}

	var related []works.Artwork
	if len(a.CategoryLinks) > 0 {
		err = relatedTo(h.db, published(h.db), a).
			Scopes(withRelations).
			Order(core.DefaultOrder).
			Limit(works.DetailRelated).
			Find(&related).Error
		if err != nil {
			rest.Fail(c, fmt.Errorf("load related artworks: %w", err))
			return
		}
	}

	c.JSON(http.StatusOK, ArtworkDetailDTO{
		ArtworkDTO:      h.toDTO(c, a),
		RelatedArtworks: h.toListDTOs(c, related),
	})
}

// GET /artworks/featured/
func (h *Handler) Featured(c *gin.Context) {
	var list []works.Artwork
	err := scoped(c, h.db).
		Where("is_featured = ?", true).
		Scopes(withRelations).
		Order(core.DefaultOrder).
		Limit(works.FeaturedLimit).
		Find(&list).Error
	if err != nil {
		rest.Fail(c, fmt.Errorf("load featured artworks: %w", err))
		return
	}
	c.JSON(http.StatusOK, h.toDTOs(c, list))
}

// GET /artworks/latest/
func (h *Handler) Latest(c *gin.Context) {
	var list []works.Artwork
	err := scoped(c, h.db).
		Scopes(withRelations).
		Order("created_at DESC").
		Limit(works.LatestLimit).
		Find(&list).Error
	if err != nil {
		rest.Fail(c, fmt.Errorf("load latest artworks: %w", err))
		return
	}
	c.JSON(http.StatusOK, h.toDTOs(c, list))
}

// GET /artworks/by_year/
func (h *Handler) ByYear(c *gin.Context) {
	var years []int
	err := scoped(c, h.db).
		Where("year_created IS NOT NULL").
		Distinct("year_created").
		Order("year_created DESC").
		Limit(works.ByYearYears).
		Pluck("year_created", &years).Error
	if err != nil {
		rest.Fail(c, fmt.Errorf("load artwork years: %w", err))
		return
	}

	out := make([]YearGroupDTO, 0, len(years))
	for _, y := range years {
		var list []works.Artwork
		err := scoped(c, h.db).
			Where("year_created = ?", y).
			Scopes(withRelations).
			Order(core.DefaultOrder).
			Limit(works.ByYearPerYear).
			Find(&list).Error
		if err != nil {
			rest.Fail(c, fmt.Errorf("load artworks of %d: %w", y, err))
			return
		}
		out = append(out, YearGroupDTO{Year: y, Artworks: h.toDTOs(c, list)})
	}
	c.JSON(http.StatusOK, out)
}

// GET /artworks/:id/related/
func (h *Handler) Related(c *gin.Context) {
	a, err := h.load(c)
	if err != nil {
		rest.Fail(c, err)
		return
	}

	list := []works.Artwork{}
	if len(a.CategoryLinks) > 0 {
		err = relatedTo(h.db, scoped(c, h.db), a).
			Scopes(withRelations).
			Order(core.DefaultOrder).
			Limit(works.RelatedLimit).
			Find(&list).Error
		if err != nil {
			rest.Fail(c, fmt.Errorf("load related artworks: %w", err))
			return
		}
	}
	c.JSON(http.StatusOK, h.toDTOs(c, list))
}

// load fetches the published artwork named by the :id parameter.
func (h *Handler) load(c *gin.Context) (works.Artwork, error) {
	var a works.Artwork
	if !rest.ValidID(c.Param("id")) {
		return a, core.ErrNotFound
	}
	err := published(h.db).Scopes(withRelations).First(&a, "artworks.id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return a, core.ErrNotFound
	}
	return a, err
}
