package artworks

import (
	"portfolio-cms/internal/api/rest"
	"portfolio-cms/internal/domain/taxonomy"
	"portfolio-cms/internal/domain/works"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var orderingFields = map[string]string{
	"order":        "sort_order",
	"created_at":   "created_at",
	"year_created": "year_created",
}

// published is every artwork the public may see.
func published(db *gorm.DB) *gorm.DB {
	return db.Model(&works.Artwork{}).Where("artworks.is_published = ?", true)
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Translations").
		Preload("MainImage").
		Preload("Thumbnail").
		Preload("CategoryLinks.Category.Translations")
}

// scoped applies the filters shared by the list and the derived views:
// category slug and the year range.
func scoped(c *gin.Context, db *gorm.DB) *gorm.DB {
	q := published(db)
	if slug := c.Query("category"); slug != "" {
		q = q.Where("artworks.id IN (?)",
			taxonomy.LinkedContent(db, works.CategoryJoinTable, "artwork_id", slug, taxonomy.TypeArtwork))
	}
	if y, ok := rest.IntQuery(c, "year_from"); ok {
		q = q.Where("year_created >= ?", y)
	}
	if y, ok := rest.IntQuery(c, "year_to"); ok {
		q = q.Where("year_created <= ?", y)
	}
	return q
}

// filtered adds the list-only filters and the search to scoped.
func filtered(c *gin.Context, db *gorm.DB) *gorm.DB {
	q := scoped(c, db)
	if v, ok := rest.BoolQuery(c, "is_featured"); ok {
		q = q.Where("is_featured = ?", v)
	}
	if y, ok := rest.IntQuery(c, "year_created"); ok {
		q = q.Where("year_created = ?", y)
	}
	if id := c.Query("categories"); id != "" {
		q = q.Where("artworks.id IN (?)",
			db.Session(&gorm.Session{NewDB: true}).Table(works.CategoryJoinTable).Select("artwork_id").Where("category_id = ?", id))
	}
	if s := c.Query("search"); s != "" {
		like := rest.Like(s)
		q = q.Where("(LOWER(artworks.medium) LIKE ? OR artworks.id IN (?))", like,
			db.Session(&gorm.Session{NewDB: true}).Model(&works.ArtworkTranslation{}).Select("artwork_id").
				Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(technique) LIKE ?", like, like, like))
	}
	return q
}

// relatedTo selects published artworks sharing a category with a, a
// excluded.
func relatedTo(db *gorm.DB, q *gorm.DB, a works.Artwork) *gorm.DB {
	return q.
		Where("artworks.id <> ?", a.ID).
		Where("artworks.id IN (?)",
			db.Session(&gorm.Session{NewDB: true}).Table(works.CategoryJoinTable).Select("artwork_id").Where("category_id IN ?", a.CategoryIDs()))
}
