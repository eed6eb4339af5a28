package blog

import (
	"time"

	"portfolio-cms/internal/api/rest"
	"portfolio-cms/internal/domain/blog"
	"portfolio-cms/internal/domain/taxonomy"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var orderingFields = map[string]string{
	"published_at": "published_at",
	"created_at":   "created_at",
	"view_count":   "view_count",
}

// visible is every post past the publish gate at now.
func visible(db *gorm.DB, now time.Time) *gorm.DB {
	return db.Model(&blog.Post{}).
		Where("posts.is_published = ? AND posts.published_at IS NOT NULL AND posts.published_at <= ?", true, now)
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Translations").
		Preload("FeaturedImage").
		Preload("CategoryLinks.Category.Translations")
}

// monthOf extracts the publish month as an integer in the store's dialect.
func monthOf(db *gorm.DB) string {
	if db.Dialector.Name() == "sqlite" {
		return "CAST(strftime('%m', posts.published_at) AS INTEGER)"
	}
	return "EXTRACT(MONTH FROM posts.published_at)"
}

// scoped applies the filters shared by the list and the derived views:
// category slug, year and month.
func scoped(c *gin.Context, db *gorm.DB, now time.Time) *gorm.DB {
	q := visible(db, now)
	if slug := c.Query("category"); slug != "" {
		q = q.Where("posts.id IN (?)",
			taxonomy.LinkedContent(db, blog.CategoryJoinTable, "post_id", slug, taxonomy.TypeBlog))
	}

	year, hasYear := rest.IntQuery(c, "year")
	month, hasMonth := rest.IntQuery(c, "month")
	switch {
	case hasYear && hasMonth && month >= 1 && month <= 12:
		start, end := blog.MonthRange(year, month)
		q = q.Where("posts.published_at >= ? AND posts.published_at < ?", start, end)
	case hasYear:
		start, end := blog.MonthRange(year, 0)
		q = q.Where("posts.published_at >= ? AND posts.published_at < ?", start, end)
		if hasMonth {
			q = q.Where("1 = 0")
		}
	case hasMonth:
		q = q.Where(monthOf(db)+" = ?", month)
	}
	return q
}

// filtered adds the list-only filters and the search to scoped.
func filtered(c *gin.Context, db *gorm.DB, now time.Time) *gorm.DB {
	q := scoped(c, db, now)
	if v, ok := rest.BoolQuery(c, "is_featured"); ok {
		q = q.Where("posts.is_featured = ?", v)
	}
	if author := c.Query("author_name"); author != "" {
		q = q.Where("posts.author_name = ?", author)
	}
	if id := c.Query("categories"); id != "" {
		q = q.Where("posts.id IN (?)",
			db.Session(&gorm.Session{NewDB: true}).Table(blog.CategoryJoinTable).Select("post_id").Where("category_id = ?", id))
	}
	if s := c.Query("search"); s != "" {
		like := rest.Like(s)
		q = q.Where("posts.id IN (?)",
			db.Session(&gorm.Session{NewDB: true}).Model(&blog.PostTranslation{}).Select("post_id").
				Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ? OR LOWER(excerpt) LIKE ?", like, like, like))
	}
	return q
}

// relatedTo narrows q to posts sharing a category with p, p excluded.
func relatedTo(db *gorm.DB, q *gorm.DB, p blog.Post) *gorm.DB {
	return q.
		Where("posts.id <> ?", p.ID).
		Where("posts.id IN (?)",
			db.Session(&gorm.Session{NewDB: true}).Table(blog.CategoryJoinTable).Select("post_id").Where("category_id IN ?", p.CategoryIDs()))
}
