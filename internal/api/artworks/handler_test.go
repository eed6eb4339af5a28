package artworks_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-cms/internal/api/artworks"
	"portfolio-cms/internal/api/rest"
	"portfolio-cms/internal/app/http/middleware"
	"portfolio-cms/internal/dbtest"
	"portfolio-cms/internal/domain/core"
	"portfolio-cms/internal/domain/media"
	"portfolio-cms/internal/domain/taxonomy"
	"portfolio-cms/internal/domain/works"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() { gin.SetMode(gin.TestMode) }

func setup(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := dbtest.Open(t)
	r := gin.New()
	r.Use(middleware.Language())
	artworks.NewHandler(db, rest.Options{MediaBaseURL: "/media", PageSize: 2}).Register(r.Group("/api/artworks"))
	return r, db
}

type seed struct {
	title     string
	titleEN   string
	published bool
	featured  bool
	order     int
	year      *int
	cats      []string
}

func year(y int) *int { return &y }

func create(t *testing.T, db *gorm.DB, s seed) works.Artwork {
	t.Helper()
	a := works.Artwork{
		Publishable:  core.Publishable{IsPublished: s.published, IsFeatured: s.featured, Order: s.order},
		YearCreated:  s.year,
		Medium:       "silk",
		Translations: []works.ArtworkTranslation{{Lang: "zh-tw", Title: s.title}},
	}
	if s.titleEN != "" {
		a.Translations = append(a.Translations, works.ArtworkTranslation{Lang: "en", Title: s.titleEN})
	}
	for _, id := range s.cats {
		a.CategoryLinks = append(a.CategoryLinks, works.ArtworkCategory{CategoryID: id})
	}
	require.NoError(t, db.Create(&a).Error)
	return a
}

func category(t *testing.T, db *gorm.DB, slug string, typ taxonomy.Type, active bool) taxonomy.Category {
	t.Helper()
	c := taxonomy.Category{Slug: slug, CategoryType: typ, IsActive: active,
		Translations: []taxonomy.CategoryTranslation{{Lang: "zh-tw", Name: slug}}}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func get(r http.Handler, path string, lang ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if len(lang) > 0 {
		req.Header.Set("Accept-Language", lang[0])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

type page struct {
	Count    int64                     `json:"count"`
	Next     *string                   `json:"next"`
	Previous *string                   `json:"previous"`
	Results  []artworks.ArtworkListDTO `json:"results"`
}

func TestList_PublishedOnlyAndPaged(t *testing.T) {
	r, db := setup(t)
	create(t, db, seed{title: "一", published: true, order: 1})
	create(t, db, seed{title: "二", published: true, order: 2})
	create(t, db, seed{title: "三", published: true, order: 3})
	create(t, db, seed{title: "草稿", published: false, order: 0})

	w := get(r, "/api/artworks/artworks/")
	require.Equal(t, http.StatusOK, w.Code)
	p := decode[page](t, w)
	assert.EqualValues(t, 3, p.Count)
	require.Len(t, p.Results, 2)
	assert.Equal(t, "一", p.Results[0].Translations["title"])
	require.NotNil(t, p.Next)
	assert.Contains(t, *p.Next, "page=2")
	assert.Nil(t, p.Previous)

	w = get(r, "/api/artworks/artworks/?page=last")
	p = decode[page](t, w)
	require.Len(t, p.Results, 1)
	assert.Equal(t, "三", p.Results[0].Translations["title"])

	w = get(r, "/api/artworks/artworks/?page=3")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Invalid page."}`, w.Body.String())
}

func TestList_LanguageAndFallback(t *testing.T) {
	r, db := setup(t)
	create(t, db, seed{title: "牡丹", titleEN: "Peony", published: true})

	p := decode[page](t, get(r, "/api/artworks/artworks/", "en-US"))
	assert.Equal(t, "Peony", p.Results[0].Translations["title"])

	p = decode[page](t, get(r, "/api/artworks/artworks/"))
	assert.Equal(t, "牡丹", p.Results[0].Translations["title"])
	assert.Equal(t, "", p.Results[0].Translations["technique"])
}

func TestList_Filters(t *testing.T) {
	r, db := setup(t)
	birds := category(t, db, "birds", taxonomy.TypeArtwork, true)
	category(t, db, "flowers", taxonomy.TypeBlog, true)

	create(t, db, seed{title: "鳥", published: true, featured: true, year: year(2018), cats: []string{birds.ID}})
	create(t, db, seed{title: "花", titleEN: "Lotus pond", published: true, year: year(2021)})

	p := decode[page](t, get(r, "/api/artworks/artworks/?category=birds"))
	require.EqualValues(t, 1, p.Count)
	assert.Equal(t, "鳥", p.Results[0].Translations["title"])

	p = decode[page](t, get(r, "/api/artworks/artworks/?category=flowers"))
	assert.EqualValues(t, 0, p.Count)

	p = decode[page](t, get(r, "/api/artworks/artworks/?is_featured=true"))
	assert.EqualValues(t, 1, p.Count)

	p = decode[page](t, get(r, "/api/artworks/artworks/?year_from=2020"))
	assert.EqualValues(t, 1, p.Count)

	p = decode[page](t, get(r, "/api/artworks/artworks/?year_created=2018"))
	assert.EqualValues(t, 1, p.Count)

	p = decode[page](t, get(r, "/api/artworks/artworks/?search=LOTUS"))
	require.EqualValues(t, 1, p.Count)
	assert.Equal(t, "花", p.Results[0].Translations["title"])

	p = decode[page](t, get(r, "/api/artworks/artworks/?year_from=abc"))
	assert.EqualValues(t, 2, p.Count)
}

func TestGet(t *testing.T) {
	r, db := setup(t)
	birds := category(t, db, "birds", taxonomy.TypeArtwork, true)
	hidden := category(t, db, "hidden", taxonomy.TypeArtwork, false)

	img := media.Image{OriginalPath: "artworks/a.jpg"}
	require.NoError(t, db.Create(&img).Error)

	a := create(t, db, seed{title: "主", published: true, cats: []string{birds.ID, hidden.ID}})
	require.NoError(t, db.Model(&a).Update("main_image_id", img.ID).Error)
	for i := range 7 {
		create(t, db, seed{title: fmt.Sprint(i), published: true, order: i, cats: []string{birds.ID}})
	}
	create(t, db, seed{title: "草稿", published: false, cats: []string{birds.ID}})
	draft := create(t, db, seed{title: "另一草稿"})

	w := get(r, "/api/artworks/artworks/"+a.ID+"/")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	d := decode[artworks.ArtworkDetailDTO](t, w)
	assert.Equal(t, "主", d.Translations["title"])
	require.NotNil(t, d.MainImageURL)
	assert.Equal(t, "http://example.com/media/artworks/a.jpg", *d.MainImageURL)
	assert.Equal(t, d.MainImageURL, d.ThumbnailURL)
	require.Len(t, d.Categories, 1)
	assert.Equal(t, "birds", d.Categories[0].Slug)
	assert.Len(t, d.RelatedArtworks, works.DetailRelated)
	for _, rel := range d.RelatedArtworks {
		assert.NotEqual(t, a.ID, rel.ID)
	}

	w = get(r, "/api/artworks/artworks/"+a.ID+"/related/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]artworks.ArtworkDTO](t, w), works.RelatedLimit)

	assert.Equal(t, http.StatusNotFound, get(r, "/api/artworks/artworks/"+draft.ID+"/").Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/api/artworks/artworks/not-a-uuid/").Code)
}

func TestRelated_NoCategories(t *testing.T) {
	r, db := setup(t)
	a := create(t, db, seed{title: "孤", published: true})
	create(t, db, seed{title: "他", published: true})

	w := get(r, "/api/artworks/artworks/"+a.ID+"/related/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestFeaturedLatestByYear(t *testing.T) {
	r, db := setup(t)
	for i := range 8 {
		create(t, db, seed{title: fmt.Sprint(i), published: true, featured: true, year: year(2010 + i%3)})
	}
	create(t, db, seed{title: "未發表", featured: true, year: year(2030)})

	w := get(r, "/api/artworks/artworks/featured/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]artworks.ArtworkDTO](t, w), works.FeaturedLimit)

	w = get(r, "/api/artworks/artworks/latest/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]artworks.ArtworkDTO](t, w), 8)

	w = get(r, "/api/artworks/artworks/by_year/")
	require.Equal(t, http.StatusOK, w.Code)
	groups := decode[[]artworks.YearGroupDTO](t, w)
	require.Len(t, groups, 3)
	assert.Equal(t, []int{2012, 2011, 2010}, []int{groups[0].Year, groups[1].Year, groups[2].Year})
	assert.Len(t, groups[2].Artworks, 3)
}
