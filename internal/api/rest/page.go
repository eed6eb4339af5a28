package rest

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 12
	MaxPageSize     = 100
)

var ErrInvalidPage = errors.New("invalid page")

// Page is the paginated list envelope.
type Page[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

type PageParams struct {
	Number int
	Size   int
}

// ParsePage reads page and page_size. A page_size that is missing or not a
// positive integer falls back to size; larger values are capped.
func ParsePage(c *gin.Context, size int) (PageParams, error) {
	p := PageParams{Number: 1, Size: size}
	if raw := c.Query("page"); raw != "" && raw != "last" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return p, ErrInvalidPage
		}
		p.Number = n
	}
	if raw := c.Query("page_size"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			p.Size = n
		}
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p, nil
}

// Paginate counts the rows matched by q and loads the requested page into a
// slice of M. scopes apply to the page load only, so preloads go there.
// Requests for "last" resolve to the final page; a page past the end is
// ErrInvalidPage.
func Paginate[M any](c *gin.Context, q *gorm.DB, size int, scopes ...func(*gorm.DB) *gorm.DB) ([]M, PageParams, int64, error) {
	p, err := ParsePage(c, size)
	if err != nil {
		return nil, p, 0, err
	}

	var count int64
	if err := q.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, p, 0, fmt.Errorf("count: %w", err)
	}
	if c.Query("page") == "last" {
		p.Number = max(1, int((count+int64(p.Size)-1)/int64(p.Size)))
	}
	if p.Number > 1 && int64((p.Number-1)*p.Size) >= count {
		return nil, p, count, ErrInvalidPage
	}

	var rows []M
	if err := q.Session(&gorm.Session{}).Scopes(scopes...).Offset((p.Number - 1) * p.Size).Limit(p.Size).Find(&rows).Error; err != nil {
		return nil, p, count, fmt.Errorf("load page: %w", err)
	}
	return rows, p, count, nil
}

// NewPage wraps results with the total count and the links to the
// neighbouring pages of the current request.
func NewPage[T any](c *gin.Context, p PageParams, count int64, results []T) Page[T] {
	if results == nil {
		results = []T{}
	}
	out := Page[T]{Count: count, Results: results}
	if int64(p.Number*p.Size) < count {
		u := pageURL(c, p.Number+1)
		out.Next = &u
	}
	if p.Number > 1 {
		u := pageURL(c, p.Number-1)
		out.Previous = &u
	}
	return out
}

func pageURL(c *gin.Context, n int) string {
	u := *c.Request.URL
	q := u.Query()
	if n <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(n))
	}
	u.RawQuery = q.Encode()
	return Origin(c.Request) + u.RequestURI()
}
