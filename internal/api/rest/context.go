// Package rest holds the request plumbing shared by the read and admin APIs:
// the negotiated language, paging, ordering, query parsing and the mapping of
// domain errors to responses.
package rest

import (
	"net/http"
	"strings"

	"portfolio-cms/internal/domain/i18n"
	"portfolio-cms/internal/domain/media"

	"github.com/gin-gonic/gin"
)

const langKey = "lang"

// Options are the per-deployment settings every handler needs.
type Options struct {
	MediaBaseURL string
	PageSize     int
}

func SetLang(c *gin.Context, lang string) { c.Set(langKey, lang) }

// Lang returns the language negotiated for the request.
func Lang(c *gin.Context) string {
	if v, ok := c.Get(langKey); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return i18n.Default
}

// Origin is the scheme and host the client used to reach us.
func Origin(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if p := r.Header.Get("X-Forwarded-Proto"); p != "" {
		scheme = strings.TrimSpace(strings.Split(p, ",")[0])
	}
	return scheme + "://" + r.Host
}

// MediaURL resolves img to an absolute URL. A relative media base is served
// from the request's own origin.
func (o Options) MediaURL(c *gin.Context, img *media.Image) *string {
	base := o.MediaBaseURL
	if strings.HasPrefix(base, "/") {
		base = Origin(c.Request) + base
	}
	return media.URL(base, img)
}

// Size returns the configured page size, or the default when unset.
func (o Options) Size() int {
	if o.PageSize <= 0 {
		return DefaultPageSize
	}
	return o.PageSize
}
