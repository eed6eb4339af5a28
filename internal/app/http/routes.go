package routes

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"portfolio-cms/config"
	"portfolio-cms/internal/api/admin"
	"portfolio-cms/internal/api/artworks"
	"portfolio-cms/internal/api/blog"
	"portfolio-cms/internal/api/common"
	"portfolio-cms/internal/api/contact"
	"portfolio-cms/internal/api/rest"
	"portfolio-cms/internal/app/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Logger *slog.Logger
}

// NewRouter builds the engine with every route mounted.
func NewRouter(d Deps) *gin.Engine {
	rest.UseJSONFieldNames()

	r := gin.New()
	r.Use(middleware.RequestLogger(d.Logger), gin.Recovery(), middleware.Language())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins(d.Config.CORSOrigin),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length", "Content-Language"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	opts := rest.Options{MediaBaseURL: d.Config.MediaBaseURL, PageSize: d.Config.PageSize}

	api := r.Group("/api")
	api.GET("/", apiRoot)
	artworks.NewHandler(d.DB, opts).Register(api.Group("/artworks"))
	blog.NewHandler(d.DB, opts).Register(api.Group("/blog"))
	common.NewHandler(d.DB, opts).Register(api.Group("/common"))
	contact.NewHandler(d.DB, opts).Register(api.Group("/contact"), middleware.SanitizeInput())

	admin.NewHandler(d.DB, admin.Account{
		Username:     d.Config.AdminUsername,
		PasswordHash: d.Config.AdminPasswordHash,
		JWTSecret:    d.Config.JWTSecret,
		TokenTTL:     d.Config.TokenTTL,
	}).Register(r.Group("/admin"),
		middleware.AuthMiddleware(d.Config.JWTSecret),
		middleware.RequireRole(admin.RoleAdmin),
	)

	return r
}

// corsOrigins splits a comma separated CORS_ORIGIN value.
func corsOrigins(v string) []string {
	var out []string
	for _, o := range strings.Split(v, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"http://localhost:3000"}
	}
	return out
}

// GET /api/
func apiRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "歡迎使用慧繡雅集 API",
		"version": "1.0",
		"endpoints": gin.H{
			"admin": "/admin/",
			"api": gin.H{
				"artworks": "/api/artworks/",
				"blog":     "/api/blog/",
				"contact":  "/api/contact/",
				"common":   "/api/common/",
			},
			"specific_endpoints": gin.H{
				"featured_artworks":  "/api/artworks/artworks/featured/",
				"latest_artworks":    "/api/artworks/artworks/latest/",
				"artwork_categories": "/api/common/categories/artwork_categories/",
				"featured_posts":     "/api/blog/posts/featured/",
				"latest_posts":       "/api/blog/posts/latest/",
				"popular_posts":      "/api/blog/posts/popular/",
				"blog_categories":    "/api/common/categories/blog_categories/",
				"contact_info":       "/api/contact/info/current/",
				"social_media":       "/api/contact/social/",
				"contact_form":       "/api/contact/form/",
				"faq":                "/api/contact/faq/",
				"popular_faq":        "/api/contact/faq/popular/",
			},
		},
		"documentation": gin.H{
			"filtering":  "大部分列表端點支援 ?search=關鍵字 進行搜尋",
			"pagination": "列表結果會自動分頁，使用 ?page=2 來存取其他頁面",
			"language":   "使用 Accept-Language header 來獲取特定語言的內容",
		},
	})
}
