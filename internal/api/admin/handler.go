package admin

import (
	"crypto/subtle"
	"net/http"
	"time"

	"portfolio-cms/internal/api/rest"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const RoleAdmin = "admin"

// Account is the single configured admin login.
type Account struct {
	Username     string
	PasswordHash string
	JWTSecret    string
	TokenTTL     time.Duration
}

type Handler struct {
	db      *gorm.DB
	account Account
	now     func() time.Time
}

func NewHandler(db *gorm.DB, account Account) *Handler {
	return &Handler{db: db, account: account, now: time.Now}
}

// Register mounts the admin routes. Everything but login runs behind
// protect.
func (h *Handler) Register(rg *gin.RouterGroup, protect ...gin.HandlerFunc) {
	rg.POST("/login/", h.Login)

	g := rg.Group("", protect...)

	g.POST("/categories/", h.CreateCategory)
	g.PUT("/categories/:id/", h.UpdateCategory)
	g.DELETE("/categories/:id/", h.DeleteCategory)

	g.POST("/artworks/", h.CreateArtwork)
	g.PUT("/artworks/:id/", h.UpdateArtwork)
	g.DELETE("/artworks/:id/", h.DeleteArtwork)

	g.POST("/posts/", h.CreatePost)
	g.PUT("/posts/:id/", h.UpdatePost)
	g.DELETE("/posts/:id/", h.DeletePost)

	g.PUT("/site-content/:section/", h.UpsertSiteContent)
	g.POST("/achievements/", h.CreateAchievement)
	g.DELETE("/achievements/:id/", h.DeleteAchievement)
	g.POST("/faq/", h.CreateFAQ)
	g.DELETE("/faq/:id/", h.DeleteFAQ)
	g.POST("/social/", h.CreateSocial)
	g.DELETE("/social/:id/", h.DeleteSocial)

	g.POST("/blog-settings/", h.CreateBlogSettings)
	g.PUT("/blog-settings/", h.UpdateBlogSettings)
	g.DELETE("/blog-settings/", h.DeleteBlogSettings)
	g.POST("/contact-info/", h.CreateContactInfo)
	g.PUT("/contact-info/", h.UpdateContactInfo)
	g.DELETE("/contact-info/", h.DeleteContactInfo)

	g.GET("/contact-forms/", h.ListSubmissions)
	g.GET("/contact-forms/:id/", h.GetSubmission)
	g.PATCH("/contact-forms/:id/", h.UpdateSubmissionNotes)
	g.POST("/contact-forms/bulk/:action/", h.BulkSubmissions)
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ------------------------------
// POST /login/
// ------------------------------
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if !rest.BindJSON(c, &req) {
		return
	}

	if h.account.PasswordHash == "" ||
		subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.account.Username)) != 1 ||
		bcrypt.CompareHashAndPassword([]byte(h.account.PasswordHash), []byte(req.Password)) != nil {
		rest.Detail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	now := h.now()
	exp := now.Add(h.account.TokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  h.account.Username,
		"role": RoleAdmin,
		"iat":  now.Unix(),
		"exp":  exp.Unix(),
	})
	signed, err := token.SignedString([]byte(h.account.JWTSecret))
	if err != nil {
		rest.Detail(c, http.StatusInternalServerError, "Could not create token")
		return
	}
	c.JSON(http.StatusOK, LoginResponse{Token: signed, ExpiresAt: exp.UTC()})
}

type createdResponse struct {
	ID string `json:"id"`
}
