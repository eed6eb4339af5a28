package contact

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"portfolio-cms/internal/api/rest"
	"portfolio-cms/internal/domain/contact"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	submittedMessage = "您的訊息已成功送出，我們會盡快回覆您。"
	successTitle     = "訊息發送成功"
	successMessage   = "感謝您的來信，我們已收到您的訊息，會在 24 小時內回覆您。"
	redirectDelay    = 3
)

type Handler struct {
	db   *gorm.DB
	opts rest.Options
}

func NewHandler(db *gorm.DB, opts rest.Options) *Handler {
	return &Handler{db: db, opts: opts}
}

// Register mounts the contact routes under rg. sanitize guards the only
// public write, the contact form.
func (h *Handler) Register(rg *gin.RouterGroup, sanitize gin.HandlerFunc) {
	rg.GET("/info/current/", h.CurrentInfo)

	rg.GET("/social/", h.ListSocial)
	rg.GET("/social/:id/", h.GetSocial)

	rg.POST("/form/", sanitize, h.SubmitForm)
	rg.GET("/form/success/", h.FormSuccess)

	rg.GET("/faq/", h.ListFAQ)
	rg.GET("/faq/popular/", h.PopularFAQ)
	rg.GET("/faq/:id/", h.GetFAQ)
}

// GET /info/current/
func (h *Handler) CurrentInfo(c *gin.Context) {
	var info contact.Info
	err := h.db.Preload("Translations").Order("created_at ASC").First(&info).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusOK, defaultInfo())
	case err != nil:
		rest.Fail(c, fmt.Errorf("load contact info: %w", err))
	default:
		c.JSON(http.StatusOK, toInfoDTO(c, info))
	}
}

var socialOrdering = map[string]string{
	"order":    "sort_order",
	"platform": "platform",
}

// GET /social/
func (h *Handler) ListSocial(c *gin.Context) {
	q := h.db.Model(&contact.SocialMedia{}).Where("is_active = ?", true)
	if p := c.Query("platform"); p != "" {
		q = q.Where("platform = ?", p)
	}
	q = q.Order(rest.Ordering(c, socialOrdering, contact.SocialOrder))

	list, page, count, err := rest.Paginate[contact.SocialMedia](c, q, h.opts.Size())
	if err != nil {
		rest.Fail(c, err)
		return
	}
	out := make([]SocialDTO, 0, len(list))
	for _, s := range list {
		out = append(out, toSocialDTO(s))
	}
	c.JSON(http.StatusOK, rest.NewPage(c, page, count, out))
}

// GET /social/:id/
func (h *Handler) GetSocial(c *gin.Context) {
	id := c.Param("id")
	if !rest.ValidID(id) {
		rest.NotFound(c)
		return
	}
	var s contact.SocialMedia
	if err := h.db.Where("is_active = ?", true).First(&s, "id = ?", id).Error; err != nil {
		rest.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toSocialDTO(s))
}

// POST /form/
func (h *Handler) SubmitForm(c *gin.Context) {
	var req FormRequest
	if !rest.BindJSON(c, &req) {
		return
	}

	sub := contact.Submission{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Subject:   strings.TrimSpace(req.Subject),
		Message:   req.Message,
		Status:    contact.StatusNew,
		IPAddress: ClientIP(c.Request),
		UserAgent: c.Request.UserAgent(),
	}
	if err := h.db.Create(&sub).Error; err != nil {
		rest.Fail(c, fmt.Errorf("save contact form: %w", err))
		return
	}
	c.JSON(http.StatusCreated, FormCreatedResponse{Message: submittedMessage, ID: sub.ID})
}

// GET /form/success/
func (h *Handler) FormSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, FormSuccessResponse{
		Title:         successTitle,
		Message:       successMessage,
		RedirectDelay: redirectDelay,
	})
}

func activeFAQs(db *gorm.DB) *gorm.DB {
	return db.Model(&contact.FAQ{}).Where("is_active = ?", true)
}

var faqOrdering = map[string]string{
	"order":      "sort_order",
	"created_at": "created_at",
}

// GET /faq/
func (h *Handler) ListFAQ(c *gin.Context) {
	q := activeFAQs(h.db).Order(rest.Ordering(c, faqOrdering, contact.FAQOrder))
	list, page, count, err := rest.Paginate[contact.FAQ](c, q, h.opts.Size(), func(db *gorm.DB) *gorm.DB {
		return db.Preload("Translations")
	})
	if err != nil {
		rest.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rest.NewPage(c, page, count, toFAQDTOs(c, list)))
}

// GET /faq/popular/
func (h *Handler) PopularFAQ(c *gin.Context) {
	var list []contact.FAQ
	err := activeFAQs(h.db).Preload("Translations").Order(contact.FAQOrder).Limit(contact.PopularFAQLimit).Find(&list).Error
	if err != nil {
		rest.Fail(c, fmt.Errorf("load popular faq: %w", err))
		return
	}
	c.JSON(http.StatusOK, toFAQDTOs(c, list))
}

// GET /faq/:id/
func (h *Handler) GetFAQ(c *gin.Context) {
	id := c.Param("id")
	if !rest.ValidID(id) {
		rest.NotFound(c)
		return
	}
	var f contact.FAQ
	if err := activeFAQs(h.db).Preload("Translations").First(&f, "id = ?", id).Error; err != nil {
		rest.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toFAQDTOs(c, []contact.FAQ{f})[0])
}

// ClientIP is the first X-Forwarded-For entry when present, otherwise the
// connection's remote address. Values that are not IP addresses yield nil.
func ClientIP(r *http.Request) *string {
	raw := ""
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		raw = strings.TrimSpace(strings.Split(xff, ",")[0])
	} else {
		raw = r.RemoteAddr
		if host, _, err := net.SplitHostPort(raw); err == nil {
			raw = host
		}
	}
	if net.ParseIP(raw) == nil {
		return nil
	}
	return &raw
}
