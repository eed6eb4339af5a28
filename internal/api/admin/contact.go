package admin

import (
	"net/http"
	"time"

	"portfolio-cms/internal/api/rest"
	"portfolio-cms/internal/domain/contact"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FAQTranslationInput struct {
	Question string `json:"question" binding:"required,max=300"`
	Answer   string `json:"answer" binding:"required"`
}

type FAQRequest struct {
	Order        *int                           `json:"order"`
	IsActive     *bool                          `json:"is_active"`
	Translations map[string]FAQTranslationInput `json:"translations" binding:"dive"`
}

// ------------------------------
// POST /faq/
// ------------------------------
func (h *Handler) CreateFAQ(c *gin.Context) {
	var req FAQRequest
	if !rest.BindJSON(c, &req) {
		return
	}
	langs, err := normalizeLangs(req.Translations)
	if err == nil {
		err = requireTranslations(langs)
	}
	if err != nil {
		rest.Fail(c, err)
		return
	}

	f := contact.FAQ{Order: intOr(req.Order, 0), IsActive: boolOr(req.IsActive, true)}
	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&f).Error; err != nil {
			return err
		}
		rows := make([]contact.FAQTranslation, 0, len(langs))
		for lang, t := range langs {
			rows = append(rows, contact.FAQTranslation{FAQID: f.ID, Lang: lang, Question: t.Question, Answer: t.Answer})
		}
		return upsertTranslations(tx, "faq_id", rows)
	})
	if err != nil {
		rest.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, createdResponse{ID: f.ID})
}

// ------------------------------
// DELETE /faq/:id/
// ------------------------------
func (h *Handler) DeleteFAQ(c *gin.Context) {
	if err := h.deleteByID(c, &contact.FAQ{}); err != nil {
		rest.Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type SocialRequest struct {
	Platform contact.Platform `json:"platform" binding:"required,oneof=facebook instagram youtube twitter linkedin wechat line other"`
	URL      string           `json:"url" binding:"required,url"`
	Username string           `json:"username" binding:"max=100"`
	Order    *int             `json:"order"`
	IsActive *bool            `json:"is_active"`
}

// ------------------------------
// POST /social/
// ------------------------------
func (h *Handler) CreateSocial(c *gin.Context) {
	var req SocialRequest
	if !rest.BindJSON(c, &req) {
		return
	}
	s := contact.SocialMedia{
		Platform: req.Platform,
		URL:      req.URL,
		Username: req.Username,
		Order:    intOr(req.Order, 0),
		IsActive: boolOr(req.IsActive, true),
	}
	if err := h.db.Create(&s).Error; err != nil {
		rest.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, createdResponse{ID: s.ID})
}

// ------------------------------
// DELETE /social/:id/
// ------------------------------
func (h *Handler) DeleteSocial(c *gin.Context) {
	if err := h.deleteByID(c, &contact.SocialMedia{}); err != nil {
		rest.Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SubmissionDTO is the admin view of a contact form, private fields included.
type SubmissionDTO struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone"`
	Subject       string         `json:"subject"`
	Message       string         `json:"message"`
	Status        contact.Status `json:"status"`
	StatusDisplay string         `json:"status_display"`
	AdminNotes    string         `json:"admin_notes"`
	IPAddress     *string        `json:"ip_address"`
	UserAgent     string         `json:"user_agent"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func toSubmissionDTO(s contact.Submission) SubmissionDTO {
	return SubmissionDTO{
		ID:            s.ID,
		Name:          s.Name,
		Email:         s.Email,
		Phone:         s.Phone,
		Subject:       s.Subject,
		Message:       s.Message,
		Status:        s.Status,
		StatusDisplay: s.Status.Display(),
		AdminNotes:    s.AdminNotes,
		IPAddress:     s.IPAddress,
		UserAgent:     s.UserAgent,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// ------------------------------
// GET /contact-forms/?status=
// ------------------------------
func (h *Handler) ListSubmissions(c *gin.Context) {
	q := h.db.Model(&contact.Submission{})
	if status := contact.Status(c.Query("status")); status != "" {
		if !status.Valid() {
			rest.Fail(c, rest.Invalid("status", "Select a valid choice."))
			return
		}
		q = q.Where("status = ?", status)
	}

	rows, page, count, err := rest.Paginate[contact.Submission](c, q.Order(contact.SubmissionOrder), rest.DefaultPageSize)
	if err != nil {
		rest.Fail(c, err)
		return
	}
	out := make([]SubmissionDTO, 0, len(rows))
	for _, s := range rows {
		out = append(out, toSubmissionDTO(s))
	}
	c.JSON(http.StatusOK, rest.NewPage(c, page, count, out))
}

// ------------------------------
// GET /contact-forms/:id/
// ------------------------------
func (h *Handler) GetSubmission(c *gin.Context) {
	var s contact.Submission
	if err := loadByID(h.db, c, &s); err != nil {
		rest.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toSubmissionDTO(s))
}

type NotesRequest struct {
	AdminNotes *string `json:"admin_notes" binding:"required"`
}

// ------------------------------
// PATCH /contact-forms/:id/
// ------------------------------
func (h *Handler) UpdateSubmissionNotes(c *gin.Context) {
	var req NotesRequest
	if !rest.BindJSON(c, &req) {
		return
	}
	var s contact.Submission
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := loadByID(tx, c, &s); err != nil {
			return err
		}
		s.AdminNotes = *req.AdminNotes
		return tx.Model(&s).Update("admin_notes", s.AdminNotes).Error
	})
	if err != nil {
		rest.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toSubmissionDTO(s))
}

type BulkRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

type BulkResponse struct {
	Updated int64 `json:"updated"`
}

// POST /contact-forms/bulk/:action/ moves every listed form allowed to make
// the transition. Forms in any other state are left untouched.
func (h *Handler) BulkSubmissions(c *gin.Context) {
	action := contact.Action(c.Param("action"))
	if !action.Valid() {
		rest.NotFound(c)
		return
	}
	var req BulkRequest
	if !rest.BindJSON(c, &req) {
		return
	}
	ids := make([]string, 0, len(req.IDs))
	for _, id := range req.IDs {
		if !rest.ValidID(id) {
			rest.Fail(c, rest.Invalid("ids", "\""+id+"\" is not a valid UUID."))
			return
		}
		ids = append(ids, id)
	}

	n, err := contact.ApplyBulk(h.db, action, ids)
	if err != nil {
		rest.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, BulkResponse{Updated: n})
}
