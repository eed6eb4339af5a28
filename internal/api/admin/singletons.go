package admin

import (
	"errors"
	"net/http"

	"portfolio-cms/internal/api/rest"
	"portfolio-cms/internal/domain/blog"
	"portfolio-cms/internal/domain/contact"
	"portfolio-cms/internal/domain/core"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BlogSettingsRequest struct {
	SiteName      *string `json:"site_name" binding:"omitempty,min=1,max=100"`
	PostsPerPage  *int    `json:"posts_per_page" binding:"omitempty,min=1,max=100"`
	AllowComments *bool   `json:"allow_comments"`
}

func (req BlogSettingsRequest) apply(s *blog.Settings) {
	if req.SiteName != nil {
		s.SiteName = *req.SiteName
	}
	s.PostsPerPage = intOr(req.PostsPerPage, s.PostsPerPage)
	s.AllowComments = boolOr(req.AllowComments, s.AllowComments)
}

// first loads the only row of a singleton table into dst.
func first(tx *gorm.DB, dst any) error {
	err := tx.First(dst).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return core.ErrNotFound
	}
	return err
}

// ------------------------------
// POST /blog-settings/
// ------------------------------
func (h *Handler) CreateBlogSettings(c *gin.Context) {
	var req BlogSettingsRequest
	if !rest.BindJSON(c, &req) {
		return
	}
	s := blog.DefaultSettings()
	req.apply(&s)
	if err := h.db.Create(&s).Error; err != nil {
		rest.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

// ------------------------------
// PUT /blog-settings/
// ------------------------------
func (h *Handler) UpdateBlogSettings(c *gin.Context) {
	var req BlogSettingsRequest
	if !rest.BindJSON(c, &req) {
		return
	}
	var s blog.Settings
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := first(tx, &s); err != nil {
			return err
		}
		req.apply(&s)
		return tx.Save(&s).Error
	})
	if err != nil {
		rest.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// DELETE /blog-settings/ always refuses.
func (h *Handler) DeleteBlogSettings(c *gin.Context) { h.refuseDelete(c, &blog.Settings{}) }

type ContactInfoTranslationInput struct {
	CompanyName string `json:"company_name" binding:"required,max=100"`
	Description string `json:"description"`
}

type ContactInfoRequest struct {
	Phone         *string                                `json:"phone" binding:"omitempty,max=20"`
	Email         *string                                `json:"email" binding:"omitempty,email"`
	Address       *string                                `json:"address"`
	BusinessHours *string                                `json:"business_hours"`
	Latitude      *float64                               `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude     *float64                               `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
	Translations  map[string]ContactInfoTranslationInput `json:"translations" binding:"dive"`
}

func (req ContactInfoRequest) apply(i *contact.Info) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&i.Phone, req.Phone)
	set(&i.Email, req.Email)
	set(&i.Address, req.Address)
	set(&i.BusinessHours, req.BusinessHours)
	if req.Latitude != nil {
		i.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		i.Longitude = req.Longitude
	}
}

func (h *Handler) saveContactInfo(c *gin.Context, create bool) {
	var req ContactInfoRequest
	if !rest.BindJSON(c, &req) {
		return
	}
	langs, err := normalizeLangs(req.Translations)
	if err != nil {
		rest.Fail(c, err)
		return
	}

	var info contact.Info
	err = h.db.Transaction(func(tx *gorm.DB) error {
		if create {
			req.apply(&info)
			if err := tx.Omit("Translations").Create(&info).Error; err != nil {
				return err
			}
		} else {
			if err := first(tx, &info); err != nil {
				return err
			}
			req.apply(&info)
			if err := tx.Omit("Translations").Save(&info).Error; err != nil {
				return err
			}
		}
		rows := make([]contact.InfoTranslation, 0, len(langs))
		for lang, t := range langs {
			rows = append(rows, contact.InfoTranslation{
				InfoID: info.ID, Lang: lang, CompanyName: t.CompanyName, Description: t.Description,
			})
		}
		return upsertTranslations(tx, "info_id", rows)
	})
	if err != nil {
		rest.Fail(c, err)
		return
	}
	status := http.StatusOK
	if create {
		status = http.StatusCreated
	}
	c.JSON(status, createdResponse{ID: info.ID})
}

// POST /contact-info/
func (h *Handler) CreateContactInfo(c *gin.Context) { h.saveContactInfo(c, true) }

// PUT /contact-info/
func (h *Handler) UpdateContactInfo(c *gin.Context) { h.saveContactInfo(c, false) }

// DELETE /contact-info/ always refuses.
func (h *Handler) DeleteContactInfo(c *gin.Context) { h.refuseDelete(c, &contact.Info{}) }

// refuseDelete answers 409 for a singleton. The model's BeforeDelete hook
// normally rejects the statement; a nil result still refuses.
func (h *Handler) refuseDelete(c *gin.Context, model any) {
	err := h.db.Where("1 = 1").Delete(model).Error
	if err == nil {
		err = core.ErrSingletonUndeletable
	}
	rest.Fail(c, err)
}
