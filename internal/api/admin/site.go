package admin

import (
	"errors"
	"fmt"
	"net/http"

	"portfolio-cms/internal/api/rest"
	"portfolio-cms/internal/domain/media"
	"portfolio-cms/internal/domain/site"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SiteContentTranslationInput struct {
	HeroTitle               string `json:"hero_title" binding:"max=200"`
	HeroSubtitle            string `json:"hero_subtitle" binding:"max=200"`
	HeroDescription         string `json:"hero_description"`
	HeroCTAText             string `json:"hero_cta_text" binding:"max=50"`
	MasterTitle             string `json:"master_title" binding:"max=200"`
	MasterSubtitle          string `json:"master_subtitle" binding:"max=200"`
	MasterDescription       string `json:"master_description"`
	MasterDescription2      string `json:"master_description2"`
	MasterAchievementsTitle string `json:"master_achievements_title" binding:"max=100"`
	MasterTechniqueTitle    string `json:"master_technique_title" binding:"max=100"`
	MasterTechniqueDesc     string `json:"master_technique_desc"`
	FooterDescription       string `json:"footer_description"`
	CopyrightText           string `json:"copyright_text" binding:"max=200"`
}

type SiteContentRequest struct {
	IsActive     *bool                                  `json:"is_active"`
	HeroImage    *media.Input                           `json:"hero_image"`
	MasterImage  *media.Input                           `json:"master_image"`
	Translations map[string]SiteContentTranslationInput `json:"translations" binding:"dive"`
}

func contentTranslations(id string, in map[string]SiteContentTranslationInput) []site.ContentTranslation {
	rows := make([]site.ContentTranslation, 0, len(in))
	for lang, t := range in {
		rows = append(rows, site.ContentTranslation{
			ContentID:               id,
			Lang:                    lang,
			HeroTitle:               t.HeroTitle,
			HeroSubtitle:            t.HeroSubtitle,
			HeroDescription:         t.HeroDescription,
			HeroCTAText:             t.HeroCTAText,
			MasterTitle:             t.MasterTitle,
			MasterSubtitle:          t.MasterSubtitle,
			MasterDescription:       t.MasterDescription,
			MasterDescription2:      t.MasterDescription2,
			MasterAchievementsTitle: t.MasterAchievementsTitle,
			MasterTechniqueTitle:    t.MasterTechniqueTitle,
			MasterTechniqueDesc:     t.MasterTechniqueDesc,
			FooterDescription:       t.FooterDescription,
			CopyrightText:           t.CopyrightText,
		})
	}
	return rows
}

// PUT /site-content/:section/ creates the section on first write.
func (h *Handler) UpsertSiteContent(c *gin.Context) {
	section := site.Section(c.Param("section"))
	if !section.Valid() {
		rest.Detail(c, http.StatusNotFound, fmt.Sprintf("Section %q does not exist.", section))
		return
	}

	var req SiteContentRequest
	if !rest.BindJSON(c, &req) {
		return
	}
	langs, err := normalizeLangs(req.Translations)
	if err != nil {
		rest.Fail(c, err)
		return
	}

	var content site.Content
	status := http.StatusOK
	err = h.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("section = ?", section).First(&content).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			content = site.Content{Section: section, IsActive: true}
			status = http.StatusCreated
		case err != nil:
			return err
		}
		content.IsActive = boolOr(req.IsActive, content.IsActive)

		if content.HeroImageID, err = media.Save(tx, content.HeroImageID, req.HeroImage); err != nil {
			return err
		}
		if content.MasterImageID, err = media.Save(tx, content.MasterImageID, req.MasterImage); err != nil {
			return err
		}
		if err := tx.Omit("HeroImage", "MasterImage", "Translations").Save(&content).Error; err != nil {
			return err
		}
		return upsertTranslations(tx, "content_id", contentTranslations(content.ID, langs))
	})
	if err != nil {
		rest.Fail(c, err)
		return
	}
	c.JSON(status, createdResponse{ID: content.ID})
}

type AchievementTranslationInput struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
}

type AchievementRequest struct {
	Year         *int                                   `json:"year" binding:"omitempty,min=1,max=9999"`
	Order        *int                                   `json:"order"`
	IsActive     *bool                                  `json:"is_active"`
	Translations map[string]AchievementTranslationInput `json:"translations" binding:"dive"`
}

// ------------------------------
// POST /achievements/
// ------------------------------
func (h *Handler) CreateAchievement(c *gin.Context) {
	var req AchievementRequest
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

	a := site.Achievement{Year: req.Year, Order: intOr(req.Order, 0), IsActive: boolOr(req.IsActive, true)}
	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&a).Error; err != nil {
			return err
		}
		rows := make([]site.AchievementTranslation, 0, len(langs))
		for lang, t := range langs {
			rows = append(rows, site.AchievementTranslation{
				AchievementID: a.ID, Lang: lang, Title: t.Title, Description: t.Description,
			})
		}
		return upsertTranslations(tx, "achievement_id", rows)
	})
	if err != nil {
		rest.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, createdResponse{ID: a.ID})
}

// ------------------------------
// DELETE /achievements/:id/
// ------------------------------
func (h *Handler) DeleteAchievement(c *gin.Context) {
	if err := h.deleteByID(c, &site.Achievement{}); err != nil {
		rest.Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
