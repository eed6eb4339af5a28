package contact

import (
	"time"

	"portfolio-cms/internal/api/rest"
	"portfolio-cms/internal/domain/contact"

	"github.com/gin-gonic/gin"
)

type InfoDTO struct {
	Phone         string            `json:"phone"`
	Email         string            `json:"email"`
	Address       string            `json:"address"`
	BusinessHours string            `json:"business_hours"`
	Latitude      *float64          `json:"latitude"`
	Longitude     *float64          `json:"longitude"`
	Translations  map[string]string `json:"translations"`
}

type SocialDTO struct {
	ID              string           `json:"id"`
	Platform        contact.Platform `json:"platform"`
	PlatformDisplay string           `json:"platform_display"`
	URL             string           `json:"url"`
	Username        string           `json:"username"`
	IsActive        bool             `json:"is_active"`
	Order           int              `json:"order"`
}

type FAQDTO struct {
	ID           string            `json:"id"`
	IsActive     bool              `json:"is_active"`
	Order        int               `json:"order"`
	CreatedAt    time.Time         `json:"created_at"`
	Translations map[string]string `json:"translations"`
}

type FormRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"max=20"`
	Subject string `json:"subject" binding:"required,max=200"`
	Message string `json:"message" binding:"required"`
}

type FormCreatedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type FormSuccessResponse struct {
	Title         string `json:"title"`
	Message       string `json:"message"`
	RedirectDelay int    `json:"redirect_delay"`
}

func defaultInfo() InfoDTO {
	return InfoDTO{
		Translations: map[string]string{
			"company_name": contact.DefaultCompanyName,
			"description":  "",
		},
	}
}

func toInfoDTO(c *gin.Context, i contact.Info) InfoDTO {
	return InfoDTO{
		Phone:         i.Phone,
		Email:         i.Email,
		Address:       i.Address,
		BusinessHours: i.BusinessHours,
		Latitude:      i.Latitude,
		Longitude:     i.Longitude,
		Translations:  i.Variants().ResolveAll(rest.Lang(c), "company_name", "description"),
	}
}

func toSocialDTO(s contact.SocialMedia) SocialDTO {
	return SocialDTO{
		ID:              s.ID,
		Platform:        s.Platform,
		PlatformDisplay: s.Platform.Display(),
		URL:             s.URL,
		Username:        s.Username,
		IsActive:        s.IsActive,
		Order:           s.Order,
	}
}

func toFAQDTOs(c *gin.Context, list []contact.FAQ) []FAQDTO {
	lang := rest.Lang(c)
	out := make([]FAQDTO, 0, len(list))
	for _, f := range list {
		out = append(out, FAQDTO{
			ID:           f.ID,
			IsActive:     f.IsActive,
			Order:        f.Order,
			CreatedAt:    f.CreatedAt,
			Translations: f.Variants().ResolveAll(lang, "question", "answer"),
		})
	}
	return out
}
