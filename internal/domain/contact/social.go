package contact

import "portfolio-cms/internal/domain/core"

type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformYouTube   Platform = "youtube"
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformWeChat    Platform = "wechat"
	PlatformLine      Platform = "line"
	PlatformOther     Platform = "other"
)

var platformDisplay = map[Platform]string{
	PlatformFacebook:  "Facebook",
	PlatformInstagram: "Instagram",
	PlatformYouTube:   "YouTube",
	PlatformTwitter:   "Twitter",
	PlatformLinkedIn:  "LinkedIn",
	PlatformWeChat:    "微信",
	PlatformLine:      "LINE",
	PlatformOther:     "其他",
}

func (p Platform) Display() string {
	if d, ok := platformDisplay[p]; ok {
		return d
	}
	return string(p)
}

type SocialMedia struct {
	core.Model
	Platform Platform `gorm:"type:varchar(20);not null;index" json:"platform"`
	URL      string   `gorm:"not null" json:"url"`
	Username string   `gorm:"size:100" json:"username"`
	IsActive bool     `gorm:"not null" json:"is_active"`
	Order    int      `gorm:"column:sort_order;not null;default:0" json:"order"`
}

func (SocialMedia) TableName() string { return "social_media" }

const SocialOrder = "sort_order ASC, platform ASC"
