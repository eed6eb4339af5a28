package media

import (
	"strings"

	"portfolio-cms/internal/domain/core"

	"gorm.io/gorm"
)

// Image is a stored media file referenced by content rows. Uploading and
// thumbnailing happen elsewhere; only paths are recorded here.
type Image struct {
	core.Model
	OriginalPath string  `gorm:"not null" json:"original_path"`
	WebpPath     *string `json:"webp_path,omitempty"`
	AltText      string  `json:"alt_text,omitempty"`
}

// Input is the admin payload describing an image reference.
type Input struct {
	OriginalPath string  `json:"original_path" binding:"required"`
	WebpPath     *string `json:"webp_path"`
	AltText      string  `json:"alt_text"`
}

// Save updates the image currentID points at, or creates one when currentID
// is nil. A nil input leaves the reference untouched.
func Save(tx *gorm.DB, currentID *string, in *Input) (*string, error) {
	if in == nil {
		return currentID, nil
	}
	if currentID != nil && *currentID != "" {
		err := tx.Model(&Image{}).Where("id = ?", *currentID).Updates(map[string]any{
			"original_path": in.OriginalPath,
			"webp_path":     in.WebpPath,
			"alt_text":      in.AltText,
		}).Error
		return currentID, err
	}
	img := Image{OriginalPath: in.OriginalPath, WebpPath: in.WebpPath, AltText: in.AltText}
	if err := tx.Create(&img).Error; err != nil {
		return nil, err
	}
	return &img.ID, nil
}

// URL returns the absolute URL of img under base, or nil without an image.
// Paths that are already absolute URLs are returned unchanged.
func URL(base string, img *Image) *string {
	if img == nil || img.OriginalPath == "" {
		return nil
	}
	p := img.OriginalPath
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return &p
	}
	u := strings.TrimRight(base, "/") + "/" + strings.TrimLeft(p, "/")
	return &u
}
