package works

import "time"

type ArtworkTranslation struct {
	ArtworkID   string `gorm:"type:uuid;primaryKey"`
	Lang        string `gorm:"size:10;primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string
	Technique   string `gorm:"size:200"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t ArtworkTranslation) Language() string { return t.Lang }

func (t ArtworkTranslation) Fields() map[string]string {
	return map[string]string{
		"title":       t.Title,
		"description": t.Description,
		"technique":   t.Technique,
	}
}

// TranslatedFields are the per-language fields of an artwork.
var TranslatedFields = []string{"title", "description", "technique"}
