package core

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Model is the identity and timestamp core shared by every table.
type Model struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *Model) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// Publishable carries the public visibility flags and the manual sort key.
// Smaller Order sorts first.
type Publishable struct {
	IsPublished bool `gorm:"not null;index" json:"is_published"`
	IsFeatured  bool `gorm:"not null;default:false;index" json:"is_featured"`
	Order       int  `gorm:"column:sort_order;not null;default:0" json:"order"`
}

// DefaultOrder is the list order for Publishable content.
const DefaultOrder = "sort_order ASC, created_at DESC"
