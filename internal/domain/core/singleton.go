package core

import (
	"fmt"

	"gorm.io/gorm"
)

// Singleton pins a table to one row: every insert writes the same value into
// a uniquely indexed column, so the store rejects a second row even when two
// creators race past GuardCreate.
type Singleton struct {
	Singleton int `gorm:"column:singleton;not null;default:1;uniqueIndex" json:"-"`
}

// GuardCreate fails with ErrSingletonExists when a row of model's table
// already exists. model must be a pointer to an empty value of the table.
func GuardCreate(tx *gorm.DB, model any) error {
	var n int64
	if err := tx.Session(&gorm.Session{NewDB: true}).Model(model).Count(&n).Error; err != nil {
		return fmt.Errorf("count singleton rows: %w", err)
	}
	if n > 0 {
		return ErrSingletonExists
	}
	return nil
}
