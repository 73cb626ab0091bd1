package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category represents a food category in the catalog.
type Category struct {
	ID        uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string         `json:"name" gorm:"uniqueIndex;size:255;not null"`
	Slug      string         `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
