package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a catalog item. Photo bytes live in the file-based photo
// store; the row only records where they are and their content type.
type Product struct {
	ID               uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Name             string          `json:"name" gorm:"size:255;not null;index"`
	Slug             string          `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Description      string          `json:"description" gorm:"type:text;not null"`
	Price            decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	CategoryID       uuid.UUID       `json:"category_id" gorm:"type:char(36);not null;index"`
	Quantity         int             `json:"quantity" gorm:"not null;default:0"`
	Shipping         bool            `json:"shipping" gorm:"default:false"`
	PhotoPath        string          `json:"-" gorm:"size:512"`
	PhotoContentType string          `json:"-" gorm:"size:128"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	DeletedAt        gorm.DeletedAt  `json:"-" gorm:"index"`

	// Relations
	Category Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// HasPhoto reports whether a photo has been stored for this product.
func (p *Product) HasPhoto() bool {
	return p.PhotoPath != ""
}
