package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus represents the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusNotProcessed OrderStatus = "Not Processed"
	OrderStatusProcessing   OrderStatus = "Processing"
	OrderStatusShipping     OrderStatus = "Shipping"
	OrderStatusDelivered    OrderStatus = "Delivered"
	OrderStatusCancelled    OrderStatus = "Cancelled"
)

// ValidOrderStatus reports whether s is one of the known statuses.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusNotProcessed, OrderStatusProcessing, OrderStatusShipping,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order represents a placed order with its payment reference.
type Order struct {
	ID            uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	BuyerID       uuid.UUID       `json:"buyer_id" gorm:"type:char(36);not null;index"`
	Status        OrderStatus     `json:"status" gorm:"type:varchar(20);not null;default:'Not Processed';index"`
	TransactionID string          `json:"transaction_id" gorm:"size:255"`
	Total         decimal.Decimal `json:"total" gorm:"type:decimal(20,2);not null"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `json:"-" gorm:"index"`

	// Relations
	Buyer User        `json:"buyer,omitempty" gorm:"foreignKey:BuyerID"`
	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

// BeforeCreate sets UUID before creating the record.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OrderItem records one product line of an order with the unit price at the
// time of purchase.
type OrderItem struct {
	ID        uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	OrderID   uuid.UUID       `json:"order_id" gorm:"type:char(36);not null;index"`
	ProductID uuid.UUID       `json:"product_id" gorm:"type:char(36);not null;index"`
	UnitPrice decimal.Decimal `json:"unit_price" gorm:"type:decimal(20,2);not null"`
	Quantity  int             `json:"quantity" gorm:"not null;default:1"`
	CreatedAt time.Time       `json:"created_at"`

	// Relations
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// BeforeCreate sets UUID before creating the record.
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
