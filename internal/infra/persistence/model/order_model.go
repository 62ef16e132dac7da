package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table.
// CakeID is restricted on delete, CustomerID and BakeryID cascade.
type OrderModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID          uuid.UUID       `gorm:"type:uuid;index;not null"`
	CakeID              uuid.UUID       `gorm:"type:uuid;index;not null"`
	BakeryID            uuid.UUID       `gorm:"type:uuid;index;not null"`
	Quantity            int             `gorm:"not null"`
	TotalAmount         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryType        string          `gorm:"type:varchar(16);not null"`
	DeliveryAddress     string          `gorm:"type:text"`
	PreferredTime       *time.Time
	SpecialInstructions string `gorm:"type:text"`
	Status              string `gorm:"type:varchar(16);not null;default:'pending'"`
	PaymentStatus       string `gorm:"type:varchar(16);not null;default:'pending'"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// CustomerOrderRow is an order joined with its cake and bakery.
type CustomerOrderRow struct {
	OrderModel
	CakeName      string
	CakePrice     decimal.Decimal
	BakeryName    string
	BakeryAddress string
}

// BakeryOrderRow is an order joined with its cake and the ordering customer.
type BakeryOrderRow struct {
	OrderModel
	CakeName      string
	CakePrice     decimal.Decimal
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}
