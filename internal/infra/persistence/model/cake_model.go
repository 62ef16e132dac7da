package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CakeModel mirrors the 'cakes' table. BakeryID references bakeries.id.
type CakeModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BakeryID         uuid.UUID       `gorm:"type:uuid;index;not null"`
	Name             string          `gorm:"type:varchar(100);not null"`
	Description      string          `gorm:"type:text"`
	Price            decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Category         string          `gorm:"type:varchar(50)"`
	Allergens        StringList      `gorm:"type:jsonb;not null;default:'[]'"`
	ImageURL         string          `gorm:"type:text"`
	Available        bool            `gorm:"not null"`
	PreparationHours int             `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (CakeModel) TableName() string {
	return "cakes"
}

// CakeListingRow is a cake joined with the public fields of its bakery.
type CakeListingRow struct {
	CakeModel
	BakeryName    string
	BakeryAddress string
}
