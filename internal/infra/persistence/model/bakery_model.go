package model

import (
	"time"

	"github.com/google/uuid"
)

// BakeryModel mirrors the 'bakeries' table. OwnerID references profiles.id.
type BakeryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	Address     string    `gorm:"type:text"`
	Phone       string    `gorm:"type:varchar(32)"`
	ImageURL    string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BakeryModel) TableName() string {
	return "bakeries"
}
