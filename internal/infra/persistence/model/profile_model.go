package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. PrincipalID references accounts.id.
type ProfileModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PrincipalID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Role        string    `gorm:"type:varchar(16);not null"`
	DisplayName string    `gorm:"type:varchar(100);not null"`
	Email       string    `gorm:"type:varchar(255)"`
	Phone       string    `gorm:"type:varchar(32)"`
	Address     string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
