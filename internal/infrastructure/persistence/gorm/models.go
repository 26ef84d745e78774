// Package gorm provides the GORM-backed inventory store adapter.
package gorm

import (
	"time"

	"github.com/google/uuid"
)

// PantryItemModel is the persistence shape of a pantry item. Version
// backs the optimistic-concurrency check on consumption write-backs.
type PantryItemModel struct {
	ID             uuid.UUID `gorm:"type:char(36);primaryKey"`
	Version        int64     `gorm:"default:1"`
	Name           string    `gorm:"type:varchar(255);not null"`
	NormalizedName string    `gorm:"type:varchar(255);index;not null"`
	Quantity       float64   `gorm:"not null"`
	Unit           string    `gorm:"type:varchar(50)"`
	ExpiresAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName overrides the GORM default
func (PantryItemModel) TableName() string {
	return "pantry_items"
}
