package model

import (
	"time"

	"github.com/google/uuid"
)

// DishModel is the GORM-specific struct for the 'dishes' table. Supplier and
// Ratings are preloaded on catalog reads.
type DishModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SupplierID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Price       float64   `gorm:"type:decimal(10,2);not null"`
	Image       string    `gorm:"type:text"`
	Category    string    `gorm:"type:varchar(100);not null;index"`
	Available   bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Supplier *SupplierModel `gorm:"foreignKey:SupplierID"`
	Ratings  []RatingModel  `gorm:"foreignKey:DishID"`
}

// TableName explicitly sets the table name for GORM.
func (DishModel) TableName() string {
	return "dishes"
}
