package model

import (
	"time"

	"github.com/google/uuid"
)

// RatingModel is the GORM-specific struct for the 'ratings' table. The
// composite unique index backs the one-rating-per-customer-per-dish rule.
type RatingModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DishID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_customer_dish"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_customer_dish"`
	Score      int       `gorm:"not null;check:score >= 1 AND score <= 5"`
	Comment    string    `gorm:"type:text"`
	CreatedAt  time.Time

	Customer *CustomerModel `gorm:"foreignKey:CustomerID"`
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}
