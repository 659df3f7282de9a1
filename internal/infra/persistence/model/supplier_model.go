// Package model contains the GORM-specific structs mapping the domain
// entities onto PostgreSQL tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// SupplierModel is the GORM-specific struct for the 'suppliers' table.
type SupplierModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name               string    `gorm:"type:varchar(255);not null"`
	Email              string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash       string    `gorm:"type:varchar(255);not null"`
	WhatsApp           string    `gorm:"column:whatsapp;type:varchar(32);not null"`
	Logo               string    `gorm:"type:text"`
	Description        string    `gorm:"type:text"`
	Active             bool      `gorm:"not null;default:true"`
	SubscriptionActive bool      `gorm:"not null;default:false"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (SupplierModel) TableName() string {
	return "suppliers"
}
