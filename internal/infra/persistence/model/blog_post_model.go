package model

import (
	"time"

	"github.com/google/uuid"
)

// BlogPostModel is the GORM-specific struct for the 'blog_posts' table.
type BlogPostModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Body      string    `gorm:"type:text;not null"`
	Category  string    `gorm:"type:varchar(100);not null;index"`
	Slug      string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Author    string    `gorm:"type:varchar(255);not null"`
	Views     int       `gorm:"not null;default:0"`
	Published bool      `gorm:"not null;default:false;index"`
	Featured  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BlogPostModel) TableName() string {
	return "blog_posts"
}
