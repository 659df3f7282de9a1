package entity

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost is editorial content, unrelated to ordering. Only published posts
// are served; Featured marks the post highlighted on the blog landing page.
type BlogPost struct {
	ID        uuid.UUID
	Title     string
	Body      string
	Category  string
	Slug      string // Unique URL identifier.
	Author    string
	Views     int
	Published bool
	Featured  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
