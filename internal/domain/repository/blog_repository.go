package repository

import (
	"context"

	"levefit/internal/domain/entity"
	"levefit/internal/errors"

	"github.com/google/uuid"
)

// ErrPostNotFound is returned when a blog post is not found.
var ErrPostNotFound = errors.New("blog post not found")

// BlogQuery narrows and paginates the published-post listing.
type BlogQuery struct {
	Page     int    // 1-based page index.
	Limit    int    // Page size.
	Category string // Optional exact category match.
	Search   string // Optional case-insensitive title/body substring match.
}

// Offset returns the row offset for the query's page.
func (q BlogQuery) Offset() int {
	page := q.Page
	if page < 1 {
		page = 1
	}

	return (page - 1) * q.Limit
}

// BlogRepository defines the interface for blog-post database operations.
type BlogRepository interface {
	// FindPublished retrieves one page of published posts, newest first,
	// along with the total number of posts matching the query.
	FindPublished(ctx context.Context, query BlogQuery) ([]*entity.BlogPost, int64, error)

	// FindBySlug retrieves a published post by its slug.
	FindBySlug(ctx context.Context, slug string) (*entity.BlogPost, error)

	// IncrementViews bumps the view counter of a post.
	IncrementViews(ctx context.Context, id uuid.UUID) error

	// DistinctCategories returns the distinct categories of published posts,
	// alphabetically ordered.
	DistinctCategories(ctx context.Context) ([]string, error)
}
