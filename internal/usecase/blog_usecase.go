package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BlogListInput narrows and paginates the blog listing.
type BlogListInput struct {
	Page     int
	Limit    int
	Category string
	Search   string
}

// BlogPostOutput is the blog post representation served by the API.
type BlogPostOutput struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"titulo"`
	Body      string    `json:"conteudo"`
	Category  string    `json:"categoria"`
	Slug      string    `json:"slug"`
	Author    string    `json:"autor"`
	Views     int       `json:"visualizacoes"`
	Featured  bool      `json:"destaque"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BlogPagination mirrors the pagination block the web client renders.
type BlogPagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalPosts  int64 `json:"totalPosts"`
}

// BlogListOutput is one page of published posts.
type BlogListOutput struct {
	Posts      []*BlogPostOutput `json:"posts"`
	Pagination BlogPagination    `json:"pagination"`
}

// BlogUsecase groups the editorial content reads.
type BlogUsecase interface {
	// ListPosts returns one page of published posts, newest first.
	ListPosts(ctx context.Context, input *BlogListInput) (*BlogListOutput, error)

	// GetPostBySlug returns a published post and counts the view.
	GetPostBySlug(ctx context.Context, slug string) (*BlogPostOutput, error)

	// ListCategories returns the distinct categories of published posts.
	ListCategories(ctx context.Context) ([]string, error)
}
