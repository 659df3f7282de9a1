package impl

import (
	"context"
	"log/slog"

	"levefit/config"
	deliverycontext "levefit/internal/delivery/context"
	"levefit/internal/domain/entity"
	domainerrors "levefit/internal/domain/errors"
	"levefit/internal/domain/repository"
	"levefit/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultBlogPageSize is used when no page size is configured or requested.
// maxBlogPageSize bounds the limit query param so one request cannot ask for
// the whole table.
const (
	defaultBlogPageSize = 9
	maxBlogPageSize     = 50
)

// blogService implements the BlogUsecase interface.
type blogService struct {
	blogRepo repository.BlogRepository
	pageSize int
	logger   *slog.Logger
}

// BlogServiceParams holds dependencies for BlogService, injected by Fx.
type BlogServiceParams struct {
	fx.In

	BlogRepo repository.BlogRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewBlogService is the constructor for blogService.
func NewBlogService(params BlogServiceParams) usecase.BlogUsecase {
	pageSize := defaultBlogPageSize
	if params.Config != nil && params.Config.Blog != nil && params.Config.Blog.PageSize > 0 {
		pageSize = params.Config.Blog.PageSize
	}

	return &blogService{
		blogRepo: params.BlogRepo,
		pageSize: pageSize,
		logger:   params.Logger,
	}
}

func (srv *blogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPosts returns one page of published posts, newest first, with the
// pagination block the client renders.
func (srv *blogService) ListPosts(ctx context.Context, input *usecase.BlogListInput) (*usecase.BlogListOutput, error) {
	query := repository.BlogQuery{
		Page:     input.Page,
		Limit:    input.Limit,
		Category: input.Category,
		Search:   input.Search,
	}
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = srv.pageSize
	}
	if query.Limit > maxBlogPageSize {
		query.Limit = maxBlogPageSize
	}

	posts, total, err := srv.blogRepo.FindPublished(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find published posts")
	}

	totalPages := int((total + int64(query.Limit) - 1) / int64(query.Limit))

	outputs := make([]*usecase.BlogPostOutput, 0, len(posts))
	for _, post := range posts {
		outputs = append(outputs, toBlogPostOutput(post))
	}

	return &usecase.BlogListOutput{
		Posts: outputs,
		Pagination: usecase.BlogPagination{
			CurrentPage: query.Page,
			TotalPages:  totalPages,
			TotalPosts:  total,
		},
	}, nil
}

// GetPostBySlug returns a published post and counts the view.
func (srv *blogService) GetPostBySlug(ctx context.Context, slug string) (*usecase.BlogPostOutput, error) {
	post, err := srv.blogRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by slug")
	}

	if err := srv.blogRepo.IncrementViews(ctx, post.ID); err != nil {
		// A lost view count must not break the read path.
		srv.log(ctx).Warn("Failed to increment post views", slog.Any("postID", post.ID), slog.Any("error", err))
	} else {
		post.Views++
	}

	return toBlogPostOutput(post), nil
}

// ListCategories returns the distinct categories of published posts.
func (srv *blogService) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := srv.blogRepo.DistinctCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find distinct blog categories")
	}

	return categories, nil
}

func toBlogPostOutput(post *entity.BlogPost) *usecase.BlogPostOutput {
	return &usecase.BlogPostOutput{
		ID:        post.ID,
		Title:     post.Title,
		Body:      post.Body,
		Category:  post.Category,
		Slug:      post.Slug,
		Author:    post.Author,
		Views:     post.Views,
		Featured:  post.Featured,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}
