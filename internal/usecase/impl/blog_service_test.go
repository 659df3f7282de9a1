package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"levefit/config"
	"levefit/internal/domain/entity"
	domainerrors "levefit/internal/domain/errors"
	"levefit/internal/domain/repository"
	mockRepo "levefit/internal/mocks/repository"
	"levefit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blogServiceFixture struct {
	service  usecase.BlogUsecase
	blogRepo *mockRepo.MockBlogRepository
}

func createTestBlogService(t *testing.T, cfg *config.Config) *blogServiceFixture {
	blogRepo := mockRepo.NewMockBlogRepository(t)

	service := NewBlogService(BlogServiceParams{
		BlogRepo: blogRepo,
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return &blogServiceFixture{
		service:  service,
		blogRepo: blogRepo,
	}
}

func TestBlogService_ListPosts_Defaults(t *testing.T) {
	f := createTestBlogService(t, nil)

	ctx := context.Background()
	posts := []*entity.BlogPost{
		{ID: uuid.New(), Title: "Receitas leves para o verão", Slug: "receitas-leves"},
		{ID: uuid.New(), Title: "Benefícios da quinoa", Slug: "beneficios-quinoa"},
	}

	f.blogRepo.EXPECT().
		FindPublished(ctx, repository.BlogQuery{Page: 1, Limit: 9}).
		Return(posts, 10, nil)

	output, err := f.service.ListPosts(ctx, &usecase.BlogListInput{})

	require.NoError(t, err)
	require.Len(t, output.Posts, 2)
	assert.Equal(t, 1, output.Pagination.CurrentPage)
	assert.Equal(t, 2, output.Pagination.TotalPages)
	assert.Equal(t, int64(10), output.Pagination.TotalPosts)
}

func TestBlogService_ListPosts_ConfiguredPageSize(t *testing.T) {
	cfg := &config.Config{Blog: &config.BlogConfig{PageSize: 4}}
	f := createTestBlogService(t, cfg)

	ctx := context.Background()

	f.blogRepo.EXPECT().
		FindPublished(ctx, repository.BlogQuery{Page: 2, Limit: 4, Category: "Nutrição"}).
		Return([]*entity.BlogPost{}, 5, nil)

	output, err := f.service.ListPosts(ctx, &usecase.BlogListInput{Page: 2, Category: "Nutrição"})

	require.NoError(t, err)
	assert.Equal(t, 2, output.Pagination.CurrentPage)
	assert.Equal(t, 2, output.Pagination.TotalPages)
}

func TestBlogService_ListPosts_ExplicitLimitWins(t *testing.T) {
	f := createTestBlogService(t, nil)

	ctx := context.Background()

	f.blogRepo.EXPECT().
		FindPublished(ctx, repository.BlogQuery{Page: 1, Limit: 3, Search: "quinoa"}).
		Return([]*entity.BlogPost{}, 0, nil)

	output, err := f.service.ListPosts(ctx, &usecase.BlogListInput{Limit: 3, Search: "quinoa"})

	require.NoError(t, err)
	assert.Empty(t, output.Posts)
	assert.Equal(t, 0, output.Pagination.TotalPages)
}

func TestBlogService_ListPosts_OversizedLimitIsCapped(t *testing.T) {
	f := createTestBlogService(t, nil)

	ctx := context.Background()

	f.blogRepo.EXPECT().
		FindPublished(ctx, repository.BlogQuery{Page: 1, Limit: maxBlogPageSize}).
		Return([]*entity.BlogPost{}, 200, nil)

	output, err := f.service.ListPosts(ctx, &usecase.BlogListInput{Limit: 1000000})

	require.NoError(t, err)
	assert.Equal(t, 4, output.Pagination.TotalPages, "total pages reflect the capped limit, not the requested one")
}

func TestBlogService_GetPostBySlug_IncrementsViews(t *testing.T) {
	f := createTestBlogService(t, nil)

	ctx := context.Background()
	post := &entity.BlogPost{
		ID:    uuid.New(),
		Title: "Benefícios da quinoa",
		Slug:  "beneficios-quinoa",
		Views: 5,
	}

	f.blogRepo.EXPECT().FindBySlug(ctx, post.Slug).Return(post, nil)
	f.blogRepo.EXPECT().IncrementViews(ctx, post.ID).Return(nil)

	output, err := f.service.GetPostBySlug(ctx, post.Slug)

	require.NoError(t, err)
	assert.Equal(t, 6, output.Views)
}

func TestBlogService_GetPostBySlug_LostViewDoesNotBreakRead(t *testing.T) {
	f := createTestBlogService(t, nil)

	ctx := context.Background()
	post := &entity.BlogPost{
		ID:    uuid.New(),
		Title: "Benefícios da quinoa",
		Slug:  "beneficios-quinoa",
		Views: 5,
	}

	f.blogRepo.EXPECT().FindBySlug(ctx, post.Slug).Return(post, nil)
	f.blogRepo.EXPECT().IncrementViews(ctx, post.ID).Return(errors.New("connection reset"))

	output, err := f.service.GetPostBySlug(ctx, post.Slug)

	require.NoError(t, err)
	assert.Equal(t, 5, output.Views)
}

func TestBlogService_GetPostBySlug_NotFound(t *testing.T) {
	f := createTestBlogService(t, nil)

	ctx := context.Background()

	f.blogRepo.EXPECT().
		FindBySlug(ctx, "nao-existe").
		Return(nil, repository.ErrPostNotFound)

	output, err := f.service.GetPostBySlug(ctx, "nao-existe")

	require.ErrorIs(t, err, domainerrors.ErrPostNotFound)
	assert.Nil(t, output)
}

func TestBlogService_ListCategories(t *testing.T) {
	f := createTestBlogService(t, nil)

	ctx := context.Background()

	f.blogRepo.EXPECT().
		DistinctCategories(ctx).
		Return([]string{"Nutrição", "Receitas"}, nil)

	categories, err := f.service.ListCategories(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"Nutrição", "Receitas"}, categories)
}
