package postgres

import (
	"context"

	"levefit/internal/domain/entity"
	"levefit/internal/domain/repository"
	"levefit/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// blogRepository implements the repository.BlogRepository interface.
type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository is the constructor for blogRepository.
func NewBlogRepository(db *gorm.DB) repository.BlogRepository {
	return &blogRepository{
		db: db,
	}
}

// FindPublished retrieves one page of published posts, newest first, plus the
// total number of posts matching the query.
func (repo *blogRepository) FindPublished(ctx context.Context, query repository.BlogQuery) ([]*entity.BlogPost, int64, error) {
	base := repo.db.WithContext(ctx).
		Model(&model.BlogPostModel{}).
		Where("published = ?", true)

	if query.Category != "" {
		base = base.Where("category = ?", query.Category)
	}
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		base = base.Where("title ILIKE ? OR body ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count published posts")
	}

	var postModels []*model.BlogPostModel
	if err := base.
		Order("created_at DESC").
		Offset(query.Offset()).
		Limit(query.Limit).
		Find(&postModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to find published posts")
	}

	posts := make([]*entity.BlogPost, 0, len(postModels))
	for _, postM := range postModels {
		posts = append(posts, toBlogPostDomain(postM))
	}

	return posts, total, nil
}

// FindBySlug retrieves a published post by its slug.
func (repo *blogRepository) FindBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	var postM model.BlogPostModel

	if err := repo.db.WithContext(ctx).
		Where("slug = ? AND published = ?", slug, true).
		First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by slug")
	}

	return toBlogPostDomain(&postM), nil
}

// IncrementViews bumps the view counter of a post atomically.
func (repo *blogRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BlogPostModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment post views")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// DistinctCategories returns the distinct categories of published posts,
// alphabetically ordered.
func (repo *blogRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	var categories []string

	if err := repo.db.WithContext(ctx).
		Model(&model.BlogPostModel{}).
		Where("published = ?", true).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find distinct blog categories")
	}

	return categories, nil
}

// --- Mapper Functions ---

// toBlogPostDomain converts a GORM BlogPostModel to a domain BlogPost entity.
func toBlogPostDomain(data *model.BlogPostModel) *entity.BlogPost {
	if data == nil {
		return nil
	}

	return &entity.BlogPost{
		ID:        data.ID,
		Title:     data.Title,
		Body:      data.Body,
		Category:  data.Category,
		Slug:      data.Slug,
		Author:    data.Author,
		Views:     data.Views,
		Published: data.Published,
		Featured:  data.Featured,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
