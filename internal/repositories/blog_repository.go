package repositories

import (
	"context"

	"gorm.io/gorm"

	"homevest_backend/internal/database"
	"homevest_backend/internal/demo"
	"homevest_backend/internal/models"
)

type BlogRepository interface {
	Create(ctx context.Context, b *models.Blog) (*models.Blog, error)
	GetByID(ctx context.Context, id string) (*models.Blog, error)
	GetBySlug(ctx context.Context, slug string) (*models.Blog, error)
	List(ctx context.Context, publishedOnly bool) ([]*models.Blog, error)
	Update(ctx context.Context, b *models.Blog) error
	Delete(ctx context.Context, id string) error
}

type blogRepository struct {
	db     *gorm.DB
	health *database.HealthChecker
	store  *demo.Store
}

func NewBlogRepository(db *gorm.DB, health *database.HealthChecker, store *demo.Store) BlogRepository {
	return &blogRepository{db: db, health: health, store: store}
}

func (r *blogRepository) Create(ctx context.Context, b *models.Blog) (*models.Blog, error) {
	if r.health.DemoMode(ctx) {
		return r.store.CreateBlog(b), nil
	}
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return nil, translate(err)
	}
	return b, nil
}

func (r *blogRepository) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	if r.health.DemoMode(ctx) {
		return r.store.GetBlogByID(id), nil
	}
	var b models.Blog
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *blogRepository) GetBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	if r.health.DemoMode(ctx) {
		return r.store.GetBlogBySlug(slug), nil
	}
	var b models.Blog
	err := r.db.WithContext(ctx).First(&b, "slug = ?", slug).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *blogRepository) List(ctx context.Context, publishedOnly bool) ([]*models.Blog, error) {
	if r.health.DemoMode(ctx) {
		return r.store.ListBlogs(publishedOnly), nil
	}
	q := r.db.WithContext(ctx).Order("created_at desc")
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	var out []*models.Blog
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *blogRepository) Update(ctx context.Context, b *models.Blog) error {
	if r.health.DemoMode(ctx) {
		r.store.UpdateBlog(b)
		return nil
	}
	return translate(r.db.WithContext(ctx).Save(b).Error)
}

func (r *blogRepository) Delete(ctx context.Context, id string) error {
	if r.health.DemoMode(ctx) {
		r.store.DeleteBlog(id)
		return nil
	}
	return r.db.WithContext(ctx).Delete(&models.Blog{}, "id = ?", id).Error
}
