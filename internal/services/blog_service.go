package services

import (
	"context"
	"time"

	"homevest_backend/internal/logger"
	"homevest_backend/internal/models"
	"homevest_backend/internal/repositories"
	"homevest_backend/pkg/apperrors"
)

type BlogRequest struct {
	Title         string `json:"title" validate:"required,max=200"`
	Slug          string `json:"slug" validate:"omitempty,max=220"`
	Excerpt       string `json:"excerpt" validate:"omitempty,max=500"`
	Content       string `json:"content"`
	CoverImageURL string `json:"cover_image_url"`
	Author        string `json:"author" validate:"omitempty,max=120"`
	Published     bool   `json:"published"`
}

type BlogService interface {
	Create(ctx context.Context, req BlogRequest) (*models.Blog, error)
	Get(ctx context.Context, id string) (*models.Blog, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Blog, error)
	ListPublished(ctx context.Context) ([]*models.Blog, error)
	ListAdmin(ctx context.Context) ([]*models.Blog, error)
	Update(ctx context.Context, id string, req BlogRequest) (*models.Blog, error)
	Delete(ctx context.Context, id string) error
}

type blogService struct {
	blogs repositories.BlogRepository
}

func NewBlogService(blogs repositories.BlogRepository) BlogService {
	return &blogService{blogs: blogs}
}

func (s *blogService) Create(ctx context.Context, req BlogRequest) (*models.Blog, error) {
	slug := req.Slug
	if slug == "" {
		slug = slugify(req.Title)
	}
	if existing, err := s.blogs.GetBySlug(ctx, slug); err != nil {
		return nil, apperrors.DatabaseError(err, "blogs", "failed to check slug")
	} else if existing != nil {
		return nil, apperrors.ErrAlreadyExists(nil).WithDetails(map[string]string{"slug": "already in use"})
	}

	b := &models.Blog{
		Title:         req.Title,
		Slug:          slug,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		CoverImageURL: req.CoverImageURL,
		Author:        req.Author,
		Published:     req.Published,
	}
	if req.Published {
		now := time.Now()
		b.PublishedAt = &now
	}
	created, err := s.blogs.Create(ctx, b)
	if err != nil {
		if apperrors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, apperrors.DatabaseError(err, "blogs", "failed to create post")
	}
	logger.CtxInfo(ctx, "blog post created", "blog_id", created.ID, "slug", created.Slug)
	return created, nil
}

func (s *blogService) Get(ctx context.Context, id string) (*models.Blog, error) {
	b, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "blogs", "failed to load post")
	}
	if b == nil {
		return nil, apperrors.NewNotFoundError("Blog post not found")
	}
	return b, nil
}

// GetPublishedBySlug is the public read path. Drafts are indistinguishable
// from missing posts.
func (s *blogService) GetPublishedBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	b, err := s.blogs.GetBySlug(ctx, slug)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "blogs", "failed to load post")
	}
	if b == nil || !b.Published {
		return nil, apperrors.NewNotFoundError("Blog post not found")
	}
	return b, nil
}

func (s *blogService) ListPublished(ctx context.Context) ([]*models.Blog, error) {
	out, err := s.blogs.List(ctx, true)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "blogs", "failed to list posts")
	}
	return out, nil
}

func (s *blogService) ListAdmin(ctx context.Context) ([]*models.Blog, error) {
	out, err := s.blogs.List(ctx, false)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "blogs", "failed to list posts")
	}
	return out, nil
}

func (s *blogService) Update(ctx context.Context, id string, req BlogRequest) (*models.Blog, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	wasPublished := b.Published
	b.Title = req.Title
	if req.Slug != "" {
		b.Slug = req.Slug
	}
	b.Excerpt = req.Excerpt
	b.Content = req.Content
	b.CoverImageURL = req.CoverImageURL
	b.Author = req.Author
	b.Published = req.Published
	if req.Published && !wasPublished {
		now := time.Now()
		b.PublishedAt = &now
	}
	if err := s.blogs.Update(ctx, b); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, apperrors.DatabaseError(err, "blogs", "failed to update post")
	}
	return b, nil
}

func (s *blogService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.blogs.Delete(ctx, id); err != nil {
		return apperrors.DatabaseError(err, "blogs", "failed to delete post")
	}
	logger.CtxInfo(ctx, "blog post deleted", "blog_id", id)
	return nil
}
