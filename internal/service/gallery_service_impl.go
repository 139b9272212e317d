package service

import (
	"context"
	"errors"

	"github.com/veldwerk/backend/internal/model"
	"github.com/veldwerk/backend/internal/repository"
)

// galleryServiceImpl is the production implementation of GalleryService.
type galleryServiceImpl struct {
	repo repository.GalleryRepository
}

// NewGalleryService creates a GalleryService backed by the given repository.
func NewGalleryService(repo repository.GalleryRepository) GalleryService {
	return &galleryServiceImpl{repo: repo}
}

// List applies the page-size default and delegates to the repository.
func (s *galleryServiceImpl) List(ctx context.Context, opts GalleryListOptions) (*model.GalleryPage, error) {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultGalleryPageSize
	}
	return s.repo.List(ctx, opts.Filters, pageSize, opts.Cursor)
}

// GetByID translates ErrNotFound into a nil result.
func (s *galleryServiceImpl) GetByID(ctx context.Context, id string) (*model.GalleryItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return item, err
}

// Create stores the item.
func (s *galleryServiceImpl) Create(ctx context.Context, item *model.GalleryItem) (string, error) {
	if err := s.repo.Create(ctx, item); err != nil {
		return "", err
	}
	return item.ID, nil
}

// Update applies a partial update.
func (s *galleryServiceImpl) Update(ctx context.Context, id string, patch model.GalleryPatch) error {
	return s.repo.Update(ctx, id, patch)
}

// Delete ensures the item is absent.
func (s *galleryServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
