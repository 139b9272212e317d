package service

import (
	"context"

	"github.com/veldwerk/backend/internal/model"
)

// DefaultGalleryPageSize is the listing page size when the caller does not
// specify one.
const DefaultGalleryPageSize = 20

// GalleryListOptions carries the caller-facing listing parameters.
type GalleryListOptions struct {
	Filters  model.GalleryFilters
	PageSize int
	Cursor   string
}

// GalleryService defines the content operations for gallery items.
type GalleryService interface {
	// List returns one page of gallery items in display order.
	List(ctx context.Context, opts GalleryListOptions) (*model.GalleryPage, error)

	// GetByID returns the item, or nil when absent.
	GetByID(ctx context.Context, id string) (*model.GalleryItem, error)

	// Create stores a new item and returns its id.
	Create(ctx context.Context, item *model.GalleryItem) (string, error)

	// Update applies a partial update.
	Update(ctx context.Context, id string, patch model.GalleryPatch) error

	// Delete ensures the item is absent. Idempotent.
	Delete(ctx context.Context, id string) error
}
