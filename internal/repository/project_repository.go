package repository

import (
	"context"

	"github.com/veldwerk/backend/internal/model"
)

// ProjectRepository is the persistence interface for portfolio projects.
type ProjectRepository interface {
	// List returns one page of projects matching the filters, ordered by
	// sort. cursor resumes a previous page; empty starts from the top.
	List(ctx context.Context, filters model.ProjectFilters, sort Sort, limit int, cursor string) (*model.ProjectPage, error)

	// GetPublishedBySlug returns the published project with the given slug,
	// or ErrNotFound. Draft and archived projects are never matched.
	GetPublishedBySlug(ctx context.Context, slug string) (*model.Project, error)

	// GetByID returns the project with the given id, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Project, error)

	// ListFeatured returns up to count published, featured projects in
	// display order.
	ListFeatured(ctx context.Context, count int) ([]*model.Project, error)

	// Create inserts a new project and populates ID, CreatedAt and
	// UpdatedAt from the database.
	Create(ctx context.Context, p *model.Project) error

	// Update applies a partial update and refreshes UpdatedAt. Returns
	// ErrNotFound if the project does not exist.
	Update(ctx context.Context, id string, patch model.ProjectPatch) error

	// Delete removes the project. Idempotent: deleting an absent id is not
	// an error.
	Delete(ctx context.Context, id string) error
}
