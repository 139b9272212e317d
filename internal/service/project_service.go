package service

import (
	"context"

	"github.com/veldwerk/backend/internal/model"
	"github.com/veldwerk/backend/internal/repository"
)

// Default listing parameters for projects.
const (
	DefaultProjectPageSize  = 10
	DefaultFeaturedCount    = 4
	defaultProjectSortField = "display_order"
)

// ProjectListOptions carries the caller-facing listing parameters. Zero
// values select the defaults: published-only, ascending display order,
// DefaultProjectPageSize items.
type ProjectListOptions struct {
	Filters  model.ProjectFilters
	Sort     *repository.Sort
	PageSize int
	Cursor   string
}

// ProjectService defines the content operations for projects.
type ProjectService interface {
	// List returns one page of projects. When the caller supplies no
	// status filter, only published projects are returned: published-only
	// is the safe default for the public-facing listing.
	List(ctx context.Context, opts ProjectListOptions) (*model.ProjectPage, error)

	// GetBySlug returns the published project with the given slug, or nil
	// when no published project has it (drafts never match).
	GetBySlug(ctx context.Context, slug string) (*model.Project, error)

	// GetByID returns the project, or nil when absent.
	GetByID(ctx context.Context, id string) (*model.Project, error)

	// Featured returns up to count published featured projects in display
	// order; count <= 0 selects DefaultFeaturedCount.
	Featured(ctx context.Context, count int) ([]*model.Project, error)

	// Create stores a new project and returns its id. Timestamps are
	// stamped with the store's server time.
	Create(ctx context.Context, p *model.Project) (string, error)

	// Update applies a partial update; only supplied fields change and
	// UpdatedAt is refreshed.
	Update(ctx context.Context, id string, patch model.ProjectPatch) error

	// Delete ensures the project is absent. Idempotent.
	Delete(ctx context.Context, id string) error
}
