package service

import (
	"context"
	"errors"

	"github.com/veldwerk/backend/internal/model"
	"github.com/veldwerk/backend/internal/repository"
)

// projectServiceImpl is the production implementation of ProjectService.
type projectServiceImpl struct {
	repo repository.ProjectRepository
}

// NewProjectService creates a ProjectService backed by the given repository.
func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectServiceImpl{repo: repo}
}

// List applies the listing defaults and delegates to the repository.
func (s *projectServiceImpl) List(ctx context.Context, opts ProjectListOptions) (*model.ProjectPage, error) {
	filters := opts.Filters
	if filters.Status == nil {
		status := model.StatusPublished
		filters.Status = &status
	}

	sort := repository.Sort{Field: defaultProjectSortField}
	if opts.Sort != nil {
		sort = *opts.Sort
	}

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultProjectPageSize
	}

	return s.repo.List(ctx, filters, sort, pageSize, opts.Cursor)
}

// GetBySlug translates the repository's ErrNotFound into a nil result so
// callers can use a plain nil check for "no such published project".
func (s *projectServiceImpl) GetBySlug(ctx context.Context, slug string) (*model.Project, error) {
	p, err := s.repo.GetPublishedBySlug(ctx, slug)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return p, err
}

// GetByID translates ErrNotFound into a nil result.
func (s *projectServiceImpl) GetByID(ctx context.Context, id string) (*model.Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return p, err
}

// Featured returns the featured subset, defaulting the cap.
func (s *projectServiceImpl) Featured(ctx context.Context, count int) ([]*model.Project, error) {
	if count <= 0 {
		count = DefaultFeaturedCount
	}
	return s.repo.ListFeatured(ctx, count)
}

// Create stores the project. Shape validation belongs to the caller; the
// service only guarantees timestamp stamping via the repository.
func (s *projectServiceImpl) Create(ctx context.Context, p *model.Project) (string, error) {
	if err := s.repo.Create(ctx, p); err != nil {
		return "", err
	}
	return p.ID, nil
}

// Update applies a partial update.
func (s *projectServiceImpl) Update(ctx context.Context, id string, patch model.ProjectPatch) error {
	return s.repo.Update(ctx, id, patch)
}

// Delete ensures the project is absent.
func (s *projectServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
