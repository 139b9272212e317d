package service

import (
	"context"

	"github.com/veldwerk/backend/internal/model"
	"github.com/veldwerk/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Submit forces the moderation flags to false and persists the submission.
func (s *contactServiceImpl) Submit(ctx context.Context, sub *model.ContactSubmission) (string, error) {
	sub.Read = false
	sub.Archived = false
	if err := s.repo.Create(ctx, sub); err != nil {
		return "", err
	}
	return sub.ID, nil
}

// List applies the page-size default and delegates to the repository.
func (s *contactServiceImpl) List(ctx context.Context, opts model.ContactListOptions) (*model.ContactPage, error) {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultContactPageSize
	}
	return s.repo.List(ctx, opts)
}

// MarkRead flags the submission as read.
func (s *contactServiceImpl) MarkRead(ctx context.Context, id string) error {
	return s.repo.SetRead(ctx, id, true)
}

// Archive flags the submission as archived.
func (s *contactServiceImpl) Archive(ctx context.Context, id string) error {
	return s.repo.SetArchived(ctx, id, true)
}

// Delete ensures the submission is absent.
func (s *contactServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
