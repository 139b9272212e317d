package service

import (
	"context"
	"errors"

	"github.com/veldwerk/backend/internal/model"
	"github.com/veldwerk/backend/internal/repository"
)

// SiteContentService defines the operations for the two singleton
// documents. Gets return nil when the singleton has never been seeded;
// updates always target the fixed key and refresh UpdatedAt.
type SiteContentService interface {
	GetSiteConfig(ctx context.Context) (*model.SiteConfig, error)
	UpdateSiteConfig(ctx context.Context, patch model.SiteConfigPatch) error
	GetAbout(ctx context.Context) (*model.AboutContent, error)
	UpdateAbout(ctx context.Context, patch model.AboutPatch) error
}

// siteContentServiceImpl is the production implementation of SiteContentService.
type siteContentServiceImpl struct {
	repo repository.SiteContentRepository
}

// NewSiteContentService creates a SiteContentService backed by the given repository.
func NewSiteContentService(repo repository.SiteContentRepository) SiteContentService {
	return &siteContentServiceImpl{repo: repo}
}

func (s *siteContentServiceImpl) GetSiteConfig(ctx context.Context) (*model.SiteConfig, error) {
	cfg, err := s.repo.GetSiteConfig(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return cfg, err
}

func (s *siteContentServiceImpl) UpdateSiteConfig(ctx context.Context, patch model.SiteConfigPatch) error {
	return s.repo.UpdateSiteConfig(ctx, patch)
}

func (s *siteContentServiceImpl) GetAbout(ctx context.Context) (*model.AboutContent, error) {
	about, err := s.repo.GetAbout(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return about, err
}

func (s *siteContentServiceImpl) UpdateAbout(ctx context.Context, patch model.AboutPatch) error {
	return s.repo.UpdateAbout(ctx, patch)
}
