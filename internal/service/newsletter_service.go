package service

import (
	"context"
	"strings"

	"github.com/veldwerk/backend/internal/model"
	"github.com/veldwerk/backend/internal/repository"
)

// NewsletterService defines the subscribe/unsubscribe operations.
type NewsletterService interface {
	// Subscribe adds email to the list, or reactivates it if previously
	// unsubscribed. Subscribing an already-active address is a no-op. The
	// id of the single record for the address is returned in every case.
	Subscribe(ctx context.Context, email string, source model.SubscriptionSource) (string, error)

	// Unsubscribe deactivates the address. Unknown addresses are a no-op.
	Unsubscribe(ctx context.Context, email string) error
}

// newsletterServiceImpl is the production implementation of NewsletterService.
type newsletterServiceImpl struct {
	repo repository.NewsletterRepository
}

// NewNewsletterService creates a NewsletterService backed by the given repository.
func NewNewsletterService(repo repository.NewsletterRepository) NewsletterService {
	return &newsletterServiceImpl{repo: repo}
}

// normalizeEmail canonicalizes an address so that case and whitespace
// variants of the same address hit the same record.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Subscribe upserts the address through the repository's atomic upsert.
func (s *newsletterServiceImpl) Subscribe(ctx context.Context, email string, source model.SubscriptionSource) (string, error) {
	return s.repo.Subscribe(ctx, normalizeEmail(email), source)
}

// Unsubscribe deactivates the address.
func (s *newsletterServiceImpl) Unsubscribe(ctx context.Context, email string) error {
	return s.repo.Unsubscribe(ctx, normalizeEmail(email))
}
