package service

import (
	"context"
	"testing"

	"github.com/veldwerk/backend/internal/model"
	"github.com/veldwerk/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// mockNewsletterRepository
// ---------------------------------------------------------------------------

type mockNewsletterRepository struct {
	subscribeFunc   func(ctx context.Context, email string, source model.SubscriptionSource) (string, error)
	unsubscribeFunc func(ctx context.Context, email string) error
}

func (m *mockNewsletterRepository) Subscribe(ctx context.Context, email string, source model.SubscriptionSource) (string, error) {
	if m.subscribeFunc != nil {
		return m.subscribeFunc(ctx, email, source)
	}
	return "id", nil
}

func (m *mockNewsletterRepository) Unsubscribe(ctx context.Context, email string) error {
	if m.unsubscribeFunc != nil {
		return m.unsubscribeFunc(ctx, email)
	}
	return nil
}

func (m *mockNewsletterRepository) GetByEmail(ctx context.Context, email string) (*model.NewsletterSubscriber, error) {
	return nil, repository.ErrNotFound
}

// ---------------------------------------------------------------------------
// normalization tests
// ---------------------------------------------------------------------------

// TestNewsletterService_Subscribe_NormalizesEmail verifies case and
// whitespace variants of one address converge on the same stored key.
func TestNewsletterService_Subscribe_NormalizesEmail(t *testing.T) {
	var captured string
	mock := &mockNewsletterRepository{
		subscribeFunc: func(ctx context.Context, email string, source model.SubscriptionSource) (string, error) {
			captured = email
			return "id-1", nil
		},
	}
	svc := NewNewsletterService(mock)

	id, err := svc.Subscribe(context.Background(), "  Anna.Smit@Example.COM ", model.SourceHomepage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "id-1" {
		t.Errorf("expected id-1, got %q", id)
	}
	if captured != "anna.smit@example.com" {
		t.Errorf("expected normalized email, got %q", captured)
	}
}

func TestNewsletterService_Unsubscribe_NormalizesEmail(t *testing.T) {
	var captured string
	mock := &mockNewsletterRepository{
		unsubscribeFunc: func(ctx context.Context, email string) error {
			captured = email
			return nil
		},
	}
	svc := NewNewsletterService(mock)

	if err := svc.Unsubscribe(context.Background(), "PIET@EXAMPLE.COM"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured != "piet@example.com" {
		t.Errorf("expected normalized email, got %q", captured)
	}
}
