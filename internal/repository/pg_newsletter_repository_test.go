package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/veldwerk/backend/internal/model"
)

func testEmail() string {
	return fmt.Sprintf("sub-%d@example.com", time.Now().UnixNano())
}

// TestPgNewsletterRepository_SubscribeLifecycle walks the full lifecycle:
// subscribe, unsubscribe, resubscribe. The same row must survive the whole
// way through.
func TestPgNewsletterRepository_SubscribeLifecycle(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewPgNewsletterRepository(pool)

	email := testEmail()
	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, `DELETE FROM newsletter_subscribers WHERE email = $1`, email)
	})

	id, err := repo.Subscribe(ctx, email, model.SourceHomepage)
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if id == "" {
		t.Fatal("expected id from Subscribe")
	}

	sub, err := repo.GetByEmail(ctx, email)
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if !sub.Active {
		t.Error("expected active after subscribe")
	}
	if sub.UnsubscribedAt != nil {
		t.Error("expected nil unsubscribed_at after subscribe")
	}

	if err := repo.Unsubscribe(ctx, email); err != nil {
		t.Fatalf("Unsubscribe failed: %v", err)
	}
	sub, err = repo.GetByEmail(ctx, email)
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if sub.Active {
		t.Error("expected inactive after unsubscribe")
	}
	if sub.UnsubscribedAt == nil {
		t.Error("expected unsubscribed_at to be stamped")
	}

	id2, err := repo.Subscribe(ctx, email, model.SourceGallery)
	if err != nil {
		t.Fatalf("resubscribe failed: %v", err)
	}
	if id2 != id {
		t.Errorf("expected resubscribe to reuse record %s, got %s", id, id2)
	}

	sub, err = repo.GetByEmail(ctx, email)
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if !sub.Active {
		t.Error("expected active after resubscribe")
	}
	if sub.UnsubscribedAt != nil {
		t.Error("expected unsubscribed_at cleared after resubscribe")
	}
	if sub.Source != model.SourceGallery {
		t.Errorf("expected source refreshed on reactivation, got %q", sub.Source)
	}
}

// TestPgNewsletterRepository_SubscribeActiveNoOp verifies subscribing an
// already-active address changes nothing.
func TestPgNewsletterRepository_SubscribeActiveNoOp(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewPgNewsletterRepository(pool)

	email := testEmail()
	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, `DELETE FROM newsletter_subscribers WHERE email = $1`, email)
	})

	id, err := repo.Subscribe(ctx, email, model.SourceHomepage)
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	first, err := repo.GetByEmail(ctx, email)
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}

	id2, err := repo.Subscribe(ctx, email, model.SourceContact)
	if err != nil {
		t.Fatalf("second Subscribe failed: %v", err)
	}
	if id2 != id {
		t.Errorf("expected same id, got %s and %s", id, id2)
	}

	second, err := repo.GetByEmail(ctx, email)
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if second.Source != model.SourceHomepage {
		t.Errorf("expected original source preserved, got %q", second.Source)
	}
	if !second.SubscribedAt.Equal(first.SubscribedAt) {
		t.Errorf("expected subscribed_at unchanged: %v -> %v", first.SubscribedAt, second.SubscribedAt)
	}
}

func TestPgNewsletterRepository_UnsubscribeUnknown(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewPgNewsletterRepository(pool)

	if err := repo.Unsubscribe(ctx, "never-subscribed@example.com"); err != nil {
		t.Errorf("expected no-op for unknown address, got %v", err)
	}
}

func TestPgNewsletterRepository_GetByEmailMissing(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewPgNewsletterRepository(pool)

	_, err := repo.GetByEmail(ctx, "missing@example.com")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
