package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/veldwerk/backend/internal/model"
)

// NewsletterRepository is the persistence interface for the subscriber list.
// Email is the natural key, enforced by a unique constraint.
type NewsletterRepository interface {
	// Subscribe upserts a subscriber by email. A new address is inserted
	// active; a previously unsubscribed address is reactivated with a fresh
	// subscribed_at and a cleared unsubscribed_at; an already-active address
	// is left untouched. The id of the single underlying record is returned
	// in every case.
	Subscribe(ctx context.Context, email string, source model.SubscriptionSource) (string, error)

	// Unsubscribe deactivates the subscriber and stamps unsubscribed_at.
	// Unknown addresses are a no-op, not an error.
	Unsubscribe(ctx context.Context, email string) error

	// GetByEmail returns the subscriber record, or ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*model.NewsletterSubscriber, error)
}

// PgNewsletterRepository is the PostgreSQL implementation of NewsletterRepository.
type PgNewsletterRepository struct {
	pool *pgxpool.Pool
}

// NewPgNewsletterRepository creates a PgNewsletterRepository backed by the given pool.
func NewPgNewsletterRepository(pool *pgxpool.Pool) *PgNewsletterRepository {
	return &PgNewsletterRepository{pool: pool}
}

var _ NewsletterRepository = (*PgNewsletterRepository)(nil)

// Subscribe performs the whole subscribe contract in a single statement, so
// two concurrent subscribes for the same address converge on one row
// instead of racing a read-then-write sequence. The CASE guards keep an
// already-active subscription untouched.
func (r *PgNewsletterRepository) Subscribe(ctx context.Context, email string, source model.SubscriptionSource) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx,
		`INSERT INTO newsletter_subscribers (email, source, active, subscribed_at)
		 VALUES ($1, $2, TRUE, now())
		 ON CONFLICT (email) DO UPDATE SET
		   active = TRUE,
		   source = CASE WHEN newsletter_subscribers.active
		            THEN newsletter_subscribers.source ELSE EXCLUDED.source END,
		   subscribed_at = CASE WHEN newsletter_subscribers.active
		            THEN newsletter_subscribers.subscribed_at ELSE now() END,
		   unsubscribed_at = CASE WHEN newsletter_subscribers.active
		            THEN newsletter_subscribers.unsubscribed_at ELSE NULL END
		 RETURNING id`,
		email, source,
	).Scan(&id)
	return id, err
}

// Unsubscribe deactivates the record for email if one exists.
func (r *PgNewsletterRepository) Unsubscribe(ctx context.Context, email string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE newsletter_subscribers
		 SET active = FALSE, unsubscribed_at = now()
		 WHERE email = $1 AND active = TRUE`,
		email,
	)
	return err
}

// GetByEmail returns the subscriber record for email.
func (r *PgNewsletterRepository) GetByEmail(ctx context.Context, email string) (*model.NewsletterSubscriber, error) {
	var sub model.NewsletterSubscriber
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, source, active, subscribed_at, unsubscribed_at
		 FROM newsletter_subscribers WHERE email = $1`,
		email,
	).Scan(&sub.ID, &sub.Email, &sub.Source, &sub.Active, &sub.SubscribedAt, &sub.UnsubscribedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}
