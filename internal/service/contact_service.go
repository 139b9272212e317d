package service

import (
	"context"

	"github.com/veldwerk/backend/internal/model"
)

// DefaultContactPageSize is the listing page size when the caller does not
// specify one.
const DefaultContactPageSize = 20

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit stores a new submission. The moderation flags (read, archived)
	// are server-owned: whatever the caller put on sub is overwritten with
	// false before persisting.
	Submit(ctx context.Context, sub *model.ContactSubmission) (string, error)

	// List returns submissions newest first.
	List(ctx context.Context, opts model.ContactListOptions) (*model.ContactPage, error)

	// MarkRead flags the submission as read.
	MarkRead(ctx context.Context, id string) error

	// Archive flags the submission as archived. Never deletes.
	Archive(ctx context.Context, id string) error

	// Delete ensures the submission is absent. Idempotent.
	Delete(ctx context.Context, id string) error
}
