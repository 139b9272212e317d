package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/veldwerk/backend/internal/model"
)

// ContactRepository is the persistence interface for contact form
// submissions. It is defined here (in repository) to avoid an import cycle
// with service.
type ContactRepository interface {
	Create(ctx context.Context, sub *model.ContactSubmission) error
	List(ctx context.Context, opts model.ContactListOptions) (*model.ContactPage, error)
	GetByID(ctx context.Context, id string) (*model.ContactSubmission, error)
	SetRead(ctx context.Context, id string, read bool) error
	SetArchived(ctx context.Context, id string, archived bool) error
	Delete(ctx context.Context, id string) error
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

var _ ContactRepository = (*PgContactRepository)(nil)

const contactColumns = `id, name, email, phone, subject, message, inquiry_type,
	project_interest, read, archived, user_agent, created_at`

// contactSort is the fixed listing order: newest submissions first.
var contactSort = Sort{Field: "created_at", Desc: true}

func scanContactSubmission(row pgxScanner) (*model.ContactSubmission, error) {
	var (
		sub                                 model.ContactSubmission
		phone, subject, interest, userAgent *string
	)
	err := row.Scan(&sub.ID, &sub.Name, &sub.Email, &phone, &subject, &sub.Message,
		&sub.InquiryType, &interest, &sub.Read, &sub.Archived, &userAgent, &sub.CreatedAt)
	if err != nil {
		return nil, err
	}
	if phone != nil {
		sub.Phone = *phone
	}
	if subject != nil {
		sub.Subject = *subject
	}
	if interest != nil {
		sub.ProjectInterest = *interest
	}
	if userAgent != nil {
		sub.UserAgent = *userAgent
	}
	return &sub, nil
}

// Create inserts a new contact_submissions row. Moderation flags are stored
// as the values on sub; the service layer forces them to false at intake.
func (r *PgContactRepository) Create(ctx context.Context, sub *model.ContactSubmission) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions
		   (name, email, phone, subject, message, inquiry_type, project_interest, read, archived, user_agent)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, NULLIF($7, ''), $8, $9, NULLIF($10, ''))
		 RETURNING id, created_at`,
		sub.Name, sub.Email, sub.Phone, sub.Subject, sub.Message, sub.InquiryType,
		sub.ProjectInterest, sub.Read, sub.Archived, sub.UserAgent,
	).Scan(&sub.ID, &sub.CreatedAt)
}

// List returns submissions newest first, excluding archived ones unless
// opts.IncludeArchived is set.
func (r *PgContactRepository) List(ctx context.Context, opts model.ContactListOptions) (*model.ContactPage, error) {
	var conditions []string
	var args []any

	if !opts.IncludeArchived {
		conditions = append(conditions, "archived = FALSE")
	}

	if opts.Cursor != "" {
		tok, err := decodeCursor(opts.Cursor, contactSort)
		if err != nil {
			return nil, err
		}
		createdAt, err := cursorTime(tok.Value)
		if err != nil {
			return nil, err
		}
		args = append(args, createdAt, tok.ID)
		conditions = append(conditions, keysetCondition("created_at", true, len(args)-1))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, opts.PageSize+1)

	query := fmt.Sprintf(`SELECT %s FROM contact_submissions %s
		 ORDER BY created_at DESC, id DESC LIMIT $%d`,
		contactColumns, where, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*model.ContactSubmission
	for rows.Next() {
		sub, err := scanContactSubmission(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	page := &model.ContactPage{Submissions: subs}
	if len(subs) > opts.PageSize {
		page.Submissions = subs[:opts.PageSize]
		last := page.Submissions[opts.PageSize-1]
		page.NextCursor = encodeCursor(contactSort, formatCursorTime(last.CreatedAt), last.ID)
	}
	return page, nil
}

// GetByID returns the submission with the given id, or ErrNotFound.
func (r *PgContactRepository) GetByID(ctx context.Context, id string) (*model.ContactSubmission, error) {
	row := r.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM contact_submissions WHERE id = $1`, contactColumns), id)
	sub, err := scanContactSubmission(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return sub, err
}

// SetRead flips the read flag on an existing submission.
func (r *PgContactRepository) SetRead(ctx context.Context, id string, read bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contact_submissions SET read = $1 WHERE id = $2`, read, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetArchived flips the archived flag on an existing submission. Archiving
// never deletes.
func (r *PgContactRepository) SetArchived(ctx context.Context, id string, archived bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contact_submissions SET archived = $1 WHERE id = $2`, archived, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete hard-deletes the submission. Idempotent.
func (r *PgContactRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM contact_submissions WHERE id = $1`, id)
	return err
}
