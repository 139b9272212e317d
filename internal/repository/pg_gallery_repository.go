package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/veldwerk/backend/internal/model"
)

// GalleryRepository is the persistence interface for gallery items.
// It is defined here alongside its implementation, like the smaller
// repositories in this package.
type GalleryRepository interface {
	List(ctx context.Context, filters model.GalleryFilters, limit int, cursor string) (*model.GalleryPage, error)
	GetByID(ctx context.Context, id string) (*model.GalleryItem, error)
	Create(ctx context.Context, item *model.GalleryItem) error
	Update(ctx context.Context, id string, patch model.GalleryPatch) error
	Delete(ctx context.Context, id string) error
}

// PgGalleryRepository is the PostgreSQL implementation of GalleryRepository.
type PgGalleryRepository struct {
	pool *pgxpool.Pool
}

// NewPgGalleryRepository creates a PgGalleryRepository backed by the given pool.
func NewPgGalleryRepository(pool *pgxpool.Pool) *PgGalleryRepository {
	return &PgGalleryRepository{pool: pool}
}

var _ GalleryRepository = (*PgGalleryRepository)(nil)

const galleryColumns = `id, title, description, image, category, display_order, project_id, created_at`

// gallerySort is the fixed listing order: gallery pages always read in
// display order.
var gallerySort = Sort{Field: "display_order"}

func scanGalleryItem(row pgxScanner) (*model.GalleryItem, error) {
	var (
		item        model.GalleryItem
		description *string
		image       []byte
		projectID   *string
	)
	err := row.Scan(&item.ID, &item.Title, &description, &image, &item.Category,
		&item.DisplayOrder, &projectID, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	if description != nil {
		item.Description = *description
	}
	if projectID != nil {
		item.ProjectID = *projectID
	}
	if err := jsonbScan(image, &item.Image); err != nil {
		return nil, fmt.Errorf("repository: decode gallery image: %w", err)
	}
	return &item, nil
}

// List returns one page of gallery items in ascending display order.
func (r *PgGalleryRepository) List(ctx context.Context, filters model.GalleryFilters, limit int, cursor string) (*model.GalleryPage, error) {
	var conditions []string
	var args []any

	if filters.Category != nil {
		args = append(args, *filters.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filters.ProjectID != nil {
		args = append(args, *filters.ProjectID)
		conditions = append(conditions, fmt.Sprintf("project_id = $%d", len(args)))
	}

	if cursor != "" {
		tok, err := decodeCursor(cursor, gallerySort)
		if err != nil {
			return nil, err
		}
		order, err := cursorInt(tok.Value)
		if err != nil {
			return nil, err
		}
		args = append(args, order, tok.ID)
		conditions = append(conditions, keysetCondition("display_order", false, len(args)-1))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, limit+1)

	query := fmt.Sprintf(`SELECT %s FROM gallery %s ORDER BY display_order ASC, id ASC LIMIT $%d`,
		galleryColumns, where, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*model.GalleryItem
	for rows.Next() {
		item, err := scanGalleryItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	page := &model.GalleryPage{Items: items}
	if len(items) > limit {
		page.Items = items[:limit]
		last := page.Items[limit-1]
		page.NextCursor = encodeCursor(gallerySort, strconv.Itoa(last.DisplayOrder), last.ID)
	}
	return page, nil
}

// GetByID returns the gallery item with the given id, or ErrNotFound.
func (r *PgGalleryRepository) GetByID(ctx context.Context, id string) (*model.GalleryItem, error) {
	row := r.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM gallery WHERE id = $1`, galleryColumns), id)
	item, err := scanGalleryItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return item, err
}

// Create inserts a gallery item and populates item.ID and CreatedAt.
func (r *PgGalleryRepository) Create(ctx context.Context, item *model.GalleryItem) error {
	image, err := jsonbValue(item.Image)
	if err != nil {
		return err
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO gallery (title, description, image, category, display_order, project_id)
		 VALUES ($1, NULLIF($2, ''), $3, $4, $5, NULLIF($6, ''))
		 RETURNING id, created_at`,
		item.Title, item.Description, image, item.Category, item.DisplayOrder, item.ProjectID,
	).Scan(&item.ID, &item.CreatedAt)
}

// Update applies the non-nil fields of patch. Gallery items carry no
// updated_at column, matching the data model.
func (r *PgGalleryRepository) Update(ctx context.Context, id string, patch model.GalleryPatch) error {
	var sets []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		args = append(args, *patch.Description)
		sets = append(sets, fmt.Sprintf("description = NULLIF($%d, '')", len(args)))
	}
	if patch.Image != nil {
		b, err := jsonbValue(*patch.Image)
		if err != nil {
			return err
		}
		add("image", b)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.DisplayOrder != nil {
		add("display_order", *patch.DisplayOrder)
	}
	if patch.ProjectID != nil {
		args = append(args, *patch.ProjectID)
		sets = append(sets, fmt.Sprintf("project_id = NULLIF($%d, '')", len(args)))
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE gallery SET %s WHERE id = $%d`,
		strings.Join(sets, ", "), len(args))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete hard-deletes the gallery item. Idempotent.
func (r *PgGalleryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM gallery WHERE id = $1`, id)
	return err
}
