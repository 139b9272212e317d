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

// PgProjectRepository is the PostgreSQL implementation of ProjectRepository.
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository creates a PgProjectRepository backed by the given pool.
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

var _ ProjectRepository = (*PgProjectRepository)(nil)

const projectColumns = `id, title, slug, tagline, short_description, full_description,
	category, images, videos, sections, metadata, featured, display_order, status,
	created_at, updated_at`

// projectSortColumns whitelists the sortable fields for project listings.
var projectSortColumns = map[string]string{
	"display_order": "display_order",
	"created_at":    "created_at",
	"updated_at":    "updated_at",
	"title":         "title",
}

type pgxScanner interface {
	Scan(dest ...any) error
}

func scanProject(row pgxScanner) (*model.Project, error) {
	var (
		p                                  model.Project
		images, videos, sections, metadata []byte
	)
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Tagline, &p.ShortDescription,
		&p.FullDescription, &p.Category, &images, &videos, &sections, &metadata,
		&p.Featured, &p.DisplayOrder, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := jsonbScan(images, &p.Images); err != nil {
		return nil, fmt.Errorf("repository: decode project images: %w", err)
	}
	if err := jsonbScan(videos, &p.Videos); err != nil {
		return nil, fmt.Errorf("repository: decode project videos: %w", err)
	}
	if err := jsonbScan(sections, &p.Sections); err != nil {
		return nil, fmt.Errorf("repository: decode project sections: %w", err)
	}
	if err := jsonbScan(metadata, &p.Metadata); err != nil {
		return nil, fmt.Errorf("repository: decode project metadata: %w", err)
	}
	return &p, nil
}

// List returns one page of projects matching the filters, ordered by sort
// with id as tiebreaker, resuming after cursor when one is supplied.
func (r *PgProjectRepository) List(ctx context.Context, filters model.ProjectFilters, sort Sort, limit int, cursor string) (*model.ProjectPage, error) {
	column, ok := projectSortColumns[sort.Field]
	if !ok {
		return nil, ErrInvalidSortField
	}

	var conditions []string
	var args []any

	if filters.Category != nil {
		args = append(args, *filters.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filters.Featured != nil {
		args = append(args, *filters.Featured)
		conditions = append(conditions, fmt.Sprintf("featured = $%d", len(args)))
	}
	if filters.Status != nil {
		args = append(args, *filters.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	if cursor != "" {
		tok, err := decodeCursor(cursor, sort)
		if err != nil {
			return nil, err
		}
		value, err := projectCursorValue(sort.Field, tok.Value)
		if err != nil {
			return nil, err
		}
		args = append(args, value, tok.ID)
		conditions = append(conditions, keysetCondition(column, sort.Desc, len(args)-1))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, limit+1)

	query := fmt.Sprintf(`SELECT %s FROM projects %s ORDER BY %s LIMIT $%d`,
		projectColumns, where, orderBy(column, sort.Desc), len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	page := &model.ProjectPage{Projects: projects}
	if len(projects) > limit {
		page.Projects = projects[:limit]
		last := page.Projects[limit-1]
		page.NextCursor = encodeCursor(sort, projectSortValue(sort.Field, last), last.ID)
	}
	return page, nil
}

// projectCursorValue parses the serialized sort-key value for the field.
func projectCursorValue(field, value string) (any, error) {
	switch field {
	case "display_order":
		return cursorInt(value)
	case "created_at", "updated_at":
		return cursorTime(value)
	default:
		return value, nil
	}
}

// projectSortValue serializes the sort-key value of p for the field.
func projectSortValue(field string, p *model.Project) string {
	switch field {
	case "display_order":
		return strconv.Itoa(p.DisplayOrder)
	case "created_at":
		return formatCursorTime(p.CreatedAt)
	case "updated_at":
		return formatCursorTime(p.UpdatedAt)
	default:
		return p.Title
	}
}

// GetPublishedBySlug returns the published project with the given slug.
func (r *PgProjectRepository) GetPublishedBySlug(ctx context.Context, slug string) (*model.Project, error) {
	row := r.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM projects WHERE slug = $1 AND status = $2 LIMIT 1`, projectColumns),
		slug, model.StatusPublished,
	)
	p, err := scanProject(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

// GetByID returns the project with the given id.
func (r *PgProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	row := r.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM projects WHERE id = $1`, projectColumns), id)
	p, err := scanProject(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

// ListFeatured returns up to count published, featured projects in display order.
func (r *PgProjectRepository) ListFeatured(ctx context.Context, count int) ([]*model.Project, error) {
	rows, err := r.pool.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM projects
		 WHERE featured = TRUE AND status = $1
		 ORDER BY display_order ASC, id ASC LIMIT $2`, projectColumns),
		model.StatusPublished, count,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// Create inserts a new project row and populates p.ID and timestamps from
// the database RETURNING clause. Both timestamps come from the same now(),
// so they are equal on creation.
func (r *PgProjectRepository) Create(ctx context.Context, p *model.Project) error {
	images, err := jsonbValue(p.Images)
	if err != nil {
		return err
	}
	videos, err := jsonbValue(p.Videos)
	if err != nil {
		return err
	}
	sections, err := jsonbValue(p.Sections)
	if err != nil {
		return err
	}
	var metadata []byte
	if p.Metadata != nil {
		if metadata, err = jsonbValue(p.Metadata); err != nil {
			return err
		}
	}

	return r.pool.QueryRow(ctx,
		`INSERT INTO projects (title, slug, tagline, short_description, full_description,
		   category, images, videos, sections, metadata, featured, display_order, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING id, created_at, updated_at`,
		p.Title, p.Slug, p.Tagline, p.ShortDescription, p.FullDescription,
		p.Category, images, videos, sections, metadata, p.Featured, p.DisplayOrder, p.Status,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// Update applies the non-nil fields of patch and refreshes updated_at.
func (r *PgProjectRepository) Update(ctx context.Context, id string, patch model.ProjectPatch) error {
	sets := []string{"updated_at = now()"}
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Slug != nil {
		add("slug", *patch.Slug)
	}
	if patch.Tagline != nil {
		add("tagline", *patch.Tagline)
	}
	if patch.ShortDescription != nil {
		add("short_description", *patch.ShortDescription)
	}
	if patch.FullDescription != nil {
		add("full_description", *patch.FullDescription)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.Images != nil {
		b, err := jsonbValue(patch.Images)
		if err != nil {
			return err
		}
		add("images", b)
	}
	if patch.Videos != nil {
		b, err := jsonbValue(patch.Videos)
		if err != nil {
			return err
		}
		add("videos", b)
	}
	if patch.Sections != nil {
		b, err := jsonbValue(patch.Sections)
		if err != nil {
			return err
		}
		add("sections", b)
	}
	if patch.Metadata != nil {
		b, err := jsonbValue(patch.Metadata)
		if err != nil {
			return err
		}
		add("metadata", b)
	}
	if patch.Featured != nil {
		add("featured", *patch.Featured)
	}
	if patch.DisplayOrder != nil {
		add("display_order", *patch.DisplayOrder)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE projects SET %s WHERE id = $%d`,
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

// Delete hard-deletes the project. Deleting an absent id succeeds so that
// callers can treat delete as "ensure absent".
func (r *PgProjectRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	return err
}
