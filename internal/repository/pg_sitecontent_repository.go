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

// SiteContentRepository is the persistence interface for the two singleton
// documents: the site configuration and the about page content. Both live
// at the fixed key model.SingletonID.
type SiteContentRepository interface {
	// GetSiteConfig returns the singleton, or ErrNotFound if never seeded.
	GetSiteConfig(ctx context.Context) (*model.SiteConfig, error)

	// UpdateSiteConfig merges the non-nil fields of patch into the
	// singleton and refreshes updated_at. ErrNotFound if never seeded.
	UpdateSiteConfig(ctx context.Context, patch model.SiteConfigPatch) error

	// PutSiteConfig writes the full singleton document, creating it if
	// absent. Used by seeding.
	PutSiteConfig(ctx context.Context, cfg *model.SiteConfig) error

	GetAbout(ctx context.Context) (*model.AboutContent, error)
	UpdateAbout(ctx context.Context, patch model.AboutPatch) error
	PutAbout(ctx context.Context, about *model.AboutContent) error
}

// PgSiteContentRepository is the PostgreSQL implementation of SiteContentRepository.
type PgSiteContentRepository struct {
	pool *pgxpool.Pool
}

// NewPgSiteContentRepository creates a PgSiteContentRepository backed by the given pool.
func NewPgSiteContentRepository(pool *pgxpool.Pool) *PgSiteContentRepository {
	return &PgSiteContentRepository{pool: pool}
}

var _ SiteContentRepository = (*PgSiteContentRepository)(nil)

// GetSiteConfig returns the site_config singleton.
func (r *PgSiteContentRepository) GetSiteConfig(ctx context.Context) (*model.SiteConfig, error) {
	var (
		cfg                                        model.SiteConfig
		siteInfo, contactInfo, social, nav, footer []byte
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, site_info, contact_info, social_links, navigation, footer, updated_at
		 FROM site_config WHERE id = $1`, model.SingletonID,
	).Scan(&cfg.ID, &siteInfo, &contactInfo, &social, &nav, &footer, &cfg.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	for _, dec := range []struct {
		raw  []byte
		dest any
	}{
		{siteInfo, &cfg.SiteInfo},
		{contactInfo, &cfg.ContactInfo},
		{social, &cfg.SocialLinks},
		{nav, &cfg.Navigation},
		{footer, &cfg.Footer},
	} {
		if err := jsonbScan(dec.raw, dec.dest); err != nil {
			return nil, fmt.Errorf("repository: decode site_config: %w", err)
		}
	}
	return &cfg, nil
}

// UpdateSiteConfig merges the supplied fields into the singleton row.
func (r *PgSiteContentRepository) UpdateSiteConfig(ctx context.Context, patch model.SiteConfigPatch) error {
	sets := []string{"updated_at = now()"}
	var args []any

	add := func(column string, v any) error {
		b, err := jsonbValue(v)
		if err != nil {
			return err
		}
		args = append(args, b)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
		return nil
	}

	if patch.SiteInfo != nil {
		if err := add("site_info", patch.SiteInfo); err != nil {
			return err
		}
	}
	if patch.ContactInfo != nil {
		if err := add("contact_info", patch.ContactInfo); err != nil {
			return err
		}
	}
	if patch.SocialLinks != nil {
		if err := add("social_links", patch.SocialLinks); err != nil {
			return err
		}
	}
	if patch.Navigation != nil {
		if err := add("navigation", patch.Navigation); err != nil {
			return err
		}
	}
	if patch.Footer != nil {
		if err := add("footer", patch.Footer); err != nil {
			return err
		}
	}

	args = append(args, model.SingletonID)
	query := fmt.Sprintf(`UPDATE site_config SET %s WHERE id = $%d`,
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

// PutSiteConfig writes the full singleton document at the fixed key.
func (r *PgSiteContentRepository) PutSiteConfig(ctx context.Context, cfg *model.SiteConfig) error {
	siteInfo, err := jsonbValue(cfg.SiteInfo)
	if err != nil {
		return err
	}
	contactInfo, err := jsonbValue(cfg.ContactInfo)
	if err != nil {
		return err
	}
	social, err := jsonbValue(cfg.SocialLinks)
	if err != nil {
		return err
	}
	nav, err := jsonbValue(cfg.Navigation)
	if err != nil {
		return err
	}
	footer, err := jsonbValue(cfg.Footer)
	if err != nil {
		return err
	}

	cfg.ID = model.SingletonID
	return r.pool.QueryRow(ctx,
		`INSERT INTO site_config (id, site_info, contact_info, social_links, navigation, footer)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO UPDATE SET
		   site_info = EXCLUDED.site_info,
		   contact_info = EXCLUDED.contact_info,
		   social_links = EXCLUDED.social_links,
		   navigation = EXCLUDED.navigation,
		   footer = EXCLUDED.footer,
		   updated_at = now()
		 RETURNING updated_at`,
		cfg.ID, siteInfo, contactInfo, social, nav, footer,
	).Scan(&cfg.UpdatedAt)
}

// GetAbout returns the about singleton.
func (r *PgSiteContentRepository) GetAbout(ctx context.Context) (*model.AboutContent, error) {
	var (
		about        model.AboutContent
		heroSubtitle *string
		sections     []byte
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, hero_title, hero_subtitle, bio_text, sections, updated_at
		 FROM about WHERE id = $1`, model.SingletonID,
	).Scan(&about.ID, &about.HeroTitle, &heroSubtitle, &about.BioText, &sections, &about.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if heroSubtitle != nil {
		about.HeroSubtitle = *heroSubtitle
	}
	if err := jsonbScan(sections, &about.Sections); err != nil {
		return nil, fmt.Errorf("repository: decode about sections: %w", err)
	}
	return &about, nil
}

// UpdateAbout merges the supplied fields into the singleton row.
func (r *PgSiteContentRepository) UpdateAbout(ctx context.Context, patch model.AboutPatch) error {
	sets := []string{"updated_at = now()"}
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.HeroTitle != nil {
		add("hero_title", *patch.HeroTitle)
	}
	if patch.HeroSubtitle != nil {
		args = append(args, *patch.HeroSubtitle)
		sets = append(sets, fmt.Sprintf("hero_subtitle = NULLIF($%d, '')", len(args)))
	}
	if patch.BioText != nil {
		add("bio_text", *patch.BioText)
	}
	if patch.Sections != nil {
		b, err := jsonbValue(patch.Sections)
		if err != nil {
			return err
		}
		add("sections", b)
	}

	args = append(args, model.SingletonID)
	query := fmt.Sprintf(`UPDATE about SET %s WHERE id = $%d`,
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

// PutAbout writes the full singleton document at the fixed key.
func (r *PgSiteContentRepository) PutAbout(ctx context.Context, about *model.AboutContent) error {
	sections, err := jsonbValue(about.Sections)
	if err != nil {
		return err
	}
	about.ID = model.SingletonID
	return r.pool.QueryRow(ctx,
		`INSERT INTO about (id, hero_title, hero_subtitle, bio_text, sections)
		 VALUES ($1, $2, NULLIF($3, ''), $4, $5)
		 ON CONFLICT (id) DO UPDATE SET
		   hero_title = EXCLUDED.hero_title,
		   hero_subtitle = EXCLUDED.hero_subtitle,
		   bio_text = EXCLUDED.bio_text,
		   sections = EXCLUDED.sections,
		   updated_at = now()
		 RETURNING updated_at`,
		about.ID, about.HeroTitle, about.HeroSubtitle, about.BioText, sections,
	).Scan(&about.UpdatedAt)
}
