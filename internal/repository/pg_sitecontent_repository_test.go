package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/veldwerk/backend/internal/model"
)

func testSiteConfig(unique string) *model.SiteConfig {
	return &model.SiteConfig{
		SiteInfo: model.SiteInfo{
			SiteName:  "Site " + unique,
			Tagline:   "tagline",
			OwnerName: "owner",
		},
		ContactInfo: model.ContactInfo{Email: "hello@example.com"},
		SocialLinks: []model.SocialLink{
			{Platform: "instagram", URL: "https://instagram.com/site", Display: true},
		},
		Navigation: []model.NavigationItem{{Label: "Home", Href: "/", Order: 0}},
		Footer:     model.Footer{Copyright: "site " + unique},
	}
}

// TestPgSiteContentRepository_SiteConfigMergeLifecycle seeds the singleton,
// applies two partial updates touching disjoint fields, and checks both land
// in the one document at the fixed key with a strictly advancing updated_at.
func TestPgSiteContentRepository_SiteConfigMergeLifecycle(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewPgSiteContentRepository(pool)

	unique := fmt.Sprintf("%d", time.Now().UnixNano())
	cfg := testSiteConfig(unique)
	if err := repo.PutSiteConfig(ctx, cfg); err != nil {
		t.Fatalf("PutSiteConfig failed: %v", err)
	}
	if cfg.ID != model.SingletonID {
		t.Errorf("expected singleton id %q, got %q", model.SingletonID, cfg.ID)
	}
	if cfg.UpdatedAt.IsZero() {
		t.Error("expected UpdatedAt to be set after Put")
	}

	newSiteInfo := model.SiteInfo{SiteName: "Renamed " + unique, Tagline: "new tagline", OwnerName: "owner"}
	if err := repo.UpdateSiteConfig(ctx, model.SiteConfigPatch{SiteInfo: &newSiteInfo}); err != nil {
		t.Fatalf("UpdateSiteConfig (site_info) failed: %v", err)
	}
	afterFirst, err := repo.GetSiteConfig(ctx)
	if err != nil {
		t.Fatalf("GetSiteConfig failed: %v", err)
	}
	if !afterFirst.UpdatedAt.After(cfg.UpdatedAt) {
		t.Errorf("expected UpdatedAt to advance after first update: %v -> %v",
			cfg.UpdatedAt, afterFirst.UpdatedAt)
	}

	newFooter := model.Footer{Copyright: "updated " + unique}
	if err := repo.UpdateSiteConfig(ctx, model.SiteConfigPatch{Footer: &newFooter}); err != nil {
		t.Fatalf("UpdateSiteConfig (footer) failed: %v", err)
	}

	merged, err := repo.GetSiteConfig(ctx)
	if err != nil {
		t.Fatalf("GetSiteConfig failed: %v", err)
	}
	if merged.SiteInfo.SiteName != newSiteInfo.SiteName {
		t.Errorf("expected site name from first update, got %q", merged.SiteInfo.SiteName)
	}
	if merged.Footer.Copyright != newFooter.Copyright {
		t.Errorf("expected footer from second update, got %q", merged.Footer.Copyright)
	}
	if merged.ContactInfo.Email != "hello@example.com" {
		t.Errorf("expected untouched contact email, got %q", merged.ContactInfo.Email)
	}
	if len(merged.SocialLinks) != 1 || len(merged.Navigation) != 1 {
		t.Errorf("expected untouched social links and navigation, got %d/%d",
			len(merged.SocialLinks), len(merged.Navigation))
	}
	if !merged.UpdatedAt.After(afterFirst.UpdatedAt) {
		t.Errorf("expected UpdatedAt to advance after second update: %v -> %v",
			afterFirst.UpdatedAt, merged.UpdatedAt)
	}

	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM site_config`).Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly one site_config row, got %d", count)
	}
}

// TestPgSiteContentRepository_PutSiteConfigOverwrites writes the singleton
// twice and checks the second write replaces rather than duplicates.
func TestPgSiteContentRepository_PutSiteConfigOverwrites(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewPgSiteContentRepository(pool)

	unique := fmt.Sprintf("%d", time.Now().UnixNano())
	if err := repo.PutSiteConfig(ctx, testSiteConfig(unique+"-a")); err != nil {
		t.Fatalf("first PutSiteConfig failed: %v", err)
	}
	if err := repo.PutSiteConfig(ctx, testSiteConfig(unique+"-b")); err != nil {
		t.Fatalf("second PutSiteConfig failed: %v", err)
	}

	found, err := repo.GetSiteConfig(ctx)
	if err != nil {
		t.Fatalf("GetSiteConfig failed: %v", err)
	}
	if found.SiteInfo.SiteName != "Site "+unique+"-b" {
		t.Errorf("expected second write to win, got %q", found.SiteInfo.SiteName)
	}

	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM site_config`).Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly one site_config row, got %d", count)
	}
}

func TestPgSiteContentRepository_AboutMergeLifecycle(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewPgSiteContentRepository(pool)

	unique := fmt.Sprintf("%d", time.Now().UnixNano())
	about := &model.AboutContent{
		HeroTitle: "Hero " + unique,
		BioText:   "bio",
		Sections: []model.AboutSection{
			{ID: "intro", Content: "intro text", Order: 0},
		},
	}
	if err := repo.PutAbout(ctx, about); err != nil {
		t.Fatalf("PutAbout failed: %v", err)
	}
	if about.ID != model.SingletonID {
		t.Errorf("expected singleton id %q, got %q", model.SingletonID, about.ID)
	}

	newBio := "rewritten bio " + unique
	if err := repo.UpdateAbout(ctx, model.AboutPatch{BioText: &newBio}); err != nil {
		t.Fatalf("UpdateAbout failed: %v", err)
	}

	found, err := repo.GetAbout(ctx)
	if err != nil {
		t.Fatalf("GetAbout failed: %v", err)
	}
	if found.BioText != newBio {
		t.Errorf("expected updated bio, got %q", found.BioText)
	}
	if found.HeroTitle != about.HeroTitle {
		t.Errorf("expected untouched hero title %q, got %q", about.HeroTitle, found.HeroTitle)
	}
	if len(found.Sections) != 1 || found.Sections[0].ID != "intro" {
		t.Errorf("expected untouched sections, got %+v", found.Sections)
	}
	if !found.UpdatedAt.After(about.UpdatedAt) {
		t.Errorf("expected UpdatedAt to advance: %v -> %v", about.UpdatedAt, found.UpdatedAt)
	}

	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM about`).Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly one about row, got %d", count)
	}
}
