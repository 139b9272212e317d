package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/veldwerk/backend/internal/auth"
	"github.com/veldwerk/backend/internal/config"
	"github.com/veldwerk/backend/internal/logging"
	"github.com/veldwerk/backend/internal/model"
	"github.com/veldwerk/backend/internal/repository"
)

func main() {
	_ = godotenv.Load()
	_ = godotenv.Load("../.env")

	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	if !cfg.IsConfigured() {
		logging.Fatal("DATABASE_URL is not set")
	}

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer pool.Close()

	projectRepo := repository.NewPgProjectRepository(pool)
	galleryRepo := repository.NewPgGalleryRepository(pool)
	siteContentRepo := repository.NewPgSiteContentRepository(pool)

	for _, p := range seedProjects() {
		if err := projectRepo.Create(ctx, p); err != nil {
			logging.Fatal("seed project failed", "slug", p.Slug, "error", err)
		}
	}
	slog.Info("projects seeded", "count", len(seedProjects()))

	for _, item := range seedGallery() {
		if err := galleryRepo.Create(ctx, item); err != nil {
			logging.Fatal("seed gallery item failed", "title", item.Title, "error", err)
		}
	}
	slog.Info("gallery seeded", "count", len(seedGallery()))

	if err := siteContentRepo.PutSiteConfig(ctx, seedSiteConfig()); err != nil {
		logging.Fatal("seed site config failed", "error", err)
	}
	slog.Info("site config seeded")

	if err := siteContentRepo.PutAbout(ctx, seedAbout()); err != nil {
		logging.Fatal("seed about content failed", "error", err)
	}
	slog.Info("about content seeded")

	// Optional bootstrap admin (ADMIN_EMAIL + ADMIN_PASSWORD).
	if email := os.Getenv("ADMIN_EMAIL"); email != "" {
		password := os.Getenv("ADMIN_PASSWORD")
		if password == "" {
			logging.Fatal("ADMIN_PASSWORD is required when ADMIN_EMAIL is set")
		}
		hash, err := auth.HashPassword(password)
		if err != nil {
			logging.Fatal("hash admin password failed", "error", err)
		}
		adminRepo := repository.NewPgAdminRepository(pool)
		user := &model.AdminUser{Email: email, PasswordHash: hash}
		if err := adminRepo.Create(ctx, user); err != nil {
			logging.Fatal("seed admin user failed", "error", err)
		}
		slog.Info("admin user seeded", "email", email)
	}

	slog.Info("seeding complete")
}

func seedProjects() []*model.Project {
	return []*model.Project{
		{
			Title:            "Frieda en Rus",
			Slug:             "frieda-en-rus",
			Tagline:          "Saddle up for style.",
			ShortDescription: "A post-post apocalyptic wilderness. Welcome to the Wild West of the Nieu-Transvaal.",
			FullDescription:  "Set in the barren wastelands of the post-post-apocalyptic Free State, Frieda en Rus is a powerful short-form narrative exploring themes of survival, identity, and the enduring spirit of South African culture.",
			Category:         model.CategoryAnimation,
			Images: []model.ProjectImage{
				{URL: "/images/Early_Concept_Exploration.jpg", Alt: "Early concept exploration", Type: "concept"},
				{URL: "/images/Hansie_Front.jpg", Alt: "Hansie character front view", Type: "character"},
				{URL: "/images/Whipshot_Rifle.jpg", Alt: "Whipshot rifle design", Type: "prop"},
			},
			Metadata: &model.ProjectMetadata{
				Technologies: []string{"Maya", "ZBrush", "Substance Painter", "Arnold"},
				Duration:     "10 months",
			},
			Featured:     true,
			DisplayOrder: 1,
			Status:       model.StatusPublished,
		},
		{
			Title:            "Nou Gaan Ons Braai",
			Slug:             "braai",
			Tagline:          "A classic South African phrase.",
			ShortDescription: "Celebrating the rich cultural tradition of the South African braai through character design and world-building.",
			FullDescription:  "Through character design and environmental storytelling, the project captures the warmth, community, and sensory experience of gathering around the fire.",
			Category:         model.CategoryCharacterDesign,
			Images: []model.ProjectImage{
				{URL: "/images/Coal_Stove_Presentation.jpg", Alt: "Coal stove presentation", Type: "prop"},
				{URL: "/images/Lantern_Presentation.jpg", Alt: "Lantern presentation", Type: "prop"},
			},
			Metadata: &model.ProjectMetadata{
				Technologies: []string{"Maya", "Substance Painter", "Photoshop"},
				Duration:     "6 months",
			},
			Featured:     true,
			DisplayOrder: 2,
			Status:       model.StatusPublished,
		},
		{
			Title:            "The Professor",
			Slug:             "professor",
			Tagline:          "From concept to character.",
			ShortDescription: "A detailed character study of Dr. Johann Hagen, exploring the journey from initial concept sketches to fully realized 3D character.",
			FullDescription:  "This project documents the complete journey from initial concept to final 3D character, showcasing the iterative process of character development.",
			Category:         model.CategoryDiorama,
			Images: []model.ProjectImage{
				{URL: "/images/Johan_Hagen_Bust.jpg", Alt: "Johan Hagen bust render", Type: "character"},
			},
			Metadata: &model.ProjectMetadata{
				Technologies: []string{"ZBrush", "Maya", "Substance Painter", "Arnold"},
				Duration:     "4 months",
			},
			Featured:     true,
			DisplayOrder: 3,
			Status:       model.StatusPublished,
		},
		{
			Title:            "Unexpected Visitors",
			Slug:             "unexpected-visitors",
			Tagline:          "If aliens ever did come to earth they'd come to SA first.",
			ShortDescription: "A sci-fi exploration of humanoid visitors arriving in Cape Town, blending South African culture with extraterrestrial intrigue.",
			FullDescription:  "The project imagines humanoid visitors arriving in Cape Town, their otherworldly presence contrasted against the iconic backdrop of Table Mountain.",
			Category:         model.CategoryCollaborative,
			Metadata: &model.ProjectMetadata{
				Technologies:  []string{"Maya", "ZBrush", "After Effects"},
				Duration:      "8 months",
				Collaborators: []string{"Team collaboration project"},
			},
			Featured:     true,
			DisplayOrder: 4,
			Status:       model.StatusPublished,
		},
	}
}

func seedGallery() []*model.GalleryItem {
	entries := []struct {
		title    string
		category model.GalleryCategory
		url      string
	}{
		{"For Hano", model.GalleryCharacterArt, "/images/For-Hano.jpg"},
		{"Michael Picture", model.GalleryPersonalWork, "/images/Michael_Picture.jpg"},
		{"Matias Woord", model.GalleryFinishedPiece, "/images/Matias_Woord.webp"},
		{"Wian Woord Final", model.GalleryCharacterArt, "/images/Wian_WoordFinal.jpg"},
		{"Tannie Ella Woord", model.GalleryCharacterArt, "/images/Tannie_Ella_Woord.jpg"},
		{"Sunette Doodle", model.GallerySketch, "/images/Sunette_Doodle.jpg"},
		{"Hansie Front", model.GalleryCharacterArt, "/images/Hansie_Front.jpg"},
		{"Johan Hagen Bust", model.GalleryCharacterArt, "/images/Johan_Hagen_Bust.jpg"},
		{"Whipshot Rifle", model.GalleryConceptArt, "/images/Whipshot_Rifle.jpg"},
		{"Lantern Presentation", model.GalleryFinishedPiece, "/images/Lantern_Presentation.jpg"},
		{"Coal Stove", model.GalleryFinishedPiece, "/images/Coal_Stove_Presentation.jpg"},
		{"Early Concept Exploration", model.GalleryConceptArt, "/images/Early_Concept_Exploration.jpg"},
	}

	items := make([]*model.GalleryItem, len(entries))
	for i, e := range entries {
		items[i] = &model.GalleryItem{
			Title:        e.title,
			Image:        model.GalleryImage{URL: e.url, Alt: e.title},
			Category:     e.category,
			DisplayOrder: i + 1,
		}
	}
	return items
}

func seedSiteConfig() *model.SiteConfig {
	return &model.SiteConfig{
		ID: model.SingletonID,
		SiteInfo: model.SiteInfo{
			SiteName:    "iwan.crafford",
			Tagline:     "Simply Beautiful - Finding Beauty in the Ordinary",
			Description: "3D Animation Portfolio showcasing western-inspired animations and fine art",
			OwnerName:   "Iwan Crafford",
		},
		ContactInfo: model.ContactInfo{
			Email:    "iwan.crafford@gmail.com",
			Phone:    "+27 73 824 0610",
			Location: "Blouberg, Western Cape",
		},
		SocialLinks: []model.SocialLink{
			{Platform: "instagram", URL: "https://www.instagram.com/thegreatbig_scrapbook", Display: true},
			{Platform: "linkedin", URL: "https://www.linkedin.com/in/iwancrafford/", Display: true},
		},
		Navigation: []model.NavigationItem{
			{Label: "Projects", Href: "/projects", Order: 1},
			{Label: "About", Href: "/about", Order: 2},
			{Label: "Gallery", Href: "/gallery", Order: 3},
			{Label: "Contact", Href: "/contact", Order: 4},
		},
		Footer: model.Footer{
			Copyright: fmt.Sprintf("All rights reserved © %d Iwan Crafford.", time.Now().Year()),
		},
	}
}

func seedAbout() *model.AboutContent {
	return &model.AboutContent{
		ID:           model.SingletonID,
		HeroTitle:    "A perfectly ordinary name...",
		HeroSubtitle: "that speaks to a most extraordinary journey...",
		BioText:      "I'm a 3D animation student with a passion for bringing characters to life. My work explores themes of South African culture, western aesthetics, and the beauty found in everyday moments.",
		Sections: []model.AboutSection{
			{
				ID:      "intro",
				Title:   "The Beginning",
				Content: "I was born in 2003, in the main city of Mpumalanga - Mbombela. From a young age, I found myself drawn to art and storytelling, spending countless hours sketching characters and imagining worlds beyond my own.",
				Order:   1,
				Images:  []model.AboutImage{{URL: "/images/about-1.jpg", Alt: "Young Iwan sketching", Alignment: "right"}},
			},
			{
				ID:      "growth",
				Title:   "Finding My Path",
				Content: "As I grew in confidence and prowess, my artistic pursuits evolved from simple sketches to complex character designs. I discovered 3D animation and knew immediately that this was where I belonged.",
				Order:   2,
				Images:  []model.AboutImage{{URL: "/images/about-2.jpg", Alt: "Working on 3D projects", Alignment: "left"}},
			},
			{
				ID:      "present",
				Title:   "Simply Beautiful",
				Content: "Today, my work is guided by a simple philosophy: finding beauty in the ordinary. Whether it's the weathered face of a character or the warm glow of a South African sunset, I believe that the most powerful art comes from authentic moments and genuine emotion.",
				Order:   3,
				Images:  []model.AboutImage{{URL: "/images/about-3.jpg", Alt: "Current work", Alignment: "right"}},
			},
		},
	}
}
