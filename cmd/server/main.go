package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"log/slog"

	"github.com/joho/godotenv"

	"github.com/veldwerk/backend/internal/auth"
	"github.com/veldwerk/backend/internal/backend"
	"github.com/veldwerk/backend/internal/config"
	"github.com/veldwerk/backend/internal/handler"
	"github.com/veldwerk/backend/internal/logging"
	"github.com/veldwerk/backend/internal/repository"
	"github.com/veldwerk/backend/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	if !cfg.IsConfigured() {
		logging.Fatal("DATABASE_URL is not set")
	}

	ctx := context.Background()
	backends := backend.New(cfg)
	defer backends.Close()

	pool, err := backends.Store(ctx)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	blobs, err := backends.Blobs()
	if err != nil {
		logging.Fatal("failed to initialize blob storage", "error", err)
	}
	identity, err := backends.Identity(ctx)
	if err != nil {
		logging.Fatal("failed to initialize identity gateway", "error", err)
	}
	// The server holds no session of its own, so the startup restore resolves
	// the auth state to signed-out and unblocks WaitUntilReady.
	if err := identity.Restore(ctx, ""); err != nil {
		logging.Fatal("failed to resolve auth state", "error", err)
	}

	projectRepo := repository.NewPgProjectRepository(pool)
	galleryRepo := repository.NewPgGalleryRepository(pool)
	siteContentRepo := repository.NewPgSiteContentRepository(pool)
	contactRepo := repository.NewPgContactRepository(pool)
	newsletterRepo := repository.NewPgNewsletterRepository(pool)

	projectService := service.NewProjectService(projectRepo)
	galleryService := service.NewGalleryService(galleryRepo)
	siteContentService := service.NewSiteContentService(siteContentRepo)
	contactService := service.NewContactService(contactRepo)
	newsletterService := service.NewNewsletterService(newsletterRepo)

	sessionSecretBytes := auth.SessionSecretBytes(cfg.SessionSecret)
	secureCookie := strings.HasPrefix(cfg.FrontendURL, "https://")

	h := handler.New(pool, cfg.FrontendURL)
	projectHandler := handler.NewProjectHandler(projectService)
	galleryHandler := handler.NewGalleryHandler(galleryService)
	siteContentHandler := handler.NewSiteContentHandler(siteContentService)
	contactHandler := handler.NewContactHandler(contactService)
	newsletterHandler := handler.NewNewsletterHandler(newsletterService)
	imageHandler := handler.NewImageHandler(blobs)
	authHandler := handler.NewAuthHandler(identity, secureCookie)

	intakeLimiter := handler.NewRateLimiter(10)
	requireAuth := auth.RequireAuth(sessionSecretBytes)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", h.Health)

	// Public content
	mux.HandleFunc("GET /api/projects", projectHandler.List)
	mux.HandleFunc("GET /api/projects/featured", projectHandler.Featured)
	mux.HandleFunc("GET /api/projects/{slug}", projectHandler.GetBySlug)
	mux.HandleFunc("GET /api/gallery", galleryHandler.List)
	mux.HandleFunc("GET /api/gallery/{id}", galleryHandler.GetByID)
	mux.HandleFunc("GET /api/site-config", siteContentHandler.GetSiteConfig)
	mux.HandleFunc("GET /api/about", siteContentHandler.GetAbout)

	// Public intake (rate limited)
	mux.Handle("POST /api/contact", intakeLimiter.Middleware(http.HandlerFunc(contactHandler.Submit)))
	mux.Handle("POST /api/newsletter/subscribe", intakeLimiter.Middleware(http.HandlerFunc(newsletterHandler.Subscribe)))
	mux.Handle("POST /api/newsletter/unsubscribe", intakeLimiter.Middleware(http.HandlerFunc(newsletterHandler.Unsubscribe)))

	// Session
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/auth/me", authHandler.Me)

	// Admin (session cookie required)
	mux.Handle("POST /api/admin/projects", requireAuth(http.HandlerFunc(projectHandler.Create)))
	mux.Handle("GET /api/admin/projects/{id}", requireAuth(http.HandlerFunc(projectHandler.GetByID)))
	mux.Handle("PATCH /api/admin/projects/{id}", requireAuth(http.HandlerFunc(projectHandler.Update)))
	mux.Handle("DELETE /api/admin/projects/{id}", requireAuth(http.HandlerFunc(projectHandler.Delete)))
	mux.Handle("POST /api/admin/gallery", requireAuth(http.HandlerFunc(galleryHandler.Create)))
	mux.Handle("PATCH /api/admin/gallery/{id}", requireAuth(http.HandlerFunc(galleryHandler.Update)))
	mux.Handle("DELETE /api/admin/gallery/{id}", requireAuth(http.HandlerFunc(galleryHandler.Delete)))
	mux.Handle("PATCH /api/admin/site-config", requireAuth(http.HandlerFunc(siteContentHandler.UpdateSiteConfig)))
	mux.Handle("PATCH /api/admin/about", requireAuth(http.HandlerFunc(siteContentHandler.UpdateAbout)))
	mux.Handle("GET /api/admin/contact", requireAuth(http.HandlerFunc(contactHandler.List)))
	mux.Handle("POST /api/admin/contact/{id}/read", requireAuth(http.HandlerFunc(contactHandler.MarkRead)))
	mux.Handle("POST /api/admin/contact/{id}/archive", requireAuth(http.HandlerFunc(contactHandler.Archive)))
	mux.Handle("DELETE /api/admin/contact/{id}", requireAuth(http.HandlerFunc(contactHandler.Delete)))
	mux.Handle("POST /api/admin/images", requireAuth(http.HandlerFunc(imageHandler.Upload)))
	mux.Handle("POST /api/admin/images/delete", requireAuth(http.HandlerFunc(imageHandler.Delete)))
	mux.Handle("GET /api/admin/images", requireAuth(http.HandlerFunc(imageHandler.List)))

	// Uploaded files
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.StorageDir))))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.RequestLogger(handler.SecurityHeaders(h.CORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
