package handler

import (
	"encoding/json"
	"net/http"

	"github.com/veldwerk/backend/internal/model"
	"github.com/veldwerk/backend/internal/service"
)

// SiteContentHandler serves the singleton site-config and about documents.
type SiteContentHandler struct {
	content service.SiteContentService
}

// NewSiteContentHandler creates a SiteContentHandler.
func NewSiteContentHandler(content service.SiteContentService) *SiteContentHandler {
	return &SiteContentHandler{content: content}
}

// GetSiteConfig handles GET /api/site-config.
func (h *SiteContentHandler) GetSiteConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.content.GetSiteConfig(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if cfg == nil {
		writeError(w, http.StatusNotFound, "site config not found")
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

type updateSiteConfigRequest struct {
	SiteInfo    *model.SiteInfo        `json:"site_info"`
	ContactInfo *model.ContactInfo     `json:"contact_info"`
	SocialLinks []model.SocialLink     `json:"social_links"`
	Navigation  []model.NavigationItem `json:"navigation"`
	Footer      *model.Footer          `json:"footer"`
}

// UpdateSiteConfig handles PATCH /api/admin/site-config. Absent blocks are
// left unchanged.
func (h *SiteContentHandler) UpdateSiteConfig(w http.ResponseWriter, r *http.Request) {
	var req updateSiteConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	patch := model.SiteConfigPatch{
		SiteInfo:    req.SiteInfo,
		ContactInfo: req.ContactInfo,
		SocialLinks: req.SocialLinks,
		Navigation:  req.Navigation,
		Footer:      req.Footer,
	}
	if err := h.content.UpdateSiteConfig(r.Context(), patch); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "site config updated"})
}

// GetAbout handles GET /api/about.
func (h *SiteContentHandler) GetAbout(w http.ResponseWriter, r *http.Request) {
	about, err := h.content.GetAbout(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if about == nil {
		writeError(w, http.StatusNotFound, "about content not found")
		return
	}
	writeJSON(w, http.StatusOK, about)
}

type updateAboutRequest struct {
	HeroTitle    *string              `json:"hero_title"`
	HeroSubtitle *string              `json:"hero_subtitle"`
	BioText      *string              `json:"bio_text"`
	Sections     []model.AboutSection `json:"sections"`
}

// UpdateAbout handles PATCH /api/admin/about.
func (h *SiteContentHandler) UpdateAbout(w http.ResponseWriter, r *http.Request) {
	var req updateAboutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	patch := model.AboutPatch{
		HeroTitle:    req.HeroTitle,
		HeroSubtitle: req.HeroSubtitle,
		BioText:      req.BioText,
		Sections:     req.Sections,
	}
	if err := h.content.UpdateAbout(r.Context(), patch); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "about content updated"})
}
