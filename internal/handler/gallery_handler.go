package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/veldwerk/backend/internal/model"
	"github.com/veldwerk/backend/internal/service"
)

// GalleryHandler serves the gallery endpoints.
type GalleryHandler struct {
	gallery service.GalleryService
}

// NewGalleryHandler creates a GalleryHandler.
func NewGalleryHandler(gallery service.GalleryService) *GalleryHandler {
	return &GalleryHandler{gallery: gallery}
}

// List handles GET /api/gallery.
// Query parameters: category, project_id, limit, cursor.
func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := service.GalleryListOptions{Cursor: q.Get("cursor")}

	if v := q.Get("category"); v != "" {
		cat := model.GalleryCategory(v)
		if !cat.Valid() {
			writeError(w, http.StatusBadRequest, "invalid category")
			return
		}
		opts.Filters.Category = &cat
	}
	if v := q.Get("project_id"); v != "" {
		opts.Filters.ProjectID = &v
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		opts.PageSize = limit
	}

	page, err := h.gallery.List(r.Context(), opts)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// GetByID handles GET /api/gallery/{id}.
func (h *GalleryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}
	item, err := h.gallery.GetByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "gallery item not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

type createGalleryRequest struct {
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	Image        model.GalleryImage    `json:"image"`
	Category     model.GalleryCategory `json:"category"`
	DisplayOrder int                   `json:"display_order"`
	ProjectID    string                `json:"project_id"`
}

// Create handles POST /api/admin/gallery.
func (h *GalleryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGalleryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" || req.Image.URL == "" {
		writeError(w, http.StatusBadRequest, "title and image are required")
		return
	}
	if !req.Category.Valid() {
		writeError(w, http.StatusBadRequest, "invalid category")
		return
	}

	item := &model.GalleryItem{
		Title:        req.Title,
		Description:  req.Description,
		Image:        req.Image,
		Category:     req.Category,
		DisplayOrder: req.DisplayOrder,
		ProjectID:    req.ProjectID,
	}
	id, err := h.gallery.Create(r.Context(), item)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

type updateGalleryRequest struct {
	Title        *string                `json:"title"`
	Description  *string                `json:"description"`
	Image        *model.GalleryImage    `json:"image"`
	Category     *model.GalleryCategory `json:"category"`
	DisplayOrder *int                   `json:"display_order"`
	ProjectID    *string                `json:"project_id"`
}

// Update handles PATCH /api/admin/gallery/{id}.
func (h *GalleryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	var req updateGalleryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Category != nil && !req.Category.Valid() {
		writeError(w, http.StatusBadRequest, "invalid category")
		return
	}

	patch := model.GalleryPatch{
		Title:        req.Title,
		Description:  req.Description,
		Image:        req.Image,
		Category:     req.Category,
		DisplayOrder: req.DisplayOrder,
		ProjectID:    req.ProjectID,
	}
	if err := h.gallery.Update(r.Context(), id, patch); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "gallery item updated"})
}

// Delete handles DELETE /api/admin/gallery/{id}.
func (h *GalleryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}
	if err := h.gallery.Delete(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "gallery item deleted"})
}
