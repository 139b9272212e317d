package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/veldwerk/backend/internal/model"
	"github.com/veldwerk/backend/internal/repository"
	"github.com/veldwerk/backend/internal/service"
)

// ProjectHandler serves the project endpoints.
type ProjectHandler struct {
	projects service.ProjectService
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(projects service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the standard error envelope.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeStoreError maps repository errors to HTTP responses.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, repository.ErrInvalidCursor):
		writeError(w, http.StatusBadRequest, "invalid cursor")
	case errors.Is(err, repository.ErrInvalidSortField):
		writeError(w, http.StatusBadRequest, "invalid sort field")
	default:
		slog.Error("store operation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// List handles GET /api/projects.
// Query parameters: category, featured, status, sort (field or -field),
// limit, cursor.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := service.ProjectListOptions{Cursor: q.Get("cursor")}

	if v := q.Get("category"); v != "" {
		cat := model.ProjectCategory(v)
		if !cat.Valid() {
			writeError(w, http.StatusBadRequest, "invalid category")
			return
		}
		opts.Filters.Category = &cat
	}
	if v := q.Get("featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid featured flag")
			return
		}
		opts.Filters.Featured = &featured
	}
	if v := q.Get("status"); v != "" {
		status := model.ProjectStatus(v)
		if !status.Valid() {
			writeError(w, http.StatusBadRequest, "invalid status")
			return
		}
		opts.Filters.Status = &status
	}
	if v := q.Get("sort"); v != "" {
		sort := repository.Sort{Field: v}
		if strings.HasPrefix(v, "-") {
			sort.Field = v[1:]
			sort.Desc = true
		}
		opts.Sort = &sort
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		opts.PageSize = limit
	}

	page, err := h.projects.List(r.Context(), opts)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// GetBySlug handles GET /api/projects/{slug}. Only published projects are
// reachable by slug.
func (h *ProjectHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		writeError(w, http.StatusBadRequest, "slug is required")
		return
	}

	p, err := h.projects.GetBySlug(r.Context(), slug)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Featured handles GET /api/projects/featured.
func (h *ProjectHandler) Featured(w http.ResponseWriter, r *http.Request) {
	count := 0
	if v := r.URL.Query().Get("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "invalid count")
			return
		}
		count = n
	}

	projects, err := h.projects.Featured(r.Context(), count)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"projects": projects})
}

type createProjectRequest struct {
	Title            string                 `json:"title"`
	Slug             string                 `json:"slug"`
	Tagline          string                 `json:"tagline"`
	ShortDescription string                 `json:"short_description"`
	FullDescription  string                 `json:"full_description"`
	Category         model.ProjectCategory  `json:"category"`
	Images           []model.ProjectImage   `json:"images"`
	Videos           []model.ProjectVideo   `json:"videos"`
	Sections         []model.ProjectSection `json:"sections"`
	Metadata         *model.ProjectMetadata `json:"metadata"`
	Featured         bool                   `json:"featured"`
	DisplayOrder     int                    `json:"display_order"`
	Status           model.ProjectStatus    `json:"status"`
}

// Create handles POST /api/admin/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" || req.Slug == "" {
		writeError(w, http.StatusBadRequest, "title and slug are required")
		return
	}
	if !req.Category.Valid() {
		writeError(w, http.StatusBadRequest, "invalid category")
		return
	}
	if req.Status == "" {
		req.Status = model.StatusDraft
	}
	if !req.Status.Valid() {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	p := &model.Project{
		Title:            req.Title,
		Slug:             req.Slug,
		Tagline:          req.Tagline,
		ShortDescription: req.ShortDescription,
		FullDescription:  req.FullDescription,
		Category:         req.Category,
		Images:           req.Images,
		Videos:           req.Videos,
		Sections:         req.Sections,
		Metadata:         req.Metadata,
		Featured:         req.Featured,
		DisplayOrder:     req.DisplayOrder,
		Status:           req.Status,
	}
	id, err := h.projects.Create(r.Context(), p)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

type updateProjectRequest struct {
	Title            *string                `json:"title"`
	Slug             *string                `json:"slug"`
	Tagline          *string                `json:"tagline"`
	ShortDescription *string                `json:"short_description"`
	FullDescription  *string                `json:"full_description"`
	Category         *model.ProjectCategory `json:"category"`
	Images           []model.ProjectImage   `json:"images"`
	Videos           []model.ProjectVideo   `json:"videos"`
	Sections         []model.ProjectSection `json:"sections"`
	Metadata         *model.ProjectMetadata `json:"metadata"`
	Featured         *bool                  `json:"featured"`
	DisplayOrder     *int                   `json:"display_order"`
	Status           *model.ProjectStatus   `json:"status"`
}

// Update handles PATCH /api/admin/projects/{id}. Absent fields are left
// unchanged.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	var req updateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Category != nil && !req.Category.Valid() {
		writeError(w, http.StatusBadRequest, "invalid category")
		return
	}
	if req.Status != nil && !req.Status.Valid() {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	patch := model.ProjectPatch{
		Title:            req.Title,
		Slug:             req.Slug,
		Tagline:          req.Tagline,
		ShortDescription: req.ShortDescription,
		FullDescription:  req.FullDescription,
		Category:         req.Category,
		Images:           req.Images,
		Videos:           req.Videos,
		Sections:         req.Sections,
		Metadata:         req.Metadata,
		Featured:         req.Featured,
		DisplayOrder:     req.DisplayOrder,
		Status:           req.Status,
	}
	if err := h.projects.Update(r.Context(), id, patch); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "project updated"})
}

// Delete handles DELETE /api/admin/projects/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}
	if err := h.projects.Delete(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "project deleted"})
}

// GetByID handles GET /api/admin/projects/{id}; drafts are visible here.
func (h *ProjectHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}
	p, err := h.projects.GetByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}
