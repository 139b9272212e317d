package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/veldwerk/backend/internal/model"
	"github.com/veldwerk/backend/internal/service"
)

// maxMessageLength bounds the contact message body.
const maxMessageLength = 10000

// ContactHandler serves the contact form intake and moderation endpoints.
type ContactHandler struct {
	contacts service.ContactService
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(contacts service.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

type submitContactRequest struct {
	Name            string            `json:"name"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	Subject         string            `json:"subject"`
	Message         string            `json:"message"`
	InquiryType     model.InquiryType `json:"inquiry_type"`
	ProjectInterest string            `json:"project_interest"`
}

// Submit handles POST /api/contact. Read and archived flags are always
// stored as false regardless of the request payload.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Email == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "name, email and message are required")
		return
	}
	if !strings.Contains(req.Email, "@") {
		writeError(w, http.StatusBadRequest, "invalid email address")
		return
	}
	if len(req.Message) > maxMessageLength {
		writeError(w, http.StatusBadRequest, "message too long")
		return
	}
	if req.InquiryType == "" {
		req.InquiryType = model.InquiryGeneral
	}
	if !req.InquiryType.Valid() {
		writeError(w, http.StatusBadRequest, "invalid inquiry type")
		return
	}

	sub := &model.ContactSubmission{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           strings.TrimSpace(req.Phone),
		Subject:         strings.TrimSpace(req.Subject),
		Message:         req.Message,
		InquiryType:     req.InquiryType,
		ProjectInterest: strings.TrimSpace(req.ProjectInterest),
		UserAgent:       r.UserAgent(),
	}
	id, err := h.contacts.Submit(r.Context(), sub)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// List handles GET /api/admin/contact.
// Query parameters: include_archived, limit, cursor.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := model.ContactListOptions{Cursor: q.Get("cursor")}

	if v := q.Get("include_archived"); v != "" {
		include, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid include_archived flag")
			return
		}
		opts.IncludeArchived = include
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		opts.PageSize = limit
	}

	page, err := h.contacts.List(r.Context(), opts)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// MarkRead handles POST /api/admin/contact/{id}/read.
func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}
	if err := h.contacts.MarkRead(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "submission marked read"})
}

// Archive handles POST /api/admin/contact/{id}/archive.
func (h *ContactHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}
	if err := h.contacts.Archive(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "submission archived"})
}

// Delete handles DELETE /api/admin/contact/{id}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}
	if err := h.contacts.Delete(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "submission deleted"})
}
