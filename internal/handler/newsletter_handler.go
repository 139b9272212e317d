package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/veldwerk/backend/internal/model"
	"github.com/veldwerk/backend/internal/service"
)

// NewsletterHandler serves the newsletter subscribe/unsubscribe endpoints.
type NewsletterHandler struct {
	newsletter service.NewsletterService
}

// NewNewsletterHandler creates a NewsletterHandler.
func NewNewsletterHandler(newsletter service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletter: newsletter}
}

type subscribeRequest struct {
	Email  string                   `json:"email"`
	Source model.SubscriptionSource `json:"source"`
}

// Subscribe handles POST /api/newsletter/subscribe. Subscribing an address
// that is already active is a success, not a conflict.
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		writeError(w, http.StatusBadRequest, "invalid email address")
		return
	}
	if req.Source == "" {
		req.Source = model.SourceFooter
	}
	if !req.Source.Valid() {
		writeError(w, http.StatusBadRequest, "invalid source")
		return
	}

	id, err := h.newsletter.Subscribe(r.Context(), req.Email, req.Source)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

type unsubscribeRequest struct {
	Email string `json:"email"`
}

// Unsubscribe handles POST /api/newsletter/unsubscribe. Unknown addresses
// are a silent success.
func (h *NewsletterHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var req unsubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		writeError(w, http.StatusBadRequest, "invalid email address")
		return
	}

	if err := h.newsletter.Unsubscribe(r.Context(), req.Email); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "unsubscribed"})
}
