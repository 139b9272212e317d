package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/veldwerk/backend/internal/storage"
)

// Upload limits for admin image uploads.
const (
	maxUploadSizeMB  = 10
	maxMultipartSize = 32 << 20
)

// ImageHandler serves the admin blob-storage endpoints.
type ImageHandler struct {
	blobs *storage.Gateway
}

// NewImageHandler creates an ImageHandler.
func NewImageHandler(blobs *storage.Gateway) *ImageHandler {
	return &ImageHandler{blobs: blobs}
}

// Upload handles POST /api/admin/images. Multipart form fields: file
// (required, repeatable), folder (required), subfolder, compress,
// max_width, quality.
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	folder := storage.Folder(r.FormValue("folder"))
	if !folder.Valid() {
		writeError(w, http.StatusBadRequest, "invalid folder")
		return
	}
	opts := storage.UploadOptions{
		Folder:    folder,
		Subfolder: r.FormValue("subfolder"),
	}

	compress := r.FormValue("compress") != "false"
	maxWidth := storage.DefaultMaxWidth
	if v := r.FormValue("max_width"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "invalid max_width")
			return
		}
		maxWidth = n
	}
	quality := storage.DefaultQuality
	if v := r.FormValue("quality"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 100 {
			writeError(w, http.StatusBadRequest, "invalid quality")
			return
		}
		quality = n
	}

	headers := r.MultipartForm.File["file"]
	if len(headers) == 0 {
		writeError(w, http.StatusBadRequest, "file is required")
		return
	}

	var files []storage.File
	for _, fh := range headers {
		if !storage.AllowedImageType(fh.Header.Get("Content-Type")) {
			writeError(w, http.StatusBadRequest, "unsupported image type: "+fh.Filename)
			return
		}
		if !storage.WithinSizeLimit(fh.Size, maxUploadSizeMB) {
			writeError(w, http.StatusRequestEntityTooLarge, "file too large: "+fh.Filename)
			return
		}

		f, err := fh.Open()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to read upload")
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to read upload")
			return
		}

		if compress {
			compressed, err := storage.Compress(data, maxWidth, quality)
			if err != nil {
				writeError(w, http.StatusBadRequest, "failed to process image: "+fh.Filename)
				return
			}
			data = compressed
		}
		files = append(files, storage.File{Name: fh.Filename, Data: bytes.NewReader(data)})
	}

	urls, err := h.blobs.UploadAll(r.Context(), files, opts)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidFolder) {
			writeError(w, http.StatusBadRequest, "invalid folder")
			return
		}
		writeError(w, http.StatusInternalServerError, "upload failed")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"urls": urls})
}

type deleteImageRequest struct {
	URL  string   `json:"url"`
	URLs []string `json:"urls"`
}

// Delete handles POST /api/admin/images/delete. Accepts a single url or a
// urls batch; already-missing objects count as deleted.
func (h *ImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	urls := req.URLs
	if req.URL != "" {
		urls = append(urls, req.URL)
	}
	if len(urls) == 0 {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}

	if err := h.blobs.DeleteAllByURL(r.Context(), urls); err != nil {
		writeError(w, http.StatusInternalServerError, "delete failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

// List handles GET /api/admin/images.
// Query parameters: folder (required), subfolder.
func (h *ImageHandler) List(w http.ResponseWriter, r *http.Request) {
	folder := storage.Folder(r.URL.Query().Get("folder"))
	if !folder.Valid() {
		writeError(w, http.StatusBadRequest, "invalid folder")
		return
	}

	objects, err := h.blobs.ListFiles(r.Context(), folder, r.URL.Query().Get("subfolder"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "listing failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"files": objects})
}
