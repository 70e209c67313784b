package uploads

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/api/middleware"
	uploadsCore "Inkwell/internal/core/uploads"
)

// MaxUploadSize bounds uploaded images (5MB, matching the editor widget's
// imageMaxSize).
const MaxUploadSize = 5 * 1024 * 1024

// UploadImageHandler handles image uploads from the rich-text editor
type UploadImageHandler struct {
	resolver *uploadsCore.Resolver
}

// NewUploadImageHandler creates a new upload handler
func NewUploadImageHandler(resolver *uploadsCore.Resolver) *UploadImageHandler {
	return &UploadImageHandler{resolver: resolver}
}

// uploadResponse is the editor widget's expected response shape
type uploadResponse struct {
	Link string `json:"link"`
}

// HandleUpload handles POST /api/uploads/images
//
// Multipart form: file under "file" or "image", optional "post_id" (or
// "post") to file the upload under an existing post; without it the file
// lands in a timestamp-bucketed staging folder. Anonymous uploads are
// allowed and filed under the anonymous owner segment.
func (h *UploadImageHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request method")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid multipart form")
		return
	}

	file, header, err := formFile(r, "file", "image")
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest",
			uploadsCore.ErrNoFile.Error())
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("Failed to close uploaded file: %v", err)
		}
	}()

	content, err := io.ReadAll(file)
	if err != nil {
		log.Printf("Failed to read upload: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError",
			"Failed to read uploaded file")
		return
	}

	var postID *int64
	if raw := formValue(r, "post_id", "post"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id < 1 {
			handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest",
				"post_id must be a positive integer")
			return
		}
		postID = &id
	}

	username := ""
	if principal := middleware.GetPrincipal(r); principal.IsAuthenticated() {
		username = principal.Username
	}

	upload, err := h.resolver.Resolve(username, postID, header.Filename, content)
	if err != nil {
		if errors.Is(err, uploadsCore.ErrEmptyFilename) {
			handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
			return
		}
		// Storage failures propagate; nothing is retried here
		log.Printf("Upload resolution failed: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError",
			"Failed to store uploaded file")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, uploadResponse{Link: upload.PublicURL})
}

// formFile returns the first file present under any of the given keys
func formFile(r *http.Request, keys ...string) (multipart.File, *multipart.FileHeader, error) {
	var err error
	for _, key := range keys {
		var file multipart.File
		var header *multipart.FileHeader
		file, header, err = r.FormFile(key)
		if err == nil {
			return file, header, nil
		}
	}
	return nil, nil, err
}

// formValue returns the first non-empty form value under any of the keys
func formValue(r *http.Request, keys ...string) string {
	for _, key := range keys {
		if v := r.FormValue(key); v != "" {
			return v
		}
	}
	return ""
}
