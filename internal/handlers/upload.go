package handlers

import (
	"io"
	"net/http"
	"strings"

	"deepchat-backend/internal/models"
	"deepchat-backend/internal/services"
)

var allowedDocumentTypes = map[string]bool{
	"application/pdf":    true,
	"text/plain":         true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

type UploadHandler struct {
	fileExtract    *services.FileExtractService
	maxUploadBytes int64
}

func NewUploadHandler(fileExtract *services.FileExtractService, maxUploadBytes int64) *UploadHandler {
	return &UploadHandler{
		fileExtract:    fileExtract,
		maxUploadBytes: maxUploadBytes,
	}
}

// UploadDocument validates a multipart document upload and returns metadata
// about it, including a text preview where the format allows one. The bytes
// are discarded once the response is written.
func (h *UploadHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > h.maxUploadBytes {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResp("FILE_TOO_LARGE", "File size exceeds the 10MB limit", r))
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "No file provided", r))
		return
	}
	defer file.Close()

	mimeType := documentMimeType(header.Header.Get("Content-Type"), header.Filename)
	if !allowedDocumentTypes[mimeType] {
		writeJSON(w, http.StatusBadRequest, errorResp("INVALID_FILE_TYPE", "Invalid file type. Allowed: PDF, plain text, Word documents", r))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResp("FILE_TOO_LARGE", "File size exceeds the 10MB limit", r))
		return
	}

	result := models.UploadResult{
		Filename:  header.Filename,
		SizeBytes: int64(len(data)),
		MimeType:  mimeType,
		Status:    "accepted",
		UserID:    r.FormValue("user_id"),
	}

	// Extraction failure downgrades the metadata, not the upload.
	if preview, pages, err := h.fileExtract.Extract(data, mimeType); err == nil {
		result.Preview = preview
		result.Pages = pages
	}

	writeJSON(w, http.StatusOK, result)
}

// documentMimeType normalizes the declared content type, falling back to the
// file extension when the client sent none or a generic octet-stream.
func documentMimeType(declared, filename string) string {
	if i := strings.Index(declared, ";"); i >= 0 {
		declared = declared[:i]
	}
	declared = strings.TrimSpace(declared)

	if declared != "" && declared != "application/octet-stream" {
		return declared
	}

	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".pdf"):
		return "application/pdf"
	case strings.HasSuffix(lower, ".txt"):
		return "text/plain"
	case strings.HasSuffix(lower, ".doc"):
		return "application/msword"
	case strings.HasSuffix(lower, ".docx"):
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return declared
	}
}
