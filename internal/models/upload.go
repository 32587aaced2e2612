package models

// UploadResult describes an accepted document upload. The file bytes are
// inspected for metadata and a text preview but are not stored anywhere.
type UploadResult struct {
	Filename  string `json:"filename"`
	SizeBytes int64  `json:"size_bytes"`
	MimeType  string `json:"mime_type"`
	Status    string `json:"status"`
	Pages     int    `json:"pages,omitempty"`
	Preview   string `json:"preview,omitempty"`
	UserID    string `json:"user_id,omitempty"`
}
