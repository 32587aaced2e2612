package services

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
)

func TestExtract_PlainText(t *testing.T) {
	s := NewFileExtractService()

	preview, pages, err := s.Extract([]byte("  hello\r\n\r\n\r\nworld  \n"), "text/plain")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if pages != 0 {
		t.Errorf("Expected 0 pages for text, got %d", pages)
	}
	if preview != "hello\n\nworld" {
		t.Errorf("Unexpected normalized preview: %q", preview)
	}
}

func TestExtract_PlainTextPreviewTruncated(t *testing.T) {
	s := NewFileExtractService()

	preview, _, err := s.Extract([]byte(strings.Repeat("a", 2000)), "text/plain")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(preview) != previewLimit {
		t.Errorf("Expected preview truncated to %d bytes, got %d", previewLimit, len(preview))
	}
}

func TestExtract_DOCX(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	f.Write([]byte(`<w:document><w:body><w:p><w:r><w:t>First paragraph</w:t></w:r></w:p><w:p><w:r><w:t>Second &amp; last</w:t></w:r></w:p></w:body></w:document>`))
	zw.Close()

	s := NewFileExtractService()
	preview, _, err := s.Extract(buf.Bytes(), "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !strings.Contains(preview, "First paragraph") {
		t.Errorf("Expected docx text in preview, got %q", preview)
	}
	if !strings.Contains(preview, "Second & last") {
		t.Errorf("Expected decoded XML entities in preview, got %q", preview)
	}
	if strings.Contains(preview, "<w:") {
		t.Error("Expected XML tags to be stripped from preview")
	}
}

func TestExtract_LegacyDocAcceptedWithoutPreview(t *testing.T) {
	s := NewFileExtractService()

	preview, pages, err := s.Extract([]byte{0xD0, 0xCF, 0x11, 0xE0}, "application/msword")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if preview != "" || pages != 0 {
		t.Error("Expected empty metadata for legacy .doc files")
	}
}

func TestExtract_CorruptPDFErrors(t *testing.T) {
	s := NewFileExtractService()

	if _, _, err := s.Extract([]byte("definitely not a pdf"), "application/pdf"); err == nil {
		t.Error("Expected error for corrupt PDF bytes")
	}
}

func TestExtract_UnsupportedMimeErrors(t *testing.T) {
	s := NewFileExtractService()

	if _, _, err := s.Extract([]byte("png bytes"), "image/png"); err == nil {
		t.Error("Expected error for unsupported mime type")
	}
}
