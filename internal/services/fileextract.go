package services

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

const previewLimit = 500

// FileExtractService pulls a short text preview (and page count for PDFs) out
// of uploaded document bytes. Uploads are never written to disk, so extraction
// works entirely in memory.
type FileExtractService struct{}

func NewFileExtractService() *FileExtractService {
	return &FileExtractService{}
}

// Extract returns a preview of the document text and, for PDFs, the page
// count. Legacy .doc files are accepted without extraction; their binary
// format is not worth parsing for a preview.
func (s *FileExtractService) Extract(data []byte, mimeType string) (preview string, pages int, err error) {
	switch mimeType {
	case "text/plain":
		preview = truncatePreview(normalizeExtractedText(string(data)))
		return preview, 0, nil
	case "application/pdf":
		return s.extractPDF(data)
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		text, err := s.extractDOCX(data)
		if err != nil {
			return "", 0, err
		}
		return truncatePreview(text), 0, nil
	case "application/msword":
		return "", 0, nil
	default:
		return "", 0, fmt.Errorf("unsupported mime type for text extraction: %s", mimeType)
	}
}

func (s *FileExtractService) extractPDF(data []byte) (string, int, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, err
	}

	var b strings.Builder
	totalPage := reader.NumPage()
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
		if b.Len() > previewLimit*2 {
			break
		}
	}

	return truncatePreview(normalizeExtractedText(b.String())), totalPage, nil
}

func (s *FileExtractService) extractDOCX(data []byte) (string, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var documentXML []byte
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", err
			}
			documentXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", err
			}
			break
		}
	}

	if len(documentXML) == 0 {
		return "", fmt.Errorf("docx document.xml not found")
	}

	return normalizeExtractedText(stripDOCXML(documentXML)), nil
}

var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

func stripDOCXML(src []byte) string {
	s := string(src)

	// DOCX paragraphs and line breaks
	s = strings.ReplaceAll(s, "</w:p>", "\n")
	s = strings.ReplaceAll(s, "<w:br/>", "\n")
	s = strings.ReplaceAll(s, "<w:tab/>", "\t")

	s = xmlTagPattern.ReplaceAllString(s, "")

	replacer := strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
	)
	return replacer.Replace(s)
}

func normalizeExtractedText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	var b strings.Builder
	emptyCount := 0
	for _, line := range strings.Split(s, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			emptyCount++
			if emptyCount > 1 {
				continue
			}
			b.WriteString("\n")
			continue
		}
		emptyCount = 0
		b.WriteString(trimmed)
		b.WriteString("\n")
	}

	return strings.TrimSpace(b.String())
}

func truncatePreview(s string) string {
	if len(s) <= previewLimit {
		return s
	}
	return s[:previewLimit]
}
