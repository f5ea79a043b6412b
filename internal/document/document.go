// Package document detects supported document kinds and counts their pages.
// It is the adapter behind the workflow's count-pages capability: parsing
// never touches session or operating state.
package document

import (
	"errors"
	"path/filepath"
	"strings"
)

// Kind is a supported document type
type Kind string

const (
	KindPDF  Kind = "pdf"
	KindDOCX Kind = "docx"
	KindPPTX Kind = "pptx"
)

var (
	// ErrUnsupportedType — the file is not a PDF, DOCX or PPTX
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrUnreadable — the file is a supported kind but its page count
	// could not be read
	ErrUnreadable = errors.New("unreadable file")
)

var mimeKinds = map[string]Kind{
	"application/pdf": KindPDF,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   KindDOCX,
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": KindPPTX,
}

// DetectKind resolves the document kind from the filename extension, falling
// back to the declared MIME type. Any other kind is rejected before a single
// byte is parsed.
func DetectKind(filename, mime string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return KindPDF, nil
	case ".docx":
		return KindDOCX, nil
	case ".pptx":
		return KindPPTX, nil
	}
	if kind, ok := mimeKinds[mime]; ok {
		return kind, nil
	}
	return "", ErrUnsupportedType
}

// Counter counts pages of a document on disk
type Counter interface {
	CountPages(path string, kind Kind) (int, error)
}

// FileCounter is the production Counter
type FileCounter struct{}

// CountPages returns the page count (slides for presentations), or
// ErrUnreadable when the file cannot be parsed
func (FileCounter) CountPages(path string, kind Kind) (int, error) {
	switch kind {
	case KindPDF:
		return countPDF(path)
	case KindDOCX, KindPPTX:
		return countOOXML(path, kind)
	}
	return 0, ErrUnsupportedType
}
