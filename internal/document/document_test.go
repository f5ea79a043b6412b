package document

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectKind(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		mime        string
		expected    Kind
		expectedErr error
	}{
		{
			name:     "pdf by extension",
			filename: "report.pdf",
			expected: KindPDF,
		},
		{
			name:     "uppercase extension",
			filename: "REPORT.PDF",
			expected: KindPDF,
		},
		{
			name:     "docx by extension",
			filename: "thesis.docx",
			expected: KindDOCX,
		},
		{
			name:     "pptx by extension",
			filename: "slides.pptx",
			expected: KindPPTX,
		},
		{
			name:     "pdf by mime when extension missing",
			filename: "document",
			mime:     "application/pdf",
			expected: KindPDF,
		},
		{
			name:     "docx by mime",
			filename: "file.bin",
			mime:     "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			expected: KindDOCX,
		},
		{
			name:        "image rejected",
			filename:    "photo.jpg",
			mime:        "image/jpeg",
			expectedErr: ErrUnsupportedType,
		},
		{
			name:        "legacy doc rejected",
			filename:    "old.doc",
			expectedErr: ErrUnsupportedType,
		},
		{
			name:        "no extension no mime",
			filename:    "mystery",
			expectedErr: ErrUnsupportedType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := DetectKind(tt.filename, tt.mime)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, kind)
		})
	}
}

func TestFileCounter_DOCX(t *testing.T) {
	path := writeOOXML(t, "thesis.docx", map[string]string{
		"docProps/app.xml":  appXML(12, 0),
		"word/document.xml": "<w:document/>",
	})

	pages, err := FileCounter{}.CountPages(path, KindDOCX)
	assert.NoError(t, err)
	assert.Equal(t, 12, pages)
}

func TestFileCounter_DOCX_MissingPages(t *testing.T) {
	path := writeOOXML(t, "broken.docx", map[string]string{
		"word/document.xml": "<w:document/>",
	})

	_, err := FileCounter{}.CountPages(path, KindDOCX)
	assert.ErrorIs(t, err, ErrUnreadable)
}

func TestFileCounter_PPTX(t *testing.T) {
	path := writeOOXML(t, "slides.pptx", map[string]string{
		"docProps/app.xml":      appXML(0, 7),
		"ppt/slides/slide1.xml": "<p:sld/>",
	})

	pages, err := FileCounter{}.CountPages(path, KindPPTX)
	assert.NoError(t, err)
	assert.Equal(t, 7, pages)
}

func TestFileCounter_PPTX_SlideEntryFallback(t *testing.T) {
	// No app.xml: the per-slide archive entries still give the count
	path := writeOOXML(t, "slides.pptx", map[string]string{
		"ppt/slides/slide1.xml":            "<p:sld/>",
		"ppt/slides/slide2.xml":            "<p:sld/>",
		"ppt/slides/slide3.xml":            "<p:sld/>",
		"ppt/slides/_rels/slide1.xml.rels": "<Relationships/>",
	})

	pages, err := FileCounter{}.CountPages(path, KindPPTX)
	assert.NoError(t, err)
	assert.Equal(t, 3, pages)
}

func TestFileCounter_CorruptArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.docx")
	require.NoError(t, os.WriteFile(path, []byte("this is not a zip archive"), 0o644))

	_, err := FileCounter{}.CountPages(path, KindDOCX)
	assert.ErrorIs(t, err, ErrUnreadable)
}

func TestFileCounter_CorruptPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 garbage"), 0o644))

	_, err := FileCounter{}.CountPages(path, KindPDF)
	assert.ErrorIs(t, err, ErrUnreadable)
}

func TestFileCounter_MissingFile(t *testing.T) {
	_, err := FileCounter{}.CountPages(filepath.Join(t.TempDir(), "nope.docx"), KindDOCX)
	assert.ErrorIs(t, err, ErrUnreadable)
}

// writeOOXML builds a minimal OOXML archive in a temp dir
func writeOOXML(t *testing.T, name string, entries map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for entryName, content := range entries {
		entry, err := w.Create(entryName)
		require.NoError(t, err)
		_, err = entry.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return path
}

func appXML(pages, slides int) string {
	return fmt.Sprintf(
		`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`+
			`<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties">`+
			`<Pages>%d</Pages><Slides>%d</Slides></Properties>`,
		pages, slides,
	)
}
