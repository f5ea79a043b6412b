package document

import (
	"fmt"

	"github.com/ledongthuc/pdf"
)

// countPDF reads the PDF page tree. The parser panics on some malformed
// files, so the recover maps those to ErrUnreadable like any other parse
// failure.
func countPDF(path string) (pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = 0
			err = fmt.Errorf("%w: %v", ErrUnreadable, r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer f.Close()

	pages = reader.NumPage()
	if pages < 1 {
		return 0, ErrUnreadable
	}
	return pages, nil
}
