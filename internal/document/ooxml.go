package document

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"regexp"
	"strings"
)

// appProperties is the OOXML extended-properties part (docProps/app.xml),
// which carries the page count for word documents and the slide count for
// presentations.
type appProperties struct {
	Pages  int `xml:"Pages"`
	Slides int `xml:"Slides"`
}

var slideEntry = regexp.MustCompile(`^ppt/slides/slide[0-9]+\.xml$`)

func countOOXML(path string, kind Kind) (int, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer archive.Close()

	if props, err := readAppProperties(&archive.Reader); err == nil {
		switch kind {
		case KindDOCX:
			if props.Pages > 0 {
				return props.Pages, nil
			}
		case KindPPTX:
			if props.Slides > 0 {
				return props.Slides, nil
			}
		}
	}

	// Presentations keep one archive entry per slide, so the count survives
	// a missing or stale properties part. Word documents have no such
	// fallback: page count only exists in app.xml.
	if kind == KindPPTX {
		n := 0
		for _, f := range archive.File {
			if slideEntry.MatchString(f.Name) {
				n++
			}
		}
		if n > 0 {
			return n, nil
		}
	}

	return 0, ErrUnreadable
}

func readAppProperties(archive *zip.Reader) (*appProperties, error) {
	for _, f := range archive.File {
		if !strings.EqualFold(f.Name, "docProps/app.xml") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()

		var props appProperties
		if err := xml.NewDecoder(rc).Decode(&props); err != nil {
			return nil, err
		}
		return &props, nil
	}
	return nil, fmt.Errorf("app.xml not found")
}
