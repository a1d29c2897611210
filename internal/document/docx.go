// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	// nsW is the WordprocessingML main namespace.
	nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

	contentTypesPart = "[Content_Types].xml"
	documentPart     = "word/document.xml"
)

// ErrMissingPart is returned when a DOCX archive lacks a required part.
var ErrMissingPart = errors.New("missing required part")

// DocxReader holds the body paragraphs of a DOCX document.
type DocxReader struct {
	paragraphs []string
}

// OpenDocx reads the DOCX file at path.
func OpenDocx(path string) (*DocxReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	return ReadDocx(f, info.Size())
}

// ReadDocx reads a DOCX archive of the given size from r.
func ReadDocx(r io.ReaderAt, size int64) (*DocxReader, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	parts := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		parts[f.Name] = f
	}
	for _, name := range []string{contentTypesPart, documentPart} {
		if parts[name] == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingPart, name)
		}
	}

	rc, err := parts[documentPart].Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", documentPart, err)
	}
	defer rc.Close()

	paragraphs, err := parseBodyParagraphs(rc)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", documentPart, err)
	}
	return &DocxReader{paragraphs: paragraphs}, nil
}

// Paragraphs returns the text of each body paragraph in document order.
func (r *DocxReader) Paragraphs() ([]string, error) {
	out := make([]string, len(r.paragraphs))
	copy(out, r.paragraphs)
	return out, nil
}

// parseBodyParagraphs streams document.xml and returns the text of every
// <w:p> that is a direct child of <w:body>. Paragraphs inside tables,
// content controls, and text boxes are not body paragraphs and are skipped.
//
// Text comes from the runs of the paragraph, including runs wrapped in a
// hyperlink: <w:t> contributes its characters, <w:tab> and <w:ptab> a tab,
// <w:br> (text wrapping only) and <w:cr> a newline, <w:noBreakHyphen> a hyphen.
func parseBodyParagraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		paragraphs []string
		stack      []string
		para       strings.Builder
		paraDepth  = -1 // stack index of the open body paragraph
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := localName(t.Name)
			if name == "p" && paraDepth < 0 && len(stack) > 0 && stack[len(stack)-1] == "body" {
				paraDepth = len(stack)
				para.Reset()
			}
			stack = append(stack, name)

			if paraDepth < 0 {
				continue
			}
			switch runChild(stack, paraDepth) {
			case "tab", "ptab":
				para.WriteByte('\t')
			case "cr":
				para.WriteByte('\n')
			case "br":
				if isTextWrappingBreak(t) {
					para.WriteByte('\n')
				}
			case "noBreakHyphen":
				para.WriteByte('-')
			}

		case xml.EndElement:
			if len(stack) == 0 {
				continue
			}
			if paraDepth >= 0 && len(stack)-1 == paraDepth {
				paragraphs = append(paragraphs, para.String())
				paraDepth = -1
			}
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if paraDepth >= 0 && runChild(stack, paraDepth) == "t" {
				para.Write(t)
			}
		}
	}

	return paragraphs, nil
}

// localName returns the local name of a WordprocessingML element, or "" for
// elements in other namespaces.
func localName(n xml.Name) string {
	if n.Space != nsW {
		return ""
	}
	return n.Local
}

// runChild returns the name of the innermost open element when it is a
// direct child of a run belonging to the paragraph at paraDepth, and ""
// otherwise.
func runChild(stack []string, paraDepth int) string {
	rel := stack[paraDepth+1:]
	switch {
	case len(rel) == 2 && rel[0] == "r":
		return rel[1]
	case len(rel) == 3 && rel[0] == "hyperlink" && rel[1] == "r":
		return rel[2]
	default:
		return ""
	}
}

// isTextWrappingBreak reports whether a <w:br> is a line break rather than a
// page or column break.
func isTextWrappingBreak(se xml.StartElement) bool {
	for _, a := range se.Attr {
		if a.Name.Space == nsW && a.Name.Local == "type" {
			return a.Value == "" || a.Value == "textWrapping"
		}
	}
	return true
}
