// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"fmt"
	"os"
	"strings"
)

// TextReader treats each line of a UTF-8 text file as one paragraph.
type TextReader struct {
	paragraphs []string
}

// OpenText reads the text file at path.
func OpenText(path string) (*TextReader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseText(string(data)), nil
}

// ParseText splits content into lines. A leading byte order mark is dropped,
// CRLF line endings are accepted, and a final newline does not produce an
// extra empty paragraph.
func ParseText(content string) *TextReader {
	content = strings.TrimPrefix(content, "\uFEFF")
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return &TextReader{paragraphs: []string{}}
	}
	return &TextReader{paragraphs: strings.Split(content, "\n")}
}

// Paragraphs returns the lines in file order.
func (r *TextReader) Paragraphs() ([]string, error) {
	out := make([]string, len(r.paragraphs))
	copy(out, r.paragraphs)
	return out, nil
}
