// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document reduces catalogue files to an ordered sequence of
// paragraph texts. DOCX documents yield one entry per body paragraph; plain
// text and Markdown files yield one entry per line.
package document

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned by Open for file extensions it cannot read.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// Source supplies the paragraph texts of a document in order.
type Source interface {
	Paragraphs() ([]string, error)
}

// Format identifies a readable document format.
type Format string

const (
	FormatUnknown Format = ""
	FormatDOCX    Format = "docx"
	FormatText    Format = "text"
)

// Detect determines the document format from the file extension.
func Detect(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		return FormatDOCX
	case ".txt", ".md", ".markdown":
		return FormatText
	default:
		return FormatUnknown
	}
}

// Open reads the document at path using the reader for its format.
func Open(ctx context.Context, path string) (Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch Detect(path) {
	case FormatDOCX:
		r, err := OpenDocx(path)
		if err != nil {
			return nil, err
		}
		return r, nil
	case FormatText:
		r, err := OpenText(path)
		if err != nil {
			return nil, err
		}
		return r, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
}
