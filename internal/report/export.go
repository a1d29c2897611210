// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/travel-catalog/pkg/types"
)

// ErrUnknownFormat is returned by Write for an unrecognised output format.
var ErrUnknownFormat = errors.New("unknown output format")

// Write renders rep in the requested format.
func Write(w io.Writer, format types.OutputFormat, rep types.CatalogReport, opts Options) error {
	switch format {
	case types.OutputText, "":
		return Text(w, rep, opts)
	case types.OutputYAML:
		return YAML(w, rep)
	case types.OutputJSON:
		return JSON(w, rep)
	default:
		return fmt.Errorf("%w %q: use text, yaml, or json", ErrUnknownFormat, format)
	}
}

// YAML writes v as a YAML document.
func YAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return nil
}

// sectionsDoc is the part of an exported report needed to recompute the
// derived categories.
type sectionsDoc struct {
	Sections types.SectionLists `json:"sections" yaml:"sections"`
}

// ReadSections loads the base section lists from a report previously written
// with YAML or JSON. Files ending in .json are decoded as JSON, everything
// else as YAML. Sections absent from the file come back as empty lists.
func ReadSections(path string) (types.SectionLists, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc sectionsDoc
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &doc)
	} else {
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	lists := types.NewSectionLists()
	for _, key := range types.AllSections {
		if names := doc.Sections[key]; names != nil {
			lists[key] = names
		}
	}
	return lists, nil
}
