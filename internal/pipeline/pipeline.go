// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one catalogue extraction end to end: read the
// document, extract the section lists, correlate them, and time each stage.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pdiddy/travel-catalog/internal/catalog"
	"github.com/pdiddy/travel-catalog/internal/correlate"
	"github.com/pdiddy/travel-catalog/internal/document"
	"github.com/pdiddy/travel-catalog/pkg/types"
)

// Opener opens a document and returns its paragraph source.
type Opener func(ctx context.Context, path string) (document.Source, error)

// Options configures a run. Zero values select the defaults.
type Options struct {
	// Logger receives debug and info entries. Defaults to logrus.StandardLogger().
	Logger *logrus.Logger

	// Trace, when set, receives one line per paragraph describing the
	// extractor's state transition.
	Trace io.Writer

	// Open reads the document. Defaults to document.Open.
	Open Opener

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
	if o.Open == nil {
		o.Open = document.Open
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Run extracts and correlates the catalogue at path.
func Run(ctx context.Context, path string, opts Options) (types.CatalogReport, error) {
	opts = opts.withDefaults()
	runID := uuid.NewString()
	log := opts.Logger.WithFields(logrus.Fields{
		"run_id":   runID,
		"document": path,
	})

	start := opts.Now()

	src, err := opts.Open(ctx, path)
	if err != nil {
		return types.CatalogReport{}, fmt.Errorf("opening document: %w", err)
	}
	sections, err := catalog.ExtractFrom(src)
	if err != nil {
		return types.CatalogReport{}, fmt.Errorf("extracting %s: %w", path, err)
	}
	extracted := opts.Now()

	for _, key := range types.AllSections {
		log.WithFields(logrus.Fields{
			"section": key,
			"items":   len(sections[key]),
		}).Debug("section extracted")
	}
	if sections.Total() == 0 {
		log.Warn("no section data found; check that the section titles match exactly")
	}

	derived := correlate.Correlate(sections)
	correlated := opts.Now()

	for _, key := range types.AllDerived {
		log.WithFields(logrus.Fields{
			"category": key,
			"items":    len(derived[key]),
		}).Debug("category derived")
	}

	rep := types.CatalogReport{
		RunID:       runID,
		Document:    path,
		ExtractedAt: correlated.UTC(),
		Sections:    sections,
		Derived:     derived,
		Timings: types.Timings{
			Extraction:  extracted.Sub(start),
			Correlation: correlated.Sub(extracted),
			Total:       correlated.Sub(start),
		},
	}

	log.WithField("elapsed", rep.Timings.Total).Info("catalogue processed")

	if opts.Trace != nil {
		paragraphs, err := src.Paragraphs()
		if err != nil {
			return rep, fmt.Errorf("tracing %s: %w", path, err)
		}
		writeTrace(opts.Trace, catalog.Trace(paragraphs))
	}

	return rep, nil
}

func writeTrace(w io.Writer, transitions []catalog.Transition) {
	for _, tr := range transitions {
		fmt.Fprintf(w, "%4d  %-8s %-28s -> %-28s %q\n",
			tr.Index+1, tr.Action, tr.From, tr.To, tr.Line)
	}
}
