// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// SectionKey identifies one of the six base sections of a destination catalogue.
type SectionKey string

const (
	SectionPraias   SectionKey = "praias"
	SectionCapitais SectionKey = "capitais"
	SectionInterior SectionKey = "interior"
	SectionAviao    SectionKey = "aviao"
	SectionOnibus   SectionKey = "onibus"
	SectionNavio    SectionKey = "navio"
)

// AllSections lists the base sections in the order they appear in the catalogue.
var AllSections = []SectionKey{
	SectionPraias,
	SectionCapitais,
	SectionInterior,
	SectionAviao,
	SectionOnibus,
	SectionNavio,
}

// DerivedKey identifies a category computed by intersecting two base sections.
type DerivedKey string

const (
	DerivedCapitaisPraianas DerivedKey = "capitais_praianas"
	DerivedPraiasOnibus     DerivedKey = "praias_onibus"
	DerivedInteriorAviao    DerivedKey = "interior_aviao"
	DerivedCapitaisNavio    DerivedKey = "capitais_navio"
)

// AllDerived lists the derived categories in report order.
var AllDerived = []DerivedKey{
	DerivedCapitaisPraianas,
	DerivedPraiasOnibus,
	DerivedInteriorAviao,
	DerivedCapitaisNavio,
}

// SectionLists maps every base section to its city names in document order.
// Duplicates are preserved.
type SectionLists map[SectionKey][]string

// NewSectionLists returns a SectionLists with all six keys mapped to empty lists.
func NewSectionLists() SectionLists {
	lists := make(SectionLists, len(AllSections))
	for _, k := range AllSections {
		lists[k] = []string{}
	}
	return lists
}

// Total returns the number of city entries across all sections.
func (l SectionLists) Total() int {
	n := 0
	for _, names := range l {
		n += len(names)
	}
	return n
}

// DerivedLists maps every derived category to its sorted, deduplicated city names.
type DerivedLists map[DerivedKey][]string

// NewDerivedLists returns a DerivedLists with all four keys mapped to empty lists.
func NewDerivedLists() DerivedLists {
	lists := make(DerivedLists, len(AllDerived))
	for _, k := range AllDerived {
		lists[k] = []string{}
	}
	return lists
}

// Timings records how long each pipeline stage took.
type Timings struct {
	// Extraction covers reading the document and running the extractor.
	Extraction time.Duration `json:"extraction" yaml:"extraction"`

	// Correlation covers computing the derived categories.
	Correlation time.Duration `json:"correlation" yaml:"correlation"`

	// Total covers the whole run, from opening the document to correlation.
	Total time.Duration `json:"total" yaml:"total"`
}

// CatalogReport is the full output of one extraction run.
type CatalogReport struct {
	// RunID uniquely identifies this run in logs and exports.
	RunID string `json:"run_id" yaml:"run_id"`

	// Document is the path of the source document.
	Document string `json:"document" yaml:"document"`

	// ExtractedAt is when the run finished.
	ExtractedAt time.Time `json:"extracted_at" yaml:"extracted_at"`

	// Sections holds the six base lists.
	Sections SectionLists `json:"sections" yaml:"sections"`

	// Derived holds the four intersection lists.
	Derived DerivedLists `json:"derived" yaml:"derived"`

	// Timings holds per-stage durations.
	Timings Timings `json:"timings" yaml:"timings"`
}
