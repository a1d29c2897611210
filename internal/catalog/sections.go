// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/pdiddy/travel-catalog/pkg/types"
)

// headerToken opens the data rows of a section. Compared case-folded.
const headerToken = "cidades"

// Title pairs a section title, exactly as it appears in the catalogue, with
// its section key.
type Title struct {
	Text string           `json:"text" yaml:"text"`
	Key  types.SectionKey `json:"key" yaml:"key"`
}

// titles is the fixed title table, in catalogue order. The decorative glyphs
// are part of the title and must match byte for byte.
var titles = []Title{
	{Text: "\U0001F334 Destinos para Cidades Praianas", Key: types.SectionPraias},
	{Text: "\U0001F3D9\uFE0F Destinos para Cidades Capitais", Key: types.SectionCapitais},
	{Text: "\U0001F304 Destinos para Cidades Interiorana", Key: types.SectionInterior},
	{Text: "\u2708\uFE0F Pacotes de Avião", Key: types.SectionAviao},
	{Text: "\U0001F68C Pacotes de Ônibus", Key: types.SectionOnibus},
	{Text: "\U0001F6A2 Pacotes de Navio", Key: types.SectionNavio},
}

var titleIndex = func() map[string]types.SectionKey {
	m := make(map[string]types.SectionKey, len(titles))
	for _, t := range titles {
		m[t.Text] = t.Key
	}
	return m
}()

// Titles returns a copy of the recognised section titles in catalogue order.
func Titles() []Title {
	out := make([]Title, len(titles))
	copy(out, titles)
	return out
}

// Lookup returns the section key for an exact title match.
func Lookup(text string) (types.SectionKey, bool) {
	k, ok := titleIndex[text]
	return k, ok
}

// TitleFor returns the catalogue title of a section key, or "" if unknown.
func TitleFor(key types.SectionKey) string {
	for _, t := range titles {
		if t.Key == key {
			return t.Text
		}
	}
	return ""
}

// isHeader reports whether line opens the data rows of a section.
func isHeader(line string) bool {
	return strings.HasPrefix(cases.Fold().String(line), headerToken)
}
