// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders extraction results as a console report, YAML, or JSON.
package report

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/travel-catalog/pkg/types"
)

// Options controls text rendering.
type Options struct {
	// NoColor disables terminal styling.
	NoColor bool
}

// sectionLabels are the human-readable names of the base sections.
var sectionLabels = map[types.SectionKey]string{
	types.SectionPraias:   "Destinos para Cidades Praianas",
	types.SectionCapitais: "Destinos para Cidades Capitais",
	types.SectionInterior: "Destinos para Cidades Interiorana",
	types.SectionAviao:    "Pacotes de Avião",
	types.SectionOnibus:   "Pacotes de Ônibus",
	types.SectionNavio:    "Pacotes de Navio",
}

// derivedLabel describes a derived category. Empty is printed instead of an
// empty list when set.
type derivedLabel struct {
	Title string
	Empty string
}

var derivedLabels = map[types.DerivedKey]derivedLabel{
	types.DerivedCapitaisPraianas: {Title: "Capitais que são cidades praianas"},
	types.DerivedPraiasOnibus:     {Title: "Destinos de praias com pacotes de ônibus"},
	types.DerivedInteriorAviao: {
		Title: "Cidades do interior com pacote de avião",
		Empty: "Nenhuma cidade do interior possui pacote de avião.",
	},
	types.DerivedCapitaisNavio: {
		Title: "Cidades com rotas de navio que também são capitais",
		Empty: "Nenhuma capital possui rota de navio listada.",
	},
}

// SectionLabel returns the display name of a base section.
func SectionLabel(key types.SectionKey) string {
	if l, ok := sectionLabels[key]; ok {
		return l
	}
	return string(key)
}

// DerivedLabel returns the display name of a derived category.
func DerivedLabel(key types.DerivedKey) string {
	if l, ok := derivedLabels[key]; ok {
		return l.Title
	}
	return string(key)
}

type styles struct {
	banner lipgloss.Style
	title  lipgloss.Style
	empty  lipgloss.Style
	timing lipgloss.Style
}

func newStyles(w io.Writer, opts Options) styles {
	r := lipgloss.NewRenderer(w)
	if opts.NoColor {
		plain := r.NewStyle()
		return styles{banner: plain, title: plain, empty: plain, timing: plain}
	}
	return styles{
		banner: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00AFFF")),
		title:  r.NewStyle().Bold(true),
		empty:  r.NewStyle().Italic(true).Foreground(lipgloss.Color("#888888")),
		timing: r.NewStyle().Foreground(lipgloss.Color("#888888")),
	}
}

// Text writes the full console report: base sections, derived categories,
// and stage timings.
func Text(w io.Writer, rep types.CatalogReport, opts Options) error {
	bw := bufio.NewWriter(w)
	st := newStyles(w, opts)
	writeSections(bw, st, rep.Sections)
	writeDerived(bw, st, rep.Derived)
	writeTimings(bw, st, rep.Timings)
	return bw.Flush()
}

// Sections writes only the base section lists.
func Sections(w io.Writer, lists types.SectionLists, opts Options) error {
	bw := bufio.NewWriter(w)
	writeSections(bw, newStyles(w, opts), lists)
	return bw.Flush()
}

// Derived writes only the derived categories.
func Derived(w io.Writer, lists types.DerivedLists, opts Options) error {
	bw := bufio.NewWriter(w)
	writeDerived(bw, newStyles(w, opts), lists)
	return bw.Flush()
}

func writeSections(w io.Writer, st styles, lists types.SectionLists) {
	fmt.Fprintf(w, "\n%s\n", st.banner.Render("--- Listas Principais Extraídas ---"))
	for i, key := range types.AllSections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		names := lists[key]
		heading := fmt.Sprintf("%d. %s (%d itens):", i+1, SectionLabel(key), len(names))
		fmt.Fprintln(w, st.title.Render(heading))
		writeItems(w, names)
	}
}

func writeDerived(w io.Writer, st styles, lists types.DerivedLists) {
	fmt.Fprintf(w, "\n%s\n", st.banner.Render("--- Novas Categorias Geradas ---"))
	for i, key := range types.AllDerived {
		if i > 0 {
			fmt.Fprintln(w)
		}
		names := lists[key]
		heading := fmt.Sprintf("• %s (%d):", DerivedLabel(key), len(names))
		fmt.Fprintln(w, st.title.Render(heading))
		if len(names) == 0 && derivedLabels[key].Empty != "" {
			fmt.Fprintf(w, "   %s\n", st.empty.Render(derivedLabels[key].Empty))
			continue
		}
		writeItems(w, names)
	}
}

func writeTimings(w io.Writer, st styles, t types.Timings) {
	fmt.Fprintf(w, "\n%s\n", st.banner.Render("--- Tempos de Execução (em segundos) ---"))
	fmt.Fprintln(w, st.timing.Render("Tempo para extração das listas principais: "+seconds(t.Extraction)))
	fmt.Fprintln(w, st.timing.Render("Tempo para geração das novas categorias: "+seconds(t.Correlation)))
	fmt.Fprintln(w, st.timing.Render("Tempo total de execução: "+seconds(t.Total)))
	fmt.Fprintln(w)
}

func writeItems(w io.Writer, names []string) {
	for _, n := range names {
		fmt.Fprintf(w, "   - %s\n", n)
	}
}

// seconds formats d as seconds with four decimals, e.g. "0.0012s".
func seconds(d time.Duration) string {
	return fmt.Sprintf("%.4fs", d.Seconds())
}
