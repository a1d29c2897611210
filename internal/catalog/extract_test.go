// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/travel-catalog/pkg/types"
)

var (
	titlePraias   = TitleFor(types.SectionPraias)
	titleCapitais = TitleFor(types.SectionCapitais)
	titleInterior = TitleFor(types.SectionInterior)
	titleAviao    = TitleFor(types.SectionAviao)
	titleOnibus   = TitleFor(types.SectionOnibus)
	titleNavio    = TitleFor(types.SectionNavio)
)

// fakeSource implements ParagraphSource for testing.
type fakeSource struct {
	paragraphs []string
	err        error
}

func (f *fakeSource) Paragraphs() ([]string, error) {
	return f.paragraphs, f.err
}

func TestTitleTable(t *testing.T) {
	assert.Equal(t, "\U0001F334 Destinos para Cidades Praianas", titlePraias)
	assert.Equal(t, "\U0001F3D9\uFE0F Destinos para Cidades Capitais", titleCapitais)
	assert.Equal(t, "\U0001F304 Destinos para Cidades Interiorana", titleInterior)
	assert.Equal(t, "\u2708\uFE0F Pacotes de Avião", titleAviao)
	assert.Equal(t, "\U0001F68C Pacotes de Ônibus", titleOnibus)
	assert.Equal(t, "\U0001F6A2 Pacotes de Navio", titleNavio)

	got := Titles()
	require.Len(t, got, len(types.AllSections))
	for i, key := range types.AllSections {
		assert.Equal(t, key, got[i].Key)
	}

	// Titles returns a copy.
	got[0].Text = "changed"
	assert.Equal(t, titlePraias, Titles()[0].Text)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   types.SectionKey
		wantOK bool
	}{
		{name: "exact title", text: titleNavio, want: types.SectionNavio, wantOK: true},
		{name: "missing glyph", text: "Pacotes de Navio", wantOK: false},
		{name: "different case", text: "\U0001F6A2 pacotes de navio", wantOK: false},
		{name: "capitais without variation selector", text: "\U0001F3D9 Destinos para Cidades Capitais", wantOK: false},
		{name: "untrimmed", text: " " + titleNavio, wantOK: false},
		{name: "empty", text: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsHeader(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"Cidades:", true},
		{"cidades disponíveis", true},
		{"CIDADES", true},
		{"Cidades", true},
		{"Cidade:", false},
		{" Cidades:", false},
		{"Lista de Cidades:", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, isHeader(tt.line))
		})
	}
}

func TestStep(t *testing.T) {
	idle := State{}
	awaiting := State{Phase: PhaseAwaitingHeader, Section: types.SectionPraias}
	collecting := State{Phase: PhaseCollecting, Section: types.SectionPraias}

	tests := []struct {
		name       string
		from       State
		line       string
		wantState  State
		wantAction Action
	}{
		{"idle ignores text", idle, "Recife", idle, ActionSkip},
		{"idle ignores header", idle, "Cidades:", idle, ActionSkip},
		{"idle ignores blank", idle, "", idle, ActionSkip},
		{"idle opens section", idle, titlePraias, awaiting, ActionTitle},
		{"awaiting skips preamble", awaiting, "Conheça nossas praias", awaiting, ActionSkip},
		{"awaiting skips blank", awaiting, "", awaiting, ActionSkip},
		{"awaiting starts on header", awaiting, "Cidades:", collecting, ActionHeader},
		{"awaiting retitles", awaiting, titleNavio, State{Phase: PhaseAwaitingHeader, Section: types.SectionNavio}, ActionTitle},
		{"collecting records city", collecting, "Natal", collecting, ActionCollect},
		{"collecting records header-like line", collecting, "Cidades extras", collecting, ActionCollect},
		{"collecting ends on blank", collecting, "", idle, ActionEnd},
		{"collecting retitles", collecting, titleCapitais, State{Phase: PhaseAwaitingHeader, Section: types.SectionCapitais}, ActionTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, action := Step(tt.from, tt.line)
			assert.Equal(t, tt.wantState, got)
			assert.Equal(t, tt.wantAction, action)
		})
	}
}

func TestExtractEmptyInput(t *testing.T) {
	for _, input := range [][]string{nil, {}} {
		got := Extract(input)
		require.Len(t, got, len(types.AllSections))
		for _, key := range types.AllSections {
			names, ok := got[key]
			require.True(t, ok, "missing key %s", key)
			assert.NotNil(t, names)
			assert.Empty(t, names)
		}
	}
}

func TestExtractBoundaryScenario(t *testing.T) {
	input := []string{
		"\U0001F334 Destinos para Cidades Praianas",
		"Cidades:",
		"Recife",
		"Natal",
		"",
		"\U0001F3D9\uFE0F Destinos para Cidades Capitais",
		"Cidades:",
		"Recife",
		"Brasília",
	}

	got := Extract(input)

	assert.Equal(t, []string{"Recife", "Natal"}, got[types.SectionPraias])
	assert.Equal(t, []string{"Recife", "Brasília"}, got[types.SectionCapitais])
	assert.Empty(t, got[types.SectionInterior])
	assert.Empty(t, got[types.SectionAviao])
	assert.Empty(t, got[types.SectionOnibus])
	assert.Empty(t, got[types.SectionNavio])
}

func TestExtractNoHeader(t *testing.T) {
	input := []string{
		titleInterior,
		titleAviao,
		"Cidades:",
		"Campinas",
	}

	got := Extract(input)

	assert.Empty(t, got[types.SectionInterior])
	assert.Equal(t, []string{"Campinas"}, got[types.SectionAviao])
}

func TestExtractTitleAtEndOfInput(t *testing.T) {
	got := Extract([]string{titleNavio, "Rotas disponíveis"})
	assert.Empty(t, got[types.SectionNavio])
}

func TestExtractMidCollectionRetitle(t *testing.T) {
	input := []string{
		titlePraias,
		"Cidades:",
		"Salvador",
		"Maceió",
		titleCapitais,
		"Cidades:",
		"Salvador",
		"São Paulo",
		titleOnibus,
		"Cidades com saída diária:",
		"Maceió",
		"Salvador",
	}

	got := Extract(input)

	assert.Equal(t, []string{"Salvador", "Maceió"}, got[types.SectionPraias])
	assert.Equal(t, []string{"Salvador", "São Paulo"}, got[types.SectionCapitais])
	assert.Equal(t, []string{"Maceió", "Salvador"}, got[types.SectionOnibus])
}

func TestExtractRetitleStillNeedsHeader(t *testing.T) {
	input := []string{
		titlePraias,
		"Cidades:",
		"Salvador",
		titleCapitais,
		"Brasília",
		"Cidades:",
		"Curitiba",
	}

	got := Extract(input)

	assert.Equal(t, []string{"Salvador"}, got[types.SectionPraias])
	assert.Equal(t, []string{"Curitiba"}, got[types.SectionCapitais])
}

func TestExtractSkipsPreambleAndTrims(t *testing.T) {
	input := []string{
		"Catálogo de Destinos - PyTravel",
		"Texto introdutório que não pertence a nenhuma seção.",
		"  " + titleNavio + "\t",
		"Roteiros de cruzeiro pela costa brasileira.",
		"",
		"Confira abaixo:",
		"cidades atendidas:",
		"  Santos  ",
		"Rio de Janeiro",
		"Santos",
		"   ",
		"Florianópolis",
	}

	got := Extract(input)

	assert.Equal(t, []string{"Santos", "Rio de Janeiro", "Santos"}, got[types.SectionNavio])
	assert.Equal(t, 3, got.Total())
}

func TestExtractIsIdempotent(t *testing.T) {
	input := []string{
		titlePraias, "Cidades:", "Natal", "Recife", "",
		titleAviao, "Cidades:", "Manaus",
	}

	first := Extract(input)
	second := Extract(input)

	assert.Equal(t, first, second)

	// Results from one call are not shared with the next.
	first[types.SectionPraias][0] = "changed"
	assert.Equal(t, "Natal", Extract(input)[types.SectionPraias][0])
}

func TestExtractPreservesOrder(t *testing.T) {
	cities := []string{"Zé Doca", "Aracaju", "Macapá", "Aracaju", "Belém"}
	input := append([]string{titleInterior, "Cidades:"}, cities...)

	got := Extract(input)

	assert.Equal(t, cities, got[types.SectionInterior])
}

func TestExtractFrom(t *testing.T) {
	t.Run("reads from source", func(t *testing.T) {
		src := &fakeSource{paragraphs: []string{titleAviao, "Cidades:", "Manaus"}}
		got, err := ExtractFrom(src)
		require.NoError(t, err)
		assert.Equal(t, []string{"Manaus"}, got[types.SectionAviao])
	})

	t.Run("wraps source error", func(t *testing.T) {
		sentinel := errors.New("corrupt archive")
		_, err := ExtractFrom(&fakeSource{err: sentinel})
		require.Error(t, err)
		assert.ErrorIs(t, err, sentinel)
		assert.Contains(t, err.Error(), "reading paragraphs")
	})
}

func TestTrace(t *testing.T) {
	input := []string{"Intro", titlePraias, "Cidades:", " Natal ", ""}

	got := Trace(input)

	require.Len(t, got, len(input))
	wantActions := []Action{ActionSkip, ActionTitle, ActionHeader, ActionCollect, ActionEnd}
	for i, tr := range got {
		assert.Equal(t, i, tr.Index)
		assert.Equal(t, wantActions[i], tr.Action, "line %d", i)
	}
	assert.Equal(t, "Natal", got[3].Line)
	assert.Equal(t, "collecting(praias)", got[3].From.String())
	assert.Equal(t, "idle", got[4].To.String())
}

func TestPhaseAndActionStrings(t *testing.T) {
	assert.Equal(t, "awaiting-header", PhaseAwaitingHeader.String())
	assert.Equal(t, "phase(9)", Phase(9).String())
	assert.Equal(t, "collect", ActionCollect.String())
	assert.Equal(t, "action(9)", Action(9).String())
}
