// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog partitions the paragraphs of a destination catalogue into
// the six base section lists.
//
// A section starts at its title line. Lines between the title and the first
// line beginning with "Cidades" are preamble and are skipped; the header line
// itself is not recorded. Every following non-blank line is a city name until
// a blank line or another title ends the section.
package catalog

import (
	"fmt"
	"strings"

	"github.com/pdiddy/travel-catalog/pkg/types"
)

// ParagraphSource supplies the paragraph texts of a document in order.
type ParagraphSource interface {
	Paragraphs() ([]string, error)
}

// Phase is the extractor's position relative to the current section.
type Phase int

const (
	// PhaseIdle means no section is open.
	PhaseIdle Phase = iota
	// PhaseAwaitingHeader means a title was seen and the "Cidades" header
	// has not been reached yet.
	PhaseAwaitingHeader
	// PhaseCollecting means each non-blank line is a city of the section.
	PhaseCollecting
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingHeader:
		return "awaiting-header"
	case PhaseCollecting:
		return "collecting"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is the complete extractor state between two lines. Section is empty
// when Phase is PhaseIdle.
type State struct {
	Phase   Phase
	Section types.SectionKey
}

// String renders the state as "phase" or "phase(section)".
func (s State) String() string {
	if s.Section == "" {
		return s.Phase.String()
	}
	return fmt.Sprintf("%s(%s)", s.Phase, s.Section)
}

// Action is what a single line did to the extraction.
type Action int

const (
	// ActionSkip means the line was ignored.
	ActionSkip Action = iota
	// ActionTitle means the line opened a section.
	ActionTitle
	// ActionHeader means the line started data collection.
	ActionHeader
	// ActionCollect means the line was recorded as a city.
	ActionCollect
	// ActionEnd means a blank line closed the section.
	ActionEnd
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionSkip:
		return "skip"
	case ActionTitle:
		return "title"
	case ActionHeader:
		return "header"
	case ActionCollect:
		return "collect"
	case ActionEnd:
		return "end"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Step applies one trimmed line to s and returns the next state along with
// what the line did. When the action is ActionCollect the line belongs to
// s.Section.
//
// The title test runs first in every phase, so a title always re-targets
// the extractor, even while it is waiting for a header.
func Step(s State, line string) (State, Action) {
	if key, ok := Lookup(line); ok {
		return State{Phase: PhaseAwaitingHeader, Section: key}, ActionTitle
	}

	switch s.Phase {
	case PhaseAwaitingHeader:
		if isHeader(line) {
			return State{Phase: PhaseCollecting, Section: s.Section}, ActionHeader
		}
		return s, ActionSkip
	case PhaseCollecting:
		if line == "" {
			return State{Phase: PhaseIdle}, ActionEnd
		}
		return s, ActionCollect
	default:
		return s, ActionSkip
	}
}

// Extract scans paragraphs once and returns the six section lists. All six
// keys are present in the result; sections that never reached a header are
// empty. Each paragraph is trimmed of surrounding whitespace before it is
// classified and recorded.
func Extract(paragraphs []string) types.SectionLists {
	lists := types.NewSectionLists()
	var s State
	for _, p := range paragraphs {
		line := strings.TrimSpace(p)
		next, action := Step(s, line)
		if action == ActionCollect {
			lists[s.Section] = append(lists[s.Section], line)
		}
		s = next
	}
	return lists
}

// ExtractFrom reads paragraphs from src and extracts the section lists.
func ExtractFrom(src ParagraphSource) (types.SectionLists, error) {
	paragraphs, err := src.Paragraphs()
	if err != nil {
		return nil, fmt.Errorf("reading paragraphs: %w", err)
	}
	return Extract(paragraphs), nil
}

// Transition records the effect of one paragraph during a traced extraction.
type Transition struct {
	Index  int
	Line   string
	From   State
	To     State
	Action Action
}

// Trace runs the same scan as Extract and returns one Transition per
// paragraph, for diagnosing documents whose sections come out empty.
func Trace(paragraphs []string) []Transition {
	out := make([]Transition, 0, len(paragraphs))
	var s State
	for i, p := range paragraphs {
		line := strings.TrimSpace(p)
		next, action := Step(s, line)
		out = append(out, Transition{Index: i, Line: line, From: s, To: next, Action: action})
		s = next
	}
	return out
}
