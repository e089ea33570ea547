// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package handbook holds the static reference content of the quizdeck
// handbook and the section-visibility state machine that drives the
// viewer. The state and tree code here is pure: no I/O, no goroutines,
// no hidden globals. Loading the embedded bundle is the only operation
// that can fail, and it runs once before any viewer exists.
package handbook

// SectionID names one of the five handbook sections.
type SectionID string

const (
	SectionStructure SectionID = "structure"
	SectionSetup     SectionID = "setup"
	SectionPrompts   SectionID = "prompts"
	SectionAPI       SectionID = "api"
	SectionTesting   SectionID = "testing"
)

// sectionOrder is the canonical display order. The set is closed:
// nothing else in the codebase mints SectionIDs.
var sectionOrder = []SectionID{
	SectionStructure,
	SectionSetup,
	SectionPrompts,
	SectionAPI,
	SectionTesting,
}

// Sections returns the known section ids in display order.
func Sections() []SectionID {
	out := make([]SectionID, len(sectionOrder))
	copy(out, sectionOrder)
	return out
}

// KnownSection reports whether id names a handbook section.
func KnownSection(id SectionID) bool {
	for _, s := range sectionOrder {
		if s == id {
			return true
		}
	}
	return false
}

// State maps every known section to its expanded flag. Transitions
// return a fresh State and never touch the receiver, so callers can
// hold on to prior values. The key set is exactly the known sections,
// always.
type State map[SectionID]bool

// NewState returns the initial visibility: everything collapsed except
// structure, which starts open.
func NewState() State {
	s := make(State, len(sectionOrder))
	for _, id := range sectionOrder {
		s[id] = id == SectionStructure
	}
	return s
}

// Toggle flips one section and leaves every other entry untouched.
// Unknown ids are ignored and the receiver's value comes back
// unchanged; no new key is ever introduced.
func (s State) Toggle(id SectionID) State {
	if !KnownSection(id) {
		return s
	}
	next := make(State, len(s))
	for k, v := range s {
		next[k] = v
	}
	next[id] = !next[id]
	return next
}

// Expanded reports the flag for id; unknown ids read as collapsed.
func (s State) Expanded(id SectionID) bool {
	return s[id]
}
