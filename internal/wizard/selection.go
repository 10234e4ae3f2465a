// Package wizard implements the character-selection state for the story
// creation wizard. A Selection tracks which characters are attached to the
// story being composed, across three provenances: the owner's children,
// reusable saved characters, and one-off characters invented for this story
// only. Membership is always keyed by provenance identifier, never by
// name or description content.
package wizard

import (
	"github.com/storynest/storynest-api/internal/entities/story"
	"github.com/storynest/storynest-api/internal/errors"
	"github.com/storynest/storynest-api/internal/pkg/idgen"
)

// SelectionConfig holds the dependencies for a Selection
type SelectionConfig struct {
	// IDGenerator mints identifiers for one-off characters. Generated IDs
	// must be unique for the lifetime of the session.
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *SelectionConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Selection is the working set of characters for one wizard session. It is
// created fresh per session, mutated synchronously by the active screen's
// event handlers, and discarded when the session ends. It is not safe for
// concurrent use; the wizard has exactly one writer at a time.
type Selection struct {
	idGen    idgen.Generator
	selected []*story.Character
	oneOffs  []*story.Character
	mode     story.Mode
}

// NewSelection creates an empty Selection in surprise mode
func NewSelection(cfg *SelectionConfig) (*Selection, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Selection{
		idGen: cfg.IDGenerator,
		mode:  story.ModeSurprise,
	}, nil
}

// Initialize seeds the selection. It is a full-state replace: calling it
// twice discards the prior state.
//
// When characters is non-empty (re-opening a draft) it becomes the selection
// verbatim, with a fresh ID backfilled onto any one-off entry that lacks one,
// and the mode is forced to custom. Otherwise selectedChildIDs are resolved
// against children; IDs with no match are dropped silently, since a child
// may have been deleted after being picked. The mode ends up custom exactly
// when the resulting selection is non-empty.
func (s *Selection) Initialize(characters []*story.Character, selectedChildIDs []string, children []*story.Child) {
	s.selected = nil
	s.oneOffs = nil

	if len(characters) > 0 {
		for _, c := range characters {
			entry := cloneCharacter(c)
			if entry.IsOneOff && entry.ID == "" {
				// Backfill for legacy or partial draft data.
				entry.ID = s.idGen.Generate()
			}
			s.selected = append(s.selected, entry)
			if entry.IsOneOff {
				s.oneOffs = append(s.oneOffs, entry)
			}
		}
		s.mode = story.ModeCustom
		return
	}

	byID := make(map[string]*story.Child, len(children))
	for _, child := range children {
		byID[child.ID] = child
	}
	for _, id := range selectedChildIDs {
		child, ok := byID[id]
		if !ok {
			continue
		}
		s.selected = append(s.selected, childCharacter(child))
	}

	if len(s.selected) > 0 {
		s.mode = story.ModeCustom
	} else {
		s.mode = story.ModeSurprise
	}
}

// SetMode switches the story mode. The selection is never mutated here, so
// switching to surprise and back restores exactly the prior selection.
func (s *Selection) SetMode(mode story.Mode) {
	s.mode = mode
}

// Mode returns the current story mode
func (s *Selection) Mode() story.Mode {
	return s.mode
}

// Selected returns the insertion-ordered selection list
func (s *Selection) Selected() []*story.Character {
	return append([]*story.Character(nil), s.selected...)
}

// OneOffs returns the one-off roster in insertion order. The wizard UI
// addresses one-off characters by position in this list.
func (s *Selection) OneOffs() []*story.Character {
	return append([]*story.Character(nil), s.oneOffs...)
}

// ToggleChild removes the child's entry when present, otherwise appends a
// child-backed character built from the child's current name. Repeated calls
// alternate between the two states.
func (s *Selection) ToggleChild(child *story.Child) {
	if child == nil {
		return
	}
	if s.removeSelectedByKey(child.ID) {
		return
	}
	s.selected = append(s.selected, childCharacter(child))
}

// ToggleSavedCharacter removes the saved character's entry when present,
// otherwise appends a snapshot of it. Membership is decided by the saved
// character's stable ID: two saved characters with identical names but
// different IDs stay distinct, and editing a description never changes
// whether the character is selected.
func (s *Selection) ToggleSavedCharacter(sc *story.SavedCharacter) {
	if sc == nil {
		return
	}
	if s.removeSelectedByKey(sc.ID) {
		return
	}
	s.selected = append(s.selected, &story.Character{
		Name:             sc.Name,
		Description:      sc.Description,
		Appearance:       sc.Appearance,
		SavedCharacterID: sc.ID,
	})
}

// AddOneOff assigns the character a freshly generated ID, marks it one-off,
// and appends it to both the roster and the selection. Adding a bespoke
// character only makes sense in custom mode, so the mode is forced there.
// Returns the stored entry.
func (s *Selection) AddOneOff(c *story.Character) *story.Character {
	entry := cloneCharacter(c)
	entry.ID = s.idGen.Generate()
	entry.IsOneOff = true
	entry.IsChild = false
	entry.ChildID = ""
	entry.SavedCharacterID = ""

	s.oneOffs = append(s.oneOffs, entry)
	s.selected = append(s.selected, entry)
	s.mode = story.ModeCustom
	return entry
}

// UpdateOneOff replaces the editable fields of the one-off at index,
// preserving its generated ID so selection membership survives the edit.
// The matching selection entry is located by ID, not position: the two
// lists stop being parallel once removals have happened. Returns false
// without mutating anything when index is out of range.
func (s *Selection) UpdateOneOff(index int, c *story.Character) bool {
	if index < 0 || index >= len(s.oneOffs) || c == nil {
		return false
	}

	existing := s.oneOffs[index]
	updated := cloneCharacter(c)
	updated.ID = existing.ID
	updated.IsOneOff = true
	updated.IsChild = false
	updated.ChildID = ""
	updated.SavedCharacterID = ""

	s.oneOffs[index] = updated
	for i, sel := range s.selected {
		if sel.SameIdentity(updated) {
			s.selected[i] = updated
			break
		}
	}
	return true
}

// RemoveOneOff removes the one-off at index from the roster and the entry
// with the matching ID from the selection. Returns false without mutating
// anything when index is out of range.
func (s *Selection) RemoveOneOff(index int) bool {
	if index < 0 || index >= len(s.oneOffs) {
		return false
	}

	removed := s.oneOffs[index]
	s.oneOffs = append(s.oneOffs[:index], s.oneOffs[index+1:]...)
	s.removeSelectedByKey(removed.ProvenanceKey())
	return true
}

// IsChildSelected reports whether a child-backed entry for childID exists
func (s *Selection) IsChildSelected(childID string) bool {
	for _, c := range s.selected {
		if c.IsChild && c.ChildID == childID {
			return true
		}
	}
	return false
}

// IsSavedCharacterSelected reports whether the saved character is selected,
// by ID only
func (s *Selection) IsSavedCharacterSelected(sc *story.SavedCharacter) bool {
	if sc == nil {
		return false
	}
	for _, c := range s.selected {
		if c.SavedCharacterID == sc.ID {
			return true
		}
	}
	return false
}

// IsOneOffSelected reports whether the one-off character is selected, by its
// generated ID
func (s *Selection) IsOneOffSelected(c *story.Character) bool {
	if c == nil || c.ID == "" {
		return false
	}
	for _, sel := range s.selected {
		if sel.IsOneOff && sel.ID == c.ID {
			return true
		}
	}
	return false
}

// CharactersForStory returns the character list to submit with the story:
// empty in surprise mode regardless of the selection (the list is kept for a
// possible switch back to custom, but must never leak into a surprise
// story), the selection verbatim in custom mode.
func (s *Selection) CharactersForStory() []*story.Character {
	if s.mode == story.ModeSurprise {
		return []*story.Character{}
	}
	return append([]*story.Character(nil), s.selected...)
}

// Reset returns the selection to its initial empty, surprise-mode state.
// Safe to call on an already-empty selection.
func (s *Selection) Reset() {
	s.selected = nil
	s.oneOffs = nil
	s.mode = story.ModeSurprise
}

// Restore replays a persisted session into the selection, replacing any
// prior state. Entries present in the session are trusted as-is; the one-off
// roster keeps pointer identity with the selection list so in-place updates
// stay joined by ID.
func (s *Selection) Restore(session *story.WizardSession) {
	s.selected = nil
	s.oneOffs = nil
	s.mode = story.ModeSurprise
	if session == nil {
		return
	}

	if session.Mode != "" {
		s.mode = session.Mode
	}
	for _, c := range session.SelectedCharacters {
		entry := cloneCharacter(c)
		if entry.IsOneOff && entry.ID == "" {
			entry.ID = s.idGen.Generate()
		}
		s.selected = append(s.selected, entry)
		if entry.IsOneOff {
			s.oneOffs = append(s.oneOffs, entry)
		}
	}
}

// Snapshot writes the selection state onto a session for persistence
func (s *Selection) Snapshot(session *story.WizardSession) {
	if session == nil {
		return
	}
	session.Mode = s.mode
	session.SelectedCharacters = s.Selected()
	session.OneOffCharacters = s.OneOffs()
}

// removeSelectedByKey removes the first selection entry whose provenance key
// matches, preserving the order of the rest. Returns whether a removal
// happened.
func (s *Selection) removeSelectedByKey(key string) bool {
	if key == "" {
		return false
	}
	for i, c := range s.selected {
		if c.ProvenanceKey() == key {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			return true
		}
	}
	return false
}

func childCharacter(child *story.Child) *story.Character {
	return &story.Character{
		Name:    child.Name,
		IsChild: true,
		ChildID: child.ID,
	}
}

func cloneCharacter(c *story.Character) *story.Character {
	if c == nil {
		return &story.Character{}
	}
	clone := *c
	return &clone
}
