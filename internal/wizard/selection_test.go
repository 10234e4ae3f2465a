package wizard_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/storynest/storynest-api/internal/entities/story"
	"github.com/storynest/storynest-api/internal/pkg/idgen"
	"github.com/storynest/storynest-api/internal/wizard"
)

type SelectionTestSuite struct {
	suite.Suite
	selection *wizard.Selection
}

func (s *SelectionTestSuite) SetupTest() {
	selection, err := wizard.NewSelection(&wizard.SelectionConfig{
		IDGenerator: idgen.NewPrefixed("oneoff"),
	})
	s.Require().NoError(err)
	s.selection = selection
}

func (s *SelectionTestSuite) TestNewSelection_RequiresIDGenerator() {
	_, err := wizard.NewSelection(&wizard.SelectionConfig{})
	s.Error(err)
	s.Contains(err.Error(), "IDGenerator")
}

func (s *SelectionTestSuite) TestInitialize_FromChildIDs() {
	children := []*story.Child{
		{ID: "child1", Name: "Maya"},
		{ID: "child2", Name: "Theo"},
	}

	s.selection.Initialize(nil, []string{"child1"}, children)

	selected := s.selection.Selected()
	s.Require().Len(selected, 1)
	s.True(selected[0].IsChild)
	s.Equal("child1", selected[0].ChildID)
	s.Equal("Maya", selected[0].Name)
	s.Equal(story.ModeCustom, s.selection.Mode())
	s.Empty(s.selection.OneOffs())
}

func (s *SelectionTestSuite) TestInitialize_EmptyInputsYieldSurprise() {
	s.selection.Initialize(nil, nil, nil)

	s.Empty(s.selection.Selected())
	s.Equal(story.ModeSurprise, s.selection.Mode())
}

func (s *SelectionTestSuite) TestInitialize_DropsDeletedChildIDs() {
	children := []*story.Child{{ID: "child1", Name: "Maya"}}

	s.selection.Initialize(nil, []string{"child1", "deleted-child"}, children)

	s.Len(s.selection.Selected(), 1)
	s.Equal(story.ModeCustom, s.selection.Mode())
}

func (s *SelectionTestSuite) TestInitialize_DraftCharactersTakePrecedence() {
	draft := []*story.Character{
		{Name: "Pirate Pete", IsOneOff: true}, // legacy entry missing its ID
		{Name: "Maya", IsChild: true, ChildID: "child1"},
	}

	s.selection.Initialize(draft, []string{"child2"}, []*story.Child{{ID: "child2", Name: "Theo"}})

	selected := s.selection.Selected()
	s.Require().Len(selected, 2)
	s.NotEmpty(selected[0].ID, "one-off entries get an ID backfilled")
	s.Equal(story.ModeCustom, s.selection.Mode())

	oneOffs := s.selection.OneOffs()
	s.Require().Len(oneOffs, 1)
	s.Equal("Pirate Pete", oneOffs[0].Name)
}

func (s *SelectionTestSuite) TestInitialize_ReplacesPriorState() {
	s.selection.AddOneOff(&story.Character{Name: "Dragon"})
	s.selection.Initialize(nil, nil, nil)

	s.Empty(s.selection.Selected())
	s.Empty(s.selection.OneOffs())
	s.Equal(story.ModeSurprise, s.selection.Mode())
}

func (s *SelectionTestSuite) TestToggleChild_SelfInverse() {
	child := &story.Child{ID: "child1", Name: "Maya"}

	s.selection.ToggleChild(child)
	s.Require().Len(s.selection.Selected(), 1)
	s.True(s.selection.IsChildSelected("child1"))

	s.selection.ToggleChild(child)
	s.Empty(s.selection.Selected())
	s.False(s.selection.IsChildSelected("child1"))
}

func (s *SelectionTestSuite) TestToggleChild_RemovesByIdentityNotPosition() {
	s.selection.ToggleChild(&story.Child{ID: "child1", Name: "Maya"})
	s.selection.ToggleChild(&story.Child{ID: "child2", Name: "Theo"})
	s.selection.ToggleChild(&story.Child{ID: "child1", Name: "Maya"})

	selected := s.selection.Selected()
	s.Require().Len(selected, 1)
	s.Equal("child2", selected[0].ChildID)
}

func (s *SelectionTestSuite) TestToggleSavedCharacter_IdentityOverContent() {
	// Two distinct saved characters that happen to share every content field.
	a := &story.SavedCharacter{ID: "saved1", Name: "Hero", Description: "brave"}
	b := &story.SavedCharacter{ID: "saved2", Name: "Hero", Description: "brave"}

	s.selection.ToggleSavedCharacter(a)

	s.True(s.selection.IsSavedCharacterSelected(a))
	s.False(s.selection.IsSavedCharacterSelected(b))
}

func (s *SelectionTestSuite) TestToggleSavedCharacter_StableUnderEdit() {
	c := &story.SavedCharacter{ID: "saved1", Name: "Hero", Description: "brave"}
	s.selection.ToggleSavedCharacter(c)

	edited := &story.SavedCharacter{ID: "saved1", Name: "Hero", Description: "reckless"}
	s.True(s.selection.IsSavedCharacterSelected(edited))

	// Toggling the edited value still removes the original entry.
	s.selection.ToggleSavedCharacter(edited)
	s.Empty(s.selection.Selected())
}

func (s *SelectionTestSuite) TestAddOneOff_GeneratesDistinctIDs() {
	first := s.selection.AddOneOff(&story.Character{Name: "Dragon"})
	second := s.selection.AddOneOff(&story.Character{Name: "Dragon"})

	s.NotEmpty(first.ID)
	s.NotEmpty(second.ID)
	s.NotEqual(first.ID, second.ID)

	s.Len(s.selection.Selected(), 2)
	s.Len(s.selection.OneOffs(), 2)
	s.Equal(story.ModeCustom, s.selection.Mode())
}

func (s *SelectionTestSuite) TestAddOneOff_ForcesCustomMode() {
	s.selection.SetMode(story.ModeSurprise)
	s.selection.AddOneOff(&story.Character{Name: "Dragon"})
	s.Equal(story.ModeCustom, s.selection.Mode())
}

func (s *SelectionTestSuite) TestUpdateOneOff_PreservesIdentityAndSelection() {
	added := s.selection.AddOneOff(&story.Character{Name: "Dragon", Description: "green"})

	ok := s.selection.UpdateOneOff(0, &story.Character{Name: "Wyvern", Description: "blue"})
	s.True(ok)

	oneOffs := s.selection.OneOffs()
	s.Require().Len(oneOffs, 1)
	s.Equal(added.ID, oneOffs[0].ID)
	s.Equal("Wyvern", oneOffs[0].Name)
	s.Equal("blue", oneOffs[0].Description)
	s.True(oneOffs[0].IsOneOff)

	s.True(s.selection.IsOneOffSelected(oneOffs[0]))

	selected := s.selection.Selected()
	s.Require().Len(selected, 1)
	s.Equal("Wyvern", selected[0].Name)
}

func (s *SelectionTestSuite) TestUpdateOneOff_FindsSelectionEntryByID() {
	s.selection.AddOneOff(&story.Character{Name: "Dragon"})
	s.selection.ToggleChild(&story.Child{ID: "child1", Name: "Maya"})
	second := s.selection.AddOneOff(&story.Character{Name: "Fairy"})

	// Remove the first one-off; roster index 0 now holds the second one,
	// which sits at position 2 in the selection list.
	s.Require().True(s.selection.RemoveOneOff(0))
	s.Require().True(s.selection.UpdateOneOff(0, &story.Character{Name: "Sprite"}))

	selected := s.selection.Selected()
	s.Require().Len(selected, 2)
	s.Equal("child1", selected[0].ChildID)
	s.Equal("Sprite", selected[1].Name)
	s.Equal(second.ID, selected[1].ID)
}

func (s *SelectionTestSuite) TestUpdateOneOff_OutOfBoundsIsNoOp() {
	s.selection.AddOneOff(&story.Character{Name: "Dragon"})

	s.False(s.selection.UpdateOneOff(-1, &story.Character{Name: "X"}))
	s.False(s.selection.UpdateOneOff(999, &story.Character{Name: "X"}))

	oneOffs := s.selection.OneOffs()
	s.Require().Len(oneOffs, 1)
	s.Equal("Dragon", oneOffs[0].Name)
}

func (s *SelectionTestSuite) TestRemoveOneOff_OutOfBoundsIsNoOp() {
	s.selection.AddOneOff(&story.Character{Name: "Dragon"})

	s.False(s.selection.RemoveOneOff(-1))
	s.False(s.selection.RemoveOneOff(999))

	s.Len(s.selection.OneOffs(), 1)
	s.Len(s.selection.Selected(), 1)
}

func (s *SelectionTestSuite) TestRemoveOneOff_RemovesFromBothLists() {
	added := s.selection.AddOneOff(&story.Character{Name: "Dragon"})
	s.selection.ToggleChild(&story.Child{ID: "child1", Name: "Maya"})

	s.True(s.selection.RemoveOneOff(0))

	s.Empty(s.selection.OneOffs())
	s.False(s.selection.IsOneOffSelected(added))

	selected := s.selection.Selected()
	s.Require().Len(selected, 1)
	s.Equal("child1", selected[0].ChildID)
}

func (s *SelectionTestSuite) TestSetMode_PreservesSelection() {
	s.selection.ToggleChild(&story.Child{ID: "child1", Name: "Maya"})

	s.selection.SetMode(story.ModeSurprise)
	s.selection.SetMode(story.ModeCustom)

	selected := s.selection.Selected()
	s.Require().Len(selected, 1)
	s.Equal("child1", selected[0].ChildID)
}

func (s *SelectionTestSuite) TestCharactersForStory_SurpriseHidesSelection() {
	s.selection.ToggleChild(&story.Child{ID: "child1", Name: "Maya"})
	s.selection.SetMode(story.ModeSurprise)

	s.Empty(s.selection.CharactersForStory())

	s.selection.SetMode(story.ModeCustom)
	s.Len(s.selection.CharactersForStory(), 1)
}

func (s *SelectionTestSuite) TestReset_SafeWhenEmpty() {
	s.selection.Reset()
	s.selection.Reset()

	s.Empty(s.selection.Selected())
	s.Empty(s.selection.OneOffs())
	s.Equal(story.ModeSurprise, s.selection.Mode())
}

func (s *SelectionTestSuite) TestRestoreAndSnapshot_RoundTrip() {
	session := &story.WizardSession{
		ID:      "wizard_1",
		OwnerID: "owner_1",
		Mode:    story.ModeCustom,
		SelectedCharacters: []*story.Character{
			{Name: "Maya", IsChild: true, ChildID: "child1"},
			{ID: "oneoff_1", Name: "Dragon", IsOneOff: true},
		},
	}

	s.selection.Restore(session)

	s.Equal(story.ModeCustom, s.selection.Mode())
	s.Len(s.selection.Selected(), 2)
	s.Require().Len(s.selection.OneOffs(), 1)
	s.Equal("oneoff_1", s.selection.OneOffs()[0].ID)

	s.selection.SetMode(story.ModeSurprise)

	out := &story.WizardSession{ID: session.ID, OwnerID: session.OwnerID}
	s.selection.Snapshot(out)
	s.Equal(story.ModeSurprise, out.Mode)
	s.Len(out.SelectedCharacters, 2)
	s.Len(out.OneOffCharacters, 1)
}

func (s *SelectionTestSuite) TestRestore_NilSessionResets() {
	s.selection.AddOneOff(&story.Character{Name: "Dragon"})
	s.selection.Restore(nil)

	s.Empty(s.selection.Selected())
	s.Equal(story.ModeSurprise, s.selection.Mode())
}

func TestSelectionSuite(t *testing.T) {
	suite.Run(t, new(SelectionTestSuite))
}
