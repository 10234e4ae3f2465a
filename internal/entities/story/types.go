// Package story defines the core entities of the story product: child
// profiles, reusable saved characters, the characters attached to a story in
// progress, wizard sessions, finished stories, and credit accounting.
package story

// Mode selects how characters for a story are chosen.
type Mode string

const (
	// ModeSurprise lets the generation backend pick characters and content
	// on its own. Any client-side selection is retained but not submitted.
	ModeSurprise Mode = "surprise"
	// ModeCustom submits the selected character list verbatim.
	ModeCustom Mode = "custom"
)

// StoryStatus tracks a story through generation.
type StoryStatus string

// Story statuses
const (
	StoryStatusGenerating StoryStatus = "generating"
	StoryStatusReady      StoryStatus = "ready"
	StoryStatusFailed     StoryStatus = "failed"
)

// Child is a saved profile for the account owner's own child. Children are
// managed by the profile screens and referenced by the wizard by ID only.
type Child struct {
	ID          string `json:"id"`
	OwnerID     string `json:"owner_id"`
	Name        string `json:"name"`
	BirthDate   string `json:"birth_date,omitempty"` // YYYY-MM-DD, optional
	Preferences string `json:"preferences,omitempty"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

// SavedCharacter is a reusable, user-authored fictional character persisted
// across stories.
type SavedCharacter struct {
	ID          string `json:"id"`
	OwnerID     string `json:"owner_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Appearance  string `json:"appearance,omitempty"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

// Character is the unit attached to a story being composed. Exactly one of
// three provenances applies: child-backed (IsChild with ChildID),
// saved-character-backed (SavedCharacterID), or one-off (IsOneOff with its
// own generated ID). The provenance identifier is the only reliable
// membership key; two characters may share a name while being distinct.
type Character struct {
	ID               string `json:"id,omitempty"` // generated, one-off only
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	Appearance       string `json:"appearance,omitempty"`
	IsChild          bool   `json:"is_child,omitempty"`
	ChildID          string `json:"child_id,omitempty"`
	SavedCharacterID string `json:"saved_character_id,omitempty"`
	IsOneOff         bool   `json:"is_one_off,omitempty"`
}

// ProvenanceKey returns the identifier that determines selection membership
// for this character: the child ID, the saved-character ID, or the one-off's
// generated ID. Empty when the entry carries no provenance at all.
func (c *Character) ProvenanceKey() string {
	switch {
	case c.IsChild:
		return c.ChildID
	case c.SavedCharacterID != "":
		return c.SavedCharacterID
	default:
		return c.ID
	}
}

// SameIdentity reports whether two characters refer to the same underlying
// entity. Content fields never participate in the comparison.
func (c *Character) SameIdentity(other *Character) bool {
	if other == nil {
		return false
	}
	key := c.ProvenanceKey()
	return key != "" && key == other.ProvenanceKey()
}

// WizardSession is the persisted snapshot of one story-creation wizard run.
// A session is created when the wizard opens, mutated as the user toggles
// characters, and deleted on submission or cancel.
type WizardSession struct {
	ID                 string       `json:"id"`
	OwnerID            string       `json:"owner_id"`
	Mode               Mode         `json:"mode"`
	SelectedCharacters []*Character `json:"selected_characters,omitempty"`
	OneOffCharacters   []*Character `json:"one_off_characters,omitempty"`
	CreatedAt          int64        `json:"created_at"`
	UpdatedAt          int64        `json:"updated_at"`
	ExpiresAt          int64        `json:"expires_at,omitempty"`
}

// Story is a finished (or failed) generation result in the library.
type Story struct {
	ID         string       `json:"id"`
	OwnerID    string       `json:"owner_id"`
	Title      string       `json:"title"`
	Text       string       `json:"text,omitempty"`
	Mode       Mode         `json:"mode"`
	Characters []*Character `json:"characters,omitempty"`
	Status     StoryStatus  `json:"status"`
	CreatedAt  int64        `json:"created_at"`
	UpdatedAt  int64        `json:"updated_at"`
}

// CreditBalance is the cached credit state for one account.
type CreditBalance struct {
	OwnerID      string `json:"owner_id"`
	StoryCredits int64  `json:"story_credits"`
	Plan         string `json:"plan,omitempty"`
	PlanActive   bool   `json:"plan_active,omitempty"`
	UpdatedAt    int64  `json:"updated_at"`
}

// CreditEvent is one ledger entry: a purchase, a subscription grant, or a
// spend. Events carry provider-assigned IDs so replays are detectable.
type CreditEvent struct {
	ID        string `json:"id"`
	OwnerID   string `json:"owner_id"`
	Delta     int64  `json:"delta"`
	Source    string `json:"source"` // purchase, subscription_grant, spend, referral
	CreatedAt int64  `json:"created_at"`
}
