package editor

import (
	"github.com/KirkDiggler/hero-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/hero-sheet/internal/locale"
)

// OpenSheetInput contains the request to start a session
type OpenSheetInput struct{}

// OpenSheetOutput contains the new document
type OpenSheetOutput struct {
	Document *sheet.Document
}

// CloseSheetInput contains the session to end
type CloseSheetInput struct {
	SheetID string
}

// CloseSheetOutput is empty
type CloseSheetOutput struct{}

// GetSheetInput contains the session to render
type GetSheetInput struct {
	SheetID string
}

// GetSheetOutput contains the document and its display view
type GetSheetOutput struct {
	Document *sheet.Document
	View     *SheetView
}

// UpdateFieldInput assigns raw text to a field without parsing
type UpdateFieldInput struct {
	SheetID string
	Field   string
	Text    string
}

// UpdateFieldOutput contains the stored value
type UpdateFieldOutput struct {
	Value   sheet.Value
	Display string
}

// UpdateParsedFieldInput assigns a parsed number to a field
type UpdateParsedFieldInput struct {
	SheetID string
	Field   string
	Text    string
	Kind    locale.NumberKind
	// AllowUnparseable keeps raw text in the field when it does not parse;
	// otherwise the edit is rejected and the input reverts
	AllowUnparseable bool
}

// UpdateParsedFieldOutput describes what happened to the field and the input
type UpdateParsedFieldOutput struct {
	// Value is the field value after the update
	Value sheet.Value
	// Display is the text the input should show
	Display string
	// Parsed is true when the text was a number
	Parsed bool
	// Reverted is true when the edit was rejected and the model left untouched
	Reverted bool
}

// SetConditionInput toggles a condition
type SetConditionInput struct {
	SheetID   string
	Condition sheet.Condition
	Active    bool
}

// SetConditionOutput contains every condition after the toggle
type SetConditionOutput struct {
	Conditions map[sheet.Condition]bool
}

// SetSecretIdentityInput toggles whether the identity is secret
type SetSecretIdentityInput struct {
	SheetID string
	Secret  bool
}

// SetSecretIdentityOutput is empty
type SetSecretIdentityOutput struct{}

// AddSubtypeInput names the skill gaining a specialization
type AddSubtypeInput struct {
	SheetID string
	Skill   sheet.SkillKey
}

// AddSubtypeOutput contains the new subtype and its position
type AddSubtypeOutput struct {
	Subtype *sheet.Skill
	Index   int
}

// RemoveSubtypeInput names the specialization to drop
type RemoveSubtypeInput struct {
	SheetID string
	Skill   sheet.SkillKey
	Index   int
}

// RemoveSubtypeOutput contains the removed subtype
type RemoveSubtypeOutput struct {
	Removed   *sheet.Skill
	Remaining int
}

// GetScoreInput names a score
type GetScoreInput struct {
	SheetID string
	Key     string
}

// GetScoreOutput contains the derived numbers of a score
type GetScoreOutput struct {
	Total    float64
	Modifier int
	// Bonus is the save bonus for saves, the modifier for abilities and the
	// total for everything else
	Bonus float64
	View  ScoreView
}

// SetThemeInput names a theme; empty or unknown names move to the next theme
type SetThemeInput struct {
	SheetID string
	Theme   string
}

// SetThemeOutput contains the applied theme
type SetThemeOutput struct {
	Theme sheet.Theme
	Label string
}

// RollCheckInput names what to roll: a score key, "initiative", or a skill field
// such as "skill.notice" or "skill.craft.0"
type RollCheckInput struct {
	SheetID string
	Target  string
}

// RollCheckOutput contains the roll
type RollCheckOutput struct {
	Target string
	Roll   int
	Bonus  int
	Total  int
}
