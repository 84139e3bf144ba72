// Package sheet holds the records of a hero character sheet.
// NOTE: records are data only. Totals, modifiers and bonuses are computed by
// internal/engine.
package sheet

import "strings"

// ScoreKey identifies a score
type ScoreKey string

// SkillKey identifies a top-level skill
type SkillKey string

// Group is the collection a score belongs to
type Group string

// Groups
const (
	GroupMain  Group = "main"
	GroupSaves Group = "saves"
	GroupOther Group = "other"
)

// AbilityNone is the governing ability of a skill no ability contributes to
const AbilityNone = " - "

// IsPlaceholder reports whether a score key names no score: empty, whitespace,
// or the no-ability placeholder
func IsPlaceholder(key string) bool {
	trimmed := strings.TrimSpace(key)
	return trimmed == "" || trimmed == strings.TrimSpace(AbilityNone)
}

// Score is a named numeric attribute made of a base and a situational extra
type Score struct {
	Key         ScoreKey
	Group       Group
	DisplayName string
	Base        Value
	Extra       Value
	// DerivedFrom names the score whose modifier this one rides on
	DerivedFrom ScoreKey
}

// Skill is a trainable capability keyed to a governing ability
type Skill struct {
	Key              SkillKey
	DisplayName      string
	GoverningAbility string
	Rank             Value
	MiscMod          Value
	TrainedOnly      bool
	Category         string
	Subtypes         []*Skill
}

// HasAbility reports whether an ability contributes to the skill
func (s *Skill) HasAbility() bool {
	return !IsPlaceholder(s.GoverningAbility)
}

// NewSubtype creates an empty specialization sharing the skill's metadata
func (s *Skill) NewSubtype() *Skill {
	return &Skill{
		Key:              s.Key,
		DisplayName:      s.DisplayName,
		GoverningAbility: s.GoverningAbility,
		Rank:             Number(0),
		MiscMod:          Number(0),
		TrainedOnly:      s.TrainedOnly,
	}
}

// Condition is a boolean status effect
type Condition string

// Conditions
const (
	ConditionStaggered   Condition = "staggered"
	ConditionDisabled    Condition = "disabled"
	ConditionUnconscious Condition = "unconscious"
	ConditionDying       Condition = "dying"
	ConditionFatigued    Condition = "fatigued"
	ConditionExhausted   Condition = "exhausted"
)

// AllConditions lists conditions in display order
var AllConditions = []Condition{
	ConditionStaggered,
	ConditionDisabled,
	ConditionUnconscious,
	ConditionDying,
	ConditionFatigued,
	ConditionExhausted,
}

// InfoField names a free-text identity field
type InfoField string

// Identity fields
const (
	InfoName        InfoField = "name"
	InfoAltIdentity InfoField = "altIdentity"
	InfoAffiliation InfoField = "affiliation"
	InfoBase        InfoField = "base"
	InfoDebut       InfoField = "debut"
	InfoSize        InfoField = "size"
	InfoHeight      InfoField = "height"
	InfoAge         InfoField = "age"
	InfoWeight      InfoField = "weight"
	InfoEyes        InfoField = "eyes"
	InfoHair        InfoField = "hair"
)

// AllInfoFields lists identity fields in display order
var AllInfoFields = []InfoField{
	InfoName,
	InfoAltIdentity,
	InfoAffiliation,
	InfoBase,
	InfoDebut,
	InfoSize,
	InfoHeight,
	InfoAge,
	InfoWeight,
	InfoEyes,
	InfoHair,
}
