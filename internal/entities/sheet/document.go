package sheet

import "github.com/KirkDiggler/rpg-toolkit/core"

// EntityType is the rpg-toolkit entity type of a sheet document
const EntityType = "sheet"

// Document is the whole editable sheet of one session
type Document struct {
	ID        string
	CreatedAt int64

	Info           map[InfoField]Value
	SecretIdentity bool

	Scores     map[ScoreKey]*Score
	ScoreOrder []ScoreKey

	Skills     map[SkillKey]*Skill
	SkillOrder []SkillKey

	Conditions map[Condition]bool
	Theme      Theme
}

// NewDocument builds a sheet with the catalog defaults
func NewDocument(id string, cat *Catalog) *Document {
	doc := &Document{
		ID:             id,
		Info:           make(map[InfoField]Value, len(AllInfoFields)),
		SecretIdentity: true,
		Scores:         make(map[ScoreKey]*Score, len(cat.Scores)),
		ScoreOrder:     make([]ScoreKey, 0, len(cat.Scores)),
		Skills:         make(map[SkillKey]*Skill, len(cat.Skills)),
		SkillOrder:     make([]SkillKey, 0, len(cat.Skills)),
		Conditions:     make(map[Condition]bool, len(AllConditions)),
		Theme:          Themes[0],
	}

	for _, f := range AllInfoFields {
		doc.Info[f] = Text("")
	}

	for _, def := range cat.Scores {
		doc.Scores[def.Key] = &Score{
			Key:         def.Key,
			Group:       def.Group,
			DisplayName: def.Name,
			Base:        Number(def.Base),
			Extra:       Number(0),
			DerivedFrom: def.DerivedFrom,
		}
		doc.ScoreOrder = append(doc.ScoreOrder, def.Key)
	}

	for _, def := range cat.Skills {
		ability := def.Ability
		if IsPlaceholder(ability) {
			ability = AbilityNone
		}
		doc.Skills[def.Key] = &Skill{
			Key:              def.Key,
			DisplayName:      def.Name,
			GoverningAbility: ability,
			Rank:             Number(0),
			MiscMod:          Number(0),
			TrainedOnly:      def.TrainedOnly,
		}
		doc.SkillOrder = append(doc.SkillOrder, def.Key)
	}

	for _, c := range AllConditions {
		doc.Conditions[c] = false
	}

	return doc
}

var _ core.Entity = (*Document)(nil)

// GetID returns the document ID
func (d *Document) GetID() string {
	return d.ID
}

// GetType returns the entity type for rpg-toolkit
func (d *Document) GetType() string {
	return EntityType
}

// Score looks a score up by key
func (d *Document) Score(key ScoreKey) (*Score, bool) {
	s, ok := d.Scores[key]
	return s, ok
}

// Skill looks a top-level skill up by key
func (d *Document) Skill(key SkillKey) (*Skill, bool) {
	s, ok := d.Skills[key]
	return s, ok
}

// ScoresInGroup returns the scores of a group in catalog order
func (d *Document) ScoresInGroup(group Group) []*Score {
	var out []*Score
	for _, key := range d.ScoreOrder {
		if s := d.Scores[key]; s.Group == group {
			out = append(out, s)
		}
	}
	return out
}
