package editor

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/hero-sheet/internal/entities/sheet"
)

// SheetView is the display text of every field, formatted for the locale
type SheetView struct {
	SheetID        string
	Info           []InfoView
	SecretIdentity bool
	Scores         []ScoreView
	Skills         []SkillView
	Initiative     string
	Conditions     []ConditionView
	ThemeLabel     string
}

// InfoView is one identity field
type InfoView struct {
	Field   sheet.InfoField
	Display string
}

// ScoreView is one score row
type ScoreView struct {
	Key         sheet.ScoreKey
	Group       sheet.Group
	DisplayName string
	Base        string
	Extra       string
	Total       string
	// Bonus is the modifier for abilities, the save bonus for saves and empty
	// for other trackers
	Bonus string
}

// SkillView is one skill row; subtypes follow their parent with Index set
type SkillView struct {
	Key         sheet.SkillKey
	Index       int
	DisplayName string
	Ability     string
	Rank        string
	Misc        string
	Category    string
	Total       string
	TrainedOnly bool
}

// ConditionView is one condition toggle
type ConditionView struct {
	Condition sheet.Condition
	Active    bool
}

func (o *orchestrator) buildView(doc *sheet.Document) *SheetView {
	view := &SheetView{
		SheetID:        doc.ID,
		SecretIdentity: doc.SecretIdentity,
		Initiative:     o.signed(o.engine.Initiative(doc)),
		ThemeLabel:     doc.Theme.Label(),
	}

	for _, f := range sheet.AllInfoFields {
		view.Info = append(view.Info, InfoView{Field: f, Display: o.codec.Format(doc.Info[f])})
	}

	for _, key := range doc.ScoreOrder {
		view.Scores = append(view.Scores, o.scoreView(doc, doc.Scores[key]))
	}

	for _, key := range doc.SkillOrder {
		skill := doc.Skills[key]
		view.Skills = append(view.Skills, o.skillView(doc, skill, -1))
		for i, sub := range skill.Subtypes {
			view.Skills = append(view.Skills, o.skillView(doc, sub, i))
		}
	}

	for _, c := range sheet.AllConditions {
		view.Conditions = append(view.Conditions, ConditionView{Condition: c, Active: doc.Conditions[c]})
	}

	return view
}

func (o *orchestrator) scoreView(doc *sheet.Document, score *sheet.Score) ScoreView {
	view := ScoreView{
		Key:         score.Key,
		Group:       score.Group,
		DisplayName: score.DisplayName,
		Base:        o.codec.Format(score.Base),
		Extra:       o.codec.Format(score.Extra),
		Total:       o.codec.FormatNumber(o.engine.Total(doc, string(score.Key))),
	}

	switch score.Group {
	case sheet.GroupMain:
		view.Bonus = o.signed(float64(o.engine.Modifier(doc, string(score.Key))))
	case sheet.GroupSaves:
		view.Bonus = o.signed(o.engine.SaveBonus(doc, score.Key))
	}

	return view
}

func (o *orchestrator) skillView(doc *sheet.Document, skill *sheet.Skill, index int) SkillView {
	return SkillView{
		Key:         skill.Key,
		Index:       index,
		DisplayName: skill.DisplayName,
		Ability:     skill.GoverningAbility,
		Rank:        o.codec.Format(skill.Rank),
		Misc:        o.codec.Format(skill.MiscMod),
		Category:    skill.Category,
		Total:       o.signed(o.engine.SkillTotal(doc, skill)),
		TrainedOnly: skill.TrainedOnly,
	}
}

// signed formats a bonus, prefixing non-negative ones with '+'. Negative bonuses
// keep the minus sign of the locale.
func (o *orchestrator) signed(n float64) string {
	if n < 0 {
		return o.codec.FormatNumber(n)
	}
	return fmt.Sprintf("+%s", o.codec.FormatNumber(math.Abs(n)))
}
