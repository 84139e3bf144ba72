// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/hero-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/hero-sheet/internal/testutils"
)

// DocumentBuilder provides a fluent interface for building test sheets.
// Unknown keys panic so a typo in a test fails loudly.
type DocumentBuilder struct {
	doc *sheet.Document
}

// NewDocumentBuilder creates a builder starting from the catalog defaults
func NewDocumentBuilder() *DocumentBuilder {
	return &DocumentBuilder{doc: testutils.CreateTestDocument()}
}

// WithID sets the sheet ID
func (b *DocumentBuilder) WithID(id string) *DocumentBuilder {
	b.doc.ID = id
	return b
}

// WithName sets the hero name
func (b *DocumentBuilder) WithName(name string) *DocumentBuilder {
	return b.WithInfo(sheet.InfoName, name)
}

// WithInfo sets an identity field
func (b *DocumentBuilder) WithInfo(field sheet.InfoField, text string) *DocumentBuilder {
	if _, ok := b.doc.Info[field]; !ok {
		panic("unknown info field " + string(field))
	}
	b.doc.Info[field] = sheet.Text(text)
	return b
}

// WithScore sets the base and extra of a score
func (b *DocumentBuilder) WithScore(key sheet.ScoreKey, base, extra float64) *DocumentBuilder {
	score := b.score(key)
	score.Base = sheet.Number(base)
	score.Extra = sheet.Number(extra)
	return b
}

// WithPendingText leaves raw text in a score's extra while keeping its number
func (b *DocumentBuilder) WithPendingText(key sheet.ScoreKey, text string) *DocumentBuilder {
	score := b.score(key)
	score.Extra = score.Extra.WithText(text)
	return b
}

// WithSkill sets the rank and misc modifier of a top-level skill
func (b *DocumentBuilder) WithSkill(key sheet.SkillKey, rank, misc float64) *DocumentBuilder {
	skill := b.skill(key)
	skill.Rank = sheet.Number(rank)
	skill.MiscMod = sheet.Number(misc)
	return b
}

// WithSubtype appends a named specialization to a skill
func (b *DocumentBuilder) WithSubtype(key sheet.SkillKey, category string, rank float64) *DocumentBuilder {
	skill := b.skill(key)
	sub := skill.NewSubtype()
	sub.Category = category
	sub.Rank = sheet.Number(rank)
	skill.Subtypes = append(skill.Subtypes, sub)
	return b
}

// WithCondition marks a condition active
func (b *DocumentBuilder) WithCondition(c sheet.Condition) *DocumentBuilder {
	if _, ok := b.doc.Conditions[c]; !ok {
		panic("unknown condition " + string(c))
	}
	b.doc.Conditions[c] = true
	return b
}

// WithTheme switches to the named theme
func (b *DocumentBuilder) WithTheme(className string) *DocumentBuilder {
	theme, ok := sheet.FindTheme(className)
	if !ok {
		panic("unknown theme " + className)
	}
	b.doc.Theme = theme
	return b
}

// Build returns the sheet
func (b *DocumentBuilder) Build() *sheet.Document {
	return b.doc
}

func (b *DocumentBuilder) score(key sheet.ScoreKey) *sheet.Score {
	score, ok := b.doc.Score(key)
	if !ok {
		panic("unknown score " + string(key))
	}
	return score
}

func (b *DocumentBuilder) skill(key sheet.SkillKey) *sheet.Skill {
	skill, ok := b.doc.Skill(key)
	if !ok {
		panic("unknown skill " + string(key))
	}
	return skill
}
