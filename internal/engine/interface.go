// Package engine derives totals, modifiers and bonuses from sheet records
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/hero-sheet/internal/engine Engine

import (
	"context"

	"github.com/KirkDiggler/hero-sheet/internal/entities/sheet"
)

// Engine computes derived values. Nothing is cached; every call reads the
// current records of the document.
type Engine interface {
	// Total is base + extra; placeholder and unknown keys total 0
	Total(doc *sheet.Document, key string) float64
	// Modifier is floor((total - 10) / 2)
	Modifier(doc *sheet.Document, key string) int
	// SaveBonus is the save total plus the modifier of the ability it derives from
	SaveBonus(doc *sheet.Document, key sheet.ScoreKey) float64
	// SkillTotal is the governing ability modifier plus rank and misc modifier
	SkillTotal(doc *sheet.Document, skill *sheet.Skill) float64
	// Initiative is the dex modifier plus the initiative power and feat totals
	Initiative(doc *sheet.Document) float64

	// RollCheck rolls a d20 and adds the bonus
	RollCheck(ctx context.Context, input *RollCheckInput) (*RollCheckOutput, error)
}
