package engine

import (
	"context"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/hero-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/hero-sheet/internal/errors"
)

type engine struct {
	roller dice.Roller
}

// Config holds the dependencies for the engine
type Config struct {
	DiceRoller dice.Roller
}

// Validate ensures all required dependencies are provided
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}

	return vb.Build()
}

// New creates an engine
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &engine{roller: cfg.DiceRoller}, nil
}

func (e *engine) Total(doc *sheet.Document, key string) float64 {
	if doc == nil || sheet.IsPlaceholder(key) {
		return 0
	}

	score, ok := doc.Score(sheet.ScoreKey(key))
	if !ok {
		return 0
	}

	return score.Base.Float() + score.Extra.Float()
}

func (e *engine) Modifier(doc *sheet.Document, key string) int {
	if sheet.IsPlaceholder(key) {
		return 0
	}
	return modifier(e.Total(doc, key))
}

// modifier floors rather than truncates so a 9 gives -1
func modifier(total float64) int {
	return Floor((total - 10) / 2)
}

// MaxBonus bounds every modifier and check bonus
const MaxBonus = 1 << 30

// Floor rounds toward negative infinity, clamped to ±MaxBonus. NaN gives 0.
func Floor(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= MaxBonus:
		return MaxBonus
	case f <= -MaxBonus:
		return -MaxBonus
	}
	return int(math.Floor(f))
}

func (e *engine) SaveBonus(doc *sheet.Document, key sheet.ScoreKey) float64 {
	total := e.Total(doc, string(key))
	if doc == nil {
		return total
	}

	score, ok := doc.Score(key)
	if !ok || score.DerivedFrom == "" {
		return total
	}

	return total + float64(e.Modifier(doc, string(score.DerivedFrom)))
}

func (e *engine) SkillTotal(doc *sheet.Document, skill *sheet.Skill) float64 {
	if skill == nil {
		return 0
	}

	var ability float64
	if skill.HasAbility() {
		ability = float64(e.Modifier(doc, skill.GoverningAbility))
	}

	return ability + skill.Rank.Float() + skill.MiscMod.Float()
}

func (e *engine) Initiative(doc *sheet.Document) float64 {
	return float64(e.Modifier(doc, string(sheet.ScoreDex))) +
		e.Total(doc, string(sheet.ScoreInitiativePower)) +
		e.Total(doc, string(sheet.ScoreInitiativeFeat))
}

func (e *engine) RollCheck(_ context.Context, input *RollCheckInput) (*RollCheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	roll, err := e.roller.Roll(CheckDie)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll check")
	}

	return &RollCheckOutput{
		Roll:  roll,
		Bonus: input.Bonus,
		Total: roll + input.Bonus,
	}, nil
}
