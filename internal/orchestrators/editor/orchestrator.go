// Package editor applies UI input events to sheet documents
package editor

//go:generate mockgen -destination=mock/mock_service.go -package=editormock github.com/KirkDiggler/hero-sheet/internal/orchestrators/editor Service

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/hero-sheet/internal/engine"
	"github.com/KirkDiggler/hero-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/hero-sheet/internal/errors"
	"github.com/KirkDiggler/hero-sheet/internal/locale"
	"github.com/KirkDiggler/hero-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/hero-sheet/internal/pkg/idgen"
	"github.com/KirkDiggler/hero-sheet/internal/pkg/suggest"
	"github.com/KirkDiggler/hero-sheet/internal/repositories/sheets"
)

// TargetInitiative is the roll target for initiative
const TargetInitiative = "initiative"

// Service defines the interface for sheet editing
type Service interface {
	// Session lifecycle
	OpenSheet(ctx context.Context, input *OpenSheetInput) (*OpenSheetOutput, error)
	CloseSheet(ctx context.Context, input *CloseSheetInput) (*CloseSheetOutput, error)
	GetSheet(ctx context.Context, input *GetSheetInput) (*GetSheetOutput, error)

	// Field edits
	UpdateField(ctx context.Context, input *UpdateFieldInput) (*UpdateFieldOutput, error)
	UpdateParsedField(ctx context.Context, input *UpdateParsedFieldInput) (*UpdateParsedFieldOutput, error)
	SetCondition(ctx context.Context, input *SetConditionInput) (*SetConditionOutput, error)
	SetSecretIdentity(ctx context.Context, input *SetSecretIdentityInput) (*SetSecretIdentityOutput, error)

	// Skill specializations
	AddSubtype(ctx context.Context, input *AddSubtypeInput) (*AddSubtypeOutput, error)
	RemoveSubtype(ctx context.Context, input *RemoveSubtypeInput) (*RemoveSubtypeOutput, error)

	// Derived values
	GetScore(ctx context.Context, input *GetScoreInput) (*GetScoreOutput, error)
	RollCheck(ctx context.Context, input *RollCheckInput) (*RollCheckOutput, error)

	SetTheme(ctx context.Context, input *SetThemeInput) (*SetThemeOutput, error)
}

// Config holds the dependencies for the editor orchestrator
type Config struct {
	SheetRepo   sheets.Repository
	Engine      engine.Engine
	Codec       locale.Codec
	EventBus    events.EventBus
	Catalog     *sheet.Catalog
	IDGenerator idgen.Generator
	Clock       clock.Clock
	// Logger defaults to slog.Default()
	Logger *slog.Logger
	// PreferDark starts new sheets on the dark theme
	PreferDark bool
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SheetRepo == nil {
		vb.RequiredField("SheetRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Codec == nil {
		vb.RequiredField("Codec")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	sheetRepo  sheets.Repository
	engine     engine.Engine
	codec      locale.Codec
	eventBus   events.EventBus
	catalog    *sheet.Catalog
	idGen      idgen.Generator
	clock      clock.Clock
	logger     *slog.Logger
	preferDark bool
}

// NewOrchestrator creates a new editor orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &orchestrator{
		sheetRepo:  cfg.SheetRepo,
		engine:     cfg.Engine,
		codec:      cfg.Codec,
		eventBus:   cfg.EventBus,
		catalog:    cfg.Catalog,
		idGen:      cfg.IDGenerator,
		clock:      cfg.Clock,
		logger:     logger,
		preferDark: cfg.PreferDark,
	}, nil
}

func (o *orchestrator) load(ctx context.Context, sheetID string) (*sheet.Document, error) {
	if sheetID == "" {
		return nil, errors.InvalidArgument("sheet ID is required")
	}

	out, err := o.sheetRepo.Get(ctx, &sheets.GetInput{SheetID: sheetID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load sheet %s", sheetID)
	}

	return out.Document, nil
}

func (o *orchestrator) OpenSheet(ctx context.Context, _ *OpenSheetInput) (*OpenSheetOutput, error) {
	doc := sheet.NewDocument(o.idGen.Generate(), o.catalog)
	doc.CreatedAt = o.clock.Now().Unix()
	if o.preferDark {
		if dark, ok := sheet.FindTheme(sheet.ThemeDark); ok {
			doc.Theme = dark
		}
	}

	if _, err := o.sheetRepo.Create(ctx, &sheets.CreateInput{Document: doc}); err != nil {
		return nil, errors.Wrap(err, "failed to store sheet")
	}

	o.logger.InfoContext(ctx, "sheet opened", "sheet_id", doc.ID, "theme", doc.Theme.ClassName)
	o.publish(ctx, EventSheetOpened, doc, nil)

	return &OpenSheetOutput{Document: doc}, nil
}

func (o *orchestrator) CloseSheet(ctx context.Context, input *CloseSheetInput) (*CloseSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	doc, err := o.load(ctx, input.SheetID)
	if err != nil {
		return nil, err
	}

	if _, err := o.sheetRepo.Delete(ctx, &sheets.DeleteInput{SheetID: doc.ID}); err != nil {
		return nil, errors.Wrap(err, "failed to close sheet")
	}

	o.logger.InfoContext(ctx, "sheet closed", "sheet_id", doc.ID)
	o.publish(ctx, EventSheetClosed, doc, nil)

	return &CloseSheetOutput{}, nil
}

func (o *orchestrator) GetSheet(ctx context.Context, input *GetSheetInput) (*GetSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	doc, err := o.load(ctx, input.SheetID)
	if err != nil {
		return nil, err
	}

	return &GetSheetOutput{Document: doc, View: o.buildView(doc)}, nil
}

func (o *orchestrator) UpdateField(ctx context.Context, input *UpdateFieldInput) (*UpdateFieldOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	doc, err := o.load(ctx, input.SheetID)
	if err != nil {
		return nil, err
	}

	ref, err := resolveField(doc, input.Field)
	if err != nil {
		return nil, err
	}

	result := assignRaw(o.codec, ref, input.Text)

	o.publish(ctx, EventFieldUpdated, doc, map[string]any{
		ContextKeyField:   ref.key,
		ContextKeyDisplay: result.display,
	})

	return &UpdateFieldOutput{Value: result.value, Display: result.display}, nil
}

func (o *orchestrator) UpdateParsedField(
	ctx context.Context,
	input *UpdateParsedFieldInput,
) (*UpdateParsedFieldOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	doc, err := o.load(ctx, input.SheetID)
	if err != nil {
		return nil, err
	}

	ref, err := resolveField(doc, input.Field)
	if err != nil {
		return nil, err
	}
	if !ref.numeric {
		return nil, errors.InvalidArgumentf("field %q is not numeric", ref.key).
			WithMeta("field", ref.key)
	}

	result := assignParsed(o.codec, ref, input.Text, input.Kind, input.AllowUnparseable)

	if result.reverted {
		o.logger.DebugContext(ctx, "rejected unparseable input",
			"sheet_id", doc.ID,
			"field", ref.key,
			"text", input.Text)
		o.publish(ctx, EventInputReverted, doc, map[string]any{
			ContextKeyField:   ref.key,
			ContextKeyDisplay: result.display,
		})
	} else {
		o.publish(ctx, EventFieldUpdated, doc, map[string]any{
			ContextKeyField:   ref.key,
			ContextKeyDisplay: result.display,
		})
	}

	return &UpdateParsedFieldOutput{
		Value:    result.value,
		Display:  result.display,
		Parsed:   result.parsed,
		Reverted: result.reverted,
	}, nil
}

func (o *orchestrator) SetCondition(ctx context.Context, input *SetConditionInput) (*SetConditionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	doc, err := o.load(ctx, input.SheetID)
	if err != nil {
		return nil, err
	}

	if _, ok := doc.Conditions[input.Condition]; !ok {
		names := make([]string, len(sheet.AllConditions))
		for i, c := range sheet.AllConditions {
			names[i] = string(c)
		}
		vb := errors.NewValidationBuilder()
		errors.ValidateEnum("condition", string(input.Condition), names, vb)
		return nil, vb.Build()
	}

	doc.Conditions[input.Condition] = input.Active

	o.publish(ctx, EventConditionChanged, doc, map[string]any{
		ContextKeyField:  string(input.Condition),
		ContextKeyActive: input.Active,
	})

	conditions := make(map[sheet.Condition]bool, len(doc.Conditions))
	for c, active := range doc.Conditions {
		conditions[c] = active
	}

	return &SetConditionOutput{Conditions: conditions}, nil
}

func (o *orchestrator) SetSecretIdentity(
	ctx context.Context,
	input *SetSecretIdentityInput,
) (*SetSecretIdentityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	doc, err := o.load(ctx, input.SheetID)
	if err != nil {
		return nil, err
	}

	doc.SecretIdentity = input.Secret

	o.publish(ctx, EventFieldUpdated, doc, map[string]any{
		ContextKeyField:   "identSecrecy",
		ContextKeyDisplay: strconv.FormatBool(input.Secret),
	})

	return &SetSecretIdentityOutput{}, nil
}

func (o *orchestrator) AddSubtype(ctx context.Context, input *AddSubtypeInput) (*AddSubtypeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	doc, err := o.load(ctx, input.SheetID)
	if err != nil {
		return nil, err
	}

	skill, ok := doc.Skill(input.Skill)
	if !ok {
		return nil, errors.NotFoundf("unknown skill %q", input.Skill).WithMeta("skill", string(input.Skill))
	}

	sub := skill.NewSubtype()
	skill.Subtypes = append(skill.Subtypes, sub)
	index := len(skill.Subtypes) - 1

	o.publish(ctx, EventSubtypeAdded, doc, map[string]any{
		ContextKeyField: string(skill.Key),
		ContextKeyIndex: index,
	})

	return &AddSubtypeOutput{Subtype: sub, Index: index}, nil
}

func (o *orchestrator) RemoveSubtype(ctx context.Context, input *RemoveSubtypeInput) (*RemoveSubtypeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	doc, err := o.load(ctx, input.SheetID)
	if err != nil {
		return nil, err
	}

	skill, ok := doc.Skill(input.Skill)
	if !ok {
		return nil, errors.NotFoundf("unknown skill %q", input.Skill).WithMeta("skill", string(input.Skill))
	}

	if input.Index < 0 || input.Index >= len(skill.Subtypes) {
		return nil, subtypeOutOfRange(skill, input.Index)
	}

	removed := skill.Subtypes[input.Index]
	skill.Subtypes = append(skill.Subtypes[:input.Index], skill.Subtypes[input.Index+1:]...)

	o.publish(ctx, EventSubtypeRemoved, doc, map[string]any{
		ContextKeyField: string(skill.Key),
		ContextKeyIndex: input.Index,
	})

	return &RemoveSubtypeOutput{Removed: removed, Remaining: len(skill.Subtypes)}, nil
}

func (o *orchestrator) GetScore(ctx context.Context, input *GetScoreInput) (*GetScoreOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	doc, err := o.load(ctx, input.SheetID)
	if err != nil {
		return nil, err
	}

	if sheet.IsPlaceholder(input.Key) {
		return &GetScoreOutput{}, nil
	}

	score, ok := doc.Score(sheet.ScoreKey(input.Key))
	if !ok {
		return nil, o.unknownScore(doc, input.Key)
	}

	out := &GetScoreOutput{
		Total:    o.engine.Total(doc, input.Key),
		Modifier: o.engine.Modifier(doc, input.Key),
		View:     o.scoreView(doc, score),
	}
	out.Bonus = o.bonus(doc, score)

	return out, nil
}

// bonus is what a check against the score adds to the die
func (o *orchestrator) bonus(doc *sheet.Document, score *sheet.Score) float64 {
	switch score.Group {
	case sheet.GroupMain:
		return float64(o.engine.Modifier(doc, string(score.Key)))
	case sheet.GroupSaves:
		return o.engine.SaveBonus(doc, score.Key)
	default:
		return o.engine.Total(doc, string(score.Key))
	}
}

func (o *orchestrator) unknownScore(doc *sheet.Document, key string) error {
	err := errors.NotFoundf("unknown score %q", key).WithMeta("score", key)
	keys := make([]string, len(doc.ScoreOrder))
	for i, k := range doc.ScoreOrder {
		keys[i] = string(k)
	}
	if s, ok := suggest.Closest(key, keys); ok {
		err = err.WithMeta("suggestion", s)
	}
	return err
}

func (o *orchestrator) RollCheck(ctx context.Context, input *RollCheckInput) (*RollCheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	doc, err := o.load(ctx, input.SheetID)
	if err != nil {
		return nil, err
	}

	target := strings.TrimSpace(input.Target)
	var bonus float64

	switch {
	case target == TargetInitiative:
		bonus = o.engine.Initiative(doc)

	case strings.HasPrefix(target, prefixSkill+"."):
		skill, err := resolveSkill(doc, strings.Split(target, ".")[1:])
		if err != nil {
			return nil, err
		}
		if skill == nil {
			return nil, errors.NotFoundf("unknown skill %q", target).WithMeta("target", target)
		}
		if skill.TrainedOnly && skill.Rank.Float() <= 0 {
			return nil, errors.FailedPreconditionf("%s can only be used trained", skill.DisplayName).
				WithMeta("target", target)
		}
		bonus = o.engine.SkillTotal(doc, skill)

	default:
		score, ok := doc.Score(sheet.ScoreKey(target))
		if !ok {
			return nil, o.unknownScore(doc, target)
		}
		bonus = o.bonus(doc, score)
	}

	roll, err := o.engine.RollCheck(ctx, &engine.RollCheckInput{Bonus: engine.Floor(bonus)})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s", target)
	}

	o.logger.DebugContext(ctx, "check rolled",
		"sheet_id", doc.ID,
		"target", target,
		"roll", roll.Roll,
		"total", roll.Total)

	return &RollCheckOutput{
		Target: target,
		Roll:   roll.Roll,
		Bonus:  roll.Bonus,
		Total:  roll.Total,
	}, nil
}

func (o *orchestrator) SetTheme(ctx context.Context, input *SetThemeInput) (*SetThemeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	doc, err := o.load(ctx, input.SheetID)
	if err != nil {
		return nil, err
	}

	target, ok := sheet.FindTheme(strings.TrimSpace(input.Theme))
	if !ok {
		target = doc.Theme.Next()
	}
	doc.Theme = target

	o.publish(ctx, EventThemeChanged, doc, map[string]any{
		ContextKeyTheme:   target.ClassName,
		ContextKeyDisplay: target.Label(),
	})

	return &SetThemeOutput{Theme: target, Label: target.Label()}, nil
}
