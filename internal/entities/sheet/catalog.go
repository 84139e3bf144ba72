package sheet

import (
	_ "embed"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/hero-sheet/internal/errors"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// ScoreDef is the catalog entry a score is created from
type ScoreDef struct {
	Key         ScoreKey `yaml:"key"`
	Name        string   `yaml:"name"`
	Group       Group    `yaml:"group"`
	Base        float64  `yaml:"base"`
	DerivedFrom ScoreKey `yaml:"derived_from"`
}

// SkillDef is the catalog entry a skill is created from
type SkillDef struct {
	Key         SkillKey `yaml:"key"`
	Name        string   `yaml:"name"`
	Ability     string   `yaml:"ability"`
	TrainedOnly bool     `yaml:"trained_only"`
}

// Catalog lists the scores and skills every new sheet starts with
type Catalog struct {
	Scores []ScoreDef `yaml:"scores"`
	Skills []SkillDef `yaml:"skills"`
}

// DefaultCatalog parses the embedded catalog
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalogYAML)
}

// ParseCatalog decodes and validates a catalog document
func ParseCatalog(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode catalog")
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}

	return &cat, nil
}

// Validate checks keys are unique and references resolve
func (c *Catalog) Validate() error {
	vb := errors.NewValidationBuilder()

	groups := make(map[ScoreKey]Group, len(c.Scores))
	for _, def := range c.Scores {
		if strings.TrimSpace(string(def.Key)) == "" {
			vb.RequiredField("scores.key")
			continue
		}
		if _, dup := groups[def.Key]; dup {
			vb.Fieldf(string(def.Key), "is defined more than once")
		}
		errors.ValidateEnum(string(def.Key)+".group", string(def.Group),
			[]string{string(GroupMain), string(GroupSaves), string(GroupOther)}, vb)
		groups[def.Key] = def.Group
	}

	for _, def := range c.Scores {
		if def.DerivedFrom == "" {
			continue
		}
		if def.Group != GroupSaves {
			vb.Fieldf(string(def.Key)+".derived_from", "only saves can derive from an ability")
			continue
		}
		if groups[def.DerivedFrom] != GroupMain {
			vb.Fieldf(string(def.Key)+".derived_from", "%q is not a main ability", def.DerivedFrom)
		}
	}

	skills := make(map[SkillKey]bool, len(c.Skills))
	for _, def := range c.Skills {
		if strings.TrimSpace(string(def.Key)) == "" {
			vb.RequiredField("skills.key")
			continue
		}
		if skills[def.Key] {
			vb.Fieldf(string(def.Key), "is defined more than once")
		}
		skills[def.Key] = true

		if !IsPlaceholder(def.Ability) && groups[ScoreKey(def.Ability)] != GroupMain {
			vb.Fieldf(string(def.Key)+".ability", "%q is not a main ability", def.Ability)
		}
	}

	return vb.Build()
}
