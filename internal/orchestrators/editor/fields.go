package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/hero-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/hero-sheet/internal/errors"
	"github.com/KirkDiggler/hero-sheet/internal/pkg/suggest"
)

// Field path segments
const (
	prefixInfo  = "info"
	prefixSkill = "skill"

	attrBase     = "base"
	attrExtra    = "extra"
	attrRank     = "rank"
	attrMisc     = "misc"
	attrCategory = "category"
)

// fieldRef reads and writes one field of a document
type fieldRef struct {
	key     string
	numeric bool
	get     func() sheet.Value
	set     func(sheet.Value)
}

// resolveField maps a field path to the record it edits:
//
//	info.<name>
//	<score>.base | <score>.extra
//	skill.<skill>.rank | misc | category
//	skill.<skill>.<n>.rank | misc | category
func resolveField(doc *sheet.Document, key string) (*fieldRef, error) {
	parts := strings.Split(strings.TrimSpace(key), ".")

	switch {
	case len(parts) == 2 && parts[0] == prefixInfo:
		field := sheet.InfoField(parts[1])
		if _, ok := doc.Info[field]; ok {
			return &fieldRef{
				key:     key,
				numeric: true,
				get:     func() sheet.Value { return doc.Info[field] },
				set:     func(v sheet.Value) { doc.Info[field] = v },
			}, nil
		}

	case len(parts) == 2:
		score, ok := doc.Score(sheet.ScoreKey(parts[0]))
		if !ok {
			break
		}
		switch parts[1] {
		case attrBase:
			return &fieldRef{
				key:     key,
				numeric: true,
				get:     func() sheet.Value { return score.Base },
				set:     func(v sheet.Value) { score.Base = v },
			}, nil
		case attrExtra:
			return &fieldRef{
				key:     key,
				numeric: true,
				get:     func() sheet.Value { return score.Extra },
				set:     func(v sheet.Value) { score.Extra = v },
			}, nil
		}

	case (len(parts) == 3 || len(parts) == 4) && parts[0] == prefixSkill:
		skill, err := resolveSkill(doc, parts[1:len(parts)-1])
		if err != nil {
			return nil, err
		}
		if skill == nil {
			break
		}
		if ref := skillField(skill, key, parts[len(parts)-1]); ref != nil {
			return ref, nil
		}
	}

	return nil, unknownField(doc, key)
}

// resolveSkill finds a skill from its key and an optional subtype index. A nil skill
// with no error means the key does not name one.
func resolveSkill(doc *sheet.Document, path []string) (*sheet.Skill, error) {
	if len(path) == 0 {
		return nil, nil
	}

	skill, ok := doc.Skill(sheet.SkillKey(path[0]))
	if !ok {
		return nil, nil
	}
	if len(path) == 1 {
		return skill, nil
	}

	index, err := strconv.Atoi(path[1])
	if err != nil {
		return nil, nil
	}
	if index < 0 || index >= len(skill.Subtypes) {
		return nil, subtypeOutOfRange(skill, index)
	}

	return skill.Subtypes[index], nil
}

func skillField(skill *sheet.Skill, key, attr string) *fieldRef {
	switch attr {
	case attrRank:
		return &fieldRef{
			key:     key,
			numeric: true,
			get:     func() sheet.Value { return skill.Rank },
			set:     func(v sheet.Value) { skill.Rank = v },
		}
	case attrMisc:
		return &fieldRef{
			key:     key,
			numeric: true,
			get:     func() sheet.Value { return skill.MiscMod },
			set:     func(v sheet.Value) { skill.MiscMod = v },
		}
	case attrCategory:
		return &fieldRef{
			key:     key,
			numeric: false,
			get:     func() sheet.Value { return sheet.Text(skill.Category) },
			set:     func(v sheet.Value) { skill.Category = v.String() },
		}
	default:
		return nil
	}
}

func subtypeOutOfRange(skill *sheet.Skill, index int) error {
	return errors.OutOfRangef("subtype index %d out of range for %s", index, skill.Key).
		WithMeta("skill", string(skill.Key)).
		WithMeta("index", index).
		WithMeta("length", len(skill.Subtypes))
}

func unknownField(doc *sheet.Document, key string) error {
	err := errors.NotFoundf("unknown field %q", key).WithMeta("field", key)
	if s, ok := suggest.Closest(key, fieldKeys(doc)); ok {
		err = err.WithMeta("suggestion", s)
	}
	return err
}

// fieldKeys lists every editable field path of a document
func fieldKeys(doc *sheet.Document) []string {
	keys := make([]string, 0, len(doc.Info)+2*len(doc.ScoreOrder)+3*len(doc.SkillOrder))

	for _, f := range sheet.AllInfoFields {
		keys = append(keys, prefixInfo+"."+string(f))
	}
	for _, k := range doc.ScoreOrder {
		keys = append(keys, string(k)+"."+attrBase, string(k)+"."+attrExtra)
	}
	for _, k := range doc.SkillOrder {
		skill := doc.Skills[k]
		for _, attr := range []string{attrRank, attrMisc, attrCategory} {
			keys = append(keys, fmt.Sprintf("%s.%s.%s", prefixSkill, k, attr))
			for i := range skill.Subtypes {
				keys = append(keys, fmt.Sprintf("%s.%s.%d.%s", prefixSkill, k, i, attr))
			}
		}
	}

	return keys
}
