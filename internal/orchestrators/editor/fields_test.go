package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/hero-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/hero-sheet/internal/errors"
	"github.com/KirkDiggler/hero-sheet/internal/testutils"
	"github.com/KirkDiggler/hero-sheet/internal/testutils/builders"
)

func TestResolveField(t *testing.T) {
	doc := builders.NewDocumentBuilder().WithSubtype(sheet.SkillCraft, "", 0).Build()
	craft, _ := doc.Skill(sheet.SkillCraft)

	for _, key := range []string{
		"info.name",
		"str.base",
		"wil.extra",
		"heroPoints.base",
		"skill.notice.rank",
		"skill.craft.misc",
		"skill.craft.0.category",
	} {
		ref, err := resolveField(doc, key)
		require.NoError(t, err, key)
		assert.Equal(t, key, ref.key)
	}

	ref, err := resolveField(doc, "skill.craft.0.category")
	require.NoError(t, err)
	assert.False(t, ref.numeric)
	ref.set(sheet.Text("Electronics"))
	assert.Equal(t, "Electronics", craft.Subtypes[0].Category)
	assert.Empty(t, craft.Category)
}

func TestResolveFieldErrors(t *testing.T) {
	doc := testutils.CreateTestDocument()

	_, err := resolveField(doc, "str.bsae")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, "str.base", errors.GetMeta(err)["suggestion"])

	for _, key := range []string{"", "str", "info.secret", "skill.craft", "skill.flying.rank", "skill.craft.x.rank"} {
		_, err := resolveField(doc, key)
		assert.True(t, errors.IsNotFound(err), key)
	}

	_, err = resolveField(doc, "skill.craft.0.rank")
	assert.True(t, errors.IsOutOfRange(err))
}
