package shell_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/hero-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/hero-sheet/internal/errors"
	"github.com/KirkDiggler/hero-sheet/internal/handlers/shell"
	"github.com/KirkDiggler/hero-sheet/internal/locale"
	"github.com/KirkDiggler/hero-sheet/internal/orchestrators/editor"
	editormock "github.com/KirkDiggler/hero-sheet/internal/orchestrators/editor/mock"
)

const testSheetID = "sheet_1"

type HandlerTestSuite struct {
	suite.Suite
	ctx        context.Context
	ctrl       *gomock.Controller
	mockEditor *editormock.MockService
	out        *bytes.Buffer
	handler    *shell.Handler
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockEditor = editormock.NewMockService(s.ctrl)
	s.out = &bytes.Buffer{}

	handler, err := shell.NewHandler(&shell.HandlerConfig{
		EditorService: s.mockEditor,
		Output:        s.out,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) execute(line string) error {
	quit, err := s.handler.Execute(s.ctx, testSheetID, line)
	s.Assert().False(quit)
	return err
}

func (s *HandlerTestSuite) TestNewHandlerRequiresDependencies() {
	_, err := shell.NewHandler(&shell.HandlerConfig{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "EditorService")
	s.Assert().Contains(err.Error(), "Output")

	_, err = shell.NewHandler(nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestOpen() {
	doc := &sheet.Document{ID: testSheetID, Theme: sheet.Themes[1]}
	s.mockEditor.EXPECT().
		OpenSheet(s.ctx, &editor.OpenSheetInput{}).
		Return(&editor.OpenSheetOutput{Document: doc}, nil)

	id, err := s.handler.Open(s.ctx)
	s.Require().NoError(err)
	s.Equal(testSheetID, id)
	s.Contains(s.out.String(), "opened sheet_1 (Theme: Dark - Click to switch)")
}

func (s *HandlerTestSuite) TestSetKeepsSpacesInText() {
	s.mockEditor.EXPECT().
		UpdateField(s.ctx, &editor.UpdateFieldInput{
			SheetID: testSheetID,
			Field:   "info.name",
			Text:    "Captain Paragon",
		}).
		Return(&editor.UpdateFieldOutput{Value: sheet.Text("Captain Paragon"), Display: "Captain Paragon"}, nil)

	s.Require().NoError(s.execute("set info.name Captain Paragon"))
	s.Equal("info.name = Captain Paragon\n", s.out.String())
}

func (s *HandlerTestSuite) TestSetNumberOptions() {
	s.mockEditor.EXPECT().
		UpdateParsedField(s.ctx, &editor.UpdateParsedFieldInput{
			SheetID:          testSheetID,
			Field:            "str.base",
			Text:             "abc",
			Kind:             locale.KindInt,
			AllowUnparseable: false,
		}).
		Return(&editor.UpdateParsedFieldOutput{Value: sheet.Number(14), Display: "14", Reverted: true}, nil)

	s.Require().NoError(s.execute("setn str.base abc int strict"))
	s.Equal("str.base: \"abc\" is not a number, kept 14\n", s.out.String())
}

func (s *HandlerTestSuite) TestSetNumberDefaultsToLenientFloat() {
	s.mockEditor.EXPECT().
		UpdateParsedField(s.ctx, &editor.UpdateParsedFieldInput{
			SheetID:          testSheetID,
			Field:            "heroPoints.base",
			Text:             "1,234.5",
			Kind:             locale.KindFloat,
			AllowUnparseable: true,
		}).
		Return(&editor.UpdateParsedFieldOutput{Value: sheet.Number(1234.5), Display: "1,234.5", Parsed: true}, nil)

	s.Require().NoError(s.execute("setn heroPoints.base 1,234.5"))
	s.Equal("heroPoints.base = 1,234.5\n", s.out.String())
}

func (s *HandlerTestSuite) TestSetNumberKeepsGroupedText() {
	testCases := []struct {
		name   string
		line   string
		text   string
		kind   locale.NumberKind
		strict bool
	}{
		{name: "no-break space group", line: "setn str.base 1\u00a0234,5", text: "1\u00a0234,5", kind: locale.KindFloat},
		{name: "group with options", line: "setn str.base 1\u00a0234 int strict", text: "1\u00a0234", kind: locale.KindInt, strict: true},
		{name: "words stay in the text", line: "setn str.base 12 hex", text: "12 hex", kind: locale.KindFloat},
		{name: "last kind wins", line: "setn str.base 7 float int", text: "7", kind: locale.KindInt},
		{name: "option word alone is text", line: "setn str.base int", text: "int", kind: locale.KindFloat},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.out.Reset()
			s.mockEditor.EXPECT().
				UpdateParsedField(s.ctx, &editor.UpdateParsedFieldInput{
					SheetID:          testSheetID,
					Field:            "str.base",
					Text:             tc.text,
					Kind:             tc.kind,
					AllowUnparseable: !tc.strict,
				}).
				Return(&editor.UpdateParsedFieldOutput{Value: sheet.Number(1), Display: "1", Parsed: true}, nil)

			s.Require().NoError(s.execute(tc.line))
			s.Equal("str.base = 1\n", s.out.String())
		})
	}
}

func (s *HandlerTestSuite) TestArgumentErrorsSkipTheService() {
	testCases := []struct {
		name string
		line string
	}{
		{name: "set without field", line: "set"},
		{name: "setn without text", line: "setn str.base"},
		{name: "cond without state", line: "cond dying"},
		{name: "cond with bad state", line: "cond dying maybe"},
		{name: "rm with word index", line: "rm craft first"},
		{name: "add without skill", line: "add"},
		{name: "roll without target", line: "roll"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := s.execute(tc.line)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *HandlerTestSuite) TestUnknownCommandSuggests() {
	err := s.execute("rol str")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal("roll", errors.GetMeta(err)["suggestion"])
}

func (s *HandlerTestSuite) TestCondition() {
	s.mockEditor.EXPECT().
		SetCondition(s.ctx, &editor.SetConditionInput{
			SheetID:   testSheetID,
			Condition: sheet.ConditionStaggered,
			Active:    true,
		}).
		Return(&editor.SetConditionOutput{Conditions: map[sheet.Condition]bool{
			sheet.ConditionStaggered: true,
			sheet.ConditionDying:     false,
			sheet.ConditionDisabled:  true,
		}}, nil)

	s.Require().NoError(s.execute("cond Staggered on"))
	s.Equal("conditions: disabled, staggered\n", s.out.String())
}

func (s *HandlerTestSuite) TestSubtypes() {
	added := &sheet.Skill{Key: sheet.SkillCraft, DisplayName: "Craft"}
	s.mockEditor.EXPECT().
		AddSubtype(s.ctx, &editor.AddSubtypeInput{SheetID: testSheetID, Skill: sheet.SkillCraft}).
		Return(&editor.AddSubtypeOutput{Subtype: added, Index: 0}, nil)

	removed := &sheet.Skill{Key: sheet.SkillCraft, DisplayName: "Craft", Category: "Chemical"}
	s.mockEditor.EXPECT().
		RemoveSubtype(s.ctx, &editor.RemoveSubtypeInput{SheetID: testSheetID, Skill: sheet.SkillCraft, Index: 0}).
		Return(&editor.RemoveSubtypeOutput{Removed: removed, Remaining: 0}, nil)

	s.Require().NoError(s.execute("add craft"))
	s.Require().NoError(s.execute("rm craft 0"))

	s.Contains(s.out.String(), "added Craft subtype 0 (set skill.craft.0.category to name it)")
	s.Contains(s.out.String(), "removed Craft (Chemical), 0 left")
}

func (s *HandlerTestSuite) TestRemoveSubtypeOutOfRangePassesThrough() {
	s.mockEditor.EXPECT().
		RemoveSubtype(s.ctx, &editor.RemoveSubtypeInput{SheetID: testSheetID, Skill: sheet.SkillCraft, Index: 3}).
		Return(nil, errors.OutOfRange("subtype index 3 out of range for craft"))

	err := s.execute("rm craft 3")
	s.Require().Error(err)
	s.True(errors.IsOutOfRange(err))
}

func (s *HandlerTestSuite) TestShowScore() {
	s.mockEditor.EXPECT().
		GetScore(s.ctx, &editor.GetScoreInput{SheetID: testSheetID, Key: "str"}).
		Return(&editor.GetScoreOutput{
			Total:    14,
			Modifier: 2,
			Bonus:    2,
			View:     editor.ScoreView{Key: sheet.ScoreStr, DisplayName: "Strength", Total: "14", Bonus: "+2"},
		}, nil)

	s.Require().NoError(s.execute("show str"))
	s.Equal("Strength: total 14, bonus +2\n", s.out.String())
}

func (s *HandlerTestSuite) TestShowPlaceholderScore() {
	s.mockEditor.EXPECT().
		GetScore(s.ctx, &editor.GetScoreInput{SheetID: testSheetID, Key: "-"}).
		Return(&editor.GetScoreOutput{}, nil)

	s.Require().NoError(s.execute("show -"))
	s.Equal("-: total 0\n", s.out.String())
}

func (s *HandlerTestSuite) TestShowSheet() {
	view := &editor.SheetView{
		SheetID:    testSheetID,
		ThemeLabel: "Theme: Light - Click to switch",
		Info:       []editor.InfoView{{Field: sheet.InfoName, Display: "Nova"}},
		Scores: []editor.ScoreView{
			{Key: sheet.ScoreStr, Group: sheet.GroupMain, DisplayName: "Strength", Base: "10", Extra: "4", Total: "14", Bonus: "+2"},
			{Key: sheet.ScoreToughness, Group: sheet.GroupSaves, DisplayName: "Toughness", Base: "0", Extra: "0", Total: "0", Bonus: "+0"},
		},
		Skills: []editor.SkillView{
			{Key: sheet.SkillCraft, Index: -1, DisplayName: "Craft", Ability: "int", Rank: "0", Misc: "0", Total: "+0", TrainedOnly: true},
			{Key: sheet.SkillCraft, Index: 0, DisplayName: "Craft", Ability: "int", Rank: "4", Misc: "0", Category: "Chemical", Total: "+4"},
		},
		Initiative: "+0",
		Conditions: []editor.ConditionView{{Condition: sheet.ConditionDying}},
	}
	s.mockEditor.EXPECT().
		GetSheet(s.ctx, &editor.GetSheetInput{SheetID: testSheetID}).
		Return(&editor.GetSheetOutput{View: view}, nil)

	s.Require().NoError(s.execute("show"))

	out := s.out.String()
	s.Contains(out, "Sheet sheet_1")
	s.Contains(out, "Nova")
	s.Contains(out, "Abilities")
	s.Contains(out, "Strength (str)")
	s.Contains(out, "Saves")
	s.Contains(out, "Craft*")
	s.Contains(out, "[0] Chemical")
	s.Regexp(`Conditions\s+none`, out)
}

func (s *HandlerTestSuite) TestThemeAndRoll() {
	s.mockEditor.EXPECT().
		SetTheme(s.ctx, &editor.SetThemeInput{SheetID: testSheetID, Theme: ""}).
		Return(&editor.SetThemeOutput{Theme: sheet.Themes[1], Label: "Theme: Dark - Click to switch"}, nil)
	s.mockEditor.EXPECT().
		RollCheck(s.ctx, &editor.RollCheckInput{SheetID: testSheetID, Target: "str"}).
		Return(&editor.RollCheckOutput{Target: "str", Roll: 11, Bonus: -2, Total: 9}, nil)

	s.Require().NoError(s.execute("theme"))
	s.Require().NoError(s.execute("roll str"))

	s.Equal("Theme: Dark - Click to switch\nstr: d20 11 - 2 = 9\n", s.out.String())
}

func (s *HandlerTestSuite) TestDump() {
	doc := &sheet.Document{ID: testSheetID}
	s.mockEditor.EXPECT().
		GetSheet(s.ctx, &editor.GetSheetInput{SheetID: testSheetID}).
		Return(&editor.GetSheetOutput{Document: doc}, nil)

	s.Require().NoError(s.execute("dump"))
	s.Contains(s.out.String(), `"sheet_1"`)
}

func (s *HandlerTestSuite) TestQuitAndComments() {
	for _, line := range []string{"", "   ", "# a note"} {
		quit, err := s.handler.Execute(s.ctx, testSheetID, line)
		s.NoError(err)
		s.False(quit)
	}

	quit, err := s.handler.Execute(s.ctx, testSheetID, "QUIT")
	s.NoError(err)
	s.True(quit)
}

func (s *HandlerTestSuite) TestRunPrintsErrorsAndStopsAtQuit() {
	gomock.InOrder(
		s.mockEditor.EXPECT().
			UpdateField(s.ctx, &editor.UpdateFieldInput{SheetID: testSheetID, Field: "info.name", Text: "Nova"}).
			Return(&editor.UpdateFieldOutput{Display: "Nova"}, nil),
		s.mockEditor.EXPECT().
			UpdateField(s.ctx, &editor.UpdateFieldInput{SheetID: testSheetID, Field: "str.bsae", Text: "12"}).
			Return(nil, errors.NotFound(`unknown field "str.bsae"`).WithMeta("suggestion", "str.base")),
		s.mockEditor.EXPECT().
			CloseSheet(gomock.Any(), &editor.CloseSheetInput{SheetID: testSheetID}).
			Return(&editor.CloseSheetOutput{}, nil),
	)

	in := strings.NewReader("set info.name Nova\nset str.bsae 12\nquit\nset info.name Never\n")
	s.Require().NoError(s.handler.Run(s.ctx, testSheetID, in))

	out := s.out.String()
	s.Contains(out, "info.name = Nova")
	s.Contains(out, `error: unknown field "str.bsae" (did you mean str.base?)`)
	s.NotContains(out, "Never")
}

func (s *HandlerTestSuite) TestRunClosesAtEndOfInput() {
	s.mockEditor.EXPECT().
		CloseSheet(gomock.Any(), &editor.CloseSheetInput{SheetID: testSheetID}).
		Return(&editor.CloseSheetOutput{}, nil)

	handler, err := shell.NewHandler(&shell.HandlerConfig{
		EditorService: s.mockEditor,
		Output:        s.out,
		Prompt:        "sheet> ",
	})
	s.Require().NoError(err)

	s.Require().NoError(handler.Run(s.ctx, testSheetID, strings.NewReader("help\n")))
	s.Contains(s.out.String(), "sheet> ")
	s.Contains(s.out.String(), "setn <field> <text> [int|float] [strict]")
}

func (s *HandlerTestSuite) TestRunReportsCloseFailure() {
	s.mockEditor.EXPECT().
		CloseSheet(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("sheet not found"))

	err := s.handler.Run(s.ctx, testSheetID, strings.NewReader(""))
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}
