package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/hero-sheet/internal/errors"
	"github.com/KirkDiggler/hero-sheet/internal/locale"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()
	return out.String(), err
}

func TestFormatCommand(t *testing.T) {
	out, err := run(t, "", "--locale", "en-US", "format", "1234.5")
	require.NoError(t, err)
	assert.Equal(t, "1,234.5\n", out)

	out, err = run(t, "", "--locale", "de-DE", "format", "1234.5")
	require.NoError(t, err)
	assert.Equal(t, "1.234,5\n", out)

	_, err = run(t, "", "format", "1,234")
	require.Error(t, err)
	assert.Equal(t, 2, errors.GetCode(err).ExitCode())
}

func TestParseCommand(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "english float", args: []string{"--locale", "en-US", "parse", "1,234.5"}, expected: "1234.5\n"},
		{name: "german float", args: []string{"--locale", "de-DE", "parse", "1.234,5"}, expected: "1234.5\n"},
		{name: "int truncates", args: []string{"--locale", "en-US", "parse", "--int", "--", "-7.9"}, expected: "-7\n"},
		{name: "trailing text ignored", args: []string{"--locale", "en-US", "parse", "12abc"}, expected: "12\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, "", tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestParseCommandRejectsText(t *testing.T) {
	_, err := run(t, "", "--locale", "en-US", "parse", "abc")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, errors.GetMessageChain(err), `"abc" is not a number`)
}

func TestInvalidFlagsFailValidation(t *testing.T) {
	_, err := run(t, "", "--log-level", "loud", "format", "1")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = run(t, "", "--locale", "not a locale!", "format", "1")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestShellCommand(t *testing.T) {
	script := strings.Join([]string{
		"setn str.base 10",
		"setn str.extra 4",
		"show str",
		"setn str.base strong strict",
		"setn str.base 7",
		"setn str.extra 0",
		"show str",
		"add craft",
		"rm craft 3",
		"theme",
		"quit",
	}, "\n")

	out, err := run(t, script, "--locale", "en-US", "shell", "--prompt", "")
	require.NoError(t, err)

	assert.Contains(t, out, "opened sheet_")
	assert.Contains(t, out, "Strength: total 14, bonus +2")
	assert.Contains(t, out, `str.base: "strong" is not a number, kept 10`)
	assert.Contains(t, out, "Strength: total 7, bonus -2")
	assert.Contains(t, out, "added Craft subtype 0")
	assert.Contains(t, out, "error: subtype index 3 out of range for craft")
	assert.Contains(t, out, "Theme: Dark - Click to switch")
}

func TestShellStartsDark(t *testing.T) {
	out, err := run(t, "quit\n", "--dark", "shell", "--prompt", "")
	require.NoError(t, err)
	assert.Contains(t, out, "Theme: Dark - Click to switch")
}

func TestShellLocaleGroupedInput(t *testing.T) {
	french, err := locale.NewFromString("fr-FR")
	require.NoError(t, err)
	grouped := french.FormatNumber(1234.5)

	script := "setn heroPoints.base " + grouped + "\nshow heroPoints\nquit\n"
	out, err := run(t, script, "--locale", "fr-FR", "shell", "--prompt", "")
	require.NoError(t, err)

	assert.Contains(t, out, "heroPoints.base = "+grouped)
	assert.Contains(t, out, "total "+grouped)
	assert.NotContains(t, out, "error:")
}

func TestShellLocaleMinus(t *testing.T) {
	swedish, err := locale.NewFromString("sv-SE")
	require.NoError(t, err)
	minusThree := swedish.FormatNumber(-3)

	script := strings.Join([]string{
		"setn str.base 4",
		"show str",
		"setn bruises.base " + minusThree + " strict",
		"quit",
	}, "\n")
	out, err := run(t, script, "--locale", "sv-SE", "shell", "--prompt", "")
	require.NoError(t, err)

	assert.Contains(t, out, "Strength: total 4, bonus "+minusThree+"\n")
	assert.Contains(t, out, "bruises.base = "+minusThree)
	assert.NotContains(t, out, "+"+minusThree)
	assert.NotContains(t, out, "is not a number")
}
