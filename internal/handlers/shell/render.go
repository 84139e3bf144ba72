package shell

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/KirkDiggler/hero-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/hero-sheet/internal/orchestrators/editor"
)

var groupTitles = map[sheet.Group]string{
	sheet.GroupMain:  "Abilities",
	sheet.GroupSaves: "Saves",
	sheet.GroupOther: "Other",
}

func renderSheet(w io.Writer, view *editor.SheetView) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Sheet %s\t%s\n", view.SheetID, view.ThemeLabel)

	fmt.Fprintln(tw, "\nIdentity")
	for _, info := range view.Info {
		fmt.Fprintf(tw, "  %s\t%s\n", info.Field, info.Display)
	}
	fmt.Fprintf(tw, "  secret identity\t%s\n", yesNo(view.SecretIdentity))

	var group sheet.Group
	for _, score := range view.Scores {
		if score.Group != group {
			group = score.Group
			fmt.Fprintf(tw, "\n%s\tbase\textra\ttotal\tbonus\n", groupTitles[group])
		}
		fmt.Fprintf(tw, "  %s (%s)\t%s\t%s\t%s\t%s\n",
			score.DisplayName, score.Key, score.Base, score.Extra, score.Total, score.Bonus)
	}
	fmt.Fprintf(tw, "  Initiative\t\t\t\t%s\n", view.Initiative)

	fmt.Fprintln(tw, "\nSkills\tability\trank\tmisc\ttotal")
	for _, skill := range view.Skills {
		name := skill.DisplayName
		if skill.TrainedOnly {
			name += "*"
		}
		if skill.Index >= 0 {
			name = fmt.Sprintf("  [%d] %s", skill.Index, skill.Category)
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\n", name, skill.Ability, skill.Rank, skill.Misc, skill.Total)
	}

	conditions := make(map[sheet.Condition]bool, len(view.Conditions))
	for _, c := range view.Conditions {
		conditions[c.Condition] = c.Active
	}
	fmt.Fprintf(tw, "\nConditions\t%s\n", activeConditions(conditions))

	return tw.Flush()
}

func renderScore(w io.Writer, key string, out *editor.GetScoreOutput) error {
	name := out.View.DisplayName
	if name == "" {
		name = key
	}

	_, err := fmt.Fprintf(w, "%s: total %s", name, valueOr(out.View.Total, "0"))
	if err != nil {
		return err
	}
	if out.View.Bonus != "" {
		_, err = fmt.Fprintf(w, ", bonus %s", out.View.Bonus)
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w)
	return err
}

func activeConditions(conditions map[sheet.Condition]bool) string {
	var active []string
	for c, on := range conditions {
		if on {
			active = append(active, string(c))
		}
	}
	if len(active) == 0 {
		return "none"
	}

	sort.Strings(active)
	return strings.Join(active, ", ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func signedInt(n int) string {
	if n < 0 {
		return fmt.Sprintf("- %d", -n)
	}
	return fmt.Sprintf("+ %d", n)
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
