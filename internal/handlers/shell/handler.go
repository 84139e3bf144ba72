// Package shell drives the sheet editor from typed command lines
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/KirkDiggler/hero-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/hero-sheet/internal/errors"
	"github.com/KirkDiggler/hero-sheet/internal/locale"
	"github.com/KirkDiggler/hero-sheet/internal/orchestrators/editor"
	"github.com/KirkDiggler/hero-sheet/internal/pkg/suggest"
)

// Commands understood by the shell
const (
	cmdSet    = "set"
	cmdSetN   = "setn"
	cmdCond   = "cond"
	cmdSecret = "secret"
	cmdAdd    = "add"
	cmdRm     = "rm"
	cmdShow   = "show"
	cmdTheme  = "theme"
	cmdRoll   = "roll"
	cmdDump   = "dump"
	cmdHelp   = "help"
	cmdQuit   = "quit"
	cmdExit   = "exit"

	optStrict = "strict"
)

var usage = map[string]string{
	cmdSet:    "set <field> <text>",
	cmdSetN:   "setn <field> <text> [int|float] [strict]",
	cmdCond:   "cond <condition> on|off",
	cmdSecret: "secret on|off",
	cmdAdd:    "add <skill>",
	cmdRm:     "rm <skill> <index>",
	cmdShow:   "show [score]",
	cmdTheme:  "theme [light|dark]",
	cmdRoll:   "roll <score|initiative|skill.<key>[.<n>]>",
	cmdDump:   "dump",
	cmdHelp:   "help",
	cmdQuit:   "quit",
}

var commandOrder = []string{
	cmdSet, cmdSetN, cmdCond, cmdSecret, cmdAdd, cmdRm, cmdShow, cmdTheme, cmdRoll, cmdDump, cmdHelp, cmdQuit,
}

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	EditorService editor.Service
	Output        io.Writer
	// Prompt is written before each command when set
	Prompt string
	Logger *slog.Logger
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.EditorService == nil {
		vb.RequiredField("EditorService")
	}
	if c.Output == nil {
		vb.RequiredField("Output")
	}

	return vb.Build()
}

// Handler turns command lines into editor calls and prints the results
type Handler struct {
	editorService editor.Service
	out           io.Writer
	prompt        string
	logger        *slog.Logger
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		editorService: cfg.EditorService,
		out:           cfg.Output,
		prompt:        cfg.Prompt,
		logger:        logger,
	}, nil
}

// Open starts a new sheet session and returns its ID
func (h *Handler) Open(ctx context.Context) (string, error) {
	out, err := h.editorService.OpenSheet(ctx, &editor.OpenSheetInput{})
	if err != nil {
		return "", err
	}

	h.printf("opened %s (%s)\n", out.Document.ID, out.Document.Theme.Label())
	return out.Document.ID, nil
}

// Run executes lines from in until quit, end of input or cancellation, then
// closes the sheet. Command failures are printed and do not stop the loop.
func (h *Handler) Run(ctx context.Context, sheetID string, in io.Reader) error {
	scanner := bufio.NewScanner(in)

	h.printPrompt()
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}

		quit, err := h.Execute(ctx, sheetID, scanner.Text())
		if err != nil {
			h.printError(err)
		}
		if quit {
			break
		}
		h.printPrompt()
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "failed to read commands")
	}

	// the session still ends when the loop was interrupted
	if _, err := h.editorService.CloseSheet(context.WithoutCancel(ctx), &editor.CloseSheetInput{
		SheetID: sheetID,
	}); err != nil {
		return errors.Wrap(err, "failed to close sheet")
	}

	h.logger.DebugContext(ctx, "shell finished", "sheet_id", sheetID)
	return nil
}

// Execute runs a single command line. quit is true when the line ends the session.
func (h *Handler) Execute(ctx context.Context, sheetID, line string) (quit bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false, nil
	}

	cmd, rest := nextToken(line)
	cmd = strings.ToLower(cmd)

	switch cmd {
	case cmdSet:
		return false, h.set(ctx, sheetID, rest)
	case cmdSetN:
		return false, h.setNumber(ctx, sheetID, rest)
	case cmdCond:
		return false, h.condition(ctx, sheetID, rest)
	case cmdSecret:
		return false, h.secret(ctx, sheetID, rest)
	case cmdAdd:
		return false, h.addSubtype(ctx, sheetID, rest)
	case cmdRm:
		return false, h.removeSubtype(ctx, sheetID, rest)
	case cmdShow:
		return false, h.show(ctx, sheetID, rest)
	case cmdTheme:
		return false, h.theme(ctx, sheetID, rest)
	case cmdRoll:
		return false, h.roll(ctx, sheetID, rest)
	case cmdDump:
		return false, h.dump(ctx, sheetID)
	case cmdHelp:
		h.help()
		return false, nil
	case cmdQuit, cmdExit:
		return true, nil
	default:
		return false, unknownCommand(cmd)
	}
}

func (h *Handler) set(ctx context.Context, sheetID, args string) error {
	field, text := nextToken(args)
	if field == "" {
		return usageError(cmdSet)
	}

	out, err := h.editorService.UpdateField(ctx, &editor.UpdateFieldInput{
		SheetID: sheetID,
		Field:   field,
		Text:    text,
	})
	if err != nil {
		return err
	}

	h.printf("%s = %s\n", field, out.Display)
	return nil
}

func (h *Handler) setNumber(ctx context.Context, sheetID, args string) error {
	field, text := nextToken(args)
	if field == "" || text == "" {
		return usageError(cmdSetN)
	}

	input := &editor.UpdateParsedFieldInput{
		SheetID:          sheetID,
		Field:            field,
		Kind:             locale.KindFloat,
		AllowUnparseable: true,
	}

	// Trailing words are options. Split on ASCII blanks only; some locales group
	// digits with U+00A0.
	kindSet := false
options:
	for {
		i := strings.LastIndexAny(text, " \t")
		if i < 0 {
			break
		}
		opt := strings.ToLower(text[i+1:])
		switch opt {
		case optStrict:
			input.AllowUnparseable = false
		case "int", "integer", "float", "decimal":
			if !kindSet {
				input.Kind, _ = locale.ParseNumberKind(opt)
				kindSet = true
			}
		default:
			break options
		}
		text = strings.TrimRight(text[:i], " \t")
	}
	input.Text = text

	return h.applyNumber(ctx, input)
}

func (h *Handler) applyNumber(ctx context.Context, input *editor.UpdateParsedFieldInput) error {
	out, err := h.editorService.UpdateParsedField(ctx, input)
	if err != nil {
		return err
	}

	if out.Reverted {
		h.printf("%s: %q is not a number, kept %s\n", input.Field, input.Text, out.Display)
		return nil
	}
	h.printf("%s = %s\n", input.Field, out.Display)
	return nil
}

func (h *Handler) condition(ctx context.Context, sheetID, args string) error {
	parts := strings.Fields(args)
	if len(parts) != 2 {
		return usageError(cmdCond)
	}
	active, err := parseSwitch(parts[1])
	if err != nil {
		return err
	}

	out, err := h.editorService.SetCondition(ctx, &editor.SetConditionInput{
		SheetID:   sheetID,
		Condition: sheet.Condition(strings.ToLower(parts[0])),
		Active:    active,
	})
	if err != nil {
		return err
	}

	h.printf("conditions: %s\n", activeConditions(out.Conditions))
	return nil
}

func (h *Handler) secret(ctx context.Context, sheetID, args string) error {
	secret, err := parseSwitch(strings.TrimSpace(args))
	if err != nil {
		return err
	}

	if _, err := h.editorService.SetSecretIdentity(ctx, &editor.SetSecretIdentityInput{
		SheetID: sheetID,
		Secret:  secret,
	}); err != nil {
		return err
	}

	h.printf("secret identity: %s\n", yesNo(secret))
	return nil
}

func (h *Handler) addSubtype(ctx context.Context, sheetID, args string) error {
	skill := strings.TrimSpace(args)
	if skill == "" {
		return usageError(cmdAdd)
	}

	out, err := h.editorService.AddSubtype(ctx, &editor.AddSubtypeInput{
		SheetID: sheetID,
		Skill:   sheet.SkillKey(skill),
	})
	if err != nil {
		return err
	}

	h.printf("added %s subtype %d (set skill.%s.%d.category to name it)\n",
		out.Subtype.DisplayName, out.Index, skill, out.Index)
	return nil
}

func (h *Handler) removeSubtype(ctx context.Context, sheetID, args string) error {
	parts := strings.Fields(args)
	if len(parts) != 2 {
		return usageError(cmdRm)
	}
	index, err := strconv.Atoi(parts[1])
	if err != nil {
		return errors.InvalidArgumentf("subtype index %q is not a whole number", parts[1]).
			WithMeta("usage", usage[cmdRm])
	}

	out, err := h.editorService.RemoveSubtype(ctx, &editor.RemoveSubtypeInput{
		SheetID: sheetID,
		Skill:   sheet.SkillKey(parts[0]),
		Index:   index,
	})
	if err != nil {
		return err
	}

	name := out.Removed.DisplayName
	if out.Removed.Category != "" {
		name = fmt.Sprintf("%s (%s)", name, out.Removed.Category)
	}
	h.printf("removed %s, %d left\n", name, out.Remaining)
	return nil
}

func (h *Handler) show(ctx context.Context, sheetID, args string) error {
	key := strings.TrimSpace(args)
	if key == "" {
		out, err := h.editorService.GetSheet(ctx, &editor.GetSheetInput{SheetID: sheetID})
		if err != nil {
			return err
		}
		return renderSheet(h.out, out.View)
	}

	out, err := h.editorService.GetScore(ctx, &editor.GetScoreInput{SheetID: sheetID, Key: key})
	if err != nil {
		return err
	}
	return renderScore(h.out, key, out)
}

func (h *Handler) theme(ctx context.Context, sheetID, args string) error {
	out, err := h.editorService.SetTheme(ctx, &editor.SetThemeInput{
		SheetID: sheetID,
		Theme:   strings.ToLower(strings.TrimSpace(args)),
	})
	if err != nil {
		return err
	}

	h.printf("%s\n", out.Label)
	return nil
}

func (h *Handler) roll(ctx context.Context, sheetID, args string) error {
	target := strings.TrimSpace(args)
	if target == "" {
		return usageError(cmdRoll)
	}

	out, err := h.editorService.RollCheck(ctx, &editor.RollCheckInput{SheetID: sheetID, Target: target})
	if err != nil {
		return err
	}

	h.printf("%s: d20 %d %s = %d\n", out.Target, out.Roll, signedInt(out.Bonus), out.Total)
	return nil
}

func (h *Handler) dump(ctx context.Context, sheetID string) error {
	out, err := h.editorService.GetSheet(ctx, &editor.GetSheetInput{SheetID: sheetID})
	if err != nil {
		return err
	}

	spew.Fdump(h.out, out.Document)
	return nil
}

func (h *Handler) help() {
	for _, cmd := range commandOrder {
		h.printf("  %s\n", usage[cmd])
	}
}

func (h *Handler) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(h.out, format, args...); err != nil {
		h.logger.Warn("failed to write output", "error", err)
	}
}

func (h *Handler) printPrompt() {
	if h.prompt != "" {
		h.printf("%s", h.prompt)
	}
}

func (h *Handler) printError(err error) {
	msg := errors.GetMessageChain(err)
	meta := errors.GetMeta(err)
	if s, ok := meta["suggestion"].(string); ok {
		msg = fmt.Sprintf("%s (did you mean %s?)", msg, s)
	}
	if u, ok := meta["usage"].(string); ok {
		msg = fmt.Sprintf("%s\nusage: %s", msg, u)
	}

	h.logger.Debug("command failed", "code", errors.GetCode(err), "error", err)
	h.printf("error: %s\n", msg)
}

// nextToken splits off the first whitespace separated word
func nextToken(s string) (token, rest string) {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i+1:])
}

func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes", "true":
		return true, nil
	case "off", "no", "false":
		return false, nil
	default:
		return false, errors.InvalidArgumentf("expected on or off, got %q", s)
	}
}

func usageError(cmd string) error {
	return errors.InvalidArgumentf("missing arguments for %s", cmd).WithMeta("usage", usage[cmd])
}

func unknownCommand(cmd string) error {
	err := errors.NotFoundf("unknown command %q", cmd).WithMeta("command", cmd)
	if s, ok := suggest.Closest(cmd, commandOrder); ok {
		err = err.WithMeta("suggestion", s)
	}
	return err
}
