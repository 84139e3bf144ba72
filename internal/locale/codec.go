// Package locale converts between locale-formatted numeric text and numbers.
//
// The separators a locale uses are sampled once, when the codec is built, by
// formatting 1000.01 and reading the characters at fixed positions of the result.
// The minus sign is sampled the same way from -1. Parsing accepts the decimal
// digits of any script.
package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/KirkDiggler/hero-sheet/internal/errors"
)

// NumberKind selects how Parse reads a numeral
type NumberKind int

const (
	// KindFloat accepts a sign, digits, one decimal point and more digits
	KindFloat NumberKind = iota
	// KindInt reads digits up to the first non-digit
	KindInt
)

// String returns the lowercase name of the kind
func (k NumberKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseNumberKind maps "int"/"integer" and "float"/"" to a kind
func ParseNumberKind(s string) (NumberKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "int", "integer":
		return KindInt, nil
	case "", "float", "decimal":
		return KindFloat, nil
	default:
		return KindFloat, errors.InvalidArgumentf("unknown number kind %q", s)
	}
}

// sampleValue is formatted to discover the separators of a locale
const sampleValue = 1000.01

// Numeric is implemented by values that may or may not currently hold a number
type Numeric interface {
	Numeric() (float64, bool)
}

// Codec formats numbers for a locale and parses locale text back into numbers
type Codec interface {
	// Format renders numbers with the locale separators; anything else passes through
	Format(value any) string
	// FormatNumber renders a number with the locale separators
	FormatNumber(value float64) string
	// Parse normalizes separators and parses the leading numeral of text as the given kind
	Parse(text string, kind NumberKind) (float64, error)
	// ParseExact is Parse, but text must hold nothing besides the numeral and spaces
	ParseExact(text string, kind NumberKind) (float64, error)
	// Separators returns the thousands and decimal separators; thousands is 0 when
	// the locale does not group
	Separators() (thousands, decimal rune)
	// Tag returns the locale
	Tag() language.Tag
}

type codec struct {
	tag       language.Tag
	printer   *message.Printer
	thousands rune
	decimal   rune
	minus     string
}

// New creates a codec for the given locale
func New(tag language.Tag) (Codec, error) {
	printer := message.NewPrinter(tag)

	thousands, decimal, err := separatorsFromSample(printer.Sprint(number.Decimal(sampleValue)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to sample separators").WithMeta("locale", tag.String())
	}

	return &codec{
		tag:       tag,
		printer:   printer,
		thousands: thousands,
		decimal:   decimal,
		minus:     minusFromSample(printer.Sprint(number.Decimal(-1))),
	}, nil
}

// separatorsFromSample reads the separators out of 1000.01 as formatted by a locale
func separatorsFromSample(formatted string) (thousands, decimal rune, err error) {
	sample := []rune(stripMarks(formatted))

	switch len(sample) {
	case 8:
		// 1?000?01
		thousands = sample[1]
		decimal = sample[5]
	case 7:
		// 1000?01, locale does not group four digit numbers
		decimal = sample[4]
	default:
		return 0, 0, errors.InvalidArgumentf("unexpected number sample %q", formatted)
	}

	if isAnyDigit(decimal) || isAnyDigit(thousands) || decimal == thousands {
		return 0, 0, errors.InvalidArgumentf("cannot derive separators from sample %q", formatted)
	}

	return thousands, decimal, nil
}

// minusFromSample returns what is left of -1 once marks and digits are dropped
func minusFromSample(formatted string) string {
	minus := strings.Map(func(r rune) rune {
		if isAnyDigit(r) {
			return -1
		}
		return r
	}, stripMarks(formatted))

	minus = strings.TrimSpace(minus)
	if minus == "" {
		return "-"
	}
	return minus
}

// NewFromString parses a BCP 47 locale and creates a codec for it
func NewFromString(locale string) (Codec, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "invalid locale %q", locale)
	}
	return New(tag)
}

func (c *codec) Tag() language.Tag {
	return c.tag
}

func (c *codec) Separators() (rune, rune) {
	return c.thousands, c.decimal
}

func (c *codec) FormatNumber(value float64) string {
	return c.printer.Sprint(number.Decimal(value))
}

func (c *codec) Format(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return c.FormatNumber(v)
	case float32:
		return c.FormatNumber(float64(v))
	case int:
		return c.FormatNumber(float64(v))
	case int32:
		return c.FormatNumber(float64(v))
	case int64:
		return c.FormatNumber(float64(v))
	case Numeric:
		if n, ok := v.Numeric(); ok {
			return c.FormatNumber(n)
		}
		return fmt.Sprint(v)
	default:
		return fmt.Sprint(v)
	}
}

func (c *codec) Parse(text string, kind NumberKind) (float64, error) {
	return c.parse(text, kind, false)
}

func (c *codec) ParseExact(text string, kind NumberKind) (float64, error) {
	return c.parse(text, kind, true)
}

func (c *codec) parse(text string, kind NumberKind, exact bool) (float64, error) {
	normalized := c.normalize(text)

	var numeral, rest string
	switch kind {
	case KindInt:
		numeral, rest = scanInt(normalized)
	default:
		numeral, rest = scanFloat(normalized)
	}

	if numeral == "" || (exact && strings.TrimSpace(rest) != "") {
		return 0, errors.InvalidArgumentf("%q is not a number", text).
			WithMeta("kind", kind.String()).
			WithMeta("locale", c.tag.String())
	}

	value, err := finite(numeral)
	if err != nil {
		return 0, errors.Wrapf(err, "%q is not a usable number", text).
			WithMeta("kind", kind.String()).
			WithMeta("locale", c.tag.String())
	}

	return value, nil
}

// normalize drops marks and thousands separators, turns the locale minus into
// '-' and decimal separators into '.', and folds every digit to ASCII
func (c *codec) normalize(text string) string {
	text = stripMarks(text)
	if c.minus != "-" {
		text = strings.ReplaceAll(text, c.minus, "-")
	}
	if c.thousands != 0 {
		text = strings.ReplaceAll(text, string(c.thousands), "")
	}
	if c.decimal != '.' {
		text = strings.ReplaceAll(text, string(c.decimal), ".")
	}
	return strings.Map(asciiDigit, text)
}
