package locale

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/KirkDiggler/hero-sheet/internal/errors"
)

// maxMagnitude is the largest magnitude every integer up to which a float64 holds exactly
const maxMagnitude = 1 << 53

// scanInt splits off an optional sign and the digits that follow it. numeral is
// empty when there are no digits.
func scanInt(s string) (numeral, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == digitsStart {
		return "", s
	}

	return s[:end], s[end:]
}

// scanFloat splits off an optional sign, digits, one '.', and digits, stopping at
// the first character that does not fit
func scanFloat(s string) (numeral, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}

	digits := 0
	for end < len(s) && isDigit(s[end]) {
		end++
		digits++
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && isDigit(s[end]) {
			end++
			digits++
		}
	}
	if digits == 0 {
		return "", s
	}

	return s[:end], s[end:]
}

// ParseCanonical reads locale-independent notation such as "-1234.5". The whole
// text must be a finite number.
func ParseCanonical(text string) (float64, error) {
	value, err := finite(strings.TrimSpace(text))
	if err != nil {
		return 0, errors.Wrap(err, "invalid canonical number").WithMeta("kind", "canonical")
	}
	return value, nil
}

// FormatCanonical writes n in locale-independent notation with no exponent
func FormatCanonical(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// finite parses an ASCII numeral that must stay within maxMagnitude
func finite(numeral string) (float64, error) {
	value, err := strconv.ParseFloat(numeral, 64)
	tooLarge := errors.Is(err, strconv.ErrRange) && math.IsInf(value, 0)
	if !tooLarge && (err != nil || math.IsNaN(value) || math.IsInf(value, 0)) {
		return 0, errors.InvalidArgumentf("%q is not a number", numeral)
	}
	if tooLarge || math.Abs(value) > maxMagnitude {
		return 0, errors.OutOfRangef("%q is too large", numeral).WithMeta("max", FormatCanonical(maxMagnitude))
	}
	return value, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// isAnyDigit reports a decimal digit of any script
func isAnyDigit(r rune) bool {
	return unicode.Is(unicode.Nd, r)
}

// asciiDigit maps a decimal digit of any script to its ASCII form
func asciiDigit(r rune) rune {
	if r < 0x80 || !isAnyDigit(r) {
		return r
	}
	for _, rng := range unicode.Nd.R16 {
		if r >= rune(rng.Lo) && r <= rune(rng.Hi) && rng.Stride == 1 {
			return '0' + (r-rune(rng.Lo))%10
		}
	}
	for _, rng := range unicode.Nd.R32 {
		if r >= rune(rng.Lo) && r <= rune(rng.Hi) && rng.Stride == 1 {
			return '0' + (r-rune(rng.Lo))%10
		}
	}
	return r
}

// stripMarks drops the directional marks some locales wrap numbers in
func stripMarks(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\u200e', '\u200f', '\u061c':
			return -1
		}
		return r
	}, s)
}
