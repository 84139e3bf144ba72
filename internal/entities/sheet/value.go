package sheet

import "strconv"

// Value is the content of an editable field. It holds a number, or raw text the
// user typed that has not parsed yet. A value holding raw text remembers the last
// number it held so derived scores keep working while the user types.
type Value struct {
	number float64
	text   string
	raw    bool
}

// Number creates a numeric value
func Number(n float64) Value {
	return Value{number: n}
}

// Text creates a raw text value with no previous number
func Text(s string) Value {
	return Value{text: s, raw: true}
}

// NumberText creates a value that displays s and derives from n
func NumberText(n float64, s string) Value {
	return Value{number: n, text: s, raw: true}
}

// WithText returns the value carrying raw text, keeping its last number
func (v Value) WithText(s string) Value {
	return Value{number: v.number, text: s, raw: true}
}

// Float returns the current number, or the last number held before raw text
func (v Value) Float() float64 {
	return v.number
}

// Numeric reports the number and whether the value currently is one
func (v Value) Numeric() (float64, bool) {
	return v.number, !v.raw
}

// IsText reports whether the value holds raw text
func (v Value) IsText() bool {
	return v.raw
}

// String returns the raw text, or the number in plain notation
func (v Value) String() string {
	if v.raw {
		return v.text
	}
	return strconv.FormatFloat(v.number, 'f', -1, 64)
}
