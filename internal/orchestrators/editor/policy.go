package editor

import (
	"github.com/KirkDiggler/hero-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/hero-sheet/internal/locale"
)

// assignResult is the outcome of writing input text to a field
type assignResult struct {
	value    sheet.Value
	display  string
	parsed   bool
	reverted bool
}

// assignRaw stores the text verbatim. A numeric field whose text is exactly a
// locale number derives from that number; any other text keeps the last one.
func assignRaw(codec locale.Codec, ref *fieldRef, text string) assignResult {
	value := ref.get().WithText(text)
	if ref.numeric {
		if n, err := codec.ParseExact(text, locale.KindFloat); err == nil {
			value = sheet.NumberText(n, text)
		}
	}
	ref.set(value)
	return assignResult{value: value, display: codec.Format(value)}
}

// assignParsed stores the parsed number. Text that does not parse is kept as raw
// text when allowUnparseable is set; otherwise the field is left alone and the
// input is reset to the field's last known value.
func assignParsed(
	codec locale.Codec,
	ref *fieldRef,
	text string,
	kind locale.NumberKind,
	allowUnparseable bool,
) assignResult {
	n, err := codec.Parse(text, kind)
	if err == nil {
		value := sheet.Number(n)
		ref.set(value)
		return assignResult{value: value, display: codec.Format(value), parsed: true}
	}

	if allowUnparseable {
		return assignRaw(codec, ref, text)
	}

	current := ref.get()
	return assignResult{value: current, display: codec.Format(current), reverted: true}
}
