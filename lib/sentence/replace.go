package sentence

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// replacements holds old, new pairs applied in order.
var replacements = []string{
	"\u00a0", " ",
	"—", "-",
	"–", "-",
	"＂", `"`,
	"“", `"`,
	"”", `"`,
	"‟", `"`,
	"″", `"`,
	"‶", `"`,
	"〃", `"`,
	"״", `"`,
	"˝", `"`,
	"ʺ", `"`,
	"˶", `"`,
	"ˮ", `"`,
	"ײ", `"`,
	" ‣", ".",
	" >>", ".",
	" ○", ".",
	" *", ".",
	" | ", ". ",
	" .", ".",
}

var whitespace = []string{
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
	"\t", " ",
}

// Prepare composes text to NFC, applies the substitution table when replace is
// set, turns line breaks and tabs into spaces, collapses runs of spaces and
// drops a single leading space.
func Prepare(text string, replace bool) string {
	res := norm.NFC.String(text)
	res = strings.ReplaceAll(res, "  ", " ")
	if replace {
		for i := 0; i < len(replacements); i += 2 {
			res = strings.ReplaceAll(res, replacements[i], replacements[i+1])
		}
	}
	for i := 0; i < len(whitespace); i += 2 {
		res = strings.ReplaceAll(res, whitespace[i], whitespace[i+1])
	}
	for strings.Contains(res, "  ") {
		res = strings.ReplaceAll(res, "  ", " ")
	}
	return strings.TrimPrefix(res, " ")
}
