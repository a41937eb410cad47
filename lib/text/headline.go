package text

import "strings"

var bullets = map[string]struct{}{
	"*": {},
	"★": {},
	"-": {},
	"—": {},
	"–": {},
	">": {},
	".": {},
}

// TrimHeadline drops what looks like a headline glued to the start of a sentence:
// an itemize symbol, a parenthesised dateline such as "(BELO HORIZONTE)" and
// a run of all-caps words such as "CRONOLOGIA".
func TrimHeadline(s string) string {
	bits := strings.Fields(s)
	if len(bits) == 0 {
		return ""
	}
	start := 0
	if _, ok := bullets[bits[0]]; ok {
		if len(bits) == 1 {
			return ""
		}
		start = 1
	}

	// (BELO HORIZONTE) ...
	if strings.HasPrefix(bits[start], "(") && !EndsWithRune(bits[len(bits)-1], ')') {
		for i, bit := range bits {
			if EndsWithRune(bit, ')') {
				start = i + 1
				break
			}
		}
	}

	// CRONOLOGIA ... : skip to the last word of the upper case run, then past it
	// too when the next word is capitalized, i.e. it begins the real sentence.
	for i := start; i < len(bits) && IsUpper(bits[i]); i++ {
		start = i
	}
	if len([]rune(bits[start])) > 1 && IsUpper(bits[start]) && start+1 < len(bits) && StartsUpper(bits[start+1]) {
		start++
	}
	return strings.Join(bits[start:], " ")
}
