package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// HasLetter reports whether s contains at least one alphabetic character.
func HasLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}

// IsUpper reports whether s has at least one cased letter and all of its
// cased letters are upper case. "S.A." and "CRONOLOGIA" are upper, "123" is not.
func IsUpper(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0
	}
	return r
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	if r == utf8.RuneError {
		return 0
	}
	return r
}

// StartsUpper reports whether the first character of s is an upper case letter.
func StartsUpper(s string) bool {
	return unicode.IsUpper(firstRune(s))
}

// StartsLower reports whether the first character of s is a lower case letter.
func StartsLower(s string) bool {
	return unicode.IsLower(firstRune(s))
}

// StartsDigit reports whether the first character of s is numeric.
func StartsDigit(s string) bool {
	r := firstRune(s)
	return unicode.IsDigit(r) || unicode.IsNumber(r)
}

// EndsWithRune reports whether the last character of s is r.
func EndsWithRune(s string, r rune) bool {
	return s != "" && lastRune(s) == r
}

// StripWord returns the first run of letters of w, lower-cased, skipping
// any leading non-letters: `"Casa,` gives "casa", `d'água` gives "d".
func StripWord(w string) string {
	start := strings.IndexFunc(w, unicode.IsLetter)
	if start < 0 {
		return ""
	}
	rest := w[start:]
	if end := strings.IndexFunc(rest, func(r rune) bool { return !unicode.IsLetter(r) }); end >= 0 {
		rest = rest[:end]
	}
	return strings.ToLower(rest)
}

// MatchCase casts the words of an expansion to the casing of the surface form
// they came from: all upper, capitalized, or left as they are.
// Single-letter forms such as "À" count as capitalized.
func MatchCase(surface string, words []string) []string {
	res := make([]string, len(words))
	switch {
	case utf8.RuneCountInString(surface) > 1 && IsUpper(surface):
		for i, w := range words {
			res[i] = strings.ToUpper(w)
		}
	case StartsUpper(surface):
		copy(res, words)
		if len(res) > 0 {
			res[0] = Capitalize(res[0])
		}
	default:
		copy(res, words)
	}
	return res
}

// Capitalize upper-cases the first character of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
