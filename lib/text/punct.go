package text

import "strings"

type pair struct {
	open, close byte
}

// quotes are paired with themselves, brackets with their closing counterpart.
var (
	quotePairs   = []pair{{'"', '"'}, {'\'', '\''}}
	bracketPairs = []pair{{'(', ')'}, {'[', ']'}, {'{', '}'}, {'<', '>'}}
)

const terminalPunct = ".!?:;"

// NormalizePunctuation cleans up paired and terminal punctuation of one sentence.
// An outer pair wrapping the whole sentence is dropped, unbalanced quotes and
// brackets are deleted, and the sentence is made to end with terminal punctuation
// placed before any closing delimiter. It returns "" when nothing alphabetic
// is left, meaning the sentence should be dropped.
func NormalizePunctuation(s string) string {
	if s == "" {
		return ""
	}
	counts := map[byte]int{}
	for i := 0; i < len(s); i++ {
		counts[s[i]]++
	}

	res := s
	first, last := s[0], s[len(s)-1]
	wrapped := false
	for _, p := range quotePairs {
		if counts[p.open] == 2 && first == p.open && last == p.close {
			wrapped = true
		}
	}
	for _, p := range bracketPairs {
		if counts[p.open] == 1 && counts[p.close] == 1 && first == p.open && last == p.close {
			wrapped = true
		}
	}
	if wrapped {
		res = s[1 : len(s)-1]
	}

	for _, p := range quotePairs {
		if counts[p.open]%2 != 0 {
			res = strings.ReplaceAll(res, string(p.open), "")
		}
	}
	for _, p := range bracketPairs {
		if counts[p.open] != counts[p.close] {
			res = strings.ReplaceAll(res, string(p.open), "")
			res = strings.ReplaceAll(res, string(p.close), "")
		}
	}

	if !HasLetter(res) {
		return ""
	}

	// each rewrite shortens res, so this ends
	for (strings.HasSuffix(res, "..") && !strings.HasSuffix(res, "...")) ||
		strings.HasSuffix(res, ":.") || strings.HasSuffix(res, ";.") {
		res = res[:len(res)-2] + "."
	}
	if strings.IndexByte(terminalPunct, res[len(res)-1]) < 0 {
		n := len(res)
		if n > 1 && strings.IndexByte(`'")]}>`, res[n-1]) >= 0 && strings.IndexByte(terminalPunct, res[n-2]) >= 0 {
			res = res[:n-2] + res[n-1:] + res[n-2:n-1]
		} else {
			res += "."
		}
	}
	return collapseSpaces(res)
}

func collapseSpaces(s string) string {
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return s
}
