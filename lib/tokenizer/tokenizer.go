// Package tokenizer splits a Portuguese sentence into surface tokens, expanding
// contractions, enclisis and mesoclisis into their syntactic words.
package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/abbrev"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/lexicon"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/text"
)

// Tokenizer is safe for concurrent use as long as its Lexicon is.
type Tokenizer struct {
	Lexicon lexicon.Lookup
	Abbrev  *abbrev.List
}

// Tokenize returns the tokens of sentence in order.
func (t Tokenizer) Tokenize(sentence string) []Token {
	chunks := Chunks(sentence)
	var tokens []Token
	for i := range chunks {
		tokens = append(tokens, t.tokenizeChunk(chunks, i)...)
	}
	return tokens
}

// Chunks splits a sentence on single spaces, skipping empty chunks.
func Chunks(sentence string) []string {
	var chunks []string
	for _, chunk := range strings.Split(sentence, " ") {
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
	}
	return chunks
}

func (t Tokenizer) tokenizeChunk(chunks []string, i int) []Token {
	chunk := chunks[i]
	start := peelPrefix(chunk)
	end := t.peelSuffix(chunk, start)

	var tokens []Token
	for _, r := range chunk[:start] {
		tokens = append(tokens, Token{Form: string(r)})
	}
	core := chunk[start:end]
	if words, ok := clitic(core); ok {
		tokens = append(tokens, Token{Form: core, Words: words})
	} else {
		tokens = append(tokens, t.expand(core, chunks, i))
	}
	for _, p := range mergePeriods(chunk[end:]) {
		tokens = append(tokens, Token{Form: p})
	}
	tokens[len(tokens)-1].SpaceAfter = true
	return tokens
}

// peelPrefix returns the offset of the first character kept in the core:
// leading removable characters, a currency sign before a digit and a hyphen
// not before a digit are detached while more than one character is left.
func peelPrefix(chunk string) int {
	start := 0
	for {
		r, size := utf8.DecodeRuneInString(chunk[start:])
		next, nextSize := utf8.DecodeRuneInString(chunk[start+size:])
		if nextSize == 0 {
			return start
		}
		detach := strings.ContainsRune(removable, r) ||
			(unicode.Is(unicode.Sc, r) && isDigit(next)) ||
			(r == '-' && !isDigit(next))
		if !detach {
			return start
		}
		start += size
	}
}

// peelSuffix returns the offset just past the core. Trailing removable
// characters, hyphens and periods are detached while more than one character
// is left, unless what is left is a known abbreviation.
func (t Tokenizer) peelSuffix(chunk string, start int) int {
	end := len(chunk)
	for utf8.RuneCountInString(chunk[start:end]) > 1 {
		if t.Abbrev.Match(chunk[start:end]) {
			break
		}
		r, size := utf8.DecodeLastRuneInString(chunk[start:end])
		if r != '-' && r != '.' && !strings.ContainsRune(removable, r) {
			break
		}
		end -= size
	}
	return end
}

// mergePeriods splits detached trailing characters into tokens, one per
// character except for periods: three in a row form "...", one or two
// form "." or "..".
func mergePeriods(suffix string) []string {
	var res []string
	periods := 0
	flush := func() {
		if periods > 0 {
			res = append(res, strings.Repeat(".", periods))
			periods = 0
		}
	}
	for _, r := range suffix {
		if r != '.' {
			flush()
			res = append(res, string(r))
			continue
		}
		periods++
		if periods == 3 {
			flush()
		}
	}
	flush()
	return res
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// clitic splits a verb with an attached pronoun: enclisis ("dá-lhe" is dar +
// lhe) or mesoclisis ("dar-lhe-ia" is daria + lhe).
func clitic(core string) ([]string, bool) {
	parts := strings.Split(core, "-")
	if len(parts) < 2 || len(parts) > 3 || parts[0] == "" {
		return nil, false
	}
	if _, ok := enclitics[parts[1]]; !ok {
		return nil, false
	}
	verb, pronoun := parts[0], parts[1]
	switch len(parts) {
	case 2:
		if inf, ok := infinitive(verb); ok {
			verb = inf
		}
		return []string{verb, pronoun}, true
	case 3:
		if _, ok := terminations[parts[2]]; !ok {
			return nil, false
		}
		if strings.HasSuffix(verb, "r") {
			return []string{verb + parts[2], pronoun}, true
		}
		if inf, ok := infinitive(verb); ok {
			return []string{inf + parts[2], pronoun}, true
		}
	}
	return nil, false
}

// infinitive rewrites an accented verb ending to the infinitive: dá gives dar.
func infinitive(verb string) (string, bool) {
	r, size := utf8.DecodeLastRuneInString(verb)
	ending, ok := infinitives[r]
	if !ok {
		return verb, false
	}
	return verb[:len(verb)-size] + ending, true
}

// expand turns a contraction into a multiword token, leaving other pieces
// as they are. The ambiguous forms depend on the surrounding chunks.
func (t Tokenizer) expand(piece string, chunks []string, i int) Token {
	lower := strings.ToLower(piece)
	var words []string
	if _, ok := ambiguous[lower]; ok {
		words = Disambiguator{Lexicon: t.Lexicon}.Split(piece, chunks, i)
	} else if pair, ok := contractions[lower]; ok {
		words = pair[:]
	}
	if words == nil {
		return Token{Form: piece}
	}
	return Token{Form: piece, Words: text.MatchCase(piece, words)}
}
