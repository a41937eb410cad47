package tokenizer

import (
	"strings"

	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/lexicon"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/text"
)

// Disambiguator decides whether one of the ambiguous forms (nos, consigo, pra,
// pela, pelas, pelo, pelos) is a contraction, looking at the chunks around it.
type Disambiguator struct {
	Lexicon lexicon.Lookup
}

// words that look like a determiner before "pelo" or "pelos" without being one
var determinerStops = map[string]struct{}{
	"que":    {},
	"dado":   {},
	"tanto":  {},
	"quanto": {},
	"mais":   {},
}

// Split returns the lower case syntactic words of the ambiguous form found at
// chunks[i], or nil when the form stays a single word in that context.
func (d Disambiguator) Split(form string, chunks []string, i int) []string {
	n := neighbours{lex: d.Lexicon, chunks: chunks, i: i}
	switch strings.ToLower(form) {
	case "nos":
		// "nos deram" is a pronoun, "nos dias" is em + os
		if n.nextHas(lexicon.VERB, lexicon.AUX) && !n.nextAgrees(notSingularFeminine, lexicon.NOUN, lexicon.ADJ, lexicon.DET) {
			return nil
		}
		return []string{"em", "os"}
	case "consigo":
		if (n.prevHas(lexicon.PRON, lexicon.ADV) || n.nextHas(lexicon.VERB, lexicon.AUX)) && !n.doQue() {
			return nil
		}
		return []string{"com", "si"}
	case "pra":
		if n.nextAgrees(notPluralMasculine, lexicon.NOUN, lexicon.ADJ, lexicon.DET) {
			return []string{"para", "a"}
		}
		return nil
	case "pela", "pelas":
		if !n.nextHas(lexicon.NOUN, lexicon.ADJ, lexicon.NUM, lexicon.DET) && !n.nextIsNameOrNumber() {
			return nil
		}
		if strings.ToLower(form) == "pela" {
			return []string{"por", "a"}
		}
		return []string{"por", "as"}
	case "pelo":
		if n.prevArticle(notPluralFeminine) && !n.nextAgrees(notPluralFeminine, lexicon.NOUN, lexicon.ADJ, lexicon.DET) && n.nextNotUpper() {
			return nil
		}
		return []string{"por", "o"}
	case "pelos":
		if n.prevArticle(pluralMasculineArticle) && !n.nextAgrees(pluralMasculineArticle, lexicon.NOUN, lexicon.ADJ, lexicon.DET) && n.nextNotUpper() {
			return nil
		}
		return []string{"por", "os"}
	}
	return nil
}

func notSingularFeminine(f lexicon.Features) bool {
	return !f.Has("Number", "Sing") && !f.Has("Gender", "Fem")
}

func notPluralMasculine(f lexicon.Features) bool {
	return !f.Has("Number", "Plur") && !f.Has("Gender", "Masc")
}

func notPluralFeminine(f lexicon.Features) bool {
	return !f.Has("Number", "Plur") && !f.Has("Gender", "Fem")
}

func pluralMasculineArticle(f lexicon.Features) bool {
	return notSingularFeminine(f) && f.Has("PronType", "Art")
}

// neighbours gives lexicon access to the chunks either side of chunks[i].
// Words are looked up stripped of punctuation and lower-cased.
type neighbours struct {
	lex    lexicon.Lookup
	chunks []string
	i      int
}

func (n neighbours) prev() (string, bool) {
	if n.i <= 0 || n.i > len(n.chunks) {
		return "", false
	}
	return n.chunks[n.i-1], true
}

func (n neighbours) next() (string, bool) {
	if n.i < 0 || n.i+1 >= len(n.chunks) {
		return "", false
	}
	return n.chunks[n.i+1], true
}

func (n neighbours) has(chunk string, tags ...lexicon.Tag) bool {
	if n.lex == nil {
		return false
	}
	word := text.StripWord(chunk)
	for _, tag := range tags {
		if n.lex.HasTag(word, tag) {
			return true
		}
	}
	return false
}

// agrees reports whether any entry of chunk under one of tags satisfies ok.
func (n neighbours) agrees(chunk string, ok func(lexicon.Features) bool, tags ...lexicon.Tag) bool {
	if n.lex == nil {
		return false
	}
	word := text.StripWord(chunk)
	for _, tag := range tags {
		for _, entry := range n.lex.GetTag(word, tag) {
			if ok(entry.Features) {
				return true
			}
		}
	}
	return false
}

func (n neighbours) prevHas(tags ...lexicon.Tag) bool {
	chunk, ok := n.prev()
	return ok && n.has(chunk, tags...)
}

func (n neighbours) nextHas(tags ...lexicon.Tag) bool {
	chunk, ok := n.next()
	return ok && n.has(chunk, tags...)
}

func (n neighbours) nextAgrees(ok func(lexicon.Features) bool, tags ...lexicon.Tag) bool {
	chunk, found := n.next()
	return found && n.agrees(chunk, ok, tags...)
}

// prevArticle reports whether the previous chunk has a determiner reading
// satisfying ok and is not one of the words that merely look like one.
func (n neighbours) prevArticle(ok func(lexicon.Features) bool) bool {
	chunk, found := n.prev()
	if !found || !n.agrees(chunk, ok, lexicon.DET) {
		return false
	}
	_, stop := determinerStops[text.StripWord(chunk)]
	return !stop
}

// doQue matches "consigo do que" and "consigo sua", where consigo is com + si.
// Both need two chunks after consigo.
func (n neighbours) doQue() bool {
	if n.i+2 >= len(n.chunks) {
		return false
	}
	next, next2 := n.chunks[n.i+1], n.chunks[n.i+2]
	return (next == "do" && next2 == "que") || next == "sua"
}

func (n neighbours) nextIsNameOrNumber() bool {
	chunk, ok := n.next()
	return ok && (text.StartsUpper(chunk) || text.StartsDigit(chunk))
}

// nextNotUpper holds at the end of the sentence too.
func (n neighbours) nextNotUpper() bool {
	chunk, ok := n.next()
	return !ok || !text.StartsUpper(chunk)
}
