package sentence

import (
	"strings"
	"unicode/utf8"

	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/abbrev"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/text"
)

// Segmenter splits raw text into sentences, one chunk (space delimited
// substring) at a time.
type Segmenter struct {
	// Abbrev lists the chunks ending in a period that do not end a sentence.
	Abbrev *abbrev.List
	// Replace enables the substitution table for unusual quotes, dashes and
	// itemize glyphs.
	Replace bool
	// Limit is the maximum sentence length in characters, 0 for no limit.
	// Chunks longer than Limit are discarded.
	Limit int
}

type buffer struct {
	chunks []string
	size   int
}

func (b *buffer) push(chunk string) {
	b.chunks = append(b.chunks, chunk)
	b.size += 1 + utf8.RuneCountInString(chunk)
}

func (b *buffer) flush(sentences []string) []string {
	if sent, ok := Clean(strings.Join(b.chunks, " ")); ok {
		sentences = append(sentences, sent)
	}
	b.chunks = b.chunks[:0]
	b.size = 0
	return sentences
}

// Segment returns the sentences of text in order.
func (s Segmenter) Segment(txt string) []string {
	chunks := strings.Split(Prepare(txt, s.Replace), " ")
	if chunks[len(chunks)-1] == "" {
		chunks = chunks[:len(chunks)-1]
	}

	var sentences []string
	buf := &buffer{}
	for i, chunk := range chunks {
		n := utf8.RuneCountInString(chunk)
		if i == len(chunks)-1 {
			if s.Limit <= 0 || n <= s.Limit {
				buf.push(chunk)
			}
			sentences = buf.flush(sentences)
			break
		}
		if chunk == "" {
			continue
		}
		next := chunks[i+1]

		switch {
		case s.Limit > 0 && n > s.Limit:
			continue
		case s.Limit > 0 && buf.size+n > s.Limit:
			sentences = buf.flush(sentences)
			buf.push(chunk)
		case n < 3:
			buf.push(chunk)
		case strings.HasSuffix(chunk, "...") || endsWithAny(chunk, "!?"):
			buf.push(chunk)
			sentences = buf.flush(sentences)
		case endsWithAny(chunk, ".:;") && text.StartsLower(next):
			buf.push(chunk)
		case endsWithAny(chunk, ":;"):
			buf.push(chunk)
			sentences = buf.flush(sentences)
		case hasAnySuffix(chunk, "!'", `!"`, "?'", `?"`):
			buf.push(chunk)
			sentences = buf.flush(sentences)
		case hasAnySuffix(chunk, ".'", `."`):
			buf.push(chunk)
			if !s.Abbrev.Match(chunk[:len(chunk)-1]) {
				sentences = buf.flush(sentences)
			}
		case !strings.HasSuffix(chunk, "."):
			buf.push(chunk)
		default:
			buf.push(chunk)
			if !s.Abbrev.Match(chunk) {
				sentences = buf.flush(sentences)
			}
		}
	}
	return sentences
}

// Clean finalizes a candidate sentence. It reports false when nothing worth
// emitting is left: an empty string, "." or "..". Otherwise a doubled final
// period is reduced, a period is appended when terminal punctuation is missing,
// and a pair of quotes wrapping the whole sentence is removed.
func Clean(sent string) (string, bool) {
	sent = strings.TrimSpace(sent)
	switch {
	case isEmpty(sent):
		return "", false
	case strings.HasSuffix(sent, "..") && !strings.HasSuffix(sent, "..."):
		return sent[:len(sent)-1], true
	case !endsWithAny(sent, ".!?:;") && !quoteAfterPunct(sent):
		return sent + ".", true
	case wrappedInQuotes(sent):
		inner := strings.TrimSpace(sent[1 : len(sent)-1])
		if isEmpty(inner) {
			return "", false
		}
		return inner, true
	default:
		return sent, true
	}
}

func isEmpty(sent string) bool {
	return sent == "" || sent == "." || sent == ".."
}

func endsWithAny(s, chars string) bool {
	return s != "" && strings.IndexByte(chars, s[len(s)-1]) >= 0
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

func quoteAfterPunct(s string) bool {
	return len(s) > 1 && endsWithAny(s, `'"`) && endsWithAny(s[:len(s)-1], ".!?")
}

func wrappedInQuotes(s string) bool {
	if len(s) < 2 {
		return false
	}
	q := s[0]
	return (q == '"' || q == '\'') && s[len(s)-1] == q && strings.Count(s, string(q)) == 2
}
